package components

// SpawnerComponent 敌人生成点
// 与 TimerComponent 挂在同一实体上，计时器每到期一次生成一个敌人
type SpawnerComponent struct {
	X    float64 // 出生点X坐标
	MinY float64 // 出生点Y坐标下限（含）
	MaxY float64 // 出生点Y坐标上限（不含）
}
