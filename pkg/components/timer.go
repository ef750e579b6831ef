package components

// TimerComponent 通用计时器组件
// 用于处理需要时间延迟的行为（如敌人生成周期）
type TimerComponent struct {
	Name        string  // 计时器名称，如 "enemy_spawn"
	TargetTime  float64 // 目标时间（秒）
	CurrentTime float64 // 当前已过时间（秒）
	Repeating   bool    // 到期后是否自动重新计时
	IsReady     bool    // 非循环计时器是否已完成
}

// Tick 推进计时器，返回本次推进中到期的次数
// 非循环计时器只会到期一次
func (t *TimerComponent) Tick(deltaTime float64) int {
	if t.TargetTime <= 0 || t.IsReady {
		return 0
	}
	t.CurrentTime += deltaTime
	fired := 0
	for t.CurrentTime >= t.TargetTime {
		fired++
		if !t.Repeating {
			t.IsReady = true
			break
		}
		t.CurrentTime -= t.TargetTime
	}
	return fired
}
