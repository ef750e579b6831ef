package components

// ProjectileComponent 标识实体为玩家发射的子弹
//
// 子弹沿 -X 方向匀速飞行，命中第一个重叠的敌人后立即消失，
// 不存在穿透、溅射和友军伤害。
type ProjectileComponent struct {
	Speed  float64 // 飞行速度（世界单位/秒）
	Damage float64 // 命中伤害
}
