package components

// PositionComponent 实体在世界坐标系中的位置（实体中心点）
// 坐标原点位于战场中心，X 向右为正，Y 向上为正
type PositionComponent struct {
	X float64
	Y float64
}

// VelocityComponent 实体的速度（世界单位/秒）
type VelocityComponent struct {
	VX float64
	VY float64
}
