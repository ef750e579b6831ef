package components

// CollisionComponent 定义实体的碰撞检测边界框
// 碰撞盒以实体位置为中心，尺寸由实体类型决定（敌人受击盒、子弹攻击盒），
// 与精灵图尺寸无关
type CollisionComponent struct {
	Width  float64 // 碰撞盒宽度（世界单位）
	Height float64 // 碰撞盒高度（世界单位）
}
