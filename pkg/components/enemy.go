package components

// EnemyState 敌人状态机的状态
//
// 状态转换（每帧评估一次，生命值检查优先于位置检查）：
//
//	Walking   → Dead      生命值 <= 0
//	Attacking → Dead      生命值 <= 0
//	Walking   → Attacking 到达城墙攻击线
//
// Dead 为终态，进入后不再接受任何模拟修改，等待死亡动画完成后被移除。
type EnemyState int

const (
	// EnemyWalking 行走状态：向城墙前进（初始状态）
	EnemyWalking EnemyState = iota
	// EnemyAttacking 攻击状态：停止移动，每完成一个攻击动画周期对城墙造成一次伤害
	EnemyAttacking
	// EnemyDead 死亡状态：静止、无伤害，等待外部动画通知后删除
	EnemyDead
)

// String 返回状态名称（用于日志和快照）
func (s EnemyState) String() string {
	switch s {
	case EnemyWalking:
		return "walking"
	case EnemyAttacking:
		return "attacking"
	case EnemyDead:
		return "dead"
	default:
		return "unknown"
	}
}

// ParseEnemyState 将状态名称解析回 EnemyState（用于读取存档）
func ParseEnemyState(name string) (EnemyState, bool) {
	switch name {
	case "walking":
		return EnemyWalking, true
	case "attacking":
		return EnemyAttacking, true
	case "dead":
		return EnemyDead, true
	default:
		return EnemyWalking, false
	}
}

// EnemyComponent 标识实体为敌人，并保存其状态机数据
type EnemyComponent struct {
	State EnemyState // 当前状态
	Speed float64    // 行走速度（世界单位/秒），沿 +X 方向
	// AttackDamage 每完成一个攻击周期对城墙造成的伤害
	AttackDamage float64
}
