package simulation

import "github.com/gonewx/wizard-defense/pkg/ecs"

// Command 外部协作者（输入、动画）提交给模拟的一次性指令
//
// 指令在下一次 Step 开始时按提交顺序执行，每条只执行一次。
type Command interface {
	isCommand()
}

// MoveDirection 玩家移动方向
type MoveDirection int

const (
	// MoveDown 向下（-Y）
	MoveDown MoveDirection = -1
	// MoveUp 向上（+Y）
	MoveUp MoveDirection = 1
)

// MovePlayer 沿Y轴移动玩家，位移 = 方向 × 速度 × Magnitude × dt
type MovePlayer struct {
	Direction MoveDirection
	Magnitude float64 // 速度倍率，按键按下为 1
}

// FireProjectile 在玩家当前位置发射子弹
type FireProjectile struct{}

// PurchaseRepair 购买一次城墙修理（财富不足时丢弃）
type PurchaseRepair struct{}

// PurchaseUpgrade 购买一次城墙升级（财富不足时丢弃）
type PurchaseUpgrade struct{}

// NotifyAttackCycleComplete 动画协作者通知：敌人完成了一个攻击动画周期
type NotifyAttackCycleComplete struct {
	Enemy ecs.EntityID
}

// NotifyDeathAnimationComplete 动画协作者通知：敌人的死亡动画播放完毕，可以删除
type NotifyDeathAnimationComplete struct {
	Enemy ecs.EntityID
}

// SpawnEnemy 在指定位置生成一个敌人（脚本和调试用，常规生成由计时器驱动）
type SpawnEnemy struct {
	X, Y float64
}

func (MovePlayer) isCommand()                   {}
func (FireProjectile) isCommand()               {}
func (PurchaseRepair) isCommand()               {}
func (PurchaseUpgrade) isCommand()              {}
func (NotifyAttackCycleComplete) isCommand()    {}
func (NotifyDeathAnimationComplete) isCommand() {}
func (SpawnEnemy) isCommand()                   {}
