package systems

import (
	"log"

	"github.com/gonewx/wizard-defense/pkg/components"
	"github.com/gonewx/wizard-defense/pkg/ecs"
	"github.com/gonewx/wizard-defense/pkg/entities"
	"github.com/gonewx/wizard-defense/pkg/game"
)

// EnemyBehaviorSystem 敌人状态机
//
// 每帧先评估状态转换（生命值检查优先于位置检查），
// 再按转换后的状态执行行为：
//   - Walking: X += speed × dt
//   - Attacking: 不移动；每收到一次攻击周期完成通知，对城墙造成一次伤害
//   - Dead: 静止，等待死亡动画完成通知后删除
type EnemyBehaviorSystem struct {
	em   *ecs.EntityManager
	wall *game.Wall

	// 本帧收到的攻击周期完成通知（敌人ID -> 次数），在 Update 中结算
	pendingAttackCycles map[ecs.EntityID]int

	frameCount int
}

// NewEnemyBehaviorSystem 创建敌人行为系统
func NewEnemyBehaviorSystem(em *ecs.EntityManager, wall *game.Wall) *EnemyBehaviorSystem {
	return &EnemyBehaviorSystem{
		em:                  em,
		wall:                wall,
		pendingAttackCycles: make(map[ecs.EntityID]int),
	}
}

// NotifyAttackCycleComplete 记录一次攻击动画周期完成
// 伤害在下一次 Update 中、状态转换之后结算
func (s *EnemyBehaviorSystem) NotifyAttackCycleComplete(id ecs.EntityID) {
	if !entities.IsEnemy(s.em, id) {
		log.Printf("[EnemyBehaviorSystem] Ignoring attack cycle for unknown enemy %d", id)
		return
	}
	s.pendingAttackCycles[id]++
}

// CompleteDeath 死亡动画播放完毕，删除处于 Dead 状态的敌人
// 返回 true 表示本次调用标记了删除；非 Dead 状态或已删除的敌人不受影响
func (s *EnemyBehaviorSystem) CompleteDeath(id ecs.EntityID) bool {
	enemy, ok := ecs.GetComponent[*components.EnemyComponent](s.em, id)
	if !ok || !s.em.IsAlive(id) {
		return false
	}
	if !despawnEligible(enemy.State) {
		log.Printf("[EnemyBehaviorSystem] Ignoring death completion for enemy %d in state %s", id, enemy.State)
		return false
	}
	return s.em.DestroyEntity(id)
}

// Update 执行状态转换与各状态行为
//
// 返回本帧新进入 Dead 状态的敌人（每个敌人一生只会出现一次）。
func (s *EnemyBehaviorSystem) Update(deltaTime float64) []ecs.EntityID {
	s.frameCount++

	var killed []ecs.EntityID
	for _, id := range entities.Enemies(s.em) {
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		health, _ := ecs.GetComponent[*components.HealthComponent](s.em, id)

		prev := enemy.State
		enemy.State = s.nextState(enemy.State, pos, health)
		if enemy.State != prev {
			log.Printf("[EnemyBehaviorSystem] Enemy %d: %s -> %s at (%.1f, %.1f), health=%.1f",
				id, prev, enemy.State, pos.X, pos.Y, health.CurrentHealth)
			if enemy.State == components.EnemyDead {
				killed = append(killed, id)
			}
		}

		switch enemy.State {
		case components.EnemyWalking:
			pos.X += enemy.Speed * deltaTime
		case components.EnemyAttacking:
			for i := 0; i < s.pendingAttackCycles[id]; i++ {
				s.wall.ApplyDamage(enemy.AttackDamage)
				log.Printf("[EnemyBehaviorSystem] Enemy %d hit the wall for %.0f (wall=%.0f/%.0f)",
					id, enemy.AttackDamage, s.wall.Health(), s.wall.MaxHealth())
			}
		case components.EnemyDead:
			// 静止，不造成伤害
		}
	}

	// 未结算的通知（敌人已死亡或从未进入攻击状态）直接丢弃
	clear(s.pendingAttackCycles)

	if s.frameCount%600 == 0 {
		log.Printf("[EnemyBehaviorSystem] frame %d: %d enemies, wall=%.0f/%.0f",
			s.frameCount, len(entities.Enemies(s.em)), s.wall.Health(), s.wall.MaxHealth())
	}

	return killed
}

// nextState 计算状态转换，生命值检查优先
func (s *EnemyBehaviorSystem) nextState(state components.EnemyState, pos *components.PositionComponent, health *components.HealthComponent) components.EnemyState {
	switch state {
	case components.EnemyWalking:
		if health.IsDepleted() {
			return components.EnemyDead
		}
		if pos.X >= s.wall.AttackLine() {
			return components.EnemyAttacking
		}
		return components.EnemyWalking
	case components.EnemyAttacking:
		if health.IsDepleted() {
			return components.EnemyDead
		}
		return components.EnemyAttacking
	case components.EnemyDead:
		return components.EnemyDead
	default:
		log.Printf("[EnemyBehaviorSystem] Unknown enemy state %d, treating as dead", state)
		return components.EnemyDead
	}
}

// despawnEligible 只有 Dead 状态的敌人可以被外部删除
func despawnEligible(state components.EnemyState) bool {
	switch state {
	case components.EnemyDead:
		return true
	case components.EnemyWalking, components.EnemyAttacking:
		return false
	default:
		return false
	}
}
