package systems

import (
	"log"

	"github.com/gonewx/wizard-defense/pkg/components"
	"github.com/gonewx/wizard-defense/pkg/ecs"
	"github.com/gonewx/wizard-defense/pkg/entities"
	"github.com/gonewx/wizard-defense/pkg/utils"
)

// CollisionSystem 子弹与敌人的碰撞结算
//
// 每帧对 存活子弹 × 未死亡敌人 做 AABB 检测：
//   - 命中后子弹立即被标记删除，本帧不会再命中其他敌人
//   - 被命中的敌人扣除子弹伤害，同一帧可以被多颗子弹命中
//   - 匹配关系每帧重新计算，不保留目标记录
type CollisionSystem struct {
	em *ecs.EntityManager
}

// NewCollisionSystem 创建碰撞系统
func NewCollisionSystem(em *ecs.EntityManager) *CollisionSystem {
	return &CollisionSystem{em: em}
}

// Update 执行一次碰撞结算
func (s *CollisionSystem) Update(deltaTime float64) {
	s.Resolve()
}

// Resolve 执行一次碰撞结算，返回本次命中次数
func (s *CollisionSystem) Resolve() int {
	targets := s.liveEnemies()
	if len(targets) == 0 {
		return 0
	}

	hits := 0
	for _, projID := range entities.Projectiles(s.em) {
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](s.em, projID)
		projPos, _ := ecs.GetComponent[*components.PositionComponent](s.em, projID)
		projBox, ok := ecs.GetComponent[*components.CollisionComponent](s.em, projID)
		if !ok {
			continue
		}

		for _, t := range targets {
			if !utils.Overlaps(projPos.X, projPos.Y, projBox.Width, projBox.Height,
				t.pos.X, t.pos.Y, t.box.Width, t.box.Height) {
				continue
			}

			s.em.DestroyEntity(projID)
			t.health.CurrentHealth -= proj.Damage
			hits++

			if t.health.IsDepleted() {
				log.Printf("[CollisionSystem] Enemy %d health depleted by projectile %d (health=%.1f)",
					t.id, projID, t.health.CurrentHealth)
			}
			break
		}
	}

	return hits
}

// collisionTarget 一个可被命中的敌人
type collisionTarget struct {
	id     ecs.EntityID
	pos    *components.PositionComponent
	box    *components.CollisionComponent
	health *components.HealthComponent
}

// liveEnemies 收集所有未死亡且带碰撞盒的敌人
func (s *CollisionSystem) liveEnemies() []collisionTarget {
	ids := entities.Enemies(s.em)
	targets := make([]collisionTarget, 0, len(ids))
	for _, id := range ids {
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.em, id)
		if enemy.State == components.EnemyDead {
			continue
		}
		box, ok := ecs.GetComponent[*components.CollisionComponent](s.em, id)
		if !ok {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		health, _ := ecs.GetComponent[*components.HealthComponent](s.em, id)
		targets = append(targets, collisionTarget{id: id, pos: pos, box: box, health: health})
	}
	return targets
}
