package systems

import (
	"github.com/gonewx/wizard-defense/pkg/components"
	"github.com/gonewx/wizard-defense/pkg/config"
	"github.com/gonewx/wizard-defense/pkg/ecs"
	"github.com/gonewx/wizard-defense/pkg/entities"
)

// ProjectileSystem 推进子弹位置，移除飞出战场左边界的子弹
type ProjectileSystem struct {
	em           *ecs.EntityManager
	leftBoundary float64
}

// NewProjectileSystem 创建子弹系统
func NewProjectileSystem(em *ecs.EntityManager, cfg *config.GameplayConfig) *ProjectileSystem {
	return &ProjectileSystem{
		em:           em,
		leftBoundary: cfg.Projectile.LeftBoundary,
	}
}

// Update 移动所有存活子弹，然后执行边界检查
func (s *ProjectileSystem) Update(deltaTime float64) {
	for _, id := range entities.Projectiles(s.em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		vel, ok := ecs.GetComponent[*components.VelocityComponent](s.em, id)
		if !ok {
			continue
		}
		pos.X += vel.VX * deltaTime
		pos.Y += vel.VY * deltaTime
	}

	s.DespawnOutOfBounds()
}

// DespawnOutOfBounds 标记删除所有越过左边界的子弹
//
// 已标记的子弹不会被重复计数，因此同一帧或相邻帧重复调用是安全的。
// 返回本次新标记的子弹数量。
func (s *ProjectileSystem) DespawnOutOfBounds() int {
	despawned := 0
	for _, id := range entities.Projectiles(s.em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		if pos.X < s.leftBoundary && s.em.DestroyEntity(id) {
			despawned++
		}
	}
	return despawned
}
