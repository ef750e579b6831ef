package entities

import (
	"github.com/gonewx/wizard-defense/pkg/components"
	"github.com/gonewx/wizard-defense/pkg/ecs"
)

// Enemies 返回所有存活敌人（未被标记删除），按ID升序
func Enemies(em *ecs.EntityManager) []ecs.EntityID {
	return alive(em, ecs.GetEntitiesWith3[
		*components.EnemyComponent,
		*components.PositionComponent,
		*components.HealthComponent,
	](em))
}

// Projectiles 返回所有存活子弹（未被标记删除），按ID升序
func Projectiles(em *ecs.EntityManager) []ecs.EntityID {
	return alive(em, ecs.GetEntitiesWith2[
		*components.ProjectileComponent,
		*components.PositionComponent,
	](em))
}

// IsEnemy 检查实体是否为存活的敌人
func IsEnemy(em *ecs.EntityManager, id ecs.EntityID) bool {
	return em.IsAlive(id) && ecs.HasComponent[*components.EnemyComponent](em, id)
}

func alive(em *ecs.EntityManager, ids []ecs.EntityID) []ecs.EntityID {
	n := 0
	for _, id := range ids {
		if em.IsAlive(id) {
			ids[n] = id
			n++
		}
	}
	return ids[:n]
}
