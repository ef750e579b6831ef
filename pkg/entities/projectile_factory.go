package entities

import (
	"fmt"

	"github.com/gonewx/wizard-defense/pkg/components"
	"github.com/gonewx/wizard-defense/pkg/config"
	"github.com/gonewx/wizard-defense/pkg/ecs"
)

// NewProjectile 创建子弹实体
// 子弹从玩家当前位置发射，以恒定速度向左（-X）飞行
//
// 参数:
//   - em: 实体管理器
//   - cfg: 玩法配置（速度、伤害、攻击盒）
//   - x, y: 发射世界坐标
//
// 返回:
//   - ecs.EntityID: 创建的子弹实体ID，失败时为 0
//   - error: 参数无效时返回错误
func NewProjectile(em *ecs.EntityManager, cfg *config.GameplayConfig, x, y float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("gameplay config cannot be nil")
	}

	id := em.CreateEntity()

	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.VelocityComponent{VX: -cfg.Projectile.Speed})
	ecs.AddComponent(em, id, &components.ProjectileComponent{
		Speed:  cfg.Projectile.Speed,
		Damage: cfg.Projectile.Damage,
	})
	ecs.AddComponent(em, id, &components.CollisionComponent{
		Width:  cfg.Projectile.HitboxWidth,
		Height: cfg.Projectile.HitboxHeight,
	})

	return id, nil
}
