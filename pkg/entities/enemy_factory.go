package entities

import (
	"fmt"

	"github.com/gonewx/wizard-defense/pkg/components"
	"github.com/gonewx/wizard-defense/pkg/config"
	"github.com/gonewx/wizard-defense/pkg/ecs"
)

// NewEnemy 创建敌人实体
// 敌人以行走状态出生，沿 +X 方向朝城墙前进
//
// 参数:
//   - em: 实体管理器
//   - cfg: 玩法配置（速度、生命值、受击盒）
//   - x, y: 出生世界坐标
//
// 返回:
//   - ecs.EntityID: 创建的敌人实体ID，失败时为 0
//   - error: 参数无效时返回错误
func NewEnemy(em *ecs.EntityManager, cfg *config.GameplayConfig, x, y float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("gameplay config cannot be nil")
	}

	id := em.CreateEntity()

	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.EnemyComponent{
		State:        components.EnemyWalking,
		Speed:        cfg.Enemy.Speed,
		AttackDamage: cfg.Enemy.AttackDamage,
	})
	ecs.AddComponent(em, id, &components.HealthComponent{
		CurrentHealth: cfg.Enemy.Health,
		MaxHealth:     cfg.Enemy.Health,
	})
	ecs.AddComponent(em, id, &components.CollisionComponent{
		Width:  cfg.Enemy.HurtboxWidth,
		Height: cfg.Enemy.HurtboxHeight,
	})

	return id, nil
}

// NewEnemySpawner 创建敌人生成点实体（生成点 + 循环计时器）
func NewEnemySpawner(em *ecs.EntityManager, cfg *config.GameplayConfig) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("gameplay config cannot be nil")
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.SpawnerComponent{
		X:    cfg.Enemy.SpawnX,
		MinY: cfg.Enemy.SpawnMinY,
		MaxY: cfg.Enemy.SpawnMaxY,
	})
	ecs.AddComponent(em, id, &components.TimerComponent{
		Name:       "enemy_spawn",
		TargetTime: cfg.Enemy.SpawnInterval,
		Repeating:  true,
	})
	return id, nil
}
