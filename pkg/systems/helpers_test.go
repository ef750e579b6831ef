package systems

import (
	"testing"

	"github.com/gonewx/wizard-defense/pkg/components"
	"github.com/gonewx/wizard-defense/pkg/config"
	"github.com/gonewx/wizard-defense/pkg/ecs"
	"github.com/gonewx/wizard-defense/pkg/entities"
	"github.com/gonewx/wizard-defense/pkg/game"
)

// spawnTestEnemy 在指定位置创建敌人，并可覆盖生命值和状态
func spawnTestEnemy(t *testing.T, em *ecs.EntityManager, x, y, health float64, state components.EnemyState) ecs.EntityID {
	t.Helper()
	id, err := entities.NewEnemy(em, config.DefaultGameplayConfig(), x, y)
	if err != nil {
		t.Fatalf("NewEnemy failed: %v", err)
	}
	h, _ := ecs.GetComponent[*components.HealthComponent](em, id)
	h.CurrentHealth = health
	e, _ := ecs.GetComponent[*components.EnemyComponent](em, id)
	e.State = state
	return id
}

func spawnTestProjectile(t *testing.T, em *ecs.EntityManager, x, y float64) ecs.EntityID {
	t.Helper()
	id, err := entities.NewProjectile(em, config.DefaultGameplayConfig(), x, y)
	if err != nil {
		t.Fatalf("NewProjectile failed: %v", err)
	}
	return id
}

func enemyOf(em *ecs.EntityManager, id ecs.EntityID) (*components.EnemyComponent, *components.PositionComponent, *components.HealthComponent) {
	e, _ := ecs.GetComponent[*components.EnemyComponent](em, id)
	p, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	h, _ := ecs.GetComponent[*components.HealthComponent](em, id)
	return e, p, h
}

func newTestGameState(wallHealth, wallMax float64, wealth int) *game.GameState {
	gs := game.NewGameState(config.DefaultGameplayConfig())
	if err := gs.Wall.Restore(wallHealth, wallMax); err != nil {
		panic(err)
	}
	if err := gs.Player.Restore(wealth, gs.Player.X, gs.Player.Y); err != nil {
		panic(err)
	}
	return gs
}
