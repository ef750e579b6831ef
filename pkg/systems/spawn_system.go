package systems

import (
	"log"
	"math/rand"

	"github.com/gonewx/wizard-defense/pkg/components"
	"github.com/gonewx/wizard-defense/pkg/config"
	"github.com/gonewx/wizard-defense/pkg/ecs"
	"github.com/gonewx/wizard-defense/pkg/entities"
	"github.com/gonewx/wizard-defense/pkg/game"
)

// SpawnSystem 按生成点计时器周期性生成敌人
// 出生点X固定，Y在 [MinY, MaxY) 内随机
type SpawnSystem struct {
	em  *ecs.EntityManager
	gs  *game.GameState
	cfg *config.GameplayConfig
	rng *rand.Rand
}

// NewSpawnSystem 创建生成系统
// seed 决定出生位置序列，相同种子得到相同的敌人序列
func NewSpawnSystem(em *ecs.EntityManager, gs *game.GameState, cfg *config.GameplayConfig, seed int64) *SpawnSystem {
	return &SpawnSystem{
		em:  em,
		gs:  gs,
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Update 推进所有生成点计时器，为每次到期生成一个敌人
// 返回本帧生成的敌人
func (s *SpawnSystem) Update(deltaTime float64) []ecs.EntityID {
	var spawned []ecs.EntityID

	spawners := ecs.GetEntitiesWith2[*components.SpawnerComponent, *components.TimerComponent](s.em)
	for _, id := range spawners {
		spawner, _ := ecs.GetComponent[*components.SpawnerComponent](s.em, id)
		timer, _ := ecs.GetComponent[*components.TimerComponent](s.em, id)

		for n := timer.Tick(deltaTime); n > 0; n-- {
			y := spawner.MinY + s.rng.Float64()*(spawner.MaxY-spawner.MinY)
			enemyID, err := entities.NewEnemy(s.em, s.cfg, spawner.X, y)
			if err != nil {
				log.Printf("[SpawnSystem] Failed to spawn enemy: %v", err)
				continue
			}
			s.gs.EnemiesSpawned++
			spawned = append(spawned, enemyID)
			log.Printf("[SpawnSystem] Spawned enemy %d at (%.0f, %.1f), total=%d",
				enemyID, spawner.X, y, s.gs.EnemiesSpawned)
		}
	}

	return spawned
}
