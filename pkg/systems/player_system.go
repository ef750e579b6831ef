package systems

import (
	"log"

	"github.com/gonewx/wizard-defense/pkg/config"
	"github.com/gonewx/wizard-defense/pkg/ecs"
	"github.com/gonewx/wizard-defense/pkg/entities"
	"github.com/gonewx/wizard-defense/pkg/game"
)

// PlayerSystem 执行玩家的移动和射击指令
type PlayerSystem struct {
	em     *ecs.EntityManager
	player *game.Player
	cfg    *config.GameplayConfig
}

// NewPlayerSystem 创建玩家系统
func NewPlayerSystem(em *ecs.EntityManager, player *game.Player, cfg *config.GameplayConfig) *PlayerSystem {
	return &PlayerSystem{
		em:     em,
		player: player,
		cfg:    cfg,
	}
}

// Move 按方向（+1 上 / -1 下）和倍率移动玩家，越界时不移动
func (s *PlayerSystem) Move(direction int, magnitude, deltaTime float64) bool {
	return s.player.Move(direction, magnitude, deltaTime)
}

// Fire 在玩家当前位置发射一颗子弹
func (s *PlayerSystem) Fire() (ecs.EntityID, error) {
	id, err := entities.NewProjectile(s.em, s.cfg, s.player.X, s.player.Y)
	if err != nil {
		log.Printf("[PlayerSystem] Failed to fire: %v", err)
		return 0, err
	}
	return id, nil
}
