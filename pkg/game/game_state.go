package game

import (
	"github.com/gonewx/wizard-defense/pkg/config"
	"github.com/google/uuid"
)

// GameState 一局战斗的全局状态
//
// 由模拟驱动器持有并显式传给各个系统，不使用全局单例。
type GameState struct {
	SessionID uuid.UUID // 本局战斗的唯一标识，存档时写入

	Wall   *Wall
	Player *Player

	Tick        uint64  // 已执行的模拟步数
	ElapsedTime float64 // 战斗已进行时间（秒）

	EnemiesSpawned int // 已生成敌人数
	EnemiesKilled  int // 已消灭敌人数

	GameOver bool // 城墙被攻破后置为 true，之后模拟不再推进
}

// NewGameState 创建新一局战斗的状态
func NewGameState(cfg *config.GameplayConfig) *GameState {
	return &GameState{
		SessionID: uuid.New(),
		Wall:      NewWall(cfg.Wall),
		Player:    NewPlayer(cfg.Player, cfg.Economy.StartingWealth),
	}
}

// IsInitialized 检查单例资源是否齐全
func (gs *GameState) IsInitialized() bool {
	return gs != nil && gs.Wall != nil && gs.Player != nil
}

// CheckGameOver 城墙生命值降到 0 及以下时结束战斗
// 返回 true 表示本次调用首次判定失败
func (gs *GameState) CheckGameOver() bool {
	if gs.GameOver || !gs.Wall.IsDestroyed() {
		return false
	}
	gs.GameOver = true
	return true
}
