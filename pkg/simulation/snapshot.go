package simulation

import (
	"github.com/gonewx/wizard-defense/pkg/components"
	"github.com/gonewx/wizard-defense/pkg/ecs"
	"github.com/gonewx/wizard-defense/pkg/entities"
	"github.com/gonewx/wizard-defense/pkg/game"
	"github.com/google/uuid"
)

// EntityKind 快照中实体的种类
type EntityKind int

const (
	KindEnemy EntityKind = iota
	KindProjectile
)

func (k EntityKind) String() string {
	switch k {
	case KindEnemy:
		return "enemy"
	case KindProjectile:
		return "projectile"
	default:
		return "unknown"
	}
}

// EntitySnapshot 单个实体在一帧结束时的只读状态
type EntitySnapshot struct {
	ID   ecs.EntityID
	Kind EntityKind
	X, Y float64

	// 仅敌人有效
	State     components.EnemyState
	Health    float64
	MaxHealth float64
}

// Snapshot 一帧结束后对外发布的完整状态
// 快照是独立副本，读取方可以随意持有
type Snapshot struct {
	SessionID   uuid.UUID
	Tick        uint64
	ElapsedTime float64

	WallHealth    float64
	WallMaxHealth float64

	Wealth  int
	PlayerX float64
	PlayerY float64

	Enemies     []EntitySnapshot // 按ID升序
	Projectiles []EntitySnapshot // 按ID升序

	EnemiesSpawned int
	EnemiesKilled  int
	GameOver       bool
}

// Enemy 按ID查找敌人快照
func (s Snapshot) Enemy(id ecs.EntityID) (EntitySnapshot, bool) {
	for _, e := range s.Enemies {
		if e.ID == id {
			return e, true
		}
	}
	return EntitySnapshot{}, false
}

// buildSnapshot 从当前世界状态构建快照
func buildSnapshot(em *ecs.EntityManager, gs *game.GameState) Snapshot {
	snap := Snapshot{
		SessionID:      gs.SessionID,
		Tick:           gs.Tick,
		ElapsedTime:    gs.ElapsedTime,
		WallHealth:     gs.Wall.Health(),
		WallMaxHealth:  gs.Wall.MaxHealth(),
		Wealth:         gs.Player.Wealth(),
		PlayerX:        gs.Player.X,
		PlayerY:        gs.Player.Y,
		EnemiesSpawned: gs.EnemiesSpawned,
		EnemiesKilled:  gs.EnemiesKilled,
		GameOver:       gs.GameOver,
	}

	enemyIDs := entities.Enemies(em)
	snap.Enemies = make([]EntitySnapshot, 0, len(enemyIDs))
	for _, id := range enemyIDs {
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		health, _ := ecs.GetComponent[*components.HealthComponent](em, id)
		snap.Enemies = append(snap.Enemies, EntitySnapshot{
			ID:        id,
			Kind:      KindEnemy,
			X:         pos.X,
			Y:         pos.Y,
			State:     enemy.State,
			Health:    health.CurrentHealth,
			MaxHealth: health.MaxHealth,
		})
	}

	projIDs := entities.Projectiles(em)
	snap.Projectiles = make([]EntitySnapshot, 0, len(projIDs))
	for _, id := range projIDs {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		snap.Projectiles = append(snap.Projectiles, EntitySnapshot{
			ID:   id,
			Kind: KindProjectile,
			X:    pos.X,
			Y:    pos.Y,
		})
	}

	return snap
}
