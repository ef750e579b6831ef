package game

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gonewx/wizard-defense/pkg/components"
	"github.com/gonewx/wizard-defense/pkg/config"
	"github.com/gonewx/wizard-defense/pkg/ecs"
	"github.com/vmihailenco/msgpack/v5"
)

// addTestEnemy 直接通过 EntityManager 创建敌人（game 包不依赖 entities 包）
func addTestEnemy(em *ecs.EntityManager, x, y, health float64, state components.EnemyState) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.EnemyComponent{State: state, Speed: 50, AttackDamage: 10})
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.HealthComponent{CurrentHealth: health, MaxHealth: 100})
	return id
}

func addTestProjectile(em *ecs.EntityManager, x, y float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.ProjectileComponent{Speed: 500, Damage: 20})
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	return id
}

func TestBattleSerializer_Capture_Invalid(t *testing.T) {
	s := NewBattleSerializer()

	if _, err := s.Capture(nil, NewGameState(config.DefaultGameplayConfig())); err == nil {
		t.Error("expected error for nil EntityManager")
	}
	if _, err := s.Capture(ecs.NewEntityManager(), &GameState{}); err == nil {
		t.Error("expected error for uninitialized GameState")
	}
}

func TestBattleSerializer_SaveAndLoadBattle(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := NewGameState(config.DefaultGameplayConfig())
	gs.Tick = 120
	gs.ElapsedTime = 2.0
	gs.EnemiesSpawned = 3
	gs.EnemiesKilled = 1
	gs.Wall.ApplyDamage(30)
	gs.Player.AddWealth(7)
	gs.Player.Y = -40

	addTestEnemy(em, -700, 12, 100, components.EnemyWalking)
	addTestEnemy(em, 540, -80, 60, components.EnemyAttacking)
	dead := addTestEnemy(em, 100, 0, -10, components.EnemyDead)
	addTestProjectile(em, 300, 50)
	consumed := addTestProjectile(em, 0, 0)

	spawner := em.CreateEntity()
	ecs.AddComponent(em, spawner, &components.SpawnerComponent{X: -800, MinY: -385, MaxY: 385})
	ecs.AddComponent(em, spawner, &components.TimerComponent{Name: "enemy_spawn", TargetTime: 2, CurrentTime: 1.25, Repeating: true})

	// 已标记删除的实体不进入存档
	em.DestroyEntity(dead)
	em.DestroyEntity(consumed)

	path := filepath.Join(t.TempDir(), "battle.sav")
	s := NewBattleSerializer()
	if err := s.SaveBattle(em, gs, path); err != nil {
		t.Fatalf("SaveBattle failed: %v", err)
	}

	data, err := s.LoadBattle(path)
	if err != nil {
		t.Fatalf("LoadBattle failed: %v", err)
	}

	if data.SessionID != gs.SessionID.String() {
		t.Errorf("session ID: expected %s, got %s", gs.SessionID, data.SessionID)
	}
	if data.Tick != 120 || data.EnemiesSpawned != 3 || data.EnemiesKilled != 1 {
		t.Errorf("progress mismatch: %+v", data)
	}
	if data.Wall.Health != 170 || data.Wall.MaxHealth != 200 {
		t.Errorf("wall mismatch: %+v", *data.Wall)
	}
	if data.Player.Wealth != 7 || data.Player.Y != -40 {
		t.Errorf("player mismatch: %+v", *data.Player)
	}
	if data.SpawnTimerElapsed != 1.25 {
		t.Errorf("spawn timer: expected 1.25, got %v", data.SpawnTimerElapsed)
	}

	if len(data.Enemies) != 2 {
		t.Fatalf("expected 2 enemies, got %d", len(data.Enemies))
	}
	if data.Enemies[1].State != "attacking" || data.Enemies[1].Health != 60 {
		t.Errorf("attacking enemy mismatch: %+v", data.Enemies[1])
	}
	if len(data.Projectiles) != 1 || data.Projectiles[0].X != 300 {
		t.Errorf("projectiles mismatch: %+v", data.Projectiles)
	}
}

func TestBattleSerializer_LoadBattle_Errors(t *testing.T) {
	s := NewBattleSerializer()
	dir := t.TempDir()

	t.Run("文件不存在", func(t *testing.T) {
		if _, err := s.LoadBattle(filepath.Join(dir, "missing.sav")); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("文件损坏", func(t *testing.T) {
		path := filepath.Join(dir, "corrupted.sav")
		if err := os.WriteFile(path, []byte{0xc1, 0x00, 0x13}, 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := s.LoadBattle(path); err == nil {
			t.Error("expected error for corrupted file")
		}
	})

	t.Run("版本不匹配", func(t *testing.T) {
		path := filepath.Join(dir, "old.sav")
		data := NewBattleSaveData()
		data.Version = BattleSaveVersion + 1
		data.Wall = &WallData{Health: 200, MaxHealth: 200}
		data.Player = &PlayerData{}
		writeRawSave(t, path, data)

		_, err := s.LoadBattle(path)
		if err == nil || !strings.Contains(err.Error(), "incompatible save version") {
			t.Errorf("expected version error, got %v", err)
		}
	})

	t.Run("缺少单例数据", func(t *testing.T) {
		path := filepath.Join(dir, "incomplete.sav")
		writeRawSave(t, path, NewBattleSaveData())

		if _, err := s.LoadBattle(path); err == nil {
			t.Error("expected error for save without wall/player")
		}
	})
}

func TestBattleSerializer_SaveBattle_InvalidPath(t *testing.T) {
	em := ecs.NewEntityManager()
	gs := NewGameState(config.DefaultGameplayConfig())

	err := NewBattleSerializer().SaveBattle(em, gs, filepath.Join(t.TempDir(), "no", "such", "dir", "battle.sav"))
	if err == nil {
		t.Error("expected error for invalid path")
	}
}

func writeRawSave(t *testing.T, path string, data *BattleSaveData) {
	t.Helper()
	b, err := msgpack.Marshal(data)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if err := os.WriteFile(path, b, 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
}
