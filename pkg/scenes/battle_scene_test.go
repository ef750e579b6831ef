package scenes

import (
	"path/filepath"
	"testing"

	"github.com/gonewx/wizard-defense/pkg/config"
	"github.com/gonewx/wizard-defense/pkg/game"
	"github.com/gonewx/wizard-defense/pkg/simulation"
	"github.com/gonewx/wizard-defense/pkg/utils"
)

// newTestBattleScene 创建关闭自动生成、输入可控的战斗场景
func newTestBattleScene(t *testing.T, records *game.RecordManager) (*BattleScene, *utils.InputState) {
	t.Helper()

	savePath := filepath.Join(t.TempDir(), "battle.sav")
	scene, err := NewBattleScene(nil, config.DefaultGameplayConfig(), simulation.Options{Seed: 1, DisableSpawning: true}, records, savePath)
	if err != nil {
		t.Fatalf("NewBattleScene() error = %v", err)
	}

	input := &utils.InputState{}
	scene.readInput = func() utils.InputState {
		in := *input
		// 动作键只在按下的那一帧有效
		input.Fire, input.Repair, input.Upgrade = false, false, false
		input.Save, input.Load, input.Restart = false, false, false
		return in
	}
	return scene, input
}

func TestBattleScene_FireCreatesProjectile(t *testing.T) {
	scene, input := newTestBattleScene(t, nil)

	input.Fire = true
	scene.Update(1.0 / 60.0)

	snap := scene.Simulation().Snapshot()
	if len(snap.Projectiles) != 1 {
		t.Fatalf("projectiles = %d, want 1", len(snap.Projectiles))
	}
	if snap.Projectiles[0].Y != snap.PlayerY {
		t.Errorf("projectile y = %v, want player y %v", snap.Projectiles[0].Y, snap.PlayerY)
	}

	// 松开后不会连续发射
	scene.Update(1.0 / 60.0)
	if got := len(scene.Simulation().Snapshot().Projectiles); got != 1 {
		t.Errorf("projectiles after second frame = %d, want 1", got)
	}
}

func TestBattleScene_HeldMoveKey(t *testing.T) {
	scene, input := newTestBattleScene(t, nil)
	startY := scene.Simulation().Snapshot().PlayerY

	input.Up = true
	for i := 0; i < 10; i++ {
		scene.Update(0.1)
	}

	// 300 × 0.1 × 10 = 300，但会被场地上边界挡住
	gotY := scene.Simulation().Snapshot().PlayerY
	if gotY <= startY {
		t.Fatalf("player y = %v, want above %v", gotY, startY)
	}
	cfg := config.DefaultGameplayConfig().Player
	if gotY+cfg.HalfHeight >= cfg.FieldHalfHeight {
		t.Errorf("player y = %v crossed the top boundary", gotY)
	}
}

func TestBattleScene_AttackNotificationsDamageWall(t *testing.T) {
	scene, _ := newTestBattleScene(t, nil)
	cfg := config.DefaultGameplayConfig()

	// 敌人直接出生在攻击线上
	scene.Simulation().Submit(simulation.SpawnEnemy{X: cfg.Wall.AttackLine(), Y: 0})

	// 1 帧生成 + 1 帧转入攻击 + 1.8 秒攻击周期 + 1 帧结算
	for i := 0; i < 25; i++ {
		scene.Update(0.1)
	}

	snap := scene.Simulation().Snapshot()
	want := cfg.Wall.Health - cfg.Enemy.AttackDamage
	if snap.WallHealth != want {
		t.Errorf("wall health = %v, want %v after one attack cycle", snap.WallHealth, want)
	}
}

func TestBattleScene_GameOverSubmitsRecordsOnce(t *testing.T) {
	records := game.NewRecordManager(nil)
	scene, input := newTestBattleScene(t, records)
	sim := scene.Simulation()

	data := game.NewBattleSaveData()
	data.SessionID = sim.Snapshot().SessionID.String()
	data.Wall = &game.WallData{Health: 0, MaxHealth: 200}
	data.Player = &game.PlayerData{Wealth: 42, X: 750, Y: 100}
	data.EnemiesKilled = 5
	data.ElapsedTime = 30
	data.GameOver = true
	if err := sim.Restore(data); err != nil {
		t.Fatalf("Restore() error = %v", err)
	}

	for i := 0; i < 5; i++ {
		scene.Update(1.0 / 60.0)
	}

	got := records.GetRecords()
	if got.BattlesPlayed != 1 {
		t.Errorf("BattlesPlayed = %d, want 1", got.BattlesPlayed)
	}
	if got.MostKills != 5 || got.MostWealth != 42 {
		t.Errorf("records = %+v, want kills 5 and wealth 42", got)
	}
	if !scene.newRecord {
		t.Error("newRecord = false, want true for first battle")
	}

	// 战斗结束后输入不再产生效果
	input.Fire = true
	scene.Update(1.0 / 60.0)
	if n := len(sim.Snapshot().Projectiles); n != 0 {
		t.Errorf("projectiles after game over = %d, want 0", n)
	}
}

func TestBattleScene_RestartAfterGameOver(t *testing.T) {
	sm := game.NewSceneManager()
	restarted := 0
	sm.SetSceneFactory(func() game.Scene {
		restarted++
		scene, _ := newTestBattleScene(t, nil)
		return scene
	})

	scene, input := newTestBattleScene(t, nil)
	scene.sceneManager = sm
	sm.SwitchTo(scene)

	// 未结束时 Enter 无效
	input.Restart = true
	scene.Update(1.0 / 60.0)
	if restarted != 0 {
		t.Fatalf("restarted during battle")
	}

	sim := scene.Simulation()
	data := game.NewBattleSaveData()
	data.SessionID = sim.Snapshot().SessionID.String()
	data.Wall = &game.WallData{Health: -10, MaxHealth: 200}
	data.Player = &game.PlayerData{X: 750, Y: 100}
	data.GameOver = true
	if err := sim.Restore(data); err != nil {
		t.Fatalf("Restore() error = %v", err)
	}

	input.Restart = true
	scene.Update(1.0 / 60.0)
	if restarted != 1 {
		t.Fatalf("restarted = %d, want 1", restarted)
	}
	if sm.GetCurrentScene() == Scene(scene) {
		t.Error("scene manager still holds the finished battle")
	}
}

func TestBattleScene_SaveAndLoadKeys(t *testing.T) {
	scene, input := newTestBattleScene(t, nil)
	sim := scene.Simulation()

	sim.Submit(simulation.SpawnEnemy{X: -700, Y: 50})
	scene.Update(0.1)

	// 保存发生在本帧推进之前
	saved := sim.Snapshot()
	input.Save = true
	scene.Update(0.1)
	if scene.statusMessage != "Battle saved" {
		t.Fatalf("status = %q, want %q", scene.statusMessage, "Battle saved")
	}

	for i := 0; i < 20; i++ {
		scene.Update(0.1)
	}

	input.Load = true
	scene.Update(0)
	if scene.statusMessage != "Battle loaded" {
		t.Fatalf("status = %q, want %q", scene.statusMessage, "Battle loaded")
	}

	loaded := sim.Snapshot()
	if len(loaded.Enemies) != 1 {
		t.Fatalf("enemies after load = %d, want 1", len(loaded.Enemies))
	}
	if loaded.Enemies[0].X != saved.Enemies[0].X {
		t.Errorf("enemy x after load = %v, want %v", loaded.Enemies[0].X, saved.Enemies[0].X)
	}
	if !scene.SaveOnExit() {
		t.Error("SaveOnExit() = false, want true")
	}
}

func TestBattleScene_LoadMissingFile(t *testing.T) {
	scene, input := newTestBattleScene(t, nil)
	before := scene.Simulation().Snapshot().SessionID

	input.Load = true
	scene.Update(0.1)

	if scene.statusMessage != "Load failed" {
		t.Errorf("status = %q, want %q", scene.statusMessage, "Load failed")
	}
	if scene.Simulation().Snapshot().SessionID != before {
		t.Error("failed load replaced the battle")
	}
}

func TestBattleScene_DrawNilScreen(t *testing.T) {
	scene, _ := newTestBattleScene(t, nil)
	scene.Draw(nil)
}
