package game

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gonewx/wizard-defense/pkg/components"
	"github.com/gonewx/wizard-defense/pkg/ecs"
	"github.com/vmihailenco/msgpack/v5"
)

// BattleSerializer 战斗状态序列化器
//
// 负责将战斗状态序列化为 msgpack 二进制文件，以及从文件反序列化存档数据。
//
// 架构说明：
//   - 这是一个工具类，不是 ECS 系统
//   - 可以访问 EntityManager 收集实体数据
//   - 不直接修改游戏状态，恢复实体由模拟驱动器负责
type BattleSerializer struct{}

// NewBattleSerializer 创建战斗序列化器实例
func NewBattleSerializer() *BattleSerializer {
	return &BattleSerializer{}
}

// Capture 从 EntityManager 和 GameState 收集存档数据（不写文件）
//
// 已标记删除的实体不会被收集。
func (s *BattleSerializer) Capture(em *ecs.EntityManager, gs *GameState) (*BattleSaveData, error) {
	if em == nil {
		return nil, fmt.Errorf("EntityManager is nil")
	}
	if !gs.IsInitialized() {
		return nil, fmt.Errorf("GameState is not initialized")
	}

	saveData := NewBattleSaveData()
	saveData.SaveTime = time.Now()

	s.collectBattleState(gs, saveData)
	saveData.SpawnTimerElapsed = s.collectSpawnTimer(em)
	saveData.Enemies = s.collectEnemyData(em)
	saveData.Projectiles = s.collectProjectileData(em)

	return saveData, nil
}

// SaveBattle 保存战斗状态到文件
//
// 参数：
//   - em: EntityManager 实例，用于收集实体数据
//   - gs: GameState 实例，用于收集城墙、玩家和进度
//   - filePath: 保存文件路径
//
// 返回：
//   - error: 如果保存失败返回错误
func (s *BattleSerializer) SaveBattle(em *ecs.EntityManager, gs *GameState, filePath string) error {
	saveData, err := s.Capture(em, gs)
	if err != nil {
		return err
	}
	return s.WriteFile(saveData, filePath)
}

// WriteFile 将存档数据编码写入文件
func (s *BattleSerializer) WriteFile(saveData *BattleSaveData, filePath string) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create save file: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	if err := msgpack.NewEncoder(w).Encode(saveData); err != nil {
		return fmt.Errorf("failed to encode save data: %w", err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write save file: %w", err)
	}

	log.Printf("[BattleSerializer] Saved battle to %s: Session=%s, Tick=%d, Wall=%.0f/%.0f, Wealth=%d, Enemies=%d, Projectiles=%d",
		filePath, saveData.SessionID, saveData.Tick, saveData.Wall.Health, saveData.Wall.MaxHealth,
		saveData.Player.Wealth, len(saveData.Enemies), len(saveData.Projectiles))

	return nil
}

// LoadBattle 从文件加载战斗状态
//
// 会进行版本兼容性检查，如果版本不匹配返回错误。
// 缺少城墙或玩家数据的存档视为损坏。
//
// 参数：
//   - filePath: 存档文件路径
//
// 返回：
//   - *BattleSaveData: 战斗存档数据
//   - error: 如果加载失败返回错误
func (s *BattleSerializer) LoadBattle(filePath string) (*BattleSaveData, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open save file: %w", err)
	}
	defer file.Close()

	var saveData BattleSaveData
	if err := msgpack.NewDecoder(bufio.NewReader(file)).Decode(&saveData); err != nil {
		return nil, fmt.Errorf("failed to decode save data: %w", err)
	}

	// 版本兼容性检查
	if saveData.Version != BattleSaveVersion {
		return nil, fmt.Errorf("incompatible save version: %d (expected %d)",
			saveData.Version, BattleSaveVersion)
	}
	if saveData.Wall == nil || saveData.Player == nil {
		return nil, fmt.Errorf("save file %s is missing wall or player data", filePath)
	}

	log.Printf("[BattleSerializer] Loaded battle from %s: Session=%s, Tick=%d, Enemies=%d, Projectiles=%d",
		filePath, saveData.SessionID, saveData.Tick, len(saveData.Enemies), len(saveData.Projectiles))

	return &saveData, nil
}

// collectBattleState 从 GameState 收集进度和单例资源
func (s *BattleSerializer) collectBattleState(gs *GameState, saveData *BattleSaveData) {
	saveData.SessionID = gs.SessionID.String()
	saveData.Tick = gs.Tick
	saveData.ElapsedTime = gs.ElapsedTime
	saveData.EnemiesSpawned = gs.EnemiesSpawned
	saveData.EnemiesKilled = gs.EnemiesKilled
	saveData.GameOver = gs.GameOver

	saveData.Wall = &WallData{
		Health:    gs.Wall.Health(),
		MaxHealth: gs.Wall.MaxHealth(),
	}
	saveData.Player = &PlayerData{
		Wealth: gs.Player.Wealth(),
		X:      gs.Player.X,
		Y:      gs.Player.Y,
	}
}

// collectSpawnTimer 收集敌人生成计时器进度
func (s *BattleSerializer) collectSpawnTimer(em *ecs.EntityManager) float64 {
	spawners := ecs.GetEntitiesWith2[*components.SpawnerComponent, *components.TimerComponent](em)
	for _, id := range spawners {
		if timer, ok := ecs.GetComponent[*components.TimerComponent](em, id); ok {
			return timer.CurrentTime
		}
	}
	return 0
}

// collectEnemyData 收集所有存活敌人数据
func (s *BattleSerializer) collectEnemyData(em *ecs.EntityManager) []EnemyData {
	enemies := make([]EnemyData, 0)

	ids := ecs.GetEntitiesWith3[
		*components.EnemyComponent,
		*components.PositionComponent,
		*components.HealthComponent,
	](em)

	for _, id := range ids {
		if !em.IsAlive(id) {
			continue
		}
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		health, _ := ecs.GetComponent[*components.HealthComponent](em, id)

		enemies = append(enemies, EnemyData{
			X:         pos.X,
			Y:         pos.Y,
			Health:    health.CurrentHealth,
			MaxHealth: health.MaxHealth,
			State:     enemy.State.String(),
			Speed:     enemy.Speed,
		})
	}

	return enemies
}

// collectProjectileData 收集所有存活子弹数据
func (s *BattleSerializer) collectProjectileData(em *ecs.EntityManager) []ProjectileData {
	projectiles := make([]ProjectileData, 0)

	ids := ecs.GetEntitiesWith2[*components.ProjectileComponent, *components.PositionComponent](em)
	for _, id := range ids {
		if !em.IsAlive(id) {
			continue
		}
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)

		projectiles = append(projectiles, ProjectileData{
			X:      pos.X,
			Y:      pos.Y,
			Speed:  proj.Speed,
			Damage: proj.Damage,
		})
	}

	return projectiles
}
