// Package simulation 战斗模拟的单步驱动器
//
// Simulation 持有实体管理器、城墙、玩家和各个系统，
// 每次 Step 按固定顺序执行一帧：
//
//  1. 按提交顺序执行指令（购买、移动、射击、动画通知）
//  2. 推进子弹，移除越界子弹
//  3. 子弹与敌人碰撞结算
//  4. 敌人状态转换，然后执行移动/攻击
//  5. 为本帧死亡的敌人发放击杀奖励，然后推进敌人生成计时器
//  6. 清理本帧删除的实体，发布快照
//
// 外部只读取发布的快照，不会看到帧内的中间状态。
package simulation

import (
	"fmt"
	"log"

	"github.com/gonewx/wizard-defense/pkg/components"
	"github.com/gonewx/wizard-defense/pkg/config"
	"github.com/gonewx/wizard-defense/pkg/ecs"
	"github.com/gonewx/wizard-defense/pkg/entities"
	"github.com/gonewx/wizard-defense/pkg/game"
	"github.com/gonewx/wizard-defense/pkg/systems"
	"github.com/google/uuid"
)

// Options 模拟选项
type Options struct {
	Seed            int64 // 敌人出生位置随机种子
	DisableSpawning bool  // 关闭计时器自动生成（测试和脚本场景）
}

// Simulation 战斗模拟驱动器（单线程，由游戏循环每帧调用 Step）
type Simulation struct {
	cfg  *config.GameplayConfig
	opts Options

	em *ecs.EntityManager
	gs *game.GameState

	projectileSystem *systems.ProjectileSystem
	collisionSystem  *systems.CollisionSystem
	behaviorSystem   *systems.EnemyBehaviorSystem
	economySystem    *systems.EconomySystem
	spawnSystem      *systems.SpawnSystem
	playerSystem     *systems.PlayerSystem

	queue    []Command
	snapshot Snapshot
}

// NewSimulation 创建一局新的战斗模拟
//
// 参数:
//   - cfg: 玩法配置，会先做校验
//   - opts: 模拟选项
//
// 返回:
//   - *Simulation: 已发布初始快照的模拟实例
//   - error: 配置无效时返回错误
func NewSimulation(cfg *config.GameplayConfig, opts Options) (*Simulation, error) {
	if cfg == nil {
		return nil, fmt.Errorf("gameplay config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid gameplay config: %w", err)
	}

	s := &Simulation{cfg: cfg, opts: opts}
	em := ecs.NewEntityManager()
	gs := game.NewGameState(cfg)
	if _, err := entities.NewEnemySpawner(em, cfg); err != nil {
		return nil, fmt.Errorf("failed to create enemy spawner: %w", err)
	}
	s.bind(em, gs)

	log.Printf("[Simulation] New battle %s (seed=%d, spawning=%v)", gs.SessionID, opts.Seed, !opts.DisableSpawning)
	return s, nil
}

// bind 将实体管理器和游戏状态注入各个系统，并发布快照
func (s *Simulation) bind(em *ecs.EntityManager, gs *game.GameState) {
	s.em = em
	s.gs = gs
	s.projectileSystem = systems.NewProjectileSystem(em, s.cfg)
	s.collisionSystem = systems.NewCollisionSystem(em)
	s.behaviorSystem = systems.NewEnemyBehaviorSystem(em, gs.Wall)
	s.economySystem = systems.NewEconomySystem(gs, s.cfg)
	s.spawnSystem = systems.NewSpawnSystem(em, gs, s.cfg, s.opts.Seed)
	s.playerSystem = systems.NewPlayerSystem(em, gs.Player, s.cfg)
	s.queue = s.queue[:0]
	s.snapshot = buildSnapshot(em, gs)
}

// Submit 提交一条指令，在下一次 Step 开始时执行
func (s *Simulation) Submit(cmd Command) {
	if cmd == nil {
		return
	}
	s.queue = append(s.queue, cmd)
}

// Step 推进一帧
//
// 战斗结束后 Step 不再改变任何状态，排队的指令被丢弃。
// 在未经 NewSimulation 初始化的实例上调用会 panic（启动顺序错误）。
func (s *Simulation) Step(deltaTime float64) {
	if s.em == nil || !s.gs.IsInitialized() {
		panic("simulation: Step called before initialization (use NewSimulation)")
	}
	if deltaTime < 0 {
		log.Printf("[Simulation] Negative deltaTime %.4f clamped to 0", deltaTime)
		deltaTime = 0
	}

	if s.gs.GameOver {
		s.queue = s.queue[:0]
		return
	}

	// 1. 指令
	s.drainCommands(deltaTime)

	// 2. 子弹移动与越界
	s.projectileSystem.Update(deltaTime)

	// 3. 碰撞结算
	s.collisionSystem.Resolve()

	// 4. 敌人状态机
	killed := s.behaviorSystem.Update(deltaTime)
	if s.gs.CheckGameOver() {
		log.Printf("[Simulation] Wall destroyed at tick %d (health=%.0f), battle over",
			s.gs.Tick, s.gs.Wall.Health())
	}

	// 5. 击杀奖励，然后生成新敌人
	s.economySystem.AwardKills(killed)
	if !s.opts.DisableSpawning {
		s.spawnSystem.Update(deltaTime)
	}

	// 6. 帧末清理并发布
	s.em.RemoveMarkedEntities()
	s.gs.Tick++
	s.gs.ElapsedTime += deltaTime
	s.snapshot = buildSnapshot(s.em, s.gs)
}

// drainCommands 按提交顺序执行排队的指令
func (s *Simulation) drainCommands(deltaTime float64) {
	for _, cmd := range s.queue {
		switch c := cmd.(type) {
		case PurchaseRepair:
			s.economySystem.PurchaseRepair()
		case PurchaseUpgrade:
			s.economySystem.PurchaseUpgrade()
		case MovePlayer:
			s.playerSystem.Move(int(c.Direction), c.Magnitude, deltaTime)
		case FireProjectile:
			s.playerSystem.Fire()
		case NotifyAttackCycleComplete:
			s.behaviorSystem.NotifyAttackCycleComplete(c.Enemy)
		case NotifyDeathAnimationComplete:
			s.behaviorSystem.CompleteDeath(c.Enemy)
		case SpawnEnemy:
			if _, err := entities.NewEnemy(s.em, s.cfg, c.X, c.Y); err == nil {
				s.gs.EnemiesSpawned++
			}
		default:
			log.Printf("[Simulation] Unknown command %T dropped", cmd)
		}
	}
	s.queue = s.queue[:0]
}

// Snapshot 返回最近一次发布的快照
func (s *Simulation) Snapshot() Snapshot {
	return s.snapshot
}

// GameOver 战斗是否已经结束（城墙被攻破）
func (s *Simulation) GameOver() bool {
	return s.gs != nil && s.gs.GameOver
}

// GameState 返回当前战斗状态（用于战绩统计，调用方不应在帧外修改）
func (s *Simulation) GameState() *game.GameState {
	return s.gs
}

// Config 返回模拟使用的玩法配置
func (s *Simulation) Config() *config.GameplayConfig {
	return s.cfg
}

// Save 将当前战斗保存到文件
func (s *Simulation) Save(filePath string) error {
	return game.NewBattleSerializer().SaveBattle(s.em, s.gs, filePath)
}

// Load 从存档文件恢复战斗
func (s *Simulation) Load(filePath string) error {
	data, err := game.NewBattleSerializer().LoadBattle(filePath)
	if err != nil {
		return err
	}
	return s.Restore(data)
}

// Restore 用存档数据替换当前战斗
//
// 先在新的实体管理器中重建整个世界，全部成功后才替换当前状态；
// 存档不完整或数据非法时返回错误，当前战斗保持不变。
// 恢复后的实体会获得新的ID，动画协作者应以快照为准重新建立状态。
func (s *Simulation) Restore(data *game.BattleSaveData) error {
	if data == nil {
		return fmt.Errorf("save data is nil")
	}
	if data.Wall == nil || data.Player == nil {
		return fmt.Errorf("save data is missing wall or player")
	}

	sessionID, err := uuid.Parse(data.SessionID)
	if err != nil {
		return fmt.Errorf("invalid session ID %q: %w", data.SessionID, err)
	}

	gs := game.NewGameState(s.cfg)
	gs.SessionID = sessionID
	gs.Tick = data.Tick
	gs.ElapsedTime = data.ElapsedTime
	gs.EnemiesSpawned = data.EnemiesSpawned
	gs.EnemiesKilled = data.EnemiesKilled
	gs.GameOver = data.GameOver
	if err := gs.Wall.Restore(data.Wall.Health, data.Wall.MaxHealth); err != nil {
		return fmt.Errorf("failed to restore wall: %w", err)
	}
	if err := gs.Player.Restore(data.Player.Wealth, data.Player.X, data.Player.Y); err != nil {
		return fmt.Errorf("failed to restore player: %w", err)
	}

	em := ecs.NewEntityManager()
	spawner, err := entities.NewEnemySpawner(em, s.cfg)
	if err != nil {
		return fmt.Errorf("failed to create enemy spawner: %w", err)
	}
	if timer, ok := ecs.GetComponent[*components.TimerComponent](em, spawner); ok {
		timer.CurrentTime = data.SpawnTimerElapsed
	}

	for i, e := range data.Enemies {
		if err := restoreEnemy(em, s.cfg, e); err != nil {
			return fmt.Errorf("failed to restore enemy %d: %w", i, err)
		}
	}
	for i, p := range data.Projectiles {
		if err := restoreProjectile(em, s.cfg, p); err != nil {
			return fmt.Errorf("failed to restore projectile %d: %w", i, err)
		}
	}

	s.bind(em, gs)
	log.Printf("[Simulation] Restored battle %s at tick %d: %d enemies, %d projectiles",
		gs.SessionID, gs.Tick, len(data.Enemies), len(data.Projectiles))
	return nil
}

func restoreEnemy(em *ecs.EntityManager, cfg *config.GameplayConfig, data game.EnemyData) error {
	state, ok := components.ParseEnemyState(data.State)
	if !ok {
		return fmt.Errorf("unknown enemy state %q", data.State)
	}
	id, err := entities.NewEnemy(em, cfg, data.X, data.Y)
	if err != nil {
		return err
	}
	enemy, _ := ecs.GetComponent[*components.EnemyComponent](em, id)
	enemy.State = state
	enemy.Speed = data.Speed
	health, _ := ecs.GetComponent[*components.HealthComponent](em, id)
	health.CurrentHealth = data.Health
	health.MaxHealth = data.MaxHealth
	return nil
}

func restoreProjectile(em *ecs.EntityManager, cfg *config.GameplayConfig, data game.ProjectileData) error {
	id, err := entities.NewProjectile(em, cfg, data.X, data.Y)
	if err != nil {
		return err
	}
	proj, _ := ecs.GetComponent[*components.ProjectileComponent](em, id)
	proj.Speed = data.Speed
	proj.Damage = data.Damage
	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, id)
	vel.VX = -data.Speed
	return nil
}
