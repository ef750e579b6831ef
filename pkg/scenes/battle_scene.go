package scenes

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/gonewx/wizard-defense/pkg/components"
	"github.com/gonewx/wizard-defense/pkg/config"
	"github.com/gonewx/wizard-defense/pkg/game"
	"github.com/gonewx/wizard-defense/pkg/simulation"
	"github.com/gonewx/wizard-defense/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// 颜色
var (
	backgroundColor    = color.RGBA{R: 34, G: 40, B: 49, A: 255}
	wallColor          = color.RGBA{R: 150, G: 150, B: 160, A: 255}
	wallDamagedColor   = color.RGBA{R: 170, G: 70, B: 60, A: 255}
	attackLineColor    = color.RGBA{R: 255, G: 255, B: 255, A: 40}
	playerColor        = color.RGBA{R: 90, G: 140, B: 255, A: 255}
	projectileColor    = color.RGBA{R: 255, G: 220, B: 90, A: 255}
	enemyWalkColor     = color.RGBA{R: 80, G: 200, B: 100, A: 255}
	enemyAttackColor   = color.RGBA{R: 230, G: 120, B: 40, A: 255}
	enemyDeadColor     = color.NRGBA{R: 110, G: 110, B: 110, A: 255}
	healthBarColor     = color.RGBA{R: 220, G: 40, B: 40, A: 255}
	healthBarBackColor = color.RGBA{R: 40, G: 40, B: 40, A: 200}
	hudTextColor       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	gameOverTextColor  = color.RGBA{R: 255, G: 80, B: 80, A: 255}
)

// statusMessageDuration 存档提示显示时长（秒）
const statusMessageDuration = 2.0

// BattleScene 战斗场景
//
// 场景本身不包含玩法规则，只负责：
//   - 把键盘输入转换为指令提交给模拟
//   - 每帧推进一次模拟
//   - 驱动敌人动画，并把动画通知回传给模拟
//   - 根据快照绘制战场和 HUD
type BattleScene struct {
	sim          *simulation.Simulation
	animator     *EnemyAnimator
	records      *game.RecordManager
	sceneManager *game.SceneManager

	savePath  string
	readInput func() utils.InputState

	recordsSubmitted bool
	newRecord        bool

	statusMessage string
	statusTimer   float64

	face text.Face
}

// NewBattleScene 创建战斗场景并开始一局新战斗
//
// 参数:
//   - sceneManager: 场景管理器，用于战斗结束后重新开始（可为 nil）
//   - cfg: 玩法配置
//   - opts: 模拟选项
//   - records: 战绩管理器（可为 nil，不记录战绩）
//   - savePath: 战斗存档路径（F5/F9 和退出时保存使用）
func NewBattleScene(sceneManager *game.SceneManager, cfg *config.GameplayConfig, opts simulation.Options, records *game.RecordManager, savePath string) (*BattleScene, error) {
	sim, err := simulation.NewSimulation(cfg, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create simulation: %w", err)
	}

	return &BattleScene{
		sim:          sim,
		animator:     NewEnemyAnimator(cfg.Animation),
		records:      records,
		sceneManager: sceneManager,
		savePath:     savePath,
		readInput:    utils.GetInputState,
		face:         text.NewGoXFace(basicfont.Face7x13),
	}, nil
}

// Simulation 返回场景持有的模拟（调试和测试用）
func (s *BattleScene) Simulation() *simulation.Simulation {
	return s.sim
}

// Update 推进一帧
func (s *BattleScene) Update(deltaTime float64) {
	in := s.readInput()

	if s.statusTimer > 0 {
		s.statusTimer -= deltaTime
	}

	if in.Save {
		s.saveBattle()
	}
	if in.Load {
		s.loadBattle()
	}

	if s.sim.GameOver() {
		s.finishBattle()
		if in.Restart && s.sceneManager != nil {
			s.sceneManager.Restart()
		}
		return
	}

	for _, cmd := range commandsFromInput(in) {
		s.sim.Submit(cmd)
	}

	s.sim.Step(deltaTime)

	// 动画通知在下一帧开始时生效
	for _, cmd := range s.animator.Update(s.sim.Snapshot(), deltaTime) {
		s.sim.Submit(cmd)
	}

	if s.sim.GameOver() {
		s.finishBattle()
	}
}

// finishBattle 战斗结束时提交战绩（每局只提交一次）
func (s *BattleScene) finishBattle() {
	if s.recordsSubmitted || s.records == nil {
		return
	}
	s.recordsSubmitted = true
	s.newRecord = s.records.SubmitBattle(s.sim.GameState())
	if err := s.records.Save(); err != nil {
		log.Printf("[BattleScene] Warning: Failed to save records: %v", err)
	}
}

func (s *BattleScene) saveBattle() {
	if err := s.sim.Save(s.savePath); err != nil {
		log.Printf("[BattleScene] Save failed: %v", err)
		s.showStatus("Save failed")
		return
	}
	s.showStatus("Battle saved")
}

func (s *BattleScene) loadBattle() {
	if err := s.sim.Load(s.savePath); err != nil {
		log.Printf("[BattleScene] Load failed: %v", err)
		s.showStatus("Load failed")
		return
	}
	// 恢复后实体ID全部改变
	s.animator.Reset()
	s.showStatus("Battle loaded")
}

func (s *BattleScene) showStatus(msg string) {
	s.statusMessage = msg
	s.statusTimer = statusMessageDuration
}

// SaveOnExit 窗口关闭时保存未结束的战斗
func (s *BattleScene) SaveOnExit() bool {
	if s.sim.GameOver() {
		return true
	}
	if err := s.sim.Save(s.savePath); err != nil {
		log.Printf("[BattleScene] Save on exit failed: %v", err)
		return false
	}
	return true
}

// Draw 绘制战场和 HUD
func (s *BattleScene) Draw(screen *ebiten.Image) {
	if screen == nil {
		return
	}

	snap := s.sim.Snapshot()
	cfg := s.sim.Config()

	screen.Fill(backgroundColor)
	s.drawWall(screen, snap, cfg)
	s.drawEnemies(screen, snap, cfg)
	s.drawProjectiles(screen, snap)
	s.drawPlayer(screen, snap, cfg)
	s.drawHUD(screen, snap)
}

func (s *BattleScene) drawWall(screen *ebiten.Image, snap simulation.Snapshot, cfg *config.GameplayConfig) {
	left, _ := utils.WorldToScreen(cfg.Wall.Left, 0, config.GameWindowWidth, config.GameWindowHeight)

	clr := wallColor
	if snap.WallMaxHealth > 0 && snap.WallHealth < snap.WallMaxHealth/2 {
		clr = wallDamagedColor
	}
	vector.DrawFilledRect(screen, float32(left), 0, float32(cfg.Wall.Size), config.GameWindowHeight, clr, false)

	attackX, _ := utils.WorldToScreen(cfg.Wall.AttackLine(), 0, config.GameWindowWidth, config.GameWindowHeight)
	vector.StrokeLine(screen, float32(attackX), 0, float32(attackX), config.GameWindowHeight, 1, attackLineColor, false)
}

func (s *BattleScene) drawEnemies(screen *ebiten.Image, snap simulation.Snapshot, cfg *config.GameplayConfig) {
	for _, e := range snap.Enemies {
		box := utils.Box{X: e.X, Y: e.Y, Width: cfg.Enemy.HurtboxWidth, Height: cfg.Enemy.HurtboxHeight}
		x, y, w, h := utils.BoxToScreenRect(box, config.GameWindowWidth, config.GameWindowHeight)

		var clr color.Color
		switch e.State {
		case components.EnemyWalking:
			clr = enemyWalkColor
		case components.EnemyAttacking:
			clr = enemyAttackColor
			// 攻击动画：每个周期向城墙前冲一次
			phase := float64(s.animator.Frame(e.ID)) / float64(cfg.Animation.AttackCycleFrames)
			x += float32(8 * utils.EaseOutCubic(1-math.Abs(2*phase-1)))
		case components.EnemyDead:
			// 死亡动画：逐渐淡出
			dead := enemyDeadColor
			dead.A = uint8(utils.Lerp(255, 0, utils.EaseInQuad(s.animator.DeathProgress(e.ID))))
			clr = dead
		default:
			clr = enemyWalkColor
		}
		vector.DrawFilledRect(screen, x, y, w, h, clr, false)

		if e.State != components.EnemyDead && e.MaxHealth > 0 {
			ratio := utils.Clamp01(e.Health / e.MaxHealth)
			vector.DrawFilledRect(screen, x, y-config.HealthBarHeight-2, w, config.HealthBarHeight, healthBarBackColor, false)
			vector.DrawFilledRect(screen, x, y-config.HealthBarHeight-2, w*float32(ratio), config.HealthBarHeight, healthBarColor, false)
		}
	}
}

func (s *BattleScene) drawProjectiles(screen *ebiten.Image, snap simulation.Snapshot) {
	for _, p := range snap.Projectiles {
		box := utils.Box{X: p.X, Y: p.Y, Width: config.ProjectileDrawWidth, Height: config.ProjectileDrawHeight}
		x, y, w, h := utils.BoxToScreenRect(box, config.GameWindowWidth, config.GameWindowHeight)
		vector.DrawFilledRect(screen, x, y, w, h, projectileColor, true)
	}
}

func (s *BattleScene) drawPlayer(screen *ebiten.Image, snap simulation.Snapshot, cfg *config.GameplayConfig) {
	box := utils.Box{X: snap.PlayerX, Y: snap.PlayerY, Width: config.PlayerDrawWidth, Height: cfg.Player.HalfHeight * 2}
	x, y, w, h := utils.BoxToScreenRect(box, config.GameWindowWidth, config.GameWindowHeight)
	vector.DrawFilledRect(screen, x, y, w, h, playerColor, false)
}

func (s *BattleScene) drawHUD(screen *ebiten.Image, snap simulation.Snapshot) {
	s.drawText(screen, fmt.Sprintf("Health: %.0f / %.0f", snap.WallHealth, snap.WallMaxHealth), config.HUDMarginX, config.HUDHealthY, hudTextColor)
	s.drawText(screen, fmt.Sprintf("$%d", snap.Wealth), config.HUDMarginX, config.HUDWealthY, hudTextColor)
	s.drawText(screen, fmt.Sprintf("Kills: %d  Time: %.1fs", snap.EnemiesKilled, snap.ElapsedTime), config.HUDMarginX, config.HUDStatsY, hudTextColor)
	s.drawText(screen, "W/S move  SPACE fire  R repair  U upgrade  F5 save  F9 load",
		config.HUDMarginX, config.GameWindowHeight-config.HUDHelpY, hudTextColor)

	if s.statusTimer > 0 && s.statusMessage != "" {
		s.drawText(screen, s.statusMessage, config.GameWindowWidth/2-50, config.HUDHealthY, hudTextColor)
	}

	if snap.GameOver {
		msg := "THE WALL HAS FALLEN - press ENTER to play again"
		if s.newRecord {
			msg = "NEW RECORD! " + msg
		}
		s.drawText(screen, msg, config.GameWindowWidth/2-180, config.GameWindowHeight/2, gameOverTextColor)
	}
}

func (s *BattleScene) drawText(screen *ebiten.Image, str string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, s.face, op)
}
