package config

import (
	"fmt"
	"os"

	"github.com/gonewx/wizard-defense/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// DefaultGameplayConfigPath 默认玩法配置文件路径（嵌入资源）
const DefaultGameplayConfigPath = "data/gameplay.yaml"

// GameplayConfig 战斗模拟的全部数值配置
//
// 配置文件位置: data/gameplay.yaml
// 所有长度单位为世界单位，时间单位为秒。
type GameplayConfig struct {
	Enemy      EnemyConfig      `yaml:"enemy"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Wall       WallConfig       `yaml:"wall"`
	Economy    EconomyConfig    `yaml:"economy"`
	Player     PlayerConfig     `yaml:"player"`
	Animation  AnimationConfig  `yaml:"animation"`
}

// EnemyConfig 敌人属性与生成规则
type EnemyConfig struct {
	Speed         float64 `yaml:"speed"`         // 行走速度（单位/秒）
	Health        float64 `yaml:"health"`        // 初始生命值
	HurtboxWidth  float64 `yaml:"hurtboxWidth"`  // 受击盒宽度
	HurtboxHeight float64 `yaml:"hurtboxHeight"` // 受击盒高度
	AttackDamage  float64 `yaml:"attackDamage"`  // 每个攻击周期对城墙造成的伤害

	SpawnX        float64 `yaml:"spawnX"`        // 出生点X坐标（战场左边缘）
	SpawnMinY     float64 `yaml:"spawnMinY"`     // 出生点Y坐标下限（含）
	SpawnMaxY     float64 `yaml:"spawnMaxY"`     // 出生点Y坐标上限（不含）
	SpawnInterval float64 `yaml:"spawnInterval"` // 生成间隔（秒），0 表示不自动生成
}

// ProjectileConfig 子弹属性
type ProjectileConfig struct {
	Speed        float64 `yaml:"speed"`        // 飞行速度（单位/秒），向 -X 方向
	Damage       float64 `yaml:"damage"`       // 命中伤害
	HitboxWidth  float64 `yaml:"hitboxWidth"`  // 攻击盒宽度
	HitboxHeight float64 `yaml:"hitboxHeight"` // 攻击盒高度
	LeftBoundary float64 `yaml:"leftBoundary"` // 越过此X坐标即被移除
}

// WallConfig 城墙属性
type WallConfig struct {
	Health    float64 `yaml:"health"`    // 初始生命值
	MaxHealth float64 `yaml:"maxHealth"` // 初始最大生命值
	Left      float64 `yaml:"left"`      // 城墙X坐标（LEFT）
	Size      float64 `yaml:"size"`      // 城墙砖块尺寸（SIZE）
}

// AttackLine 返回敌人开始攻击的X坐标（LEFT - SIZE）
func (w WallConfig) AttackLine() float64 {
	return w.Left - w.Size
}

// EconomyConfig 经济系统数值
type EconomyConfig struct {
	StartingWealth int     `yaml:"startingWealth"` // 初始财富
	KillReward     int     `yaml:"killReward"`     // 每击杀一个敌人获得的财富
	RepairAmount   float64 `yaml:"repairAmount"`   // 每次修理恢复的生命值
	RepairCost     int     `yaml:"repairCost"`     // 修理价格
	UpgradeAmount  float64 `yaml:"upgradeAmount"`  // 每次升级增加的最大生命值
	UpgradeCost    int     `yaml:"upgradeCost"`    // 升级价格
}

// PlayerConfig 玩家（射手）属性
type PlayerConfig struct {
	StartX          float64 `yaml:"startX"`          // 初始X坐标
	StartY          float64 `yaml:"startY"`          // 初始Y坐标
	Speed           float64 `yaml:"speed"`           // 上下移动速度（单位/秒）
	HalfHeight      float64 `yaml:"halfHeight"`      // 玩家半高，用于边界判定
	FieldHalfHeight float64 `yaml:"fieldHalfHeight"` // 战场半高（Y 取值范围 ±FieldHalfHeight）
}

// AnimationConfig 动画时序（由表现层的动画协作者使用）
type AnimationConfig struct {
	FrameDuration     float64 `yaml:"frameDuration"`     // 每帧时长（秒）
	AttackCycleFrames int     `yaml:"attackCycleFrames"` // 攻击动画帧数，一个周期结束造成一次伤害
	DeathFrames       int     `yaml:"deathFrames"`       // 死亡动画帧数，播放完后通知删除
}

// AttackCycleDuration 一个攻击周期的时长（秒）
func (a AnimationConfig) AttackCycleDuration() float64 {
	return a.FrameDuration * float64(a.AttackCycleFrames)
}

// DeathDuration 死亡动画时长（秒）
func (a AnimationConfig) DeathDuration() float64 {
	return a.FrameDuration * float64(a.DeathFrames)
}

// DefaultGameplayConfig 返回默认玩法配置
// 与 data/gameplay.yaml 的内容保持一致，配置文件缺省字段时以此为准
func DefaultGameplayConfig() *GameplayConfig {
	return &GameplayConfig{
		Enemy: EnemyConfig{
			Speed:         50,
			Health:        100,
			HurtboxWidth:  57.5,
			HurtboxHeight: 82.5,
			AttackDamage:  10,
			SpawnX:        -800,
			SpawnMinY:     -385,
			SpawnMaxY:     385,
			SpawnInterval: 2,
		},
		Projectile: ProjectileConfig{
			Speed:        500,
			Damage:       20,
			HitboxWidth:  100,
			HitboxHeight: 50,
			LeftBoundary: -800,
		},
		Wall: WallConfig{
			Health:    200,
			MaxHealth: 200,
			Left:      600,
			Size:      64,
		},
		Economy: EconomyConfig{
			StartingWealth: 0,
			KillReward:     1,
			RepairAmount:   10,
			RepairCost:     100,
			UpgradeAmount:  20,
			UpgradeCost:    1000,
		},
		Player: PlayerConfig{
			StartX:          750,
			StartY:          100,
			Speed:           300,
			HalfHeight:      40,
			FieldHalfHeight: 385,
		},
		Animation: AnimationConfig{
			FrameDuration:     0.1,
			AttackCycleFrames: 18,
			DeathFrames:       10,
		},
	}
}

// LoadGameplayConfig 加载玩法配置
//
// 优先从嵌入资源读取，嵌入资源不可用时回退到本地文件系统。
// 配置文件中未出现的字段保留默认值。
//
// 参数:
//   - path: 配置文件路径（如 "data/gameplay.yaml"）
//
// 返回:
//   - *GameplayConfig: 加载并校验后的配置
//   - error: 读取、解析或校验失败时返回错误
func LoadGameplayConfig(path string) (*GameplayConfig, error) {
	data, err := readConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read gameplay config %s: %w", path, err)
	}
	return ParseGameplayConfig(data)
}

// ParseGameplayConfig 从 YAML 数据解析玩法配置
func ParseGameplayConfig(data []byte) (*GameplayConfig, error) {
	cfg := DefaultGameplayConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse gameplay config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid gameplay config: %w", err)
	}
	return cfg, nil
}

// readConfigFile 读取配置文件（嵌入资源优先）
func readConfigFile(path string) ([]byte, error) {
	if embedded.Exists(path) {
		return embedded.ReadFile(path)
	}
	return os.ReadFile(path)
}

// Validate 校验配置的完整性和合法性
func (c *GameplayConfig) Validate() error {
	e := c.Enemy
	if e.Speed <= 0 {
		return fmt.Errorf("enemy.speed must be positive, got %v", e.Speed)
	}
	if e.Health <= 0 {
		return fmt.Errorf("enemy.health must be positive, got %v", e.Health)
	}
	if e.HurtboxWidth <= 0 || e.HurtboxHeight <= 0 {
		return fmt.Errorf("enemy hurtbox must be positive, got %vx%v", e.HurtboxWidth, e.HurtboxHeight)
	}
	if e.AttackDamage < 0 {
		return fmt.Errorf("enemy.attackDamage cannot be negative, got %v", e.AttackDamage)
	}
	if e.SpawnMaxY <= e.SpawnMinY {
		return fmt.Errorf("enemy spawn Y range is empty: [%v, %v)", e.SpawnMinY, e.SpawnMaxY)
	}
	if e.SpawnInterval < 0 {
		return fmt.Errorf("enemy.spawnInterval cannot be negative, got %v", e.SpawnInterval)
	}

	p := c.Projectile
	if p.Speed <= 0 {
		return fmt.Errorf("projectile.speed must be positive, got %v", p.Speed)
	}
	if p.Damage <= 0 {
		return fmt.Errorf("projectile.damage must be positive, got %v", p.Damage)
	}
	if p.HitboxWidth <= 0 || p.HitboxHeight <= 0 {
		return fmt.Errorf("projectile hitbox must be positive, got %vx%v", p.HitboxWidth, p.HitboxHeight)
	}

	w := c.Wall
	if w.MaxHealth <= 0 {
		return fmt.Errorf("wall.maxHealth must be positive, got %v", w.MaxHealth)
	}
	if w.Health <= 0 || w.Health > w.MaxHealth {
		return fmt.Errorf("wall.health must be in (0, %v], got %v", w.MaxHealth, w.Health)
	}
	if w.Size < 0 {
		return fmt.Errorf("wall.size cannot be negative, got %v", w.Size)
	}

	m := c.Economy
	if m.StartingWealth < 0 {
		return fmt.Errorf("economy.startingWealth cannot be negative, got %d", m.StartingWealth)
	}
	if m.KillReward < 0 {
		return fmt.Errorf("economy.killReward cannot be negative, got %d", m.KillReward)
	}
	if m.RepairCost < 0 || m.UpgradeCost < 0 {
		return fmt.Errorf("economy costs cannot be negative (repair %d, upgrade %d)", m.RepairCost, m.UpgradeCost)
	}
	if m.RepairAmount <= 0 || m.UpgradeAmount <= 0 {
		return fmt.Errorf("economy amounts must be positive (repair %v, upgrade %v)", m.RepairAmount, m.UpgradeAmount)
	}

	pl := c.Player
	if pl.Speed < 0 {
		return fmt.Errorf("player.speed cannot be negative, got %v", pl.Speed)
	}
	if pl.HalfHeight <= 0 || pl.HalfHeight >= pl.FieldHalfHeight {
		return fmt.Errorf("player does not fit in the field: halfHeight %v, fieldHalfHeight %v", pl.HalfHeight, pl.FieldHalfHeight)
	}

	a := c.Animation
	if a.FrameDuration <= 0 {
		return fmt.Errorf("animation.frameDuration must be positive, got %v", a.FrameDuration)
	}
	if a.AttackCycleFrames <= 0 || a.DeathFrames <= 0 {
		return fmt.Errorf("animation frame counts must be positive (attack %d, death %d)", a.AttackCycleFrames, a.DeathFrames)
	}

	return nil
}
