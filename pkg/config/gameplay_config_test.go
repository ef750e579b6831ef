package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultGameplayConfig(t *testing.T) {
	cfg := DefaultGameplayConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}

	if cfg.Wall.AttackLine() != 536 {
		t.Errorf("attack line: expected 536, got %v", cfg.Wall.AttackLine())
	}
	if got := cfg.Animation.AttackCycleDuration(); got < 1.799 || got > 1.801 {
		t.Errorf("attack cycle duration: expected 1.8, got %v", got)
	}
	if got := cfg.Animation.DeathDuration(); got < 0.999 || got > 1.001 {
		t.Errorf("death duration: expected 1.0, got %v", got)
	}
}

func TestLoadGameplayConfig(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("加载有效配置文件", func(t *testing.T) {
		configContent := `
enemy:
  speed: 75
  health: 150
wall:
  health: 300
  maxHealth: 300
economy:
  killReward: 5
`
		configPath := filepath.Join(tempDir, "gameplay.yaml")
		if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}

		cfg, err := LoadGameplayConfig(configPath)
		if err != nil {
			t.Fatalf("LoadGameplayConfig failed: %v", err)
		}

		if cfg.Enemy.Speed != 75 {
			t.Errorf("enemy speed: expected 75, got %v", cfg.Enemy.Speed)
		}
		if cfg.Enemy.Health != 150 {
			t.Errorf("enemy health: expected 150, got %v", cfg.Enemy.Health)
		}
		if cfg.Wall.MaxHealth != 300 {
			t.Errorf("wall maxHealth: expected 300, got %v", cfg.Wall.MaxHealth)
		}
		if cfg.Economy.KillReward != 5 {
			t.Errorf("kill reward: expected 5, got %d", cfg.Economy.KillReward)
		}

		// 未出现的字段保留默认值
		if cfg.Projectile.Damage != 20 {
			t.Errorf("projectile damage should keep default 20, got %v", cfg.Projectile.Damage)
		}
		if cfg.Enemy.HurtboxWidth != 57.5 {
			t.Errorf("enemy hurtbox width should keep default 57.5, got %v", cfg.Enemy.HurtboxWidth)
		}
	})

	t.Run("文件不存在", func(t *testing.T) {
		_, err := LoadGameplayConfig(filepath.Join(tempDir, "missing.yaml"))
		if err == nil {
			t.Fatal("expected error for missing file")
		}
	})

	t.Run("YAML格式错误", func(t *testing.T) {
		configPath := filepath.Join(tempDir, "broken.yaml")
		if err := os.WriteFile(configPath, []byte("enemy: [speed: 1"), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}
		if _, err := LoadGameplayConfig(configPath); err == nil {
			t.Fatal("expected parse error")
		}
	})

	t.Run("仓库内置配置与默认值一致", func(t *testing.T) {
		cfg, err := LoadGameplayConfig(filepath.Join("..", "..", DefaultGameplayConfigPath))
		if err != nil {
			t.Fatalf("LoadGameplayConfig failed: %v", err)
		}
		if *cfg != *DefaultGameplayConfig() {
			t.Errorf("data/gameplay.yaml drifted from defaults:\n got  %+v\n want %+v", *cfg, *DefaultGameplayConfig())
		}
	})
}

func TestGameplayConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *GameplayConfig)
		wantErr string
	}{
		{
			name:    "敌人速度为0",
			mutate:  func(c *GameplayConfig) { c.Enemy.Speed = 0 },
			wantErr: "enemy.speed",
		},
		{
			name:    "出生范围为空",
			mutate:  func(c *GameplayConfig) { c.Enemy.SpawnMinY, c.Enemy.SpawnMaxY = 10, 10 },
			wantErr: "spawn Y range",
		},
		{
			name:    "子弹伤害为负",
			mutate:  func(c *GameplayConfig) { c.Projectile.Damage = -1 },
			wantErr: "projectile.damage",
		},
		{
			name:    "城墙生命超过上限",
			mutate:  func(c *GameplayConfig) { c.Wall.Health = 250 },
			wantErr: "wall.health",
		},
		{
			name:    "升级价格为负",
			mutate:  func(c *GameplayConfig) { c.Economy.UpgradeCost = -1 },
			wantErr: "economy costs",
		},
		{
			name:    "玩家高度超出战场",
			mutate:  func(c *GameplayConfig) { c.Player.HalfHeight = 400 },
			wantErr: "player does not fit",
		},
		{
			name:    "动画帧数为0",
			mutate:  func(c *GameplayConfig) { c.Animation.DeathFrames = 0 },
			wantErr: "animation frame counts",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultGameplayConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.wantErr)
			}
		})
	}
}
