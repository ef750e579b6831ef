package game

import (
	"fmt"

	"github.com/gonewx/wizard-defense/pkg/config"
)

// Wall 被守护的城墙（单例，由模拟上下文持有）
//
// 不变量：每次修理/升级之后 0 ≤ health ≤ maxHealth。
// ApplyDamage 不做下限钳制，生命值可以降到 0 以下，此时视为战斗失败。
type Wall struct {
	health    float64
	maxHealth float64
	left      float64
	size      float64
}

// NewWall 根据配置创建城墙
func NewWall(cfg config.WallConfig) *Wall {
	return &Wall{
		health:    cfg.Health,
		maxHealth: cfg.MaxHealth,
		left:      cfg.Left,
		size:      cfg.Size,
	}
}

// Health 返回当前生命值（可能为负）
func (w *Wall) Health() float64 { return w.health }

// MaxHealth 返回最大生命值
func (w *Wall) MaxHealth() float64 { return w.maxHealth }

// Left 返回城墙X坐标
func (w *Wall) Left() float64 { return w.left }

// Size 返回城墙尺寸
func (w *Wall) Size() float64 { return w.size }

// AttackLine 敌人开始攻击的X坐标（LEFT - SIZE）
func (w *Wall) AttackLine() float64 { return w.left - w.size }

// IsDestroyed 生命值降到 0 及以下即城墙被攻破
func (w *Wall) IsDestroyed() bool { return w.health <= 0 }

// ApplyDamage 扣除生命值，无下限钳制
func (w *Wall) ApplyDamage(amount float64) {
	w.health -= amount
}

// Repair 恢复 amount 点生命值，不超过最大生命值
//
// 费用检查和扣除由购买处理方负责，Repair 本身没有失败路径。
func (w *Wall) Repair(amount float64) {
	w.health += amount
	if w.health > w.maxHealth {
		w.health = w.maxHealth
	}
	w.checkInvariant("repair")
}

// UpgradeMaxHealth 提升最大生命值并回满
func (w *Wall) UpgradeMaxHealth(amount float64) {
	w.maxHealth += amount
	w.health = w.maxHealth
	w.checkInvariant("upgrade")
}

// Restore 从存档恢复城墙状态
// 最大生命值必须为正；生命值允许为负（失败局面的存档）但不能超过最大值
func (w *Wall) Restore(health, maxHealth float64) error {
	if maxHealth <= 0 {
		return fmt.Errorf("wall max health must be positive, got %v", maxHealth)
	}
	if health > maxHealth {
		return fmt.Errorf("wall health %v exceeds max health %v", health, maxHealth)
	}
	w.health = health
	w.maxHealth = maxHealth
	return nil
}

// checkInvariant 修理/升级后校验 0 ≤ health ≤ maxHealth，违反时报告并钳制
func (w *Wall) checkInvariant(op string) {
	if w.health < 0 {
		reportInvariant("wall health %.1f below zero after %s", w.health, op)
		w.health = 0
	}
	if w.health > w.maxHealth {
		reportInvariant("wall health %.1f above max %.1f after %s", w.health, w.maxHealth, op)
		w.health = w.maxHealth
	}
}
