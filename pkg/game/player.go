package game

import (
	"fmt"

	"github.com/gonewx/wizard-defense/pkg/config"
)

// Player 玩家（射手）状态
//
// 不变量：wealth ≥ 0。花费前必须先用 CanAfford 检查，
// 余额不足时调用 Spend 属于编程错误。
type Player struct {
	wealth int

	X, Y float64 // 世界坐标

	speed           float64
	halfHeight      float64
	fieldHalfHeight float64
}

// NewPlayer 根据配置创建玩家
func NewPlayer(cfg config.PlayerConfig, startingWealth int) *Player {
	return &Player{
		wealth:          startingWealth,
		X:               cfg.StartX,
		Y:               cfg.StartY,
		speed:           cfg.Speed,
		halfHeight:      cfg.HalfHeight,
		fieldHalfHeight: cfg.FieldHalfHeight,
	}
}

// Wealth 返回当前财富
func (p *Player) Wealth() int { return p.wealth }

// AddWealth 增加财富（击杀奖励）
func (p *Player) AddWealth(amount int) {
	if amount < 0 {
		reportInvariant("negative wealth reward %d", amount)
		return
	}
	p.wealth += amount
}

// CanAfford 检查财富是否足够支付 cost
func (p *Player) CanAfford(cost int) bool {
	return cost >= 0 && p.wealth >= cost
}

// Spend 扣除财富
// 调用方必须已经确认 CanAfford(cost)
func (p *Player) Spend(cost int) {
	if cost > p.wealth {
		reportInvariant("spend %d exceeds wealth %d", cost, p.wealth)
		p.wealth = 0
		return
	}
	p.wealth -= cost
}

// Move 沿Y轴移动玩家
//
// 参数:
//   - direction: +1 向上，-1 向下
//   - magnitude: 速度倍率（按键按下为 1）
//   - deltaTime: 本帧时长（秒）
//
// 返回:
//   - bool: 是否实际移动（移动后超出战场边界时不移动）
func (p *Player) Move(direction int, magnitude, deltaTime float64) bool {
	if direction == 0 || magnitude <= 0 || deltaTime <= 0 {
		return false
	}
	dy := p.speed * magnitude * deltaTime
	if direction > 0 {
		if p.Y+dy+p.halfHeight < p.fieldHalfHeight {
			p.Y += dy
			return true
		}
		return false
	}
	if p.Y-dy-p.halfHeight > -p.fieldHalfHeight {
		p.Y -= dy
		return true
	}
	return false
}

// Restore 从存档恢复玩家状态
func (p *Player) Restore(wealth int, x, y float64) error {
	if wealth < 0 {
		return fmt.Errorf("player wealth cannot be negative, got %d", wealth)
	}
	p.wealth = wealth
	p.X = x
	p.Y = y
	return nil
}
