package systems

import (
	"log"

	"github.com/gonewx/wizard-defense/pkg/config"
	"github.com/gonewx/wizard-defense/pkg/ecs"
	"github.com/gonewx/wizard-defense/pkg/game"
)

// EconomySystem 击杀奖励与城墙购买
//
// 购买的费用检查和扣除都在这里完成，Wall.Repair / Wall.UpgradeMaxHealth
// 本身没有失败路径。财富不足的购买直接丢弃，不报错。
type EconomySystem struct {
	gs  *game.GameState
	cfg config.EconomyConfig
}

// NewEconomySystem 创建经济系统
func NewEconomySystem(gs *game.GameState, cfg *config.GameplayConfig) *EconomySystem {
	return &EconomySystem{
		gs:  gs,
		cfg: cfg.Economy,
	}
}

// PurchaseRepair 花费 RepairCost 修理城墙 RepairAmount 点生命值
// 返回 false 表示财富不足，状态不变
func (s *EconomySystem) PurchaseRepair() bool {
	player := s.gs.Player
	if !player.CanAfford(s.cfg.RepairCost) {
		log.Printf("[EconomySystem] Repair rejected: wealth %d < cost %d", player.Wealth(), s.cfg.RepairCost)
		return false
	}
	player.Spend(s.cfg.RepairCost)
	s.gs.Wall.Repair(s.cfg.RepairAmount)
	log.Printf("[EconomySystem] Wall repaired: health=%.0f/%.0f, wealth=%d",
		s.gs.Wall.Health(), s.gs.Wall.MaxHealth(), player.Wealth())
	return true
}

// PurchaseUpgrade 花费 UpgradeCost 提升城墙最大生命值并回满
// 返回 false 表示财富不足，状态不变
func (s *EconomySystem) PurchaseUpgrade() bool {
	player := s.gs.Player
	if !player.CanAfford(s.cfg.UpgradeCost) {
		log.Printf("[EconomySystem] Upgrade rejected: wealth %d < cost %d", player.Wealth(), s.cfg.UpgradeCost)
		return false
	}
	player.Spend(s.cfg.UpgradeCost)
	s.gs.Wall.UpgradeMaxHealth(s.cfg.UpgradeAmount)
	log.Printf("[EconomySystem] Wall upgraded: health=%.0f/%.0f, wealth=%d",
		s.gs.Wall.Health(), s.gs.Wall.MaxHealth(), player.Wealth())
	return true
}

// AwardKills 为本帧新死亡的每个敌人发放一次击杀奖励
// 返回发放的财富总额
func (s *EconomySystem) AwardKills(killed []ecs.EntityID) int {
	if len(killed) == 0 {
		return 0
	}
	total := 0
	for range killed {
		s.gs.Player.AddWealth(s.cfg.KillReward)
		s.gs.EnemiesKilled++
		total += s.cfg.KillReward
	}
	log.Printf("[EconomySystem] %d kill(s) rewarded %d, wealth=%d", len(killed), total, s.gs.Player.Wealth())
	return total
}
