// simulate_battle 无界面运行一局战斗，用于验证平衡性和确定性
//
// 用法:
//
//	go run ./cmd/simulate_battle -ticks 36000 -seed 42
//	go run ./cmd/simulate_battle -fire-interval 0 -save battle.sav
//
// 内置一个简单的自动玩家：向最靠近城墙的敌人所在的行移动并按间隔射击，
// 城墙生命值低于一半且财富足够时购买修理。
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"github.com/gonewx/wizard-defense/pkg/components"
	"github.com/gonewx/wizard-defense/pkg/config"
	"github.com/gonewx/wizard-defense/pkg/scenes"
	"github.com/gonewx/wizard-defense/pkg/simulation"
)

var (
	ticks        = flag.Int("ticks", 60*60*10, "最多模拟的帧数（60 帧 = 1 秒）")
	seed         = flag.Int64("seed", 1, "敌人出生位置随机种子")
	configPath   = flag.String("config", "data/gameplay.yaml", "玩法配置文件路径")
	fireInterval = flag.Int("fire-interval", 15, "自动玩家射击间隔（帧），0 表示不射击")
	savePath     = flag.String("save", "", "结束时将战斗保存到该路径")
	verbose      = flag.Bool("verbose", false, "显示详细调试信息")
)

const deltaTime = 1.0 / 60.0

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.LoadGameplayConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载玩法配置失败: %v\n", err)
		os.Exit(1)
	}

	sim, err := simulation.NewSimulation(cfg, simulation.Options{Seed: *seed})
	if err != nil {
		fmt.Fprintf(os.Stderr, "创建模拟失败: %v\n", err)
		os.Exit(1)
	}
	animator := scenes.NewEnemyAnimator(cfg.Animation)

	fmt.Println("=== Wizard Defense 无界面战斗模拟 ===")
	fmt.Printf("种子: %d, 最多 %d 帧, 射击间隔: %d 帧\n\n", *seed, *ticks, *fireInterval)

	repairs := 0
	for i := 0; i < *ticks && !sim.GameOver(); i++ {
		snap := sim.Snapshot()

		if cmd, ok := steer(snap, cfg); ok {
			sim.Submit(cmd)
		}
		if *fireInterval > 0 && i%*fireInterval == 0 {
			sim.Submit(simulation.FireProjectile{})
		}
		if snap.WallHealth < snap.WallMaxHealth/2 && snap.Wealth >= cfg.Economy.RepairCost {
			sim.Submit(simulation.PurchaseRepair{})
			repairs++
		}

		sim.Step(deltaTime)
		for _, cmd := range animator.Update(sim.Snapshot(), deltaTime) {
			sim.Submit(cmd)
		}

		if (i+1)%(60*60) == 0 {
			s := sim.Snapshot()
			fmt.Printf("[%6.1fs] 城墙 %.0f/%.0f, 财富 $%d, 击杀 %d/%d, 场上敌人 %d\n",
				s.ElapsedTime, s.WallHealth, s.WallMaxHealth, s.Wealth,
				s.EnemiesKilled, s.EnemiesSpawned, len(s.Enemies))
		}
	}

	final := sim.Snapshot()
	fmt.Println("\n--- 结果 ---")
	fmt.Printf("战斗ID: %s\n", final.SessionID)
	fmt.Printf("帧数: %d (%.1f 秒)\n", final.Tick, final.ElapsedTime)
	fmt.Printf("城墙: %.0f/%.0f\n", final.WallHealth, final.WallMaxHealth)
	fmt.Printf("击杀: %d, 生成: %d, 修理: %d 次\n", final.EnemiesKilled, final.EnemiesSpawned, repairs)
	fmt.Printf("财富: $%d\n", final.Wealth)
	if final.GameOver {
		fmt.Println("城墙被攻破")
	} else {
		fmt.Println("坚持到了模拟结束")
	}

	if *savePath != "" {
		if err := sim.Save(*savePath); err != nil {
			fmt.Fprintf(os.Stderr, "保存失败: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("已保存到 %s\n", *savePath)
	}
}

// steer 让玩家对准最靠近城墙、仍然存活的敌人
func steer(snap simulation.Snapshot, cfg *config.GameplayConfig) (simulation.Command, bool) {
	targetY, found := 0.0, false
	bestX := math.Inf(-1)
	for _, e := range snap.Enemies {
		if e.State == components.EnemyDead {
			continue
		}
		if e.X > bestX {
			bestX, targetY, found = e.X, e.Y, true
		}
	}
	if !found {
		return nil, false
	}

	step := cfg.Player.Speed * deltaTime
	switch {
	case targetY > snap.PlayerY+step:
		return simulation.MovePlayer{Direction: simulation.MoveUp, Magnitude: 1}, true
	case targetY < snap.PlayerY-step:
		return simulation.MovePlayer{Direction: simulation.MoveDown, Magnitude: 1}, true
	default:
		return nil, false
	}
}
