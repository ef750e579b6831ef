package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gonewx/wizard-defense/pkg/app"
	"github.com/gonewx/wizard-defense/pkg/config"
	"github.com/gonewx/wizard-defense/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	seed       = flag.Int64("seed", 0, "敌人出生位置随机种子（0 表示使用当前时间）")
	configPath = flag.String("config", config.DefaultGameplayConfigPath, "玩法配置文件路径")
	savePath   = flag.String("save", "", "战斗存档路径（默认在用户配置目录下）")
	noSpawn    = flag.Bool("nospawn", false, "关闭敌人自动生成")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源
	embedded.Init(dataFS)

	path := *savePath
	if path == "" {
		path = defaultSavePath()
	}

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		Seed:       s,
		ConfigPath: *configPath,
		SavePath:   path,
		NoSpawn:    *noSpawn,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "游戏初始化失败: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(config.GameWindowWidth/2, config.GameWindowHeight/2)
	ebiten.SetWindowTitle("Wizard Defense")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}

// defaultSavePath 返回用户配置目录下的战斗存档路径
// 无法获取配置目录时退回到当前目录
func defaultSavePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "battle.sav"
	}
	dir = filepath.Join(dir, app.AppName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "battle.sav"
	}
	return filepath.Join(dir, "battle.sav")
}
