package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is one screen of the game (currently the battle).
// The scene owns its simulation and presentation state.
type Scene interface {
	// Update advances the scene by deltaTime seconds.
	Update(deltaTime float64)

	// Draw renders the scene to screen.
	Draw(screen *ebiten.Image)
}

// Saveable 可选接口：场景在游戏窗口关闭时保存状态
type Saveable interface {
	// SaveOnExit 返回 false 表示保存失败（程序仍会正常退出）
	SaveOnExit() bool
}
