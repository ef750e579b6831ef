// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState 存储当前帧的键盘输入状态
// 与 Ebiten 解耦，便于场景逻辑在测试中直接构造
type InputState struct {
	// 持续按住的方向键
	Up, Down bool

	// 本帧刚按下的动作键
	Fire    bool
	Repair  bool
	Upgrade bool
	Save    bool
	Load    bool
	Restart bool
}

// GetInputState 读取当前帧的键盘输入状态
//
// 按键映射:
//   - W / ↑: 向上移动（按住）
//   - S / ↓: 向下移动（按住）
//   - 空格: 发射
//   - R: 修理城墙
//   - U: 升级城墙
//   - F5 / F9: 保存 / 读取战斗
//   - Enter: 战斗结束后重新开始
func GetInputState() InputState {
	return InputState{
		Up:      ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:    ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Fire:    inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Repair:  inpututil.IsKeyJustPressed(ebiten.KeyR),
		Upgrade: inpututil.IsKeyJustPressed(ebiten.KeyU),
		Save:    inpututil.IsKeyJustPressed(ebiten.KeyF5),
		Load:    inpututil.IsKeyJustPressed(ebiten.KeyF9),
		Restart: inpututil.IsKeyJustPressed(ebiten.KeyEnter),
	}
}
