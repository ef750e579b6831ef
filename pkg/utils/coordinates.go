// Package utils 提供游戏开发中常用的工具函数
//
// coordinates.go 提供世界坐标与屏幕坐标的转换。
//
// # 坐标系统概述
//
//   - **世界坐标**：原点在战场中心，+X 向右（城墙方向），+Y 向上
//   - **屏幕坐标**：原点在窗口左上角，+Y 向下（Ebiten 默认）
//
// # 核心转换公式
//
//	screenX = worldX + screenWidth/2
//	screenY = screenHeight/2 - worldY
package utils

// WorldToScreen 将世界坐标转换为屏幕坐标
//
// 参数:
//   - worldX, worldY: 世界坐标
//   - screenWidth, screenHeight: 逻辑屏幕尺寸
func WorldToScreen(worldX, worldY float64, screenWidth, screenHeight int) (float64, float64) {
	return worldX + float64(screenWidth)/2, float64(screenHeight)/2 - worldY
}

// ScreenToWorld 将屏幕坐标转换为世界坐标（WorldToScreen 的逆变换）
func ScreenToWorld(screenX, screenY float64, screenWidth, screenHeight int) (float64, float64) {
	return screenX - float64(screenWidth)/2, float64(screenHeight)/2 - screenY
}

// BoxToScreenRect 将以中心点定义的世界坐标 AABB 转换为屏幕矩形（左上角 + 宽高）
// 用于 vector.DrawFilledRect 等以左上角定位的绘制函数
func BoxToScreenRect(b Box, screenWidth, screenHeight int) (x, y, w, h float32) {
	cx, cy := WorldToScreen(b.X, b.Y, screenWidth, screenHeight)
	return float32(cx - b.Width/2), float32(cy - b.Height/2), float32(b.Width), float32(b.Height)
}
