package utils

import (
	"math"
	"testing"
)

// TestWorldToScreen 测试世界坐标到屏幕坐标的转换
func TestWorldToScreen(t *testing.T) {
	tests := []struct {
		name        string
		worldX      float64
		worldY      float64
		wantScreenX float64
		wantScreenY float64
	}{
		{"世界原点-屏幕中心", 0, 0, 800, 400},
		{"左上角", -800, 400, 0, 0},
		{"右下角", 800, -400, 1600, 800},
		{"玩家初始位置", 750, 100, 1550, 300},
		{"敌人出生线下边界", -800, -385, 0, 785},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sx, sy := WorldToScreen(tt.worldX, tt.worldY, 1600, 800)
			if sx != tt.wantScreenX || sy != tt.wantScreenY {
				t.Errorf("WorldToScreen(%v, %v) = (%v, %v), want (%v, %v)",
					tt.worldX, tt.worldY, sx, sy, tt.wantScreenX, tt.wantScreenY)
			}

			wx, wy := ScreenToWorld(sx, sy, 1600, 800)
			if math.Abs(wx-tt.worldX) > 1e-9 || math.Abs(wy-tt.worldY) > 1e-9 {
				t.Errorf("ScreenToWorld round trip = (%v, %v), want (%v, %v)", wx, wy, tt.worldX, tt.worldY)
			}
		})
	}
}

// TestBoxToScreenRect 测试中心点 AABB 到屏幕矩形的转换
func TestBoxToScreenRect(t *testing.T) {
	// 城墙：左边缘 600，边长 64，中心 (632, 0)
	x, y, w, h := BoxToScreenRect(Box{X: 632, Y: 0, Width: 64, Height: 64}, 1600, 800)
	if x != 1400 || y != 368 || w != 64 || h != 64 {
		t.Errorf("BoxToScreenRect = (%v, %v, %v, %v), want (1400, 368, 64, 64)", x, y, w, h)
	}
}
