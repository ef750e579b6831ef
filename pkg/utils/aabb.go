package utils

import "math"

// Box 以中心点和完整宽高描述的轴对齐边界框（AABB）
type Box struct {
	X, Y          float64 // 中心点
	Width, Height float64 // 完整宽高
}

// Overlaps 检查两个以中心点定义的 AABB 是否重叠
//
// 两个盒子在两条坐标轴上的投影都相交时才算重叠：
//
//	|ax-bx| < (aw+bw)/2 且 |ay-by| < (ah+bh)/2
//
// 边界恰好接触不算重叠。
func Overlaps(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return math.Abs(ax-bx) < (aw+bw)/2 &&
		math.Abs(ay-by) < (ah+bh)/2
}

// OverlapsBox 是 Overlaps 的 Box 版本
func OverlapsBox(a, b Box) bool {
	return Overlaps(a.X, a.Y, a.Width, a.Height, b.X, b.Y, b.Width, b.Height)
}
