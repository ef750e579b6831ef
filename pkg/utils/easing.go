package utils

import "math"

// Clamp01 将 t 限制在 [0, 1]
func Clamp01(t float64) float64 {
	return math.Max(0, math.Min(1, t))
}

// EaseInQuad 二次缓入：开始慢，结束快
// t 超出 [0, 1] 时先截断
func EaseInQuad(t float64) float64 {
	t = Clamp01(t)
	return t * t
}

// EaseOutCubic 三次缓出：开始快，结束慢
func EaseOutCubic(t float64) float64 {
	t = Clamp01(t)
	return 1 - math.Pow(1-t, 3)
}

// Lerp 在 a 和 b 之间线性插值
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
