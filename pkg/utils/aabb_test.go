package utils

import "testing"

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a    Box
		b    Box
		want bool
	}{
		{
			name: "同中心完全重叠",
			a:    Box{X: 0, Y: 0, Width: 57.5, Height: 82.5},
			b:    Box{X: 0, Y: 0, Width: 100, Height: 50},
			want: true,
		},
		{
			name: "X轴部分重叠",
			a:    Box{X: 0, Y: 0, Width: 57.5, Height: 82.5},
			b:    Box{X: 78, Y: 0, Width: 100, Height: 50},
			want: true,
		},
		{
			name: "X轴恰好接触不算重叠",
			a:    Box{X: 0, Y: 0, Width: 60, Height: 80},
			b:    Box{X: 80, Y: 0, Width: 100, Height: 50},
			want: false,
		},
		{
			name: "Y轴恰好接触不算重叠",
			a:    Box{X: 0, Y: 0, Width: 60, Height: 80},
			b:    Box{X: 0, Y: 65, Width: 100, Height: 50},
			want: false,
		},
		{
			name: "Y轴分离",
			a:    Box{X: 0, Y: 0, Width: 57.5, Height: 82.5},
			b:    Box{X: 0, Y: 100, Width: 100, Height: 50},
			want: false,
		},
		{
			name: "负坐标重叠",
			a:    Box{X: -800, Y: -200, Width: 57.5, Height: 82.5},
			b:    Box{X: -760, Y: -180, Width: 100, Height: 50},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OverlapsBox(tt.a, tt.b); got != tt.want {
				t.Errorf("OverlapsBox(%+v, %+v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			// 重叠关系是对称的
			if got := OverlapsBox(tt.b, tt.a); got != tt.want {
				t.Errorf("OverlapsBox is not symmetric for %s", tt.name)
			}
		})
	}
}
