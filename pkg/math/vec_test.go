package math

import "testing"

func TestVec2Sub(t *testing.T) {
	got := Vec2{150, 75}.Sub(Vec2{100, 100})
	if got != (Vec2{50, -25}) {
		t.Errorf("Sub = %v, want {50 -25}", got)
	}
}

func TestVec3Cross(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec3
		want Vec3
	}{
		{"x cross y", UnitX, UnitY, UnitZ},
		{"y cross z", UnitY, UnitZ, UnitX},
		{"forward cross up", Vec3{0, 0, -1}, UnitY, UnitX},
		{"parallel", UnitY, UnitY, Vec3{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Cross(tt.b); got != tt.want {
				t.Errorf("Cross = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 0, 4}.Normalize()
	if abs(v.Length()-1) > 1e-6 {
		t.Errorf("length = %f, want 1", v.Length())
	}
	if (Vec3{}).Normalize() != (Vec3{}) {
		t.Error("zero vector should stay zero")
	}
}

func TestVec3MinMax(t *testing.T) {
	a := Vec3{1, -2, 3}
	b := Vec3{-1, 2, 0}
	if got := a.Min(b); got != (Vec3{-1, -2, 0}) {
		t.Errorf("Min = %v", got)
	}
	if got := a.Max(b); got != (Vec3{1, 2, 3}) {
		t.Errorf("Max = %v", got)
	}
}
