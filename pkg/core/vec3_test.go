package core

import (
	"math"
	"testing"
)

func vecApproxEqual(a, b Vec3, tolerance float32) bool {
	return math.Abs(float64(a.X-b.X)) <= float64(tolerance) &&
		math.Abs(float64(a.Y-b.Y)) <= float64(tolerance) &&
		math.Abs(float64(a.Z-b.Z)) <= float64(tolerance)
}

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	tests := []struct {
		name     string
		got      Vec3
		expected Vec3
	}{
		{"add", a.Add(b), NewVec3(5, -3, 9)},
		{"subtract", a.Subtract(b), NewVec3(-3, 7, -3)},
		{"negate", a.Negate(), NewVec3(-1, -2, -3)},
		{"scalar multiply", a.Multiply(2), NewVec3(2, 4, 6)},
		{"scalar divide", a.Divide(2), NewVec3(0.5, 1, 1.5)},
		{"component multiply", a.MultiplyVec(b), NewVec3(4, -10, 18)},
		{"component divide", b.DivideVec(a), NewVec3(4, -2.5, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !vecApproxEqual(tt.got, tt.expected, 1e-6) {
				t.Errorf("Expected %v, got %v", tt.expected, tt.got)
			}
		})
	}
}

func TestVec3_DotAndCross(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 5, 6)

	if dot := a.Dot(b); dot != 32 {
		t.Errorf("Expected dot product 32, got %f", dot)
	}

	// Right-handed basis: x × y = z
	x := NewVec3(1, 0, 0)
	y := NewVec3(0, 1, 0)
	if cross := x.Cross(y); !vecApproxEqual(cross, NewVec3(0, 0, 1), 1e-6) {
		t.Errorf("Expected x cross y = z, got %v", cross)
	}

	expected := NewVec3(-3, 6, -3)
	if cross := a.Cross(b); !vecApproxEqual(cross, expected, 1e-6) {
		t.Errorf("Expected cross %v, got %v", expected, cross)
	}
}

func TestVec3_LengthAndNormalize(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3
	}{
		{"axis", NewVec3(3, 0, 0)},
		{"pythagorean", NewVec3(3, 4, 0)},
		{"small", NewVec3(0.001, -0.002, 0.003)},
		{"large", NewVec3(-120, 45, 260)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lengthSq := tt.v.LengthSquared()
			length := tt.v.Length()
			if math.Abs(float64(length*length-lengthSq)) > 1e-3*float64(lengthSq) {
				t.Errorf("Length()² = %f inconsistent with LengthSquared() = %f", length*length, lengthSq)
			}

			unit := tt.v.Normalize()
			if math.Abs(float64(unit.Length()-1)) > 1e-5 {
				t.Errorf("Expected unit length 1, got %f", unit.Length())
			}
		})
	}
}

func TestVec3_Clamp(t *testing.T) {
	v := NewVec3(-0.5, 0.5, 1.5)
	clamped := v.Clamp(0, 1)
	expected := NewVec3(0, 0.5, 1)
	if !vecApproxEqual(clamped, expected, 1e-6) {
		t.Errorf("Expected %v, got %v", expected, clamped)
	}
}

func TestVec3_GammaCorrect(t *testing.T) {
	corrected := NewVec3(0.25, 1, 0).GammaCorrect()
	expected := NewVec3(0.5, 1, 0)
	if !vecApproxEqual(corrected, expected, 1e-6) {
		t.Errorf("Expected %v, got %v", expected, corrected)
	}
}

func TestLerp(t *testing.T) {
	white := NewVec3(1, 1, 1)
	blue := NewVec3(0.5, 0.7, 1)

	tests := []struct {
		name     string
		t        float32
		expected Vec3
	}{
		{"start", 0, white},
		{"end", 1, blue},
		{"midpoint", 0.5, NewVec3(0.75, 0.85, 1)},
		{"clamped below", -2, white},
		{"clamped above", 3, blue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lerp(white, blue, tt.t)
			if !vecApproxEqual(got, tt.expected, 1e-6) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 0, -1), NewVec3(0, 2, 0))

	tests := []struct {
		name     string
		t        float32
		expected Vec3
	}{
		{"origin", 0, NewVec3(1, 0, -1)},
		{"forward", 1.5, NewVec3(1, 3, -1)},
		{"behind", -1, NewVec3(1, -2, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ray.At(tt.t)
			if !vecApproxEqual(got, tt.expected, 1e-6) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}
