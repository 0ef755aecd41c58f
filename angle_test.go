package figure

import (
	"math"
	"testing"
)

func TestSnapDegrees(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{90, 90},
		{89.99999999999999, 90},
		{-45.0000001, -45},
		{30.5, 30.5},
		{12.00001, 12.00001},
	}
	for _, tt := range tests {
		if got := SnapDegrees(tt.in); got != tt.want {
			t.Errorf("SnapDegrees(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestAngleConversions(t *testing.T) {
	a := AngleOf(Vec(0, 1))
	if got := a.SnappedDegrees(); got != 90 {
		t.Errorf("got %v°, want 90°", got)
	}
	if got := Degrees(180).Radians(); math.Abs(got-math.Pi) > 1e-15 {
		t.Errorf("got %v rad, want π", got)
	}
	if got := Degrees(-90).Normalized().SnappedDegrees(); got != 270 {
		t.Errorf("got %v°, want 270°", got)
	}
	if got := Degrees(720).Normalized().Radians(); math.Abs(got) > 1e-12 {
		t.Errorf("got %v rad, want 0", got)
	}
	if got := Degrees(30).Add(Degrees(60)).String(); got != "90°" {
		t.Errorf("got %q, want 90°", got)
	}
	diff(t, Vec(0, -1), Degrees(-90).Unit(), approx)
}

func TestNumeric(t *testing.T) {
	if !IsZero(1e-12) || IsZero(1e-3) {
		t.Error("IsZero misclassifies values")
	}
	if IsNegative(-1e-12) {
		t.Error("tiny negative value reported negative")
	}
	if !IsNegative(-0.5) {
		t.Error("-0.5 not reported negative")
	}
	if !AlmostEqual(1, 1.05, 0.1) || AlmostEqual(1, 1.2, 0.1) {
		t.Error("AlmostEqual misclassifies values")
	}
	for in, want := range map[float64]float64{-3: -1, 0: 0, 1e-12: 0, 2: 1} {
		if got := sign(in); got != want {
			t.Errorf("sign(%v) = %v, want %v", in, got, want)
		}
	}
}
