package orientation

import (
	"errors"
	"math"
	"testing"
)

func TestNewDirection(t *testing.T) {
	d, err := NewDirection(3, 4)
	if err != nil {
		t.Fatalf("NewDirection: %v", err)
	}
	if math.Abs(d.X()-0.6) > 1e-12 || math.Abs(d.Y()-0.8) > 1e-12 {
		t.Errorf("got %v, want (0.6, 0.8)", d)
	}
	if !d.Valid() {
		t.Error("normalized direction not unit length")
	}
}

func TestNearlySingular(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
	}{
		{"zero", 0, 0},
		{"tiny", Epsilon / 10, 0},
		{"nan", math.NaN(), 1},
		{"inf", math.Inf(1), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDirection(tt.x, tt.y)
			if !errors.Is(err, ErrNearlySingular) {
				t.Fatalf("err = %v, want ErrNearlySingular", err)
			}
			var nse *NearlySingularError
			if !errors.As(err, &nse) {
				t.Fatalf("err %T is not *NearlySingularError", err)
			}
		})
	}
}

func TestSum(t *testing.T) {
	tests := []struct {
		name     string
		dirs     []Direction
		want     Direction
		singular bool
	}{
		{"single", []Direction{North}, North, false},
		{"diagonal", []Direction{North, East}, NorthEast, false},
		{"three keys", []Direction{North, East, South}, East, false},
		{"opposing", []Direction{East, West}, Direction{}, true},
		{"all four", []Direction{North, South, East, West}, Direction{}, true},
		{"none", nil, Direction{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Sum(tt.dirs...)
			if tt.singular {
				if !errors.Is(err, ErrNearlySingular) {
					t.Errorf("err = %v, want ErrNearlySingular", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Sum: %v", err)
			}
			if !got.ApproxEqual(tt.want) {
				t.Errorf("Sum = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRotation(t *testing.T) {
	tests := []struct {
		dir  Direction
		want Rotation
	}{
		{East, 0},
		{NorthEast, 450},
		{North, 900},
		{West, 1800},
		{South, 2700},
		{SouthEast, 3150},
	}
	for _, tt := range tests {
		if got := tt.dir.Rotation(); got != tt.want {
			t.Errorf("%v.Rotation() = %d, want %d", tt.dir, got, tt.want)
		}
		if got := tt.want.Direction(); !got.ApproxEqual(tt.dir) {
			t.Errorf("Rotation(%d).Direction() = %v, want %v", tt.want, got, tt.dir)
		}
	}
}

func TestRotationWraps(t *testing.T) {
	if got := NewRotation(-900); got != 2700 {
		t.Errorf("NewRotation(-900) = %d", got)
	}
	if got := NewRotation(FullCircle + 5); got != 5 {
		t.Errorf("NewRotation(3605) = %d", got)
	}
	if got := Rotation(3500).Add(200); got != 100 {
		t.Errorf("3500+200 = %d", got)
	}
	if got := Rotation(100).Sub(200); got != 3500 {
		t.Errorf("100-200 = %d", got)
	}
	if got := FromDegrees(45.04); got != 450 {
		t.Errorf("FromDegrees(45.04) = %d", got)
	}
	if North.Neg() != South {
		t.Error("North.Neg() != South")
	}
}
