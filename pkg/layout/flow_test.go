package layout

import (
	"testing"

	"github.com/paperpress/daybook/pkg/errors"
)

func TestFlowPlaceLine(t *testing.T) {
	f := NewFlow(10, 110, 500, 50)

	y := f.PlaceLine(10)
	if y != 500 {
		t.Errorf("first baseline = %f, want 500", y)
	}
	if got, want := f.Y(), 500-10*DefaultLineRatio; got != want {
		t.Errorf("cursor after line = %f, want %f", got, want)
	}

	f.LineRatio = 2
	f.PlaceLine(10)
	if got, want := f.Y(), 500-10*DefaultLineRatio-20; got != want {
		t.Errorf("cursor with custom ratio = %f, want %f", got, want)
	}
}

func TestFlowPlaceRuledLinesClamps(t *testing.T) {
	tests := []struct {
		name    string
		top     float64
		bottom  float64
		count   int
		spacing float64
		want    int
	}{
		{
			name:   "all fit",
			top:    500, bottom: 50,
			count: 4, spacing: 20,
			want: 4,
		},
		{
			name:   "clamped at bottom",
			top:    100, bottom: 50,
			count: 10, spacing: 20,
			want: 2,
		},
		{
			name:   "exact fit",
			top:    130, bottom: 50,
			count: 4, spacing: 20,
			want: 4,
		},
		{
			name:   "cursor already at bottom",
			top:    50, bottom: 50,
			count: 3, spacing: 20,
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFlow(0, 100, tt.top, tt.bottom)
			ys := f.PlaceRuledLines(tt.count, tt.spacing)

			if len(ys) != tt.want {
				t.Fatalf("got %d rules, want %d", len(ys), tt.want)
			}
			for _, y := range ys {
				if y < tt.bottom {
					t.Errorf("rule at %f is below bottom bound %f", y, tt.bottom)
				}
			}
			if tt.top-float64(tt.count)*tt.spacing < tt.bottom && len(ys) >= tt.count {
				t.Errorf("overflowing request returned full count %d", len(ys))
			}
		})
	}
}

func TestFlowPlaceRuledLinesNonPositiveCount(t *testing.T) {
	// Callers derive the count from remaining space, which can come out
	// negative when the band is already exhausted.
	for _, count := range []int{0, -1, -42} {
		f := NewFlow(0, 100, 200, 50)
		if ys := f.PlaceRuledLines(count, 20); ys != nil {
			t.Errorf("PlaceRuledLines(%d) = %v, want nil", count, ys)
		}
		if f.Y() != 200 {
			t.Errorf("PlaceRuledLines(%d) moved cursor to %f", count, f.Y())
		}
	}
}

func TestFlowPlaceBox(t *testing.T) {
	f := NewFlow(20, 120, 300, 100)

	r, err := f.PlaceBox(50)
	if err != nil {
		t.Fatalf("PlaceBox(50): %v", err)
	}
	want := Rect{X: 20, Y: 250, W: 100, H: 50}
	if r != want {
		t.Errorf("PlaceBox(50) = %+v, want %+v", r, want)
	}
	if f.Y() != 250 {
		t.Errorf("cursor = %f, want 250", f.Y())
	}

	// Remaining space is 150; a larger box must fail without moving the cursor.
	if _, err := f.PlaceBox(200); !errors.Is(err, errors.ErrCodeInsufficientSpace) {
		t.Errorf("oversized box error = %v, want INSUFFICIENT_SPACE", err)
	}
	if f.Y() != 250 {
		t.Errorf("failed placement moved cursor to %f", f.Y())
	}

	if _, err := f.PlaceBox(-1); !errors.Is(err, errors.ErrCodeInvalidLayout) {
		t.Errorf("negative box error = %v, want INVALID_LAYOUT", err)
	}

	// A box sized exactly to the remaining space fits.
	r, err = f.PlaceBox(f.Remaining())
	if err != nil {
		t.Fatalf("PlaceBox(Remaining()): %v", err)
	}
	if r.Y != 100 || f.Remaining() != 0 {
		t.Errorf("remaining-space box bottom = %f, remaining = %f", r.Y, f.Remaining())
	}
}

func TestFlowReplayIsDeterministic(t *testing.T) {
	run := func() []float64 {
		f := NewFlow(42.5, 552.7, 700, 42.5)
		var got []float64
		got = append(got, f.PlaceLine(18))
		got = append(got, f.Advance(0.5*Cm))
		got = append(got, f.PlaceRuledLines(5, 0.8*Cm)...)
		if r, err := f.PlaceBox(2 * Cm); err == nil {
			got = append(got, r.Y)
		}
		got = append(got, f.Y())
		return got
	}

	a, b := run(), run()
	if len(a) != len(b) {
		t.Fatalf("replay lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("replay diverged at %d: %f vs %f", i, a[i], b[i])
		}
	}
}
