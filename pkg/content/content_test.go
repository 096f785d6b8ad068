package content

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func TestQuoteJSONTuple(t *testing.T) {
	q := Quote{Text: "Stay hungry.", Author: "Steve Jobs"}

	data, err := json.Marshal(q)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `["Stay hungry.","Steve Jobs"]`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}

	var back Quote
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if back != q {
		t.Errorf("roundtrip = %+v, want %+v", back, q)
	}
}

func TestQuoteUnmarshalErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"object form", `{"q":"a","a":"b"}`},
		{"too short", `["only text"]`},
		{"not json", `garbage`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var q Quote
			if err := json.Unmarshal([]byte(tt.input), &q); err == nil {
				t.Errorf("Unmarshal(%s) expected error, got none", tt.input)
			}
		})
	}
}

func TestQuoteUnmarshalExtraElements(t *testing.T) {
	var q Quote
	if err := json.Unmarshal([]byte(`["a","b","ignored"]`), &q); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if q.Text != "a" || q.Author != "b" {
		t.Errorf("got %+v, want {a b}", q)
	}
}

func TestDedup(t *testing.T) {
	a := Quote{Text: "one", Author: "x"}
	b := Quote{Text: "two", Author: "y"}
	c := Quote{Text: "one", Author: "z"} // same text, different author

	got := Dedup([]Quote{a, b, a, c, b})
	want := []Quote{a, b, c}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Dedup() = %v, want %v", got, want)
	}
}

func TestDedupEmpty(t *testing.T) {
	if got := Dedup(nil); len(got) != 0 {
		t.Errorf("Dedup(nil) = %v, want empty", got)
	}
}

func TestFallbackInspiration(t *testing.T) {
	got := FallbackInspiration("March")
	if !strings.Contains(got, "March") {
		t.Errorf("FallbackInspiration() = %q, want month name included", got)
	}
	if got != FallbackInspiration("March") {
		t.Error("FallbackInspiration() not deterministic")
	}
}

func TestImageAspect(t *testing.T) {
	tests := []struct {
		name   string
		img    Image
		aspect float64
	}{
		{"landscape", Image{Width: 800, Height: 600}, 0.75},
		{"square", Image{Width: 500, Height: 500}, 1},
		{"zero width", Image{Width: 0, Height: 600}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.img.Aspect(); got != tt.aspect {
				t.Errorf("Aspect() = %v, want %v", got, tt.aspect)
			}
		})
	}
}
