package effect

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRoundTrip(t *testing.T) {
	for _, e := range All() {
		if got := Parse(e.String()); got != e {
			t.Errorf("Parse(%q) = %v, want %v", e.String(), got, e)
		}
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		effect Effect
		want   string
	}{
		{None, "none"},
		{Rainbow, "rainbow"},
		{RainbowCycle, "rainbowCycle"},
		{LaserScanner, "laserScanner"},
		{Effect(42), "none"},
		{Effect(-1), "none"},
	}

	for _, tt := range tests {
		if got := tt.effect.String(); got != tt.want {
			t.Errorf("Effect(%d).String() = %q, want %q", int(tt.effect), got, tt.want)
		}
	}
}

func TestParseFallback(t *testing.T) {
	for _, token := range []string{"unknown-token", "", "Rainbow", "RAINBOW", " rainbow", "colorloop"} {
		if got := Parse(token); got != None {
			t.Errorf("Parse(%q) = %v, want None", token, got)
		}
	}
}

func TestKnown(t *testing.T) {
	for _, token := range Tokens() {
		if !Known(token) {
			t.Errorf("Known(%q) = false", token)
		}
	}
	if Known("strobe") {
		t.Error(`Known("strobe") = true`)
	}
}

func TestTokens(t *testing.T) {
	want := []string{"none", "rainbow", "rainbowCycle", "laserScanner"}
	if diff := cmp.Diff(want, Tokens()); diff != "" {
		t.Errorf("Tokens() mismatch (-want +got):\n%s", diff)
	}
}

func TestJSON(t *testing.T) {
	type state struct {
		Effect Effect `json:"effect"`
	}

	data, err := json.Marshal(state{Effect: RainbowCycle})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `{"effect":"rainbowCycle"}` {
		t.Errorf("Marshal = %s", data)
	}

	var got state
	if err := json.Unmarshal([]byte(`{"effect":"sparkle"}`), &got); err != nil {
		t.Fatalf("Unmarshal of unknown token should not fail: %v", err)
	}
	if got.Effect != None {
		t.Errorf("Unmarshal unknown token = %v, want None", got.Effect)
	}
}

func TestDirection(t *testing.T) {
	if Left.String() != "left" || Right.String() != "right" {
		t.Errorf("unexpected direction strings %q %q", Left, Right)
	}
	if ParseDirection("right") != Right {
		t.Error(`ParseDirection("right") != Right`)
	}
	if ParseDirection("up") != Left {
		t.Error(`ParseDirection("up") should fall back to Left`)
	}
	if Left.Reverse() != Right || Right.Reverse() != Left {
		t.Error("Reverse did not flip direction")
	}
}
