package circlegarden

import (
	"errors"
	"strings"
	"testing"
)

func TestLoadDescriptors(t *testing.T) {
	data := []byte(`{"scenes": [
		{"name": "red_256", "variant": "PackAndAnimate", "size": 256,
		 "startColor": {"h": 0.1, "s": 0.8, "l": 0.7}, "background": "#800000"},
		{"name": "plain", "variant": "circles1", "size": 128,
		 "startColor": {"h": 200, "s": 0.5, "l": 0.5}}
	]}`)

	descs, err := LoadDescriptors(data)
	if err != nil {
		t.Fatalf("LoadDescriptors: %v", err)
	}
	if len(descs) != 2 {
		t.Fatalf("len = %d, want 2", len(descs))
	}

	red := descs[0]
	if red.Name != "red_256" || red.Variant != PackAndAnimate || red.Size != 256 {
		t.Errorf("red = %+v", red)
	}
	if red.StartColor != (HSL{H: 0.1, S: 0.8, L: 0.7}) {
		t.Errorf("red start color = %v", red.StartColor)
	}
	if !colorNear(red.Background, Color{R: 128.0 / 255, A: 1}, 1e-9) {
		t.Errorf("red background = %+v, want maroon", red.Background)
	}

	plain := descs[1]
	if plain.Variant != PackAndFreeze {
		t.Errorf("plain variant = %v, want PackAndFreeze", plain.Variant)
	}
	if plain.Background != ColorBlack {
		t.Errorf("plain background = %+v, want black", plain.Background)
	}
}

func TestLoadDescriptorsErrors(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		wantErr string
	}{
		{"invalid json", `{`, "parse scene table"},
		{"no scenes", `{"scenes": []}`, "no scenes"},
		{"unknown variant", `{"scenes": [{"name": "a", "variant": "spiral", "size": 8}]}`, "unknown scene variant"},
		{"missing variant", `{"scenes": [{"name": "a", "size": 8}]}`, "invalid scene descriptor"},
		{"bad size", `{"scenes": [{"name": "a", "variant": "freeze", "size": 0}]}`, "invalid scene descriptor"},
		{"bad background", `{"scenes": [{"name": "a", "variant": "freeze", "size": 8, "background": "#zz"}]}`, "parse color"},
		{"duplicate", `{"scenes": [
			{"name": "a", "variant": "freeze", "size": 8},
			{"name": "a", "variant": "animate", "size": 8}]}`, "duplicate scene"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadDescriptors([]byte(tt.json))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadDescriptorsDuplicateIsSentinel(t *testing.T) {
	_, err := LoadDescriptors([]byte(`{"scenes": [
		{"name": "a", "variant": "freeze", "size": 8},
		{"name": "a", "variant": "freeze", "size": 8}]}`))
	if !errors.Is(err, ErrDuplicateScene) {
		t.Errorf("err = %v, want ErrDuplicateScene", err)
	}
}

func TestBuiltinDescriptorsValid(t *testing.T) {
	for _, d := range []SceneDescriptor{RedMonster, GreenMonster} {
		if err := d.Validate(); err != nil {
			t.Errorf("%s: %v", d.Name, err)
		}
	}
}
