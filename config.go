package circlegarden

import (
	"encoding/json"
	"errors"
	"fmt"
)

// SceneDescriptor describes a scene to be created. It is consumed once by
// DynamicTextures and its fields are copied into the resulting Scene.
type SceneDescriptor struct {
	Name       string
	Variant    Variant
	Size       int // surface width and height in pixels
	StartColor HSL
	Background Color
}

// Validate reports whether the descriptor can be processed.
func (d SceneDescriptor) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidDescriptor)
	}
	if d.Size <= 0 {
		return fmt.Errorf("%w: scene %q: size %d", ErrInvalidDescriptor, d.Name, d.Size)
	}
	if d.Variant != PackAndFreeze && d.Variant != PackAndAnimate {
		return fmt.Errorf("%w: scene %q: %v", ErrInvalidDescriptor, d.Name, d.Variant)
	}
	return nil
}

// Built-in scenes.
var (
	RedMonster = SceneDescriptor{
		Name:       "red_256",
		Variant:    PackAndAnimate,
		Size:       256,
		StartColor: HSL{H: 0.1, S: 0.8, L: 0.7},
		Background: Color{R: 0.5, G: 0, B: 0, A: 1}, // maroon
	}
	GreenMonster = SceneDescriptor{
		Name:       "green_512",
		Variant:    PackAndAnimate,
		Size:       512,
		StartColor: HSL{H: 0.4, S: 0.8, L: 0.6},
		Background: Color{R: 0.196, G: 0.804, B: 0.196, A: 1}, // lime green
	}
)

// descriptorJSON is the on-disk form of a SceneDescriptor.
type descriptorJSON struct {
	Name       string  `json:"name"`
	Variant    Variant `json:"variant"`
	Size       int     `json:"size"`
	StartColor HSL     `json:"startColor"`
	Background string  `json:"background,omitempty"`
}

// descriptorTable is the top-level JSON structure of a descriptor file.
type descriptorTable struct {
	Scenes []descriptorJSON `json:"scenes"`
}

// LoadDescriptors parses a JSON scene table:
//
//	{"scenes": [
//	  {"name": "red_256", "variant": "PackAndAnimate", "size": 256,
//	   "startColor": {"h": 0.1, "s": 0.8, "l": 0.7}, "background": "#800000"}
//	]}
//
// A missing background is black. Every descriptor is validated and names
// must be unique.
func LoadDescriptors(jsonData []byte) ([]SceneDescriptor, error) {
	var table descriptorTable
	if err := json.Unmarshal(jsonData, &table); err != nil {
		return nil, fmt.Errorf("parse scene table: %w", err)
	}
	if len(table.Scenes) == 0 {
		return nil, errors.New("parse scene table: no scenes")
	}

	seen := make(map[string]struct{}, len(table.Scenes))
	out := make([]SceneDescriptor, 0, len(table.Scenes))
	for i, sj := range table.Scenes {
		d := SceneDescriptor{
			Name:       sj.Name,
			Variant:    sj.Variant,
			Size:       sj.Size,
			StartColor: sj.StartColor,
			Background: ColorBlack,
		}
		if sj.Background != "" {
			bg, err := ParseHexColor(sj.Background)
			if err != nil {
				return nil, fmt.Errorf("parse scene table: scene %d: %w", i, err)
			}
			d.Background = bg
		}
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("parse scene table: scene %d: %w", i, err)
		}
		if _, dup := seen[d.Name]; dup {
			return nil, fmt.Errorf("parse scene table: %w: %q", ErrDuplicateScene, d.Name)
		}
		seen[d.Name] = struct{}{}
		out = append(out, d)
	}
	return out, nil
}
