package gizmo

import (
	"encoding/json"
	"fmt"
	"os"
)

// AxisMask bits permanently disable an axis.
const (
	MaskX uint8 = 1 << iota
	MaskY
	MaskZ
)

// Config holds the tunables shared by every gizmo drawn through a Context.
type Config struct {
	// Length of a unit handle in clip space, independent of distance.
	GizmoSizeClipSpace float32 `json:"gizmo_size_clip_space"`
	// Minimum clip-space length of an axis handle before it is hidden.
	AxisVisibilityLimit float32 `json:"axis_visibility_limit"`
	// Minimum clip-space area of a plane handle before it is hidden.
	PlaneVisibilityLimit float32 `json:"plane_visibility_limit"`
	AxisMask             uint8   `json:"axis_mask"`
	AllowAxisFlip        bool    `json:"allow_axis_flip"`
	Orthographic         bool    `json:"orthographic"`
	// Uniform scale change per horizontal pixel of mouse travel.
	UniformScaleSensitivity float32 `json:"uniform_scale_sensitivity"`
}

func DefaultConfig() Config {
	return Config{
		GizmoSizeClipSpace:      0.1,
		AxisVisibilityLimit:     0.02,
		PlaneVisibilityLimit:    0.0025,
		UniformScaleSensitivity: 0.01,
	}
}

// LoadConfig reads a JSON config file. Fields absent from the file keep
// their DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// axisMasked reports whether axis i is disabled by the mask.
func (c Config) axisMasked(i int) bool {
	return c.AxisMask&(1<<uint(i)) != 0
}

// noAxisMasked reports an empty mask.
func (c Config) noAxisMasked() bool {
	return c.AxisMask == 0
}

// multipleAxesMasked reports more than one bit set in the mask.
func (c Config) multipleAxesMasked() bool {
	return c.AxisMask&(c.AxisMask-1) != 0
}

// soleMaskedAxis reports whether i is the only masked axis.
func (c Config) soleMaskedAxis(i int) bool {
	return c.axisMasked(i) && !c.multipleAxesMasked()
}
