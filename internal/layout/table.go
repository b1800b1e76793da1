package layout

import (
	"errors"
	"fmt"

	"github.com/iburimskiy/celestial-scene/internal/vmath"
)

// ErrIncompleteTable is returned when a table misses a size class
var ErrIncompleteTable = errors.New("layout table incomplete")

// Table holds one Configuration per size class
type Table [len(Classes)]Configuration

// Validate checks that every class is present and usable
func (t *Table) Validate() error {
	for _, class := range Classes {
		c := t[class]
		if c.Class != class {
			return fmt.Errorf("%w: %s missing", ErrIncompleteTable, class)
		}
		if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
			return fmt.Errorf("%w: %s camera fov %v out of (0, 180)", ErrIncompleteTable, class, c.Camera.FOV)
		}
		if c.Camera.Distance() == 0 {
			return fmt.Errorf("%w: %s camera sits on its target", ErrIncompleteTable, class)
		}
		if c.StarCount < 0 {
			return fmt.Errorf("%w: %s negative star count", ErrIncompleteTable, class)
		}
		if c.Camera.MinDistance > c.Camera.MaxDistance {
			return fmt.Errorf("%w: %s camera min distance above max", ErrIncompleteTable, class)
		}
	}
	return nil
}

// DefaultTable returns the built-in responsive layout
func DefaultTable() Table {
	return Table{
		Mobile: {
			Class: Mobile,
			Scales: Scales{
				Avatar:     0.8,
				Text:       0.25,
				SocialIcon: 0.7,
				Moon:       0.6,
				Sun:        vmath.Splat(1.5),
				Slider:     0.6,
			},
			Positions: Positions{
				Text:           vmath.V3(0, -1.5, 0),
				Avatar:         vmath.V3(-0.8, 0.5, -1),
				SocialIcons:    Row{Origin: vmath.V3(-1.2, -3.2, 0), Step: vmath.V3(0.8, 0, 0)},
				GlowSlider:     vmath.V3(6, 0.5, -2),
				DarknessSlider: vmath.V3(6, -1.5, -2),
				Moon:           vmath.V3(6, 4, -12),
				Sun:            vmath.V3(8, 10, -60),
			},
			Camera: Camera{
				Camera:      vmath.Camera{Position: vmath.V3(0, 0, 10), FOV: 70},
				MinDistance: 6,
				MaxDistance: 20,
			},
			StarCount:   400,
			ShowSliders: false,
			TextAnchor:  Anchor{X: "center", Y: "bottom"},
		},
		Tablet: {
			Class: Tablet,
			Scales: Scales{
				Avatar:     1.8,
				Text:       0.35,
				SocialIcon: 0.85,
				Moon:       0.8,
				Sun:        vmath.Splat(2),
				Slider:     0.8,
			},
			Positions: Positions{
				Text:           vmath.V3(-2.5, 1.8, 0),
				Avatar:         vmath.V3(-4, -1.5, 0.3),
				SocialIcons:    Row{Origin: vmath.V3(-1, -2.8, 0), Step: vmath.V3(1, 0, 0)},
				GlowSlider:     vmath.V3(7.5, 0.8, -2),
				DarknessSlider: vmath.V3(7.5, -1.2, -2),
				Moon:           vmath.V3(8, 5, -15),
				Sun:            vmath.V3(9, 12, -70),
			},
			Camera: Camera{
				Camera:      vmath.Camera{Position: vmath.V3(0, 0, 9), FOV: 65},
				MinDistance: 4,
				MaxDistance: 15,
			},
			StarCount:   600,
			ShowSliders: true,
			TextAnchor:  Anchor{X: "left", Y: "top"},
		},
		Desktop: {
			Class: Desktop,
			Scales: Scales{
				Avatar:     3.0,
				Text:       0.5,
				SocialIcon: 1.0,
				Moon:       1.0,
				Sun:        vmath.Splat(2.5),
				Slider:     1.0,
			},
			Positions: Positions{
				Text:           vmath.V3(-4.5, 2.5, 0),
				Avatar:         vmath.V3(-6.8, -3.3, 0.5),
				SocialIcons:    Row{Origin: vmath.V3(0, -3.5, 0), Step: vmath.V3(1.2, 0, 0)},
				GlowSlider:     vmath.V3(9, 1, -2),
				DarknessSlider: vmath.V3(9, -2, -2),
				Moon:           vmath.V3(10, 6, -18),
				Sun:            vmath.V3(10, 16, -80),
			},
			Camera: Camera{
				Camera:      vmath.Camera{Position: vmath.V3(0, 0, 8), FOV: 60},
				MinDistance: 4,
				MaxDistance: 15,
			},
			StarCount:   900,
			ShowSliders: true,
			TextAnchor:  Anchor{X: "left", Y: "top"},
		},
		Large: {
			Class: Large,
			Scales: Scales{
				Avatar:     3.5,
				Text:       0.6,
				SocialIcon: 1.2,
				Moon:       1.2,
				Sun:        vmath.Splat(3),
				Slider:     1.2,
			},
			Positions: Positions{
				Text:           vmath.V3(-5.5, 3, 0),
				Avatar:         vmath.V3(-8, -4, 0.8),
				SocialIcons:    Row{Origin: vmath.V3(0, -4, 0), Step: vmath.V3(1.4, 0, 0)},
				GlowSlider:     vmath.V3(11, 1.5, -2),
				DarknessSlider: vmath.V3(11, -2.5, -2),
				Moon:           vmath.V3(12, 7, -20),
				Sun:            vmath.V3(12, 18, -90),
			},
			Camera: Camera{
				Camera:      vmath.Camera{Position: vmath.V3(0, 0, 8), FOV: 55},
				MinDistance: 4,
				MaxDistance: 15,
			},
			StarCount:   1200,
			ShowSliders: true,
			TextAnchor:  Anchor{X: "left", Y: "top"},
		},
	}
}
