package layout

import "github.com/iburimskiy/celestial-scene/internal/vmath"

// Anchor is the text block alignment relative to its position
type Anchor struct {
	X string `yaml:"x"` // left | center | right
	Y string `yaml:"y"` // top | middle | bottom
}

// Scales holds per-entity scale factors
type Scales struct {
	Avatar     float64    `yaml:"avatar"`
	Text       float64    `yaml:"text"`
	SocialIcon float64    `yaml:"social_icon"`
	Moon       float64    `yaml:"moon"`
	Sun        vmath.Vec3 `yaml:"sun"`
	Slider     float64    `yaml:"slider"`
}

// Row is a repeatable layout: item i sits at Origin + i*Step
type Row struct {
	Origin vmath.Vec3 `yaml:"origin"`
	Step   vmath.Vec3 `yaml:"step"`
}

// At returns the position of item i
func (r Row) At(i int) vmath.Vec3 {
	return r.Origin.Add(r.Step.Scale(float64(i)))
}

// Positions holds the base positions of the persistent entities
type Positions struct {
	Text           vmath.Vec3 `yaml:"text"`
	Avatar         vmath.Vec3 `yaml:"avatar"`
	SocialIcons    Row        `yaml:"social_icons"`
	GlowSlider     vmath.Vec3 `yaml:"glow_slider"`
	DarknessSlider vmath.Vec3 `yaml:"darkness_slider"`
	Moon           vmath.Vec3 `yaml:"moon"`
	Sun            vmath.Vec3 `yaml:"sun"`
}

// Camera adds orbit distance limits to the projection camera
type Camera struct {
	vmath.Camera `yaml:",inline"`
	MinDistance  float64 `yaml:"min_distance"`
	MaxDistance  float64 `yaml:"max_distance"`
}

// ClampDistance limits an orbit distance to the camera's range
func (c Camera) ClampDistance(d float64) float64 {
	if d < c.MinDistance {
		return c.MinDistance
	}
	if d > c.MaxDistance {
		return c.MaxDistance
	}
	return d
}

// Configuration is the complete layout for one size class
// Values are immutable once produced; the scene replaces the whole record on a class change
type Configuration struct {
	Class       SizeClass `yaml:"-"`
	Scales      Scales    `yaml:"scales"`
	Positions   Positions `yaml:"positions"`
	Camera      Camera    `yaml:"camera"`
	StarCount   int       `yaml:"star_count"`
	ShowSliders bool      `yaml:"show_sliders"`
	TextAnchor  Anchor    `yaml:"text_anchor"`
}

// SocialIconPosition is the position generator for the icon row
func (c Configuration) SocialIconPosition(index int) vmath.Vec3 {
	return c.Positions.SocialIcons.At(index)
}

// Origin is the top-left corner of a w×h block aligned at (x, y)
func (a Anchor) Origin(x, y, w, h float64) (float64, float64) {
	switch a.X {
	case "center":
		x -= w / 2
	case "right":
		x -= w
	}
	switch a.Y {
	case "middle":
		y -= h / 2
	case "bottom":
		y -= h
	}
	return x, y
}
