package scene

import (
	"strconv"

	"github.com/iburimskiy/celestial-scene/internal/anim"
	"github.com/iburimskiy/celestial-scene/internal/layout"
	"github.com/iburimskiy/celestial-scene/internal/param"
	"github.com/iburimskiy/celestial-scene/internal/stars"
	"github.com/iburimskiy/celestial-scene/internal/vmath"
)

// Persistent entity ids
const (
	IDSun            = "sun"
	IDMoon           = "moon"
	IDAvatar         = "avatar"
	IDText           = "text"
	IDGlowSlider     = "slider-glow"
	IDDarknessSlider = "slider-darkness"
	IDNavButton      = "nav-button"
)

// SocialLink is one profile icon in the row
type SocialLink struct {
	Name string
	URL  string
}

// DefaultSocialLinks is the icon row, left to right
var DefaultSocialLinks = []SocialLink{
	{Name: "Instagram", URL: "https://instagram.com/abhinand_c"},
	{Name: "LinkedIn", URL: "https://www.linkedin.com/in/abhinandc/"},
	{Name: "GitHub", URL: "https://github.com/Abhinand2004"},
	{Name: "Facebook", URL: "https://facebook.com/abhinandc"},
}

// Greeting is the text label content
const Greeting = "Hi there!\nI'm Abhinand\n\nWelcome to my virtual dimension. What you see here is built from passion, it's personal, it's me. This space is more than a portfolio; it's a digital canvas of everything I love creating. Let's explore it together."

// Composer owns the entity population and the active configuration
type Composer struct {
	resolver *layout.Resolver
	gen      *stars.Generator

	width  int
	class  layout.SizeClass
	config layout.Configuration

	persistent []*Entity
	field      []*Entity
	byID       map[string]*Entity
}

// NewComposer creates the persistent entities and lays them out for width
func NewComposer(resolver *layout.Resolver, gen *stars.Generator, store *param.Store, links []SocialLink, width int) *Composer {
	c := &Composer{
		resolver: resolver,
		gen:      gen,
		byID:     make(map[string]*Entity),
	}

	c.add(NewEntity(IDSun, 0, KindCelestial, Constants{RotationSpeed: anim.SunRotationSpeed}))
	c.add(NewEntity(IDMoon, 0, KindMoon, Constants{}))
	c.add(NewEntity(IDAvatar, 0, KindAvatar, Constants{}))
	c.add(NewEntity(IDText, 0, KindText, Constants{Label: Greeting}))
	for i, l := range links {
		c.add(NewEntity(socialID(i), i, KindSocialIcon, Constants{Target: l.URL, Label: l.Name}))
	}
	c.add(NewEntity(IDGlowSlider, 0, KindSlider, Constants{Parameter: param.Glow, Label: store.Label(param.Glow)}))
	c.add(NewEntity(IDDarknessSlider, 1, KindSlider, Constants{Parameter: param.Darkness, Label: store.Label(param.Darkness)}))
	c.add(NewEntity(IDNavButton, 0, KindNavButton, Constants{Label: "About Me"}))

	c.width = width
	c.class, c.config = resolver.Resolve(width)
	c.layout()
	return c
}

func socialID(i int) string {
	return "social-" + strconv.Itoa(i)
}

func (c *Composer) add(e *Entity) {
	c.persistent = append(c.persistent, e)
	c.byID[e.ID] = e
}

// Resize resolves width and re-lays-out when the size class changed
// Entity identities and animation state survive the switch
func (c *Composer) Resize(width int) bool {
	c.width = width
	class, cfg := c.resolver.Resolve(width)
	if class == c.class {
		return false
	}
	c.class, c.config = class, cfg
	c.layout()
	return true
}

// SetResolver swaps the configuration table and re-applies it at the current width
func (c *Composer) SetResolver(r *layout.Resolver) {
	c.resolver = r
	c.class, c.config = r.Resolve(c.width)
	c.layout()
}

func (c *Composer) layout() {
	cfg := c.config
	sc, pos := cfg.Scales, cfg.Positions

	for _, e := range c.persistent {
		switch e.Kind {
		case KindCelestial:
			e.Placement = anim.Placement{Base: pos.Sun, Scale: sc.Sun}
		case KindMoon:
			e.Placement = anim.Placement{Base: pos.Moon, Scale: vmath.Splat(sc.Moon)}
		case KindAvatar:
			e.Placement = anim.Placement{Base: pos.Avatar, Scale: vmath.Splat(sc.Avatar)}
		case KindText:
			e.Placement = anim.Placement{Base: pos.Text, Scale: vmath.Splat(sc.Text)}
		case KindSocialIcon:
			e.Placement = anim.Placement{Base: cfg.SocialIconPosition(e.Index), Scale: vmath.Splat(sc.SocialIcon)}
		case KindSlider:
			base := pos.GlowSlider
			if e.ID == IDDarknessSlider {
				base = pos.DarknessSlider
			}
			e.Placement = anim.Placement{Base: base, Scale: vmath.Splat(sc.Slider)}
			e.Hidden = !cfg.ShowSliders
		case KindNavButton:
			e.Placement = anim.Placement{Scale: vmath.Splat(1)}
		}
	}

	field, regenerated := c.gen.Field(cfg.StarCount)
	if !regenerated && len(c.field) == len(field) {
		return
	}
	c.field = make([]*Entity, len(field))
	for i, s := range field {
		e := NewEntity("star-"+strconv.Itoa(i), i, KindStar, Constants{
			RotationSpeed: s.RotationSpeed,
			TwinkleSpeed:  s.TwinkleSpeed,
		})
		e.Placement = anim.Placement{Base: s.Position, Scale: vmath.Splat(s.Scale)}
		c.field[i] = e
	}
}

// Resolver is the active configuration table
func (c *Composer) Resolver() *layout.Resolver {
	return c.resolver
}

// Class is the active size class
func (c *Composer) Class() layout.SizeClass {
	return c.class
}

// Config is the active configuration
func (c *Composer) Config() layout.Configuration {
	return c.config
}

// Entity returns a persistent entity by id
func (c *Composer) Entity(id string) (*Entity, bool) {
	e, ok := c.byID[id]
	return e, ok
}

// Persistent returns the entities mounted for the scene's lifetime
func (c *Composer) Persistent() []*Entity {
	return c.persistent
}

// Stars returns the current star field
func (c *Composer) Stars() []*Entity {
	return c.field
}

// Each visits stars first, then persistent entities, matching draw order
func (c *Composer) Each(fn func(e *Entity)) {
	for _, e := range c.field {
		fn(e)
	}
	for _, e := range c.persistent {
		fn(e)
	}
}

// Len is the total entity count
func (c *Composer) Len() int {
	return len(c.field) + len(c.persistent)
}
