package injector

import (
	"fmt"
	"os"

	"github.com/google/wire"

	"github.com/iburimskiy/celestial-scene/internal/clock"
	"github.com/iburimskiy/celestial-scene/internal/config"
	"github.com/iburimskiy/celestial-scene/internal/layout"
	"github.com/iburimskiy/celestial-scene/internal/log"
	"github.com/iburimskiy/celestial-scene/internal/param"
	"github.com/iburimskiy/celestial-scene/internal/scene"
	"github.com/iburimskiy/celestial-scene/internal/stars"
)

// App is everything a host needs to run
type App struct {
	Settings config.Settings
	Log      *log.Logger
	Scene    *scene.Scene
}

var ProviderSet = wire.NewSet(
	ProvideLogger,
	wire.Bind(new(log.Log), new(*log.Logger)),
	ProvideResolver,
	ProvideStore,
	ProvideClock,
	ProvideGenerator,
	ProvideOptions,
	scene.New,
)

func ProvideLogger(s config.Settings) (*log.Logger, error) {
	level, err := log.ParseLevel(s.Log.Level)
	if err != nil {
		return nil, err
	}
	return log.New(log.Options{Level: level, Encoding: s.Log.Encoding, Output: s.Log.Output})
}

// ProvideResolver builds the layout table, applying the configured override file
func ProvideResolver(s config.Settings) (*layout.Resolver, error) {
	table := layout.DefaultTable()
	if path := s.Scene.LayoutFile; path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		if table, err = layout.LoadTable(f, table); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	return layout.NewResolver(table)
}

func ProvideStore(s config.Settings) (*param.Store, error) {
	return param.NewStore(s.Params)
}

func ProvideClock(s config.Settings) *clock.Clock {
	return clock.New(s.Scene.MaxFrameDelta)
}

func ProvideGenerator(s config.Settings) *stars.Generator {
	return stars.NewGenerator(s.Scene.Seed)
}

func ProvideOptions(s config.Settings, nav scene.NavigateFunc) scene.Options {
	return scene.Options{
		Width:          s.Window.Width,
		Height:         s.Window.Height,
		Workers:        s.Scene.Workers,
		NavigateTarget: s.Scene.NavigateTarget,
		Navigate:       nav,
	}
}
