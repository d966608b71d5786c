package universe

import (
	"io"

	"github.com/gekko3d/universe/scene"
)

// AppBuilder assembles the greeting app from a Config.
type AppBuilder struct {
	app       *App
	config    *Config
	resolver  TextureResolver
	renderer  scene.Renderer
	logOutput io.Writer
	modules   []Module
}

func NewAppBuilder() *AppBuilder {
	return &AppBuilder{app: NewApp(), config: DefaultConfig()}
}

func (b *AppBuilder) WithConfig(cfg *Config) *AppBuilder {
	b.config = cfg
	return b
}

func (b *AppBuilder) WithResolver(r TextureResolver) *AppBuilder {
	b.resolver = r
	return b
}

func (b *AppBuilder) WithRenderer(r scene.Renderer) *AppBuilder {
	b.renderer = r
	return b
}

func (b *AppBuilder) WithLogOutput(w io.Writer) *AppBuilder {
	b.logOutput = w
	return b
}

// UseModule adds modules installed after the built-in ones.
func (b *AppBuilder) UseModule(modules ...Module) *AppBuilder {
	b.modules = append(b.modules, modules...)

	return b
}

func (b *AppBuilder) Build() *App {
	cfg := b.config
	renderer := b.renderer
	if renderer == nil {
		renderer = scene.NewRecorder()
	}

	app := b.app
	app.UseModules(
		LoggingModule{Prefix: cfg.Log.Prefix, Debug: cfg.Log.Debug, Output: b.logOutput},
		TimeModule{},
		AssetServerModule{Resolver: b.resolver},
		BouquetModule{Greeting: cfg.Greeting},
		LetterModule{Greeting: cfg.Greeting, Letter: cfg.Letter},
		UniverseModule{Config: cfg.Universe, Greeting: cfg.Greeting},
		RenderModule{Name: "default", Renderer: renderer},
	)
	app.Commands().AddResources(cfg)
	app.UseModules(b.modules...)

	return app
}
