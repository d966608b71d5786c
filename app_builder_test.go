package universe

import (
	"bytes"
	"testing"

	"github.com/gekko3d/universe/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockModule struct {
	installed bool
}

func (m *MockModule) Install(app *App, commands *Commands) {
	m.installed = true
}

type MockModule2 struct {
	installed bool
}

func (m *MockModule2) Install(app *App, commands *Commands) {
	m.installed = true
}

func TestAppBuilder_Defaults(t *testing.T) {
	app := NewAppBuilder().WithLogOutput(&bytes.Buffer{}).Build()

	cfg, ok := Resource[Config](app)
	require.True(t, ok)
	assert.Equal(t, DefaultConfig(), cfg)

	for name, found := range map[string]bool{
		"Time":        has[Time](app),
		"FrameClock":  has[FrameClock](app),
		"AssetServer": has[AssetServer](app),
		"Letter":      has[Letter](app),
		"Universe":    has[Universe](app),
		"Graph":       has[scene.Graph](app),
		"RenderStats": has[RenderStats](app),
	} {
		assert.True(t, found, "missing resource %s", name)
	}
	assert.Equal(t, ScreenBouquet, app.Screen())
}

func TestAppBuilder_UseModule(t *testing.T) {
	module1 := &MockModule{}
	module2 := &MockModule2{}

	NewAppBuilder().
		WithLogOutput(&bytes.Buffer{}).
		UseModule(module1).
		UseModule(module2).
		Build()

	assert.True(t, module1.installed)
	assert.True(t, module2.installed)
}

func TestAppBuilder_WithConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Greeting.Name = "Lan"
	cfg.Log.Prefix = "greet"

	var out bytes.Buffer
	app := NewAppBuilder().WithConfig(cfg).WithLogOutput(&out).Build()

	letter, _ := Resource[Letter](app)
	assert.Equal(t, "Lan", letter.Name)
	assert.Contains(t, out.String(), "[greet]")
}

func TestAppBuilder_WithRenderer(t *testing.T) {
	rec := scene.NewRecorder()
	app := NewAppBuilder().WithRenderer(rec).WithLogOutput(&bytes.Buffer{}).Build()

	app.Step(0)
	app.Step(0)
	assert.Equal(t, 2, rec.Frames)

	stats, _ := Resource[RenderStats](app)
	assert.Equal(t, 2, stats.Frames)
	assert.Zero(t, stats.Drawn, "nothing is mounted on the bouquet screen")
}

func has[T any](app *App) bool {
	_, ok := Resource[T](app)
	return ok
}
