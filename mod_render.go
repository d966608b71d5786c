package universe

import (
	"fmt"

	"github.com/gekko3d/universe/scene"
)

// RendererTag marks that a renderer has been installed into the App.
// Only one renderer should be installed at a time.
type RendererTag struct {
	Name string
}

// RenderStats describes the last drawn frame.
type RenderStats struct {
	Frames int
	Drawn  int
}

type renderTarget struct {
	renderer scene.Renderer
}

// ensureSingleRenderer enforces a single renderer invariant.
func ensureSingleRenderer(app *App, name string) {
	if tag, ok := Resource[RendererTag](app); ok {
		if tag.Name != name {
			app.Logger().Errorf("Multiple renderers installed: %s and %s", tag.Name, name)
			panic(fmt.Sprintf("Multiple renderers installed: %s and %s", tag.Name, name))
		}
		return
	}
	app.addResources(&RendererTag{Name: name})
}

// ensureGraph guarantees a single shared scene graph resource exists.
func ensureGraph(app *App) *scene.Graph {
	if graph, ok := Resource[scene.Graph](app); ok {
		return graph
	}
	graph := scene.NewGraph()
	app.addResources(graph)
	return graph
}

// RenderModule draws the shared scene graph with Renderer once per frame
// in the Render stage.
type RenderModule struct {
	Name     string
	Renderer scene.Renderer
}

func (m RenderModule) Install(app *App, cmd *Commands) {
	name := m.Name
	if name == "" {
		name = fmt.Sprintf("%T", m.Renderer)
	}
	ensureSingleRenderer(app, name)
	ensureGraph(app)
	cmd.AddResources(&renderTarget{renderer: m.Renderer}, &RenderStats{})

	app.UseSystem(System(renderSystem).InStage(Render).RunAlways())
	app.Logger().Infof("Renderer selected: %s", name)
}

// UseRenderer installs r as the app's only renderer.
func (app *App) UseRenderer(name string, r scene.Renderer) *App {
	return app.UseModules(RenderModule{Name: name, Renderer: r})
}

func renderSystem(graph *scene.Graph, target *renderTarget, stats *RenderStats) {
	stats.Drawn = graph.Draw(target.renderer)
	stats.Frames++
}
