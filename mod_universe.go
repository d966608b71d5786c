package universe

import (
	"fmt"
	"math"
	"strings"

	"github.com/gekko3d/universe/scene"
	"github.com/go-gl/mathgl/mgl32"
)

// Universe is the mounted 3D scene: a glowing planet circled by a ring and
// a belt of photo billboards. It is rebuilt every time the universe
// screen is entered.
type Universe struct {
	// Name is who the universe is dedicated to; Title and Subtitle are the
	// caption shown over the canvas.
	Name     string
	Title    string
	Subtitle string

	Root   *scene.Node
	Planet *scene.Node
	Ring   *scene.Node
	Belt   *scene.Node

	Billboards []*Billboard
	Animators  []*OrbitAnimator
	Camera     *scene.OrbitControls

	cfg      UniverseConfig
	imageRef string
	layouts  *LayoutCache

	mounted  bool
	attached bool
	texture  *TextureHandle
	err      error
	subs     []SubscriptionId
}

func NewUniverse(cfg UniverseConfig, greeting GreetingConfig) *Universe {
	return &Universe{
		Name:     greeting.Name,
		Title:    strings.TrimSpace(cfg.TitlePrefix + " " + greeting.Name),
		Subtitle: cfg.Subtitle,
		cfg:      cfg,
		imageRef: greeting.ImageRef,
		layouts:  NewLayoutCache(),
	}
}

func (u *Universe) Mounted() bool {
	return u.mounted
}

// Err is the texture failure of the current mount, wrapping
// ErrResourceUnavailable, or nil.
func (u *Universe) Err() error {
	return u.err
}

// BillboardCount counts billboards currently in the scene.
func (u *Universe) BillboardCount() int {
	if u.Root == nil {
		return 0
	}
	return u.Root.Count(scene.KindBillboard)
}

// Mount builds the scene under graph's root, starts the texture load and
// hooks the animators to clock.
func (u *Universe) Mount(graph *scene.Graph, assets *AssetServer, clock *FrameClock) {
	if u.mounted {
		return
	}
	cfg := u.cfg

	u.Root = scene.NewGroup("universe")
	u.Planet = buildPlanet(cfg.Planet)
	u.Ring = scene.NewGroup("ring")
	u.Belt = scene.NewGroup("belt")
	u.Belt.Transform.Position = mgl32.Vec3(cfg.Belt.Offset)

	u.Root.Add(buildLights()...)
	u.Root.Add(buildStars(cfg.Stars), u.Planet, u.Ring, u.Belt)
	graph.Root.Add(u.Root)

	graph.Environment = scene.Environment{
		Background: hexColor(cfg.Background),
		Fog: scene.Fog{
			Color: hexColor(cfg.FogColor),
			Near:  cfg.FogNear,
			Far:   cfg.FogFar,
		},
	}

	cam := cfg.Camera
	u.Camera = scene.NewOrbitControls(mgl32.Vec3(cam.Position), mgl32.Vec3{}, cam.Fov)
	u.Camera.MinDistance = cam.MinDistance
	u.Camera.MaxDistance = cam.MaxDistance
	u.Camera.AutoRotate = cam.AutoRotate
	u.Camera.AutoRotateSpeed = cam.AutoRotateSpeed
	u.Camera.Update(0)
	graph.Camera = u.Camera

	u.Animators = []*OrbitAnimator{
		NewOrbitAnimator(u.Planet, cfg.Planet.AngularVelocity),
		NewOrbitAnimator(u.Ring, cfg.Ring.AngularVelocity),
		NewOrbitAnimator(u.Belt, cfg.Belt.AngularVelocity),
	}
	for _, a := range u.Animators {
		u.subs = append(u.subs, clock.Subscribe(a.Tick))
	}
	u.subs = append(u.subs, clock.Subscribe(u.Camera.Update))

	u.err = nil
	u.attached = false
	u.texture = assets.RequestTexture(u.imageRef)
	u.mounted = true
}

// AttachBillboards adds the ring and belt billboards once the shared
// texture is ready. It reports whether the billboards are in the scene.
// A failed load is recorded in Err and leaves the planet on its own.
func (u *Universe) AttachBillboards(logger Logger) bool {
	if !u.mounted || u.attached {
		return u.attached
	}
	if u.err != nil {
		return false
	}

	status, tex, err := u.texture.Poll()
	switch status {
	case TexturePending:
		return false
	case TextureFailed:
		u.err = err
		logger.Errorf("universe: no billboards: %v", err)
		return false
	}

	ring := u.layouts.Ring(u.cfg.Ring.Params())
	for i, p := range ring {
		u.Ring.Add(u.place(fmt.Sprintf("ring-%02d", i), tex, u.cfg.Ring.Width, p))
	}
	belt := u.layouts.Belt(u.cfg.Belt.Params())
	for i, p := range belt {
		u.Belt.Add(u.place(fmt.Sprintf("belt-%02d", i), tex, u.cfg.Belt.Width, p))
	}
	u.attached = true
	logger.Infof("universe: %d ring and %d belt billboards (%dx%d)", len(ring), len(belt), tex.Width, tex.Height)
	return true
}

func (u *Universe) place(name string, tex *scene.Texture, width float32, p Placement) *scene.Node {
	b := NewBillboard(name, tex, width)
	b.Node.Transform.Position = p.Position
	b.Node.SetYaw(p.Yaw)
	u.Billboards = append(u.Billboards, b)
	return b.Node
}

// Unmount removes the scene and stops its animators. The next Mount
// starts from fresh rotation states.
func (u *Universe) Unmount(graph *scene.Graph, clock *FrameClock) {
	if !u.mounted {
		return
	}
	for _, id := range u.subs {
		clock.Unsubscribe(id)
	}
	u.subs = nil
	u.Root.Detach()
	if graph.Camera == u.Camera {
		graph.Camera = nil
	}
	graph.Environment = scene.Environment{}

	u.Root, u.Planet, u.Ring, u.Belt = nil, nil, nil, nil
	u.Billboards = nil
	u.Animators = nil
	u.Camera = nil
	u.texture = nil
	u.attached = false
	u.mounted = false
}

func buildPlanet(cfg PlanetConfig) *scene.Node {
	stops := make([]scene.GradientStop, 0, len(cfg.GradientStops))
	for i, offset := range cfg.GradientStops {
		if i >= len(cfg.GradientColors) {
			break
		}
		stops = append(stops, scene.GradientStop{Offset: offset, Color: hexColor(cfg.GradientColors[i])})
	}

	core := scene.NewMesh("planet-core",
		scene.SphereGeometry{Radius: cfg.Radius, WidthSegments: 64, HeightSegments: 64},
		scene.Material{
			Kind:            scene.MaterialStandard,
			Color:           scene.White,
			Opacity:         1,
			Roughness:       0.15,
			Metalness:       0.7,
			EnvMapIntensity: 1.4,
			Gradient:        scene.NewGradient(stops...),
		})

	glow := scene.NewMesh("planet-glow",
		scene.SphereGeometry{Radius: cfg.ShellRadius, WidthSegments: 64, HeightSegments: 64},
		scene.FresnelMaterial(hexColor(cfg.FresnelColor), cfg.FresnelPower))

	halo := scene.TorusGeometry{Radius: cfg.HaloRadius, Tube: cfg.HaloTube, RadialSegments: 32, TubularSegments: 220}
	haloA := scene.NewMesh("halo-a", halo, scene.BasicMaterial(scene.White, 0.9))
	haloA.Transform.Rotation = scene.EulerXYZ(math.Pi/2.6, 0, 0)
	haloB := scene.NewMesh("halo-b", halo, scene.BasicMaterial(hexColor("#e0f2fe"), 0.6))
	haloB.Transform.Rotation = scene.EulerXYZ(math.Pi/2.6, 0, math.Pi/4)

	return scene.NewGroup("planet").Add(core, glow, haloA, haloB)
}

func buildLights() []*scene.Node {
	sun := scene.NewLight("key-light", scene.Light{Kind: scene.LightDirectional, Color: hexColor("#ffccdd"), Intensity: 1.2})
	sun.Transform.Position = mgl32.Vec3{5, 5, 5}
	rim := scene.NewLight("rim-light", scene.Light{Kind: scene.LightPoint, Color: hexColor("#88ccff"), Intensity: 0.6})
	rim.Transform.Position = mgl32.Vec3{-4, -2, -6}

	return []*scene.Node{
		scene.NewLight("ambient", scene.Light{Kind: scene.LightAmbient, Color: scene.White, Intensity: 0.45}),
		sun,
		rim,
		scene.NewLight("fill", scene.Light{Kind: scene.LightAmbient, Color: scene.White, Intensity: 0.25}),
	}
}

// StarPositions scatters count stars in a shell starting at radius and
// depth thick. Positions come from Noise, so the sky is the same on every
// mount.
func StarPositions(count int, radius, depth float32) []mgl32.Vec3 {
	if count <= 0 {
		return nil
	}
	out := make([]mgl32.Vec3, count)
	for i := range out {
		r := float64(radius) + float64(depth)*Noise(3*i)
		theta := 2 * math.Pi * Noise(3*i+1)
		phi := math.Acos(2*Noise(3*i+2) - 1)
		sinPhi, cosPhi := math.Sincos(phi)
		sinTheta, cosTheta := math.Sincos(theta)
		out[i] = mgl32.Vec3{
			float32(r * sinPhi * cosTheta),
			float32(r * cosPhi),
			float32(r * sinPhi * sinTheta),
		}
	}
	return out
}

func buildStars(cfg StarsConfig) *scene.Node {
	return scene.NewPoints("stars", StarPositions(cfg.Count, cfg.Radius, cfg.Depth), scene.Material{
		Kind:        scene.MaterialPoints,
		Color:       scene.White,
		Opacity:     1,
		Transparent: true,
		PointSize:   3,
	})
}

// UniverseModule mounts the universe when its screen is entered and tears
// it down when it is left.
type UniverseModule struct {
	Config   UniverseConfig
	Greeting GreetingConfig
}

func (m UniverseModule) Install(app *App, cmd *Commands) {
	ensureGraph(app)
	cmd.AddResources(NewUniverse(m.Config, m.Greeting))

	app.UseSystem(System(mountUniverseSystem).InScreen(OnEnter(ScreenUniverse)))
	app.UseSystem(System(attachBillboardsSystem).InStage(PreUpdate).InScreen(OnExecute(ScreenUniverse)))
	app.UseSystem(System(unmountUniverseSystem).InScreen(OnExit(ScreenUniverse)))
}

func mountUniverseSystem(cmd *Commands, u *Universe, graph *scene.Graph, assets *AssetServer, clock *FrameClock) {
	u.Mount(graph, assets, clock)
	cmd.Logger().Infof("universe: %q mounted, waiting for %s", u.Title, u.imageRef)
	u.AttachBillboards(cmd.Logger())
}

func attachBillboardsSystem(cmd *Commands, u *Universe) {
	u.AttachBillboards(cmd.Logger())
}

func unmountUniverseSystem(cmd *Commands, u *Universe, graph *scene.Graph, clock *FrameClock) {
	u.Unmount(graph, clock)
	cmd.Logger().Debugf("universe: unmounted")
}
