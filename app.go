package universe

import (
	"context"
	"fmt"
	"reflect"
	"runtime"
	"time"
)

type systemFn any

// Module bundles resources and systems. Install runs once, when the module
// is added to the app.
type Module interface {
	Install(app *App, cmd *Commands)
}

// App drives the greeting: it owns the screen state machine, the stage
// pipeline and the resources systems are resolved against.
type App struct {
	started bool
	screen  Screen
	pending []Screen

	frameDt  time.Duration
	lastTick time.Time

	stages           []Stage
	systems          map[string]map[Screen]map[screenPhase][]systemFn
	systemsStateless map[string][]systemFn
	resources        map[reflect.Type]any
}

func NewApp() *App {
	app := &App{
		screen:           ScreenBouquet,
		systems:          make(map[string]map[Screen]map[screenPhase][]systemFn),
		systemsStateless: make(map[string][]systemFn),
		resources:        make(map[reflect.Type]any),
	}
	for _, stage := range defaultStages {
		app.stages = append(app.stages, stage)
		app.initStage(stage)
	}
	return app
}

func (app *App) Commands() *Commands {
	return &Commands{
		app: app,
	}
}

func (app *App) UseModules(modules ...Module) *App {
	cmd := app.Commands()
	for _, module := range modules {
		module.Install(app, cmd)
	}
	return app
}

// Screen returns the current screen. Transitions requested during a frame
// are applied at its end.
func (app *App) Screen() Screen {
	return app.screen
}

// Trigger requests the transition for action from the current screen, or
// from the last screen already queued this frame.
func (app *App) Trigger(action Action) error {
	return app.Commands().Trigger(action)
}

// Start enters the initial screen. Step calls it on first use.
func (app *App) Start() {
	if app.started {
		return
	}
	app.started = true
	app.Logger().Infof("entering %s", app.screen)
	app.callSystems(app.screen, enter)
}

// Step runs one frame that lasted dt.
func (app *App) Step(dt time.Duration) {
	app.Start()

	if dt < 0 {
		dt = 0
	}
	app.frameDt = dt
	app.callSystems(app.screen, execute)

	for len(app.pending) > 0 {
		next := app.pending[0]
		app.pending = app.pending[1:]
		app.executeChangeScreen(next)
	}
}

// Tick steps with the wall-clock time elapsed since the previous Tick.
func (app *App) Tick() {
	now := time.Now()
	var dt time.Duration
	if !app.lastTick.IsZero() {
		dt = now.Sub(app.lastTick)
	}
	app.lastTick = now
	app.Step(dt)
}

// Run ticks fps times per second until ctx is done. Systems stop the
// app by cancelling ctx.
func (app *App) Run(ctx context.Context, fps int) error {
	if fps <= 0 {
		return fmt.Errorf("fps must be positive, got %d", fps)
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	app.Tick()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			// a system may have cancelled ctx during the last frame
			if err := ctx.Err(); err != nil {
				return err
			}
			app.Tick()
		}
	}
}

func (app *App) callSystems(screen Screen, phase screenPhase) {
	for _, stage := range app.stages {
		// Screen-independent systems only run on execute
		if execute == phase {
			for _, system := range app.systemsStateless[stage.Name] {
				app.callSystem(system)
			}
		}

		if systemsInStage, ok := app.systems[stage.Name]; ok {
			for _, system := range systemsInStage[screen][phase] {
				app.callSystem(system)
			}
		}
	}
}

func (app *App) changeScreen(next Screen) {
	app.pending = append(app.pending, next)
}

func (app *App) executeChangeScreen(next Screen) {
	app.Logger().Infof("screen %s -> %s", app.screen, next)
	app.callSystems(app.screen, exit)
	app.screen = next
	app.callSystems(app.screen, enter)
}

func (app *App) addResources(resources ...any) *App {
	for _, resource := range resources {
		resourceType := reflect.TypeOf(resource)
		if resourceType.Kind() != reflect.Ptr {
			panic(fmt.Sprintf("resource %s must be a pointer", resourceType))
		}
		if _, ok := app.resources[resourceType.Elem()]; ok {
			panic(fmt.Sprintf("%s is already in resources", resourceType))
		}

		app.resources[resourceType.Elem()] = resource
	}
	return app
}

// Resource returns the app's resource of type T.
func Resource[T any](app *App) (*T, bool) {
	res, ok := app.resources[reflect.TypeOf((*T)(nil)).Elem()]
	if !ok {
		return nil, false
	}
	typed, ok := res.(*T)
	return typed, ok
}

var typeOfCommands = reflect.TypeOf(Commands{})

func (app *App) callSystem(system systemFn) {
	systemType := reflect.TypeOf(system)
	systemValue := reflect.ValueOf(system)

	args := make([]reflect.Value, systemType.NumIn())

	for i := 0; i < systemType.NumIn(); i++ {
		argType := systemType.In(i)
		if argType.Kind() != reflect.Ptr {
			app.unresolved(systemValue, systemType, argType)
		}
		underlyingType := argType.Elem()

		if underlyingType == typeOfCommands {
			args[i] = reflect.ValueOf(&Commands{app: app})
		} else if resource, argIsResource := app.resources[underlyingType]; argIsResource {
			args[i] = reflect.ValueOf(resource)
		} else {
			app.unresolved(systemValue, systemType, argType)
		}
	}
	systemValue.Call(args)
}

func (app *App) unresolved(systemValue reflect.Value, systemType, argType reflect.Type) {
	msg := fmt.Sprintf("Unable to resolve System dependency.\nSystem: %s\nSystem type: %s\nDependency: %s",
		runtime.FuncForPC(systemValue.Pointer()).Name(),
		fmt.Sprint(systemType),
		fmt.Sprint(argType),
	)
	app.Logger().Errorf("%s", msg)
	panic(msg)
}
