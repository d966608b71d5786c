package universe

import (
	"fmt"
	"slices"
)

type Stage struct {
	Name string
}

var (
	Prelude    = Stage{Name: "Prelude"}
	PreUpdate  = Stage{Name: "PreUpdate"}
	Update     = Stage{Name: "Update"}
	PostUpdate = Stage{Name: "PostUpdate"}
	Render     = Stage{Name: "Render"}
	Finale     = Stage{Name: "Finale"}
)

var defaultStages = []Stage{Prelude, PreUpdate, Update, PostUpdate, Render, Finale}

type screenPhase int

const (
	enter   screenPhase = 0
	execute screenPhase = 1
	exit    screenPhase = 2
)

type systemScheduleBuilder struct {
	inStage        Stage
	runAlways      bool
	inScreen       Screen
	inPhase        screenPhase
	system         systemFn
	screenProvided bool
}

type screenScheduleBuilder struct {
	screen Screen
	phase  screenPhase
}

func OnEnter(screen Screen) screenScheduleBuilder {
	return screenScheduleBuilder{screen: screen, phase: enter}
}

func OnExecute(screen Screen) screenScheduleBuilder {
	return screenScheduleBuilder{screen: screen, phase: execute}
}

func OnExit(screen Screen) screenScheduleBuilder {
	return screenScheduleBuilder{screen: screen, phase: exit}
}

func (sched systemScheduleBuilder) InStage(s Stage) systemScheduleBuilder {
	sched.inStage = s
	return sched
}

func (sched systemScheduleBuilder) InScreen(s screenScheduleBuilder) systemScheduleBuilder {
	sched.inScreen = s.screen
	sched.inPhase = s.phase
	sched.screenProvided = true
	return sched
}

func (sched systemScheduleBuilder) RunAlways() systemScheduleBuilder {
	sched.runAlways = true
	return sched
}

// System wraps a function whose pointer arguments are resolved from the
// app's resources (or *Commands) each time it runs. It defaults to the
// Update stage.
func System(system systemFn) systemScheduleBuilder {
	return systemScheduleBuilder{
		system:  system,
		inStage: Update,
	}
}

type stagePosition int

const (
	stageBefore stagePosition = iota
	stageAfter
)

type stagePositionBuilder struct {
	position stagePosition
	target   Stage
}

func BeforeStage(s Stage) stagePositionBuilder {
	return stagePositionBuilder{
		position: stageBefore,
		target:   s,
	}
}

func AfterStage(s Stage) stagePositionBuilder {
	return stagePositionBuilder{
		position: stageAfter,
		target:   s,
	}
}

func (app *App) UseStage(stage Stage, where stagePositionBuilder) *App {
	stageIdx := slices.IndexFunc(app.stages, func(s Stage) bool { return s.Name == where.target.Name })
	if -1 == stageIdx {
		panic(fmt.Sprintf("Stage %v not found", where.target.Name))
	}

	insertAt := stageIdx
	if stageAfter == where.position {
		insertAt = stageIdx + 1
	}

	app.stages = slices.Insert(app.stages, insertAt, stage)
	app.initStage(stage)

	return app
}

func (app *App) UseSystem(system systemScheduleBuilder) *App {
	if system.runAlways || !system.screenProvided {
		if _, ok := app.systemsStateless[system.inStage.Name]; ok {
			app.systemsStateless[system.inStage.Name] = append(app.systemsStateless[system.inStage.Name], system.system)
			return app
		}
		panic(fmt.Sprintf("Stage %v doesn't exist", system.inStage.Name))
	}

	systemsInStage, ok := app.systems[system.inStage.Name]
	if !ok {
		panic(fmt.Sprintf("Stage %v doesn't exist", system.inStage.Name))
	}
	systemsInScreen, ok := systemsInStage[system.inScreen]
	if !ok {
		panic(fmt.Sprintf("Screen %v doesn't exist", system.inScreen))
	}
	systemsInScreen[system.inPhase] = append(systemsInScreen[system.inPhase], system.system)
	return app
}

func (app *App) initStage(stage Stage) {
	app.systemsStateless[stage.Name] = make([]systemFn, 0)

	app.systems[stage.Name] = make(map[Screen]map[screenPhase][]systemFn)
	for _, screen := range screens {
		app.systems[stage.Name][screen] = map[screenPhase][]systemFn{
			enter:   {},
			execute: {},
			exit:    {},
		}
	}
}
