package universe

import (
	"time"
)

type Time struct {
	Time  time.Time
	Dt    time.Duration
	Frame uint64
}

// Seconds returns the last frame's duration in seconds.
func (t *Time) Seconds() float32 {
	return float32(t.Dt.Seconds())
}

// TimeModule installs the Time and FrameClock resources. Time advances in
// the Prelude stage; clock subscribers run in Update.
type TimeModule struct {
}

func (mod TimeModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(&Time{
		Time: time.Now(),
		Dt:   0,
	})
	cmd.AddResources(NewFrameClock())
	app.UseSystem(System(timeSystem).InStage(Prelude).RunAlways())
	app.UseSystem(System(frameClockSystem).InStage(Update).RunAlways())
}

func timeSystem(cmd *Commands, timeResource *Time) {
	dt := cmd.app.frameDt

	timeResource.Dt = dt
	timeResource.Time = timeResource.Time.Add(dt)
	timeResource.Frame++
}

func frameClockSystem(timeResource *Time, clock *FrameClock) {
	clock.Advance(timeResource.Seconds())
}
