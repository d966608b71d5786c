package universe

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const flapOpenAngle = 180

// Letter is the envelope screen's state. Opened flips a short delay after
// the screen is entered and drops back as soon as it is left.
type Letter struct {
	Name       string
	ImageRef   string
	Title      string
	Paragraphs []string
	Signature  string

	Opened    bool
	FlapAngle float32 // degrees, 0 closed

	revealDelay  time.Duration
	flapDuration time.Duration
	remaining    time.Duration
	pending      bool
	flap         *gween.Tween
}

func NewLetter(greeting GreetingConfig, cfg LetterConfig) *Letter {
	return &Letter{
		Name:         greeting.Name,
		ImageRef:     greeting.ImageRef,
		Title:        cfg.Title,
		Paragraphs:   cfg.Paragraphs,
		Signature:    cfg.Signature,
		revealDelay:  cfg.RevealDelay(),
		flapDuration: cfg.FlapDuration(),
	}
}

// RevealPending reports whether the open timer is still running.
func (l *Letter) RevealPending() bool {
	return l.pending
}

// schedule arms the one-shot reveal timer.
func (l *Letter) schedule() {
	l.close()
	l.pending = true
	l.remaining = l.revealDelay
}

// close cancels a pending reveal and shuts the envelope.
func (l *Letter) close() {
	l.pending = false
	l.remaining = 0
	l.Opened = false
	l.FlapAngle = 0
	l.flap = nil
}

// advance moves the reveal timer and flap animation by dt. It reports
// whether the letter opened during this call.
func (l *Letter) advance(dt time.Duration) bool {
	if l.pending {
		l.remaining -= dt
		if l.remaining > 0 {
			return false
		}
		l.pending = false
		l.Opened = true
		if l.flapDuration <= 0 {
			l.FlapAngle = flapOpenAngle
		} else {
			l.flap = gween.New(0, flapOpenAngle, float32(l.flapDuration.Seconds()), ease.OutCubic)
		}
		return true
	}

	if l.flap != nil {
		angle, finished := l.flap.Update(float32(dt.Seconds()))
		l.FlapAngle = angle
		if finished {
			l.FlapAngle = flapOpenAngle
			l.flap = nil
		}
	}
	return false
}

type LetterModule struct {
	Greeting GreetingConfig
	Letter   LetterConfig
}

func (m LetterModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(NewLetter(m.Greeting, m.Letter))

	app.UseSystem(System(letterEnterSystem).InScreen(OnEnter(ScreenLetter)))
	app.UseSystem(System(letterRevealSystem).InScreen(OnExecute(ScreenLetter)))
	app.UseSystem(System(letterExitSystem).InScreen(OnExit(ScreenLetter)))
}

func letterEnterSystem(cmd *Commands, letter *Letter) {
	letter.schedule()
	cmd.Logger().Debugf("letter reveal in %s", letter.revealDelay)
}

func letterRevealSystem(cmd *Commands, t *Time, letter *Letter) {
	if letter.advance(t.Dt) {
		cmd.Logger().Debugf("letter opened")
	}
}

func letterExitSystem(letter *Letter) {
	letter.close()
}
