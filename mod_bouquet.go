package universe

// Bouquet is the opening card. Shown is true while its screen is active.
type Bouquet struct {
	Title  string
	Hint   string
	Prompt string
	Shown  bool
}

func NewBouquet(greeting GreetingConfig) *Bouquet {
	return &Bouquet{
		Title:  greeting.Title,
		Hint:   greeting.Hint,
		Prompt: greeting.Prompt,
	}
}

type BouquetModule struct {
	Greeting GreetingConfig
}

func (m BouquetModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(NewBouquet(m.Greeting))

	app.UseSystem(System(bouquetEnterSystem).InScreen(OnEnter(ScreenBouquet)))
	app.UseSystem(System(bouquetExitSystem).InScreen(OnExit(ScreenBouquet)))
}

func bouquetEnterSystem(cmd *Commands, b *Bouquet) {
	b.Shown = true
	cmd.Logger().Debugf("bouquet: %s", b.Title)
}

func bouquetExitSystem(b *Bouquet) {
	b.Shown = false
}
