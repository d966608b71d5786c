package universe

type Commands struct {
	app *App
}

// Trigger validates action against the latest requested screen and queues
// the transition for the end of the current frame.
func (cmd *Commands) Trigger(action Action) error {
	from := cmd.app.screen
	if n := len(cmd.app.pending); n > 0 {
		from = cmd.app.pending[n-1]
	}
	to, err := NextScreen(from, action)
	if err != nil {
		return err
	}
	cmd.app.changeScreen(to)
	return nil
}

// Screen returns the screen the current frame runs in.
func (cmd *Commands) Screen() Screen {
	return cmd.app.screen
}

func (cmd *Commands) AddResources(resources ...any) *Commands {
	cmd.app.addResources(resources...)
	return cmd
}

func (cmd *Commands) Logger() Logger {
	return cmd.app.Logger()
}
