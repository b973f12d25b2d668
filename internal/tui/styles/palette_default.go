package styles

// DefaultTheme maps theme roles onto the Eon palette.
var DefaultTheme = Theme{
	Name: "default",
	Tokens: ThemeTokens{
		Background: eon("night"),
		Panel:      eon("coal"),
		Text:       eon("smoke"),
		TextMuted:  eon("mauve"),
		Border:     eon("graphite"),
		Accent:     eon("latte"),
		Focus:      eon("mustard"),
		Success:    eon("teal"),
		Warning:    eon("mustard"),
		Error:      eon("coral"),
		Info:       eon("steel"),
	},
}
