package styles

// HighContrastTheme favors visibility on low-contrast terminals.
var HighContrastTheme = Theme{
	Name: "high-contrast",
	Tokens: ThemeTokens{
		Background: eon("black"),
		Panel:      eon("pitch"),
		Text:       eon("white"),
		TextMuted:  eon("cream"),
		Border:     eon("white"),
		Accent:     eon("peach"),
		Focus:      eon("mustard"),
		Success:    eon("mint"),
		Warning:    eon("mustard"),
		Error:      eon("terra"),
		Info:       eon("candy"),
	},
}
