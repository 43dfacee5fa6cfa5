package colors

// Default returns the default color scheme (purple theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		// Primary
		Accent: "#874BFD",

		// Semantic
		Create: "#5FD75F",
		Edit:   "#5F87D7",
		Delete: "#FF0000",

		// UI elements
		Border:     "#5F87D7",
		SelectedBg: "#3A3A3A",

		// Text
		Title:     "#D75FD7",
		Subtle:    "#585858",
		Normal:    "#D0D0D0",
		Completed: "#5FD75F",

		// Errors
		ErrorFg: "#FF0000",
		ErrorBg: "#5F0000",
	}
}
