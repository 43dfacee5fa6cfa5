package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for selections, titles, highlights)
	Accent string `yaml:"accent"`

	// Semantic colors
	Create string `yaml:"create"` // add input border
	Edit   string `yaml:"edit"`   // edit input border
	Delete string `yaml:"delete"`

	// UI element colors
	Border     string `yaml:"border"`
	SelectedBg string `yaml:"selected_bg"`

	// Text colors
	Title     string `yaml:"title"`
	Subtle    string `yaml:"subtle"` // Muted/placeholder text
	Normal    string `yaml:"normal"`
	Completed string `yaml:"completed"`

	// Error banner
	ErrorFg string `yaml:"error_fg"`
	ErrorBg string `yaml:"error_bg"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
// If preset is specified, loads that preset first, then overrides with custom values
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	for dst, src := range c.fieldPairs(preset) {
		if *dst == "" {
			*dst = src
		}
	}
}

// MergeFrom overrides colors with the non-empty values of other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	for dst, src := range c.fieldPairs(&other) {
		if src != "" {
			*dst = src
		}
	}
}

// fieldPairs maps each color field of c to the same field of other
func (c *ColorScheme) fieldPairs(other *ColorScheme) map[*string]string {
	return map[*string]string{
		&c.Preset:     other.Preset,
		&c.Accent:     other.Accent,
		&c.Create:     other.Create,
		&c.Edit:       other.Edit,
		&c.Delete:     other.Delete,
		&c.Border:     other.Border,
		&c.SelectedBg: other.SelectedBg,
		&c.Title:      other.Title,
		&c.Subtle:     other.Subtle,
		&c.Normal:     other.Normal,
		&c.Completed:  other.Completed,
		&c.ErrorFg:    other.ErrorFg,
		&c.ErrorBg:    other.ErrorBg,
	}
}
