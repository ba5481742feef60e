package config

// Theme defines the colors of the terminal preview
type Theme struct {
	// Preset name ("default" or "monochrome")
	Preset string `yaml:"preset"`

	Accent string `yaml:"accent"` // Headings and borders
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted text such as timestamps
	Normal string `yaml:"normal"`

	// Badge colors, matching the success/warning/important/info classes of the web view
	Success   string `yaml:"success"`
	Warning   string `yaml:"warning"`
	Important string `yaml:"important"`
	Info      string `yaml:"info"`
	Inverse   string `yaml:"inverse"`
}

// DefaultTheme returns the default theme (purple accent)
func DefaultTheme() Theme {
	return Theme{
		Preset:    "default",
		Accent:    "#874BFD",
		Title:     "#D75FD7",
		Subtle:    "#585858",
		Normal:    "#D0D0D0",
		Success:   "#5FD75F",
		Warning:   "#FFD700",
		Important: "#FF0000",
		Info:      "#00AFFF",
		Inverse:   "#333333",
	}
}

// MonochromeTheme returns a black and white theme
func MonochromeTheme() Theme {
	return Theme{
		Preset:    "monochrome",
		Accent:    "#FFFFFF",
		Title:     "#FFFFFF",
		Subtle:    "#808080",
		Normal:    "#D0D0D0",
		Success:   "#FFFFFF",
		Warning:   "#D0D0D0",
		Important: "#FFFFFF",
		Info:      "#A8A8A8",
		Inverse:   "#444444",
	}
}

// presetTheme returns a preset theme by name
func presetTheme(name string) Theme {
	if name == "monochrome" {
		return MonochromeTheme()
	}
	return DefaultTheme()
}

// ApplyDefaults fills in missing colors from the preset
func (t *Theme) ApplyDefaults() {
	preset := presetTheme(t.Preset)
	if t.Preset == "" {
		t.Preset = preset.Preset
	}
	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&t.Accent, preset.Accent)
	fill(&t.Title, preset.Title)
	fill(&t.Subtle, preset.Subtle)
	fill(&t.Normal, preset.Normal)
	fill(&t.Success, preset.Success)
	fill(&t.Warning, preset.Warning)
	fill(&t.Important, preset.Important)
	fill(&t.Info, preset.Info)
	fill(&t.Inverse, preset.Inverse)
}

// MergeFrom overrides colors with the non-empty values of other
func (t *Theme) MergeFrom(other Theme) {
	merge := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	merge(&t.Preset, other.Preset)
	merge(&t.Accent, other.Accent)
	merge(&t.Title, other.Title)
	merge(&t.Subtle, other.Subtle)
	merge(&t.Normal, other.Normal)
	merge(&t.Success, other.Success)
	merge(&t.Warning, other.Warning)
	merge(&t.Important, other.Important)
	merge(&t.Info, other.Info)
	merge(&t.Inverse, other.Inverse)
}
