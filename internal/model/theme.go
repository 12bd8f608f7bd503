package model

// ThemeConfig is a named set of visual design tokens applied to the whole page
// (or overridden per section via SectionLayout.ThemeID). Immutable once chosen;
// a project holds exactly one active theme.
type ThemeConfig struct {
	Name            string `json:"name" yaml:"name" validate:"required"`
	PrimaryColor    string `json:"primaryColor" yaml:"primaryColor" validate:"required"`
	SecondaryColor  string `json:"secondaryColor" yaml:"secondaryColor" validate:"required"`
	BackgroundColor string `json:"backgroundColor" yaml:"backgroundColor" validate:"required"`
	TextColor       string `json:"textColor" yaml:"textColor" validate:"required"`
	FontFamily      string `json:"fontFamily" yaml:"fontFamily" validate:"required"`
	FontSize        string `json:"fontSize" yaml:"fontSize" validate:"required"`
	Spacing         string `json:"spacing" yaml:"spacing" validate:"required"`
}

// IsLight reports whether the theme uses the light background sentinel. The CSS
// generator branches on this exact value to pick contrasting surface colors.
func (t ThemeConfig) IsLight() bool {
	return t.BackgroundColor == "#ffffff"
}
