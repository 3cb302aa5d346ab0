package panel

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Theme is a named palette shared by widgets and screens. Theme files are
// YAML with hex colors:
//
//	name: custom
//	base: dark
//	accent: "#2f81f7"
//	text_primary: "#f0f6fc"
//
// Fields left out of a file keep the value of the base theme.
type Theme struct {
	Name string `yaml:"name"`

	Primary    Color `yaml:"primary"`
	Secondary  Color `yaml:"secondary"`
	Tertiary   Color `yaml:"tertiary"`
	Quaternary Color `yaml:"quaternary"`

	Accent      Color `yaml:"accent"`
	AccentLight Color `yaml:"accent_light"`
	AccentDark  Color `yaml:"accent_dark"`

	Success Color `yaml:"success"`
	Warning Color `yaml:"warning"`
	Error   Color `yaml:"error"`
	Info    Color `yaml:"info"`

	TextPrimary   Color `yaml:"text_primary"`
	TextSecondary Color `yaml:"text_secondary"`
	TextDisabled  Color `yaml:"text_disabled"`

	Border      Color `yaml:"border"`
	BorderLight Color `yaml:"border_light"`

	Bed    Color `yaml:"bed"`
	Nozzle Color `yaml:"nozzle"`
	Fan    Color `yaml:"fan"`
	Speed  Color `yaml:"speed"`
}

// DarkTheme is the default palette.
func DarkTheme() Theme {
	return Theme{
		Name:          "dark",
		Primary:       RGB(13, 17, 23),
		Secondary:     RGB(22, 27, 34),
		Tertiary:      RGB(33, 38, 45),
		Quaternary:    RGB(48, 54, 61),
		Accent:        RGB(47, 129, 247),
		AccentLight:   RGB(88, 166, 255),
		AccentDark:    RGB(29, 78, 216),
		Success:       RGB(46, 204, 113),
		Warning:       RGB(241, 196, 15),
		Error:         RGB(231, 76, 60),
		Info:          RGB(52, 152, 219),
		TextPrimary:   RGB(240, 246, 252),
		TextSecondary: RGB(139, 148, 158),
		TextDisabled:  RGB(87, 96, 106),
		Border:        RGB(48, 54, 61),
		BorderLight:   RGB(33, 38, 45),
		Bed:           RGB(52, 152, 219),
		Nozzle:        RGB(230, 126, 34),
		Fan:           RGB(155, 89, 182),
		Speed:         RGB(46, 204, 113),
	}
}

// LightTheme is a palette for bright environments.
func LightTheme() Theme {
	return Theme{
		Name:          "light",
		Primary:       RGB(255, 255, 255),
		Secondary:     RGB(242, 242, 247),
		Tertiary:      RGB(229, 229, 234),
		Quaternary:    RGB(209, 209, 214),
		Accent:        RGB(0, 122, 255),
		AccentLight:   RGB(90, 200, 250),
		AccentDark:    RGB(10, 132, 255),
		Success:       RGB(52, 199, 89),
		Warning:       RGB(255, 149, 0),
		Error:         RGB(255, 59, 48),
		Info:          RGB(0, 122, 255),
		TextPrimary:   RGB(0, 0, 0),
		TextSecondary: RGB(60, 60, 67),
		TextDisabled:  RGB(142, 142, 147),
		Border:        RGB(209, 209, 214),
		BorderLight:   RGB(229, 229, 234),
		Bed:           RGB(0, 122, 255),
		Nozzle:        RGB(255, 149, 0),
		Fan:           RGB(175, 82, 222),
		Speed:         RGB(52, 199, 89),
	}
}

// HighContrastTheme maximizes legibility on poor panels.
func HighContrastTheme() Theme {
	return Theme{
		Name:          "high_contrast",
		Primary:       RGB(0, 0, 0),
		Secondary:     RGB(20, 20, 20),
		Tertiary:      RGB(40, 40, 40),
		Quaternary:    RGB(60, 60, 60),
		Accent:        RGB(255, 255, 0),
		AccentLight:   RGB(255, 255, 100),
		AccentDark:    RGB(200, 200, 0),
		Success:       RGB(0, 255, 0),
		Warning:       RGB(255, 255, 0),
		Error:         RGB(255, 0, 0),
		Info:          RGB(0, 255, 255),
		TextPrimary:   RGB(255, 255, 255),
		TextSecondary: RGB(200, 200, 200),
		TextDisabled:  RGB(128, 128, 128),
		Border:        RGB(255, 255, 255),
		BorderLight:   RGB(200, 200, 200),
		Bed:           RGB(0, 255, 255),
		Nozzle:        RGB(255, 165, 0),
		Fan:           RGB(255, 0, 255),
		Speed:         RGB(0, 255, 0),
	}
}

// DefaultTheme returns the dark palette.
func DefaultTheme() Theme { return DarkTheme() }

// ThemeByName returns a built-in theme. Unknown names fall back to dark.
func ThemeByName(name string) Theme {
	switch strings.ToLower(strings.ReplaceAll(name, "-", "_")) {
	case "light":
		return LightTheme()
	case "high_contrast":
		return HighContrastTheme()
	default:
		return DarkTheme()
	}
}

// LoadTheme decodes a YAML theme. The optional "base" key picks the built-in
// theme that supplies missing fields.
func LoadTheme(r io.Reader) (Theme, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Theme{}, fmt.Errorf("read theme: %w", err)
	}
	var header struct {
		Base string `yaml:"base"`
	}
	if err := yaml.Unmarshal(data, &header); err != nil {
		return Theme{}, fmt.Errorf("decode theme: %w", err)
	}
	file := themeFile{Theme: ThemeByName(header.Base)}
	file.Theme.Name = "custom"
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Theme{}, fmt.Errorf("decode theme: %w", err)
	}
	return file.Theme, nil
}

// themeFile lets the decoder accept the "base" key alongside the palette.
type themeFile struct {
	Base  string `yaml:"base"`
	Theme `yaml:",inline"`
}

// LoadThemeFile reads a YAML theme from disk.
func LoadThemeFile(path string) (Theme, error) {
	f, err := os.Open(path)
	if err != nil {
		return Theme{}, fmt.Errorf("open theme: %w", err)
	}
	defer f.Close()
	t, err := LoadTheme(f)
	if err != nil {
		return Theme{}, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Marshal encodes the theme as YAML.
func (t Theme) Marshal() ([]byte, error) {
	return yaml.Marshal(t)
}

// --- Widget configs ---

// Card returns a box styled as a raised panel.
func (t Theme) Card() BoxConfig {
	return BoxConfig{Background: t.Tertiary, Border: t.Border, BorderWidth: 1, CornerRadius: 12}
}

// Title returns a heading label config.
func (t Theme) Title(text string) LabelConfig {
	return LabelConfig{Text: text, Font: FontH1, Color: t.TextPrimary}
}

// Body returns a body text label config.
func (t Theme) Body(text string) LabelConfig {
	return LabelConfig{Text: text, Font: FontBody, Color: t.TextPrimary}
}

// Caption returns a secondary text label config.
func (t Theme) Caption(text string) LabelConfig {
	return LabelConfig{Text: text, Font: FontSmall, Color: t.TextSecondary}
}

// Button returns a primary button config.
func (t Theme) Button(text string) ButtonConfig {
	return ButtonConfig{
		Text:         text,
		Background:   t.Quaternary,
		Focused:      t.Accent,
		TextColor:    t.TextPrimary,
		Disabled:     t.TextDisabled,
		CornerRadius: 8,
	}
}

// Progress returns a progress bar config with the given fill color.
func (t Theme) Progress(fill Color) ProgressBarConfig {
	return ProgressBarConfig{Background: t.Secondary, Fill: fill, TextColor: t.TextPrimary, ShowText: true}
}

// Slider returns a slider config over [lo, hi].
func (t Theme) Slider(lo, hi float64) SliderConfig {
	return SliderConfig{Min: lo, Max: hi, Track: t.Quaternary, Fill: t.Accent, Thumb: t.TextPrimary}
}

// Toggle returns a toggle config.
func (t Theme) Toggle(text string, on bool) ToggleConfig {
	return ToggleConfig{Text: text, On: on, OnColor: t.Accent, OffColor: t.Quaternary, TextColor: t.TextPrimary}
}
