package x_log

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
)

//
// ---------- IBM Carbon Colors ----------

const (
	ColorTeal40    = "#3ddbd9"
	ColorBlue60    = "#4589ff"
	ColorBlue40    = "#78a9ff"
	ColorBlue70    = "#0043ce"
	ColorBlueBase  = "#0f62fe"
	ColorGreen50   = "#24a148"
	ColorRed60     = "#da1e28"
	ColorRedStrong = "#ff0000"
	ColorOrange40  = "#ff832b"
	ColorGray60    = "#8d8d8d"
	ColorGray10    = "#f4f4f4"
	ColorGray90    = "#262626"
)

//
// ---------- Styles Definition ----------

// Styles defines all formatting styles used for console output.
type Styles struct {
	Out               io.Writer
	Timestamp         lipgloss.Style
	Levels            map[zerolog.Level]lipgloss.Style
	Keys              map[string]lipgloss.Style
	Values            map[string]lipgloss.Style
	DefaultKeyStyle   lipgloss.Style
	DefaultValueStyle lipgloss.Style
}

//
// ---------- Theme Selectors ----------

// DefaultStylesByName returns a theme by name ("dark", "light").
func DefaultStylesByName(name string) *Styles {
	switch strings.ToLower(name) {
	case "light":
		return DefaultStylesLight()
	default:
		return DefaultStylesDark()
	}
}

//
// ---------- Console Formatter ----------

// ConsoleWriterWithStyles builds a zerolog.ConsoleWriter with styles.
func ConsoleWriterWithStyles(styles *Styles) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        styles.Out,
		TimeFormat: "15:04:05",

		FormatLevel: func(i any) string {
			lvl := strings.ToLower(fmt.Sprint(i))
			var color string

			switch lvl {
			case "trace", "debug":
				color = ColorTeal40
			case "info":
				color = ColorBlue60
			case "warn":
				color = ColorOrange40
			case "error":
				color = ColorRed60
			case "fatal", "panic":
				color = ColorRedStrong
			default:
				color = ColorGray60
			}

			label := strings.ToUpper(lvl)
			if len(label) > 3 {
				label = label[:3]
			}
			return lipgloss.NewStyle().
				Foreground(lipgloss.Color("#ffffff")).
				Background(lipgloss.Color(color)).
				Padding(0, 1).
				Render(label)
		},

		FormatTimestamp: func(i any) string {
			return styles.Timestamp.Render(fmt.Sprintf("[%s]", i))
		},

		FormatFieldName: func(i any) string {
			key := fmt.Sprint(i)
			style, ok := styles.Keys[key]
			if !ok {
				style = styles.DefaultKeyStyle
			}
			eqStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray60))
			return style.Render(key) + eqStyle.Render("=")
		},

		FormatMessage: func(i any) string {
			if i == nil {
				return ""
			}
			return lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorGray10)).
				Render(fmt.Sprint(i))
		},
	}
}

//
// ---------- Dark Theme ----------

func DefaultStylesDark() *Styles {
	return &Styles{
		Timestamp: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorGray60)),

		DefaultKeyStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorBlue40)),

		DefaultValueStyle: lipgloss.NewStyle(),

		Levels: map[zerolog.Level]lipgloss.Style{
			zerolog.DebugLevel: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorTeal40)),
			zerolog.InfoLevel:  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlue60)),
			zerolog.WarnLevel:  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorOrange40)),
			zerolog.ErrorLevel: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRed60)),
			zerolog.FatalLevel: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRedStrong)),
		},

		Keys: map[string]lipgloss.Style{
			"module":  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlue40)),
			"file":    lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlue40)),
			"run":     lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlue40)),
			"game":    lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlue40)),
			"outcome": lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGreen50)),
			"error":   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRed60)),
		},

		Values: map[string]lipgloss.Style{
			"file":    lipgloss.NewStyle().Italic(true),
			"outcome": lipgloss.NewStyle().Bold(true),
			"error":   lipgloss.NewStyle().Bold(true),
			"module":  lipgloss.NewStyle(),
		},
	}
}

//
// ---------- Light Theme ----------

func DefaultStylesLight() *Styles {
	return &Styles{
		Timestamp: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorGray60)),

		DefaultKeyStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorBlueBase)),

		DefaultValueStyle: lipgloss.NewStyle(),

		Levels: map[zerolog.Level]lipgloss.Style{
			zerolog.DebugLevel: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray90)),
			zerolog.InfoLevel:  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlue70)),
			zerolog.WarnLevel:  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorOrange40)),
			zerolog.ErrorLevel: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRed60)),
			zerolog.FatalLevel: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRedStrong)),
		},

		Keys: map[string]lipgloss.Style{
			"module":  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlueBase)),
			"file":    lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlueBase)),
			"run":     lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlueBase)),
			"game":    lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlueBase)),
			"outcome": lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGreen50)),
			"error":   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRed60)),
		},

		Values: map[string]lipgloss.Style{
			"file":    lipgloss.NewStyle().Italic(true),
			"outcome": lipgloss.NewStyle().Bold(true),
			"error":   lipgloss.NewStyle().Bold(true),
			"module":  lipgloss.NewStyle(),
		},
	}
}
