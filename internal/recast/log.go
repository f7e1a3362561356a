package recast

import (
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/log/v2"
)

// levelWidth is the max width of a rendered log level so nothing gets cut off.
const levelWidth = 5

// levelStyle renders a log level name in bold in the given colour.
func levelStyle(level log.Level, color string) lipgloss.Style {
	return lipgloss.NewStyle().
		SetString(strings.ToUpper(level.String())).
		Bold(true).
		MaxWidth(levelWidth).
		Foreground(lipgloss.Color(color))
}

// defaultLogStyles returns the styles used by recast's logger.
func defaultLogStyles() *log.Styles {
	return &log.Styles{
		Timestamp: lipgloss.NewStyle(),
		Caller:    lipgloss.NewStyle().Faint(true),
		Prefix:    lipgloss.NewStyle().Bold(true).Faint(true),
		Message:   lipgloss.NewStyle(),
		Key:       lipgloss.NewStyle().Faint(true),
		Value:     lipgloss.NewStyle(),
		Separator: lipgloss.NewStyle().Faint(true),
		Levels: map[log.Level]lipgloss.Style{
			log.DebugLevel: levelStyle(log.DebugLevel, "63"),
			log.InfoLevel:  levelStyle(log.InfoLevel, "86"),
			log.WarnLevel:  levelStyle(log.WarnLevel, "192"),
			log.ErrorLevel: levelStyle(log.ErrorLevel, "204"),
			log.FatalLevel: levelStyle(log.FatalLevel, "134"),
		},
		Keys:   map[string]lipgloss.Style{},
		Values: map[string]lipgloss.Style{},
	}
}
