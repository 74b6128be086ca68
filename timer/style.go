package timer

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/zhye/tomato/internal/config"
	"github.com/zhye/tomato/internal/engine"
)

type styles struct {
	base      lipgloss.Style
	main      lipgloss.Style
	secondary lipgloss.Style
	hint      lipgloss.Style
	phases    map[engine.Phase]lipgloss.Style
}

func newStyles(cfg *config.Config) *styles {
	badge := func(color, label string) lipgloss.Style {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(color)).
			Bold(true).
			SetString(label)
	}

	return &styles{
		base:      lipgloss.NewStyle().Padding(1, padding),
		main:      lipgloss.NewStyle().Bold(true),
		secondary: lipgloss.NewStyle().Faint(true),
		hint:      lipgloss.NewStyle().Faint(true),
		phases: map[engine.Phase]lipgloss.Style{
			engine.Work:       badge(cfg.Work.Color, "[Work] "),
			engine.ShortBreak: badge(cfg.ShortBreak.Color, "[Short break] "),
			engine.LongBreak:  badge(cfg.LongBreak.Color, "[Long break] "),
		},
	}
}
