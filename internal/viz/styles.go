package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/sortviz/internal/stepper"
)

// styles is the set of lipgloss styles derived from one theme.
type styles struct {
	title   lipgloss.Style
	panel   lipgloss.Style
	output  lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	key     lipgloss.Style
	hint    lipgloss.Style
	err     lipgloss.Style
	running lipgloss.Style
	paused  lipgloss.Style
	done    lipgloss.Style
	idle    lipgloss.Style
}

func newStyles(th Theme) styles {
	return styles{
		title: lipgloss.NewStyle().Bold(true).Foreground(th.Accent).MarginBottom(1),
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(th.Accent).
			Padding(0, 1),
		output: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(th.Muted).
			Foreground(th.Text).
			Padding(0, 2),
		label:   lipgloss.NewStyle().Foreground(th.Muted).Width(11),
		value:   lipgloss.NewStyle().Foreground(th.Text),
		key:     lipgloss.NewStyle().Foreground(th.Accent).Bold(true),
		hint:    lipgloss.NewStyle().Foreground(th.Muted).Italic(true),
		err:     lipgloss.NewStyle().Foreground(th.Error).Bold(true),
		running: lipgloss.NewStyle().Bold(true).Foreground(th.Sorted),
		paused:  lipgloss.NewStyle().Bold(true).Foreground(th.Compare),
		done:    lipgloss.NewStyle().Bold(true).Foreground(th.Accent),
		idle:    lipgloss.NewStyle().Bold(true).Foreground(th.Muted),
	}
}

func (s styles) status(st stepper.State) string {
	label := strings.ToUpper(st.String())
	switch st {
	case stepper.Running:
		return s.running.Render("● " + label)
	case stepper.Paused:
		return s.paused.Render("❚❚ " + label)
	case stepper.Completed:
		return s.done.Render("✔ " + label)
	}
	return s.idle.Render("○ " + label)
}

// ProgressBar renders a bar filled to percent of width.
func ProgressBar(percent float64, width int, th Theme) string {
	filled := int(percent * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return lipgloss.NewStyle().Foreground(th.Sorted).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(th.Muted).Render(strings.Repeat("░", width-filled))
}

// keyHints renders "key action" pairs on one line.
func (s styles) keyHints(pairs ...string) string {
	var b strings.Builder
	for i := 0; i+1 < len(pairs); i += 2 {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(s.key.Render(pairs[i]))
		b.WriteString(s.hint.Render(" " + pairs[i+1]))
	}
	return b.String()
}
