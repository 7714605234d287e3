package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds every lipgloss style the browser renders with.
type Styles struct {
	Base     lipgloss.Style
	Title    lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Row      lipgloss.Style
	Selected lipgloss.Style
	Dim      lipgloss.Style
	Status   map[string]lipgloss.Style
	Input    lipgloss.Style
	Error    lipgloss.Style
	Warning  lipgloss.Style
	Pager    lipgloss.Style
	Disabled lipgloss.Style
	Help     lipgloss.Style
}

// DefaultStyles returns the browser's color scheme.
func DefaultStyles() Styles {
	return Styles{
		Base:     lipgloss.NewStyle().Margin(1, 2),
		Title:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Label:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Value:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		Row:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true),
		Dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Status: map[string]lipgloss.Style{
			"active":    lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
			"pending":   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			"completed": lipgloss.NewStyle().Foreground(lipgloss.Color("81")),
			"cancelled": lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Strikethrough(true),
		},
		Input:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("160")).Padding(0, 1),
		Warning:  lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("214")).Padding(0, 1),
		Pager:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Disabled: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

func (s Styles) status(name string) lipgloss.Style {
	if st, ok := s.Status[name]; ok {
		return st
	}
	return s.Dim
}
