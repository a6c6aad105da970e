package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/leprpht/autoclick/internal/styles"
)

// PositionMsg carries one pointer sample from the tracker into the TUI.
type PositionMsg struct {
	X int
	Y int
}

// TrackModel is the Bubble Tea model for the live pointer display.
type TrackModel struct {
	spinner  spinner.Model
	x, y     int
	samples  int
	quitting bool
}

// NewTrackModel creates the model with its spinner configured.
func NewTrackModel() TrackModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(styles.Primary))
	return TrackModel{spinner: s}
}

// Init starts the spinner.
func (m TrackModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles position samples, spinner ticks and quit keys.
func (m TrackModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case PositionMsg:
		m.x, m.y = msg.X, msg.Y
		m.samples++
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	default:
		return m, nil
	}
}

// View renders the position box.
func (m TrackModel) View() string {
	if m.quitting {
		return styles.MutedStyle.Render("Stopped tracking\n")
	}

	title := styles.TitleStyle.Render("Pointer Tracker")
	position := fmt.Sprintf("%s  X: %-5d Y: %-5d", m.spinner.View(), m.x, m.y)
	stats := styles.MutedStyle.Render(fmt.Sprintf("%d samples", m.samples))
	help := styles.MutedStyle.Render("q to quit")

	box := styles.BoxStyle.Render(position + "\n" + stats)
	return lipgloss.JoinVertical(lipgloss.Left, title, box, help) + "\n"
}
