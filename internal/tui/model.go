package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/genricoloni/onair/internal/display"
	"github.com/genricoloni/onair/internal/domain"
)

// Messages sent by UI to the running program
type (
	playbackMsg   bool
	loadingMsg    struct{}
	nowPlayingMsg domain.NowPlayingInfo
	clearMsg      struct{}
	errorMsg      struct{ err error }
)

// Model is the player view: start/stop buttons, the record indicator and
// the info region
type Model struct {
	submitter domain.Submitter

	playing bool
	loading bool
	info    *domain.NowPlayingInfo
	err     error

	spinner spinner.Model
}

// NewModel creates an idle player view
func NewModel(submitter domain.Submitter) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(Primary)

	return Model{
		submitter: submitter,
		spinner:   s,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case playbackMsg:
		m.playing = bool(msg)

	case loadingMsg:
		m.loading = true
		m.err = nil
		return m, m.spinner.Tick

	case nowPlayingMsg:
		info := domain.NowPlayingInfo(msg)
		m.loading = false
		m.info = &info

	case clearMsg:
		m.loading = false
		m.info = nil
		m.err = nil

	case errorMsg:
		m.loading = false
		m.err = msg.err

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "s", "enter":
		m.submitter.Submit(domain.CommandStart)
	case "x":
		m.submitter.Submit(domain.CommandStop)
	case " ", "p":
		m.submitter.Submit(domain.CommandToggle)
	}
	return m, nil
}

// View implements tea.Model
func (m Model) View() string {
	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.renderIndicator(),
		"",
		m.renderButtons(),
		"",
		m.renderInfo(),
	)) + "\n" + helpStyle.Render("  s start • x stop • space toggle • q quit") + "\n"
}

func (m Model) renderIndicator() string {
	if m.playing {
		return recordOn.Render("● ON AIR")
	}
	return recordOff.Render("○ OFF AIR")
}

func (m Model) renderButtons() string {
	start, stop := buttonInactive, buttonActive
	if m.playing {
		start, stop = buttonActive, buttonInactive
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		start.Render("▶ Start"),
		"  ",
		stop.Render("■ Stop"),
	)
}

func (m Model) renderInfo() string {
	switch {
	case m.err != nil:
		return errorStyle.Render(display.Sanitize(domain.Describe(m.err)))
	case m.loading:
		return m.spinner.View() + " " + artistStyle.Render("Tuning in...")
	case m.info != nil:
		return lipgloss.JoinVertical(lipgloss.Left,
			songStyle.Render(display.Sanitize(m.info.SongTitle)),
			artistStyle.Render(display.Sanitize(m.info.ArtistName)),
		)
	default:
		return ""
	}
}
