package tui

import (
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type screen int

const (
	screenHole screen = iota
	screenScorecard
)

type model struct {
	theme Theme
	deps  Deps
	log   *slog.Logger

	holeKeys holeKeys
	cardKeys cardKeys
	help     help.Model

	scr   screen
	width int
	toast string
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, m.log), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	log := deps.Logger
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	t := DefaultTheme()

	h := help.New()
	h.Styles.ShortKey = t.Help
	h.Styles.ShortDesc = t.Help
	h.Styles.ShortSeparator = t.Help
	h.Styles.FullKey = t.Help
	h.Styles.FullDesc = t.Help
	h.Styles.FullSeparator = t.Help
	h.Styles.Ellipsis = t.Help

	m := model{
		theme:    t,
		deps:     deps,
		log:      log,
		holeKeys: defaultHoleKeys(),
		cardKeys: defaultCardKeys(),
		help:     h,
	}
	m.syncScreen()
	return m
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		m.toast = ""
		if m.scr == screenScorecard {
			return m.updateScorecard(msg)
		}
		return m.updateHole(msg)
	}
	return m, nil
}

func (m model) updateHole(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctrl := m.deps.Controller

	switch {
	case key.Matches(msg, m.holeKeys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.holeKeys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.holeKeys.Increment):
		ctrl.IncrementStroke()
	case key.Matches(msg, m.holeKeys.Decrement):
		ctrl.DecrementStroke()
	case key.Matches(msg, m.holeKeys.Next):
		ctrl.AdvanceHole()
	default:
		return m, nil
	}

	m.log.Debug("tui.key", "screen", "hole", "key", msg.String(), "hole", ctrl.CurrentHoleNumber())
	m.syncScreen()
	return m, nil
}

func (m model) updateScorecard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctrl := m.deps.Controller

	switch {
	case key.Matches(msg, m.cardKeys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.cardKeys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.cardKeys.NewRound):
		ctrl.NewRound()
	case key.Matches(msg, m.cardKeys.Back):
		ctrl.HideSummary()
	default:
		return m, nil
	}

	m.log.Debug("tui.key", "screen", "scorecard", "key", msg.String())
	m.syncScreen()
	return m, nil
}

func (m *model) syncScreen() {
	if m.deps.Controller != nil && m.deps.Controller.ShowSummary() {
		m.scr = screenScorecard
		return
	}
	m.scr = screenHole
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("ForeCounter") + "\n" +
		m.theme.Subtitle.Render("Golf stroke counter") + "\n"

	var body, helpView string
	switch m.scr {
	case screenScorecard:
		body = m.theme.Card.Render(renderScorecard(m.theme, m.deps.Controller.Round()))
		helpView = m.help.View(m.cardKeys)
	default:
		body = m.theme.Card.Render(renderHole(m.theme, m.deps.Controller))
		helpView = m.help.View(m.holeKeys)
	}

	out := header + "\n" + body + "\n"
	if m.toast != "" {
		out += m.theme.Toast.Render(m.toast) + "\n"
	}
	out += helpView
	if m.deps.Debug {
		out += "\n" + m.theme.Subtitle.Render(debugFooter(m.deps))
	}
	return wrap.Render(out)
}

func debugFooter(d Deps) string {
	parts := []string{}
	if d.Backend != "" {
		parts = append(parts, "store: "+d.Backend)
	}
	if d.LogPath != "" {
		parts = append(parts, "log: "+d.LogPath)
	}
	return strings.Join(parts, " • ")
}
