package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/forecounter/internal/infra/roundstore"
	"github.com/aalvaropc/forecounter/internal/infra/slot/memstore"
	"github.com/aalvaropc/forecounter/internal/usecase"
)

func newTestModel(t *testing.T) (model, *roundstore.Store) {
	t.Helper()
	store := roundstore.New(memstore.New())
	now := time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)
	ctrl := usecase.NewRoundController(store, usecase.WithClock(func() time.Time { return now }))
	return newModel(Deps{Controller: ctrl}), store
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m model, msgs ...tea.KeyMsg) model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		mm, ok := next.(model)
		if !ok {
			t.Fatalf("expected model, got=%T", next)
		}
		m = mm
	}
	return m
}

func TestHoleScreen_IncrementKeys(t *testing.T) {
	m, _ := newTestModel(t)

	m = send(t, m,
		tea.KeyMsg{Type: tea.KeySpace},
		runes("+"),
		tea.KeyMsg{Type: tea.KeyUp},
	)

	if got := m.deps.Controller.CurrentStrokes(); got != 3 {
		t.Fatalf("expected 3 strokes, got=%d", got)
	}
}

func TestHoleScreen_DecrementKeysFloorAtZero(t *testing.T) {
	m, _ := newTestModel(t)

	m = send(t, m,
		runes("+"),
		runes("-"),
		tea.KeyMsg{Type: tea.KeyBackspace},
		tea.KeyMsg{Type: tea.KeyDown},
	)

	if got := m.deps.Controller.CurrentStrokes(); got != 0 {
		t.Fatalf("expected 0 strokes, got=%d", got)
	}
}

func TestHoleScreen_NextHolePersists(t *testing.T) {
	m, store := newTestModel(t)

	m = send(t, m, runes("+"), tea.KeyMsg{Type: tea.KeyEnter}, runes("n"), tea.KeyMsg{Type: tea.KeyRight})

	if got := m.deps.Controller.CurrentHoleNumber(); got != 4 {
		t.Fatalf("expected hole 4, got=%d", got)
	}
	saved, ok := store.Load()
	if !ok {
		t.Fatalf("expected saved round")
	}
	if saved.HoleCount() != 4 || saved.TotalStrokes() != 1 {
		t.Fatalf("expected 4 holes / 1 stroke saved, got=%d / %d", saved.HoleCount(), saved.TotalStrokes())
	}
}

func TestScorecard_ShownAfterHole18(t *testing.T) {
	m, _ := newTestModel(t)

	for i := 0; i < 17; i++ {
		m = send(t, m, runes("+"), runes("n"))
	}
	if m.scr != screenHole {
		t.Fatalf("expected hole screen on hole 18")
	}

	m = send(t, m, runes("n"))
	if m.scr != screenScorecard {
		t.Fatalf("expected scorecard after advancing past hole 18")
	}

	view := m.View()
	for _, want := range []string{"Scorecard", "Hole 1", "Hole 18", "Total", "17"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected scorecard view to contain %q, got:\n%s", want, view)
		}
	}
}

func TestScorecard_BackAndNewRound(t *testing.T) {
	m, _ := newTestModel(t)
	for i := 0; i < 18; i++ {
		m = send(t, m, runes("+"), runes("n"))
	}
	if m.scr != screenScorecard {
		t.Fatalf("expected scorecard")
	}

	// "n" is not bound on the scorecard, and "+" must not mutate the round.
	m = send(t, m, runes("+"))
	if m.deps.Controller.TotalStrokes() != 18 {
		t.Fatalf("expected scorecard to ignore stroke keys, got total=%d", m.deps.Controller.TotalStrokes())
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.scr != screenHole || m.deps.Controller.CurrentHoleNumber() != 18 {
		t.Fatalf("expected back on hole 18, got screen=%d hole=%d", m.scr, m.deps.Controller.CurrentHoleNumber())
	}

	m = send(t, m, runes("n"))
	if m.scr != screenScorecard {
		t.Fatalf("expected scorecard again")
	}

	m = send(t, m, runes("r"))
	if m.scr != screenHole {
		t.Fatalf("expected hole screen after new round")
	}
	if m.deps.Controller.CurrentHoleNumber() != 1 || m.deps.Controller.TotalStrokes() != 0 {
		t.Fatalf("expected fresh round, got hole=%d total=%d",
			m.deps.Controller.CurrentHoleNumber(), m.deps.Controller.TotalStrokes())
	}
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestHelpToggle(t *testing.T) {
	m, _ := newTestModel(t)

	m = send(t, m, runes("?"))
	if !m.help.ShowAll {
		t.Fatalf("expected full help")
	}
	if m.deps.Controller.CurrentStrokes() != 0 {
		t.Fatalf("expected help to leave round untouched")
	}
}

func TestHoleView(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(t, m, runes("+"), runes("+"), runes("n"), runes("+"))

	view := m.View()
	for _, want := range []string{"Hole 2", "strokes", "Total: 3"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected hole view to contain %q, got:\n%s", want, view)
		}
	}
}

func TestResumesScorecardState(t *testing.T) {
	m, store := newTestModel(t)
	for i := 0; i < 17; i++ {
		m = send(t, m, runes("n"))
	}

	// A fresh program over the same store resumes on hole 18, not the summary.
	ctrl := usecase.NewRoundController(store)
	m2 := newModel(Deps{Controller: ctrl})
	if m2.scr != screenHole || ctrl.CurrentHoleNumber() != 18 {
		t.Fatalf("expected resume on hole 18, got screen=%d hole=%d", m2.scr, ctrl.CurrentHoleNumber())
	}
}

func TestSafeModel_RecoversPanics(t *testing.T) {
	s := wrapSafe(newModel(Deps{}), nil)

	next, cmd := s.Update(runes("+"))
	if cmd != nil {
		t.Fatalf("expected nil cmd after recovered panic")
	}
	sm, ok := next.(safeModel)
	if !ok {
		t.Fatalf("expected safeModel, got=%T", next)
	}
	if sm.m.toast == "" || sm.m.scr != screenHole {
		t.Fatalf("expected toast and hole screen after panic, got toast=%q scr=%d", sm.m.toast, sm.m.scr)
	}

	if out := sm.View(); !strings.Contains(out, "Unexpected error") {
		t.Fatalf("expected fallback view, got=%q", out)
	}
}

func TestDebugFooter(t *testing.T) {
	m, _ := newTestModel(t)
	m.deps.Debug = true
	m.deps.Backend = "bolt"
	m.deps.LogPath = "/home/fc/logs/forecounter.log"

	view := m.View()
	for _, want := range []string{"store: bolt", "log: /home/fc/logs/forecounter.log"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected footer to contain %q, got:\n%s", want, view)
		}
	}

	m.deps.Debug = false
	if strings.Contains(m.View(), "log: ") {
		t.Fatalf("expected no footer without debug")
	}
}

func TestHelpUsesThemeStyle(t *testing.T) {
	m, _ := newTestModel(t)
	if !m.help.Styles.ShortKey.GetFaint() || !m.help.Styles.FullDesc.GetFaint() {
		t.Fatalf("expected help styles to follow the faint theme help style")
	}
}
