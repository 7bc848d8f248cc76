package tui

import (
	"fmt"
	"strings"

	"github.com/aalvaropc/forecounter/internal/domain"
	"github.com/aalvaropc/forecounter/internal/usecase"
)

func renderHole(t Theme, ctrl *usecase.RoundController) string {
	var b strings.Builder

	b.WriteString(t.Title.Render(fmt.Sprintf("Hole %d", ctrl.CurrentHoleNumber())))
	b.WriteString(t.Subtitle.Render(fmt.Sprintf("  of %d", domain.MaxHoles)))
	b.WriteString("\n")
	b.WriteString(t.Strokes.Render(fmt.Sprintf("%d", ctrl.CurrentStrokes())))
	b.WriteString("\n")
	b.WriteString(t.Subtitle.Render("strokes"))
	b.WriteString("\n\n")
	b.WriteString(t.Total.Render(fmt.Sprintf("Total: %d", ctrl.TotalStrokes())))

	return b.String()
}

func renderScorecard(t Theme, round domain.Round) string {
	var b strings.Builder

	b.WriteString(t.Title.Render("Scorecard"))
	b.WriteString("\n\n")

	for _, h := range round.Holes {
		b.WriteString(t.Row.Render(fmt.Sprintf("Hole %-3d %3d", h.HoleNumber, h.Strokes)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(t.Total.Render(fmt.Sprintf(" %-8s %3d", "Total", round.TotalStrokes())))

	return b.String()
}
