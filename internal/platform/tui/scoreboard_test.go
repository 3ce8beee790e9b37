package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-silverball/internal/core"
	"github.com/vovakirdan/tui-silverball/internal/registry"
)

func TestScoreboardViews(t *testing.T) {
	const id = "zzz_board"
	registry.Register(id, func() registry.Game { return &scriptedGame{} })

	store := openStore(t)
	store.SaveScore(id, 500)
	store.SaveScore(id, 1500)
	store.SaveLevelRun(id, core.LevelRecord{Level: 1, Outcome: "succeeded", Points: 700, Ticks: 120})
	store.SaveLevelRun(id, core.LevelRecord{Level: 2, Outcome: "failed", Reason: "trap", Points: 40, Ticks: 300})

	m := NewScoreboardModel(store, 100, 30)
	for i, g := range m.games {
		if g.ID == id {
			m.gameCursor = i
			m.loadScores(id)
		}
	}

	view := m.View()
	for _, want := range []string{"HIGH SCORES - Scripted", "2 games", "best 1500", "avg 1000"} {
		if !strings.Contains(view, want) {
			t.Errorf("totals view missing %q", want)
		}
	}
	if m.rowCount() != 2 {
		t.Errorf("totals rows = %d, want 2", m.rowCount())
	}

	press := func() {
		next, _ := m.Update(runeKey("v"))
		m = next.(ScoreboardModel)
	}

	press()
	if m.view != viewLevels || !strings.Contains(m.View(), "LEVEL BESTS") {
		t.Fatalf("view = %v, want level bests", m.view)
	}
	if rows := m.table.Rows(); len(rows) != 2 || rows[0][1] != "700" || rows[1][1] != "0" {
		t.Errorf("level rows = %v", rows)
	}

	press()
	if m.view != viewRecent || !strings.Contains(m.View(), "RECENT RUNS") {
		t.Fatalf("view = %v, want recent runs", m.view)
	}
	rows := m.table.Rows()
	if len(rows) != 2 || rows[0][0] != "2" || rows[0][1] != "trap" || rows[1][1] != "succeeded" {
		t.Errorf("recent rows = %v", rows)
	}

	press()
	if m.view != viewTotals {
		t.Errorf("view = %v, want totals after a full cycle", m.view)
	}
}

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)
	if m.statsLine() != "" {
		t.Errorf("stats line = %q, want empty without a store", m.statsLine())
	}
	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Error("empty scoreboard should say so")
	}
}
