package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/mapcolor/internal/core"
	"github.com/vovakirdan/mapcolor/internal/registry"
	"github.com/vovakirdan/mapcolor/internal/storage"
)

func init() {
	registry.Register(registry.GameInfo{
		ID:          "scripted",
		Title:       "Scripted",
		Description: "Finishes on the first move",
	}, func() (registry.Game, error) {
		return &scriptedGame{}, nil
	})
}

func sessionSend(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	require.True(t, ok)
	return sm, cmd
}

func newTestSession(t *testing.T, store *storage.Store) SessionModel {
	t.Helper()
	cfg := core.RuntimeConfig{ScreenW: 100, ScreenH: 30, TickRate: 60, Seed: 1}
	return NewSessionModel(store, cfg, "guest", nil)
}

// selectScripted moves the menu cursor onto the scripted board.
func selectScripted(t *testing.T, m SessionModel) SessionModel {
	t.Helper()
	for i, item := range m.menu.items {
		if item.GameID == "scripted" {
			m.menu.cursor = i
			return m
		}
	}
	t.Fatal("scripted board not listed")
	return m
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	store := openStore(t)
	m := selectScripted(t, newTestSession(t, store))

	m, cmd := sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, screenGame, m.screen)
	require.NotNil(t, m.game)
	assert.NotNil(t, cmd)
	assert.Contains(t, m.View(), "scripted")

	// Finish the match so it reaches the store under the session user.
	m, _ = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = sessionSend(t, m, TickMsg{Time: time.Now(), Tag: m.game.tickTag})

	matches, err := store.RecentMatches("scripted", 5)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "guest", matches[0].Player)

	m, _ = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, screenMenu, m.screen)
	assert.Nil(t, m.game)
	assert.False(t, m.quitting)

	// The fresh menu shows the new best score.
	m = selectScripted(t, m)
	assert.Equal(t, 3, m.menu.items[m.menu.cursor].HighScore)
	assert.Contains(t, m.View(), "best 3")
}

func TestSessionScoreboard(t *testing.T) {
	m := newTestSession(t, openStore(t))

	m, _ = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, screenScores, m.screen)
	assert.Contains(t, m.View(), "BEST MATCHES")

	m, _ = sessionSend(t, m, runes("v"))
	assert.Contains(t, m.View(), "RECENT MATCHES")

	m, _ = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, screenMenu, m.screen)
}

func TestSessionQuit(t *testing.T) {
	m := newTestSession(t, nil)
	m, cmd := sessionSend(t, m, runes("q"))
	assert.True(t, m.quitting)
	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())
}

func TestSessionQuitFromGame(t *testing.T) {
	m := selectScripted(t, newTestSession(t, nil))
	m, _ = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, screenGame, m.screen)

	m, cmd := sessionSend(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, m.quitting)
	assert.NotNil(t, cmd)
}

func TestScoreboardWithoutStore(t *testing.T) {
	sb := NewScoreboardModel(nil, 100, 30)
	view := sb.View()
	assert.Contains(t, view, "unavailable")
	assert.Contains(t, view, "No matches played")
}

func TestScoreboardStats(t *testing.T) {
	store := openStore(t)
	for _, w := range []string{core.OutcomeHuman, core.OutcomeComputer, core.OutcomeHuman} {
		_, err := store.SaveMatch(storage.MatchResult{
			BoardID: "scripted", HumanScore: 4, ComputerScore: 2, Winner: w,
		})
		require.NoError(t, err)
	}

	sb := NewScoreboardModel(store, 100, 30)
	for sb.currentBoard() != "scripted" {
		next, _ := sb.Update(tea.KeyMsg{Type: tea.KeyTab})
		sb = next.(ScoreboardModel)
	}

	assert.Len(t, sb.matches, 3)
	assert.Contains(t, sb.statsLine(), "Played 3  Won 2  Lost 1  Draw 0")
}
