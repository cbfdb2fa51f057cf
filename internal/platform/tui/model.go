package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mapcolor/internal/core"
	"github.com/vovakirdan/mapcolor/internal/registry"
	"github.com/vovakirdan/mapcolor/internal/storage"
)

// resizer is implemented by games that can follow a window resize
// without starting over.
type resizer interface {
	Resize(w, h int)
}

// Model is the Bubble Tea model for playing one board.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	help       help.Model
	logger     *log.Logger
	player     string
	inputFrame core.InputFrame
	gameState  core.GameState
	started    time.Time
	tickTag    uint64
	width      int
	height     int
	embedded   bool // Back returns to the session menu instead of quitting
	quitting   bool
	backToMenu bool
	matchSaved bool // Whether the current finished match has been saved
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithPlayer sets the name recorded with finished matches.
func WithPlayer(name string) ModelOption {
	return func(m *Model) {
		m.player = name
	}
}

// WithLogger sets the logger used for storage failures.
func WithLogger(l *log.Logger) ModelOption {
	return func(m *Model) {
		m.logger = l
	}
}

// Embedded makes Back leave the game instead of quitting the program.
func Embedded() ModelOption {
	return func(m *Model) {
		m.embedded = true
	}
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:       game,
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		help:       help.New(),
		player:     os.Getenv("USER"),
		inputFrame: core.NewInputFrame(),
		started:    time.Now(),
		tickTag:    newTickTag(),
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.help.Width = cfg.ScreenW
	m.config.ScreenH = m.boardHeight()
	m.screen = core.NewScreen(m.config.ScreenW, m.config.ScreenH)
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	return tickCmd(m.config.TickRate, m.tickTag)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil

	case TickMsg:
		if msg.Tag != m.tickTag {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+s":
		if err := m.saveScreenshot(); err != nil {
			m.logError("screenshot failed", err)
		}
		return m, nil

	case key.Matches(msg, m.keyMapper.Keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
		return m, nil

	case key.Matches(msg, m.keyMapper.Keys.Back):
		if m.embedded {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// resize fits the board area to the window minus the help lines.
func (m *Model) resize() {
	m.config.ScreenW = m.width
	m.config.ScreenH = m.boardHeight()
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)

	if r, ok := m.game.(resizer); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
		return
	}
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
}

func (m Model) boardHeight() int {
	h := lipgloss.Height(m.help.View(m.keyMapper.Keys))
	return max(m.height-h, 0)
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	prev := m.gameState
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if newMatch(prev, m.gameState) {
		m.matchSaved = false
		m.started = time.Now()
	}

	if m.gameState.GameOver && !m.matchSaved {
		m.saveMatch()
		m.matchSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate, m.tickTag)
}

// newMatch reports whether a restart or a new board began between two ticks.
// Games that do not count matches are judged by their move counter.
func newMatch(prev, cur core.GameState) bool {
	if cur.Match != prev.Match {
		return true
	}
	return !cur.GameOver && (prev.GameOver || cur.Moves < prev.Moves)
}

// saveMatch records the finished match. Auto-solved matches are not recorded.
func (m *Model) saveMatch() {
	if m.store == nil || m.gameState.Assisted {
		return
	}

	res := storage.MatchResult{
		BoardID:       m.game.ID(),
		Player:        m.player,
		HumanScore:    m.gameState.Score,
		ComputerScore: m.gameState.OpponentScore,
		Winner:        m.gameState.Outcome,
		Moves:         m.gameState.Moves,
		Duration:      int(time.Since(m.started).Seconds()),
	}
	best, bestErr := m.store.HighScore(res.BoardID)
	if _, err := m.store.SaveMatch(res); err != nil {
		m.logError("could not save match", err)
		return
	}
	if m.logger == nil {
		return
	}
	m.logger.Debug("match saved", "board", res.BoardID, "winner", res.Winner,
		"human", res.HumanScore, "computer", res.ComputerScore)
	if bestErr == nil && res.HumanScore > best {
		m.logger.Info("new best score", "board", res.BoardID, "player", res.Player, "score", res.HumanScore, "previous", best)
	}
}

func (m Model) logError(msg string, err error) {
	if m.logger != nil {
		m.logger.Error(msg, "game", m.game.ID(), "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() error {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	dir := filepath.Join(home, ".mapcolor", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	return os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keyMapper.Keys))
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to leave an embedded game.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// GameState returns the state seen on the last tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) error {
	model := NewModel(game, store, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
