package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"trexrunner/internal/core"
	"trexrunner/internal/runner"
	"trexrunner/internal/storage"
)

// Model is the Bubble Tea model hosting one runner session.
type Model struct {
	game       *runner.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	quitting   bool
	runSaved   bool // Telemetry written for the current game over
	bell       bool // Ring the terminal bell on the next render
}

// NewModel creates a new Bubble Tea model for the runner.
func NewModel(game *runner.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the model and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)

	// Seed the session high score from past runs.
	if m.store != nil {
		if high, err := m.store.HighScore(m.game.ID()); err == nil && high > 0 {
			m.game.SetHighScore(high)
		}
	}

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame, time.Now()) {
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events. A live run restarts from
// Waiting; the intro/narrow-screen decision depends on the new width.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if !m.gameState.GameOver {
		m.game.Reset(m.config)
		m.keyMapper.Reset()
	}

	return m, nil
}

// handleTick runs one simulation tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.keyMapper.SynthesizeReleases(&m.inputFrame, now)

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Sound cues come out as events; the terminal bell is the only
	// speaker we have.
	m.bell = false
	for _, e := range result.Events {
		switch e.Kind {
		case core.EventSoundButtonPress, core.EventSoundHit, core.EventSoundAchievement:
			m.bell = true
		}
	}

	if m.gameState.GameOver {
		if !m.runSaved && m.gameState.Score > 0 {
			m.saveRun()
			m.runSaved = true
		}
	} else {
		m.runSaved = false
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveRun persists the finished run's score and telemetry. Best effort;
// the game continues regardless.
func (m *Model) saveRun() {
	if m.store == nil {
		return
	}
	snap := m.game.Snapshot()
	//nolint:errcheck // Best-effort save
	m.store.SaveRun(storage.RunRecord{
		GameID:      m.game.ID(),
		Score:       snap.Score,
		DistancePx:  int(snap.DistanceRan),
		DurationMs:  int(snap.RunningTime),
		MaxSpeed:    snap.Speed,
		Jumps:       snap.JumpCount,
		NightCycles: snap.NightPhase,
	})
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".trex", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	out := RenderScreen(m.screen, m.gameState.Inverted)
	if m.bell {
		out += "\a"
	}
	return out
}

// Run starts the Bubble Tea program with the given model.
func Run(game *runner.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
