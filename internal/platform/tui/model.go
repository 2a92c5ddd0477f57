package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// noticeTicks is how long a status notice stays on screen, in ticks.
const noticeTicks = 180

// Reloader is implemented by games that can swap in a changed pack.
type Reloader interface {
	Reload(pack levels.Pack)
}

// GameOptions configures a GameModel.
type GameOptions struct {
	// Watcher, if set, reports pack file changes; the game reloads them.
	Watcher *levels.Watcher

	// AllowBack lets B return to the caller (menu) after game over or
	// while paused. Without it only Q leaves the game.
	AllowBack bool
}

// GameModel is the Bubble Tea model that runs one game.
type GameModel struct {
	game       core.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	opts       GameOptions
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	notice     string
	noticeLeft int
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewGameModel creates a new Bubble Tea model for the given game.
func NewGameModel(game core.Game, store *storage.Store, cfg core.RuntimeConfig, opts GameOptions) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		opts:       opts,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init starts the game and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	if m.opts.Watcher != nil {
		return tea.Batch(tickCmd(m.config.TickRate), watchCmd(m.opts.Watcher))
	}
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The game follows the player with a viewport, so a resize only
		// changes the screen buffer.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()

	case PackChangedMsg:
		return m.handleReload(msg)

	case WatchErrorMsg:
		m.setNotice(fmt.Sprintf("watch error: %v", msg.Err))
		return m, watchCmd(m.opts.Watcher)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// A standalone program exits on back; a session swallows the quit and
	// shows its menu instead.
	if m.opts.AllowBack && m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		return m, tea.Quit
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}

	if m.noticeLeft > 0 {
		m.noticeLeft--
	}

	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if result.Err != nil {
		log.Error("game step failed", "game", m.game.ID(), "err", result.Err)
		m.setNotice(result.Err.Error())
	}

	if result.Finished != nil {
		m.saveLevelResult(*result.Finished)
	}

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved && m.gameState.Score > 0 {
		if m.store != nil {
			if _, err := m.store.SaveScore(m.game.ID(), m.gameState.Score); err != nil {
				log.Warn("could not save score", "err", err)
			}
		}
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

func (m GameModel) saveLevelResult(r core.LevelResult) {
	if m.store == nil {
		return
	}
	outcome := storage.OutcomeLost
	if r.Won {
		outcome = storage.OutcomeWon
	}
	_, err := m.store.SaveLevelResult(storage.LevelResult{
		PackID:   r.PackID,
		Level:    r.Level,
		Outcome:  outcome,
		Coins:    r.Coins,
		Duration: r.Duration,
	})
	if err != nil {
		log.Warn("could not save level result", "err", err)
	}
}

// handleReload loads a changed pack file and hands it to the game.
func (m GameModel) handleReload(msg PackChangedMsg) (tea.Model, tea.Cmd) {
	next := watchCmd(m.opts.Watcher)

	reloader, ok := m.game.(Reloader)
	if !ok {
		return m, next
	}

	pack, err := levels.LoadFile(msg.Path)
	if err != nil {
		m.setNotice(fmt.Sprintf("reload failed: %v", err))
		return m, next
	}

	reloader.Reload(pack)
	m.gameState = m.game.State()
	m.setNotice(fmt.Sprintf("reloaded %s", filepath.Base(msg.Path)))
	return m, next
}

func (m *GameModel) setNotice(text string) {
	m.notice = text
	m.noticeLeft = noticeTicks
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".platformer", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Warn("could not create screenshot directory", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		log.Warn("could not save screenshot", "err", err)
		return
	}
	m.setNotice("screenshot saved")
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.noticeLeft > 0 && m.notice != "" {
		m.screen.DrawText(1, m.screen.Height()-1, m.notice)
	}
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a single game.
func Run(game core.Game, store *storage.Store, cfg core.RuntimeConfig, opts GameOptions) error {
	model := NewGameModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
