// Package platformer drives the tile-based platformer simulation for the
// terminal platform: player control, level progression, lives and score.
package platformer

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-platformer/internal/config"
	platformcore "github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
)

// Scoring.
const (
	CoinPoints  = 10
	LevelPoints = 100
)

// ErrNoPlayer is reported when a level layout places no player.
var ErrNoPlayer = errors.New("platformer: level has no player")

// Options configures a new game.
type Options struct {
	Config     config.PlatformerConfig
	StartLevel int // zero-based
}

// Game plays one level pack from StartLevel to the end.
type Game struct {
	pack       levels.Pack
	cfg        config.PlatformerConfig
	difficulty *config.DifficultyManager
	startLevel int

	runtime platformcore.RuntimeConfig
	rng     *rand.Rand
	parser  *core.Parser

	levelIndex    int
	level         *core.Level
	levelTime     float64 // simulated seconds in the current attempt
	lives         int
	score         int
	levelsCleared int
	ticks         int

	controls controls
	viewport platformcore.Viewport

	gameOver bool
	won      bool
	paused   bool
}

// New creates a game over pack. Reset must be called before Step.
func New(pack levels.Pack, opts Options) *Game {
	return &Game{
		pack:       pack,
		cfg:        opts.Config,
		startLevel: opts.StartLevel,
	}
}

// ID returns the pack id, used for score storage.
func (g *Game) ID() string {
	return g.pack.ID
}

// Title returns the pack display name.
func (g *Game) Title() string {
	return g.pack.Title()
}

// Reset starts the run over from the start level.
func (g *Game) Reset(runtime platformcore.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.parser = core.NewParser(core.DefaultDictionary(g.rng))
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	g.levelIndex = clampIndex(g.startLevel, g.pack.Len())
	g.lives = g.cfg.Level.Lives
	if g.lives < 1 {
		g.lives = 1
	}
	g.score = 0
	g.levelsCleared = 0
	g.ticks = 0
	g.gameOver = false
	g.won = false
	g.paused = false
	g.viewport = platformcore.Viewport{}

	g.loadLevel()
}

// Reload swaps in a new version of the pack, typically after its file
// changed on disk, and restarts the current level. Lives and score are kept.
func (g *Game) Reload(pack levels.Pack) {
	g.pack = pack
	g.levelIndex = clampIndex(g.levelIndex, pack.Len())
	if g.gameOver {
		return
	}
	g.loadLevel()
}

func (g *Game) loadLevel() {
	g.controls = controls{}
	g.levelTime = 0

	lvl, err := g.pack.Level(g.levelIndex)
	if err != nil {
		g.level = nil
		return
	}
	g.level = g.parser.Parse(lvl.Rows)
	g.level.FinishDelay = g.cfg.Level.FinishDelay
}

// Step advances the simulation by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	if g.gameOver {
		return platformcore.StepResult{State: g.State()}
	}

	if in.Has(platformcore.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return platformcore.StepResult{State: g.State()}
	}

	if g.level == nil {
		g.gameOver = true
		return platformcore.StepResult{State: g.State(), Err: fmt.Errorf("%w: %s", levels.ErrLevelNotFound, g.pack.ID)}
	}
	player := g.level.Player()
	if player == nil {
		g.gameOver = true
		return platformcore.StepResult{State: g.State(), Err: fmt.Errorf("%w: %s level %d", ErrNoPlayer, g.pack.ID, g.levelIndex+1)}
	}

	g.ticks++
	frame := g.frameStep()
	dt := frame * g.difficulty.TimeScale(g.levelIndex, g.ticks)

	g.controls.update(in, g.cfg.Physics.HoldTime, frame)
	if g.level.Status != core.StatusLost {
		g.movePlayer(player, dt)
	}

	for _, a := range g.level.Actors() {
		a.Update(dt, g.level)
	}

	if err := g.checkCollisions(player); err != nil {
		return platformcore.StepResult{State: g.State(), Err: err}
	}

	g.levelTime += dt

	if g.level.Status.Terminal() {
		g.level.FinishDelay -= dt
	}
	if !g.level.IsFinished() {
		return platformcore.StepResult{State: g.State()}
	}

	result := g.finishLevel()
	return platformcore.StepResult{State: g.State(), Finished: &result}
}

// frameStep returns the wall-clock length of one tick, capped at max_step.
func (g *Game) frameStep() float64 {
	rate := g.runtime.TickRate
	if rate <= 0 {
		rate = 60
	}
	return math.Min(1/float64(rate), g.cfg.Physics.MaxStep)
}

// checkCollisions reports lava under the player first, then the first
// overlapping actor.
func (g *Game) checkCollisions(player core.Actor) error {
	if g.level.ObstacleAt(player.Pos(), player.Size()) == core.ObstacleLava {
		g.level.PlayerTouched(core.KindLava, nil)
	}

	hit, err := g.level.ActorAt(player)
	if err != nil {
		return err
	}
	if hit == nil {
		return nil
	}

	before := g.level.CoinsLeft()
	g.level.PlayerTouched(hit.Kind(), hit)
	if g.level.CoinsLeft() < before {
		g.score += CoinPoints
	}
	return nil
}

// finishLevel records the decided attempt and moves the run on: next level
// after a win, a lost life and a retry after a loss.
func (g *Game) finishLevel() platformcore.LevelResult {
	result := platformcore.LevelResult{
		PackID:   g.pack.ID,
		Level:    g.levelIndex,
		Won:      g.level.Status == core.StatusWon,
		Coins:    g.level.CoinsTotal() - g.level.CoinsLeft(),
		Duration: time.Duration(g.levelTime * float64(time.Second)),
	}

	if result.Won {
		g.levelsCleared++
		g.score += LevelPoints
		if g.levelIndex+1 >= g.pack.Len() {
			g.won = true
			g.gameOver = true
			return result
		}
		g.levelIndex++
	} else {
		g.lives--
		if g.lives <= 0 {
			g.gameOver = true
			return result
		}
	}

	g.loadLevel()
	return result
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Won:      g.won,
		Paused:   g.paused,
	}
}

// Level returns the level being played, or nil before Reset.
func (g *Game) Level() *core.Level {
	return g.level
}

// LevelIndex returns the zero-based index of the current level.
func (g *Game) LevelIndex() int {
	return g.levelIndex
}

// Lives returns the remaining lives.
func (g *Game) Lives() int {
	return g.lives
}

// Pack returns the pack being played.
func (g *Game) Pack() levels.Pack {
	return g.pack
}

func clampIndex(i, n int) int {
	if i < 0 || n == 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
