package platformer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-platformer/internal/config"
	platformcore "github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
)

func testPack(plans ...[]string) levels.Pack {
	p := levels.Pack{ID: "test", Name: "Test"}
	for i, rows := range plans {
		p.Levels = append(p.Levels, levels.Level{Name: string(rune('A' + i)), Rows: rows})
	}
	return p
}

func newTestGame(t *testing.T, opts Options, plans ...[]string) *Game {
	t.Helper()
	if opts.Config == (config.PlatformerConfig{}) {
		opts.Config = config.DefaultPlatformerConfig()
	}
	g := New(testPack(plans...), opts)
	g.Reset(platformcore.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 7})
	return g
}

func input(actions ...platformcore.Action) platformcore.InputFrame {
	in := platformcore.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// runUntilFinished steps until a level attempt is finished.
func runUntilFinished(t *testing.T, g *Game, in platformcore.InputFrame, maxTicks int) *platformcore.LevelResult {
	t.Helper()
	for i := 0; i < maxTicks; i++ {
		res := g.Step(in)
		require.NoError(t, res.Err)
		if res.Finished != nil {
			return res.Finished
		}
	}
	t.Fatalf("no level finished within %d ticks", maxTicks)
	return nil
}

var coinRight = []string{
	"      ",
	" @o   ",
	"xxxxxx",
}

var lavaRight = []string{
	"     ",
	" @ ! ",
	"xxxxx",
}

func TestResetLoadsStartLevel(t *testing.T) {
	g := newTestGame(t, Options{StartLevel: 1}, coinRight, lavaRight)

	assert.Equal(t, 1, g.LevelIndex())
	assert.Equal(t, 3, g.Lives())
	assert.Equal(t, "test", g.ID())
	assert.Equal(t, "Test", g.Title())
	require.NotNil(t, g.Level())
	assert.Equal(t, core.StatusPlaying, g.Level().Status)
	assert.Equal(t, 1.0, g.Level().FinishDelay)
}

func TestResetClampsStartLevel(t *testing.T) {
	g := newTestGame(t, Options{StartLevel: 9}, coinRight, lavaRight)
	assert.Equal(t, 1, g.LevelIndex())
}

func TestPlayerStandsOnGround(t *testing.T) {
	g := newTestGame(t, Options{}, coinRight)

	start := g.Level().Player().Pos()
	for i := 0; i < 30; i++ {
		g.Step(input())
	}
	assert.Equal(t, start, g.Level().Player().Pos())
	assert.Equal(t, core.V(1, 0.5), start)
}

func TestCollectLastCoinWinsPack(t *testing.T) {
	g := newTestGame(t, Options{}, coinRight)

	res := runUntilFinished(t, g, input(platformcore.ActionRight), 300)

	assert.True(t, res.Won)
	assert.Equal(t, "test", res.PackID)
	assert.Equal(t, 0, res.Level)
	assert.Equal(t, 1, res.Coins)
	assert.Greater(t, res.Duration.Seconds(), 1.0)

	state := g.State()
	assert.True(t, state.GameOver)
	assert.True(t, state.Won)
	assert.Equal(t, CoinPoints+LevelPoints, state.Score)

	// Stepping after game over is a no-op.
	after := g.Step(input(platformcore.ActionRight))
	assert.Nil(t, after.Finished)
	assert.Equal(t, state, after.State)
}

func TestWinAdvancesToNextLevel(t *testing.T) {
	g := newTestGame(t, Options{}, coinRight, coinRight)

	res := runUntilFinished(t, g, input(platformcore.ActionRight), 300)

	assert.True(t, res.Won)
	assert.Equal(t, 1, g.LevelIndex())
	assert.False(t, g.State().GameOver)
	assert.Equal(t, core.StatusPlaying, g.Level().Status)
	assert.Equal(t, 1, g.Level().CoinsLeft())
}

func TestLevelKeepsRunningDuringFinishDelay(t *testing.T) {
	g := newTestGame(t, Options{}, coinRight)

	in := input(platformcore.ActionRight)
	for g.Level().Status == core.StatusPlaying {
		require.Nil(t, g.Step(in).Finished)
	}
	assert.Equal(t, core.StatusWon, g.Level().Status)

	// Roughly one second of ticks passes before the level reports finished.
	ticks := 0
	for {
		ticks++
		if g.Step(in).Finished != nil {
			break
		}
		require.Less(t, ticks, 120)
	}
	assert.InDelta(t, 61, ticks, 2)
}

func TestLavaCostsALife(t *testing.T) {
	g := newTestGame(t, Options{}, lavaRight)
	spawn := g.Level().Player().Pos()

	res := runUntilFinished(t, g, input(platformcore.ActionRight), 300)

	assert.False(t, res.Won)
	assert.Equal(t, 2, g.Lives())
	assert.False(t, g.State().GameOver)

	// The level restarts from scratch.
	assert.Equal(t, core.StatusPlaying, g.Level().Status)
	assert.Equal(t, spawn, g.Level().Player().Pos())
}

func TestLastLifeEndsRun(t *testing.T) {
	cfg := config.DefaultPlatformerConfig()
	cfg.Level.Lives = 1
	g := newTestGame(t, Options{Config: cfg}, lavaRight)

	res := runUntilFinished(t, g, input(platformcore.ActionRight), 300)

	assert.False(t, res.Won)
	assert.Equal(t, 0, g.Lives())
	assert.True(t, g.State().GameOver)
	assert.False(t, g.State().Won)
}

func TestFireballKillsPlayer(t *testing.T) {
	g := newTestGame(t, Options{}, []string{
		" |    ",
		"      ",
		" @   o",
		"xxxxxx",
	})

	for i := 0; i < 60 && g.Level().Status == core.StatusPlaying; i++ {
		g.Step(input())
	}
	assert.Equal(t, core.StatusLost, g.Level().Status)
}

func TestJumpAndLand(t *testing.T) {
	g := newTestGame(t, Options{}, []string{
		"     ",
		"     ",
		"     ",
		" @  o",
		"xxxxx",
	})
	player := g.Level().Player()
	groundY := player.Pos().Y

	g.Step(input(platformcore.ActionJump))
	assert.Less(t, player.Velocity().Y, 0.0)

	g.Step(input())
	assert.Less(t, player.Pos().Y, groundY)

	for i := 0; i < 240; i++ {
		g.Step(input())
	}
	assert.InDelta(t, groundY, player.Pos().Y, 0.05)
	assert.Equal(t, core.StatusPlaying, g.Level().Status)
}

func TestWallsStopPlayer(t *testing.T) {
	g := newTestGame(t, Options{}, []string{
		"     ",
		" @x o",
		"xxxxx",
	})
	player := g.Level().Player()

	for i := 0; i < 60; i++ {
		g.Step(input(platformcore.ActionRight))
	}
	assert.LessOrEqual(t, player.Right(), 2.0)
	assert.Equal(t, core.StatusPlaying, g.Level().Status)
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(t, Options{}, coinRight)
	player := g.Level().Player()
	start := player.Pos()

	res := g.Step(input(platformcore.ActionPause))
	assert.True(t, res.State.Paused)

	for i := 0; i < 10; i++ {
		g.Step(input(platformcore.ActionRight))
	}
	assert.Equal(t, start, player.Pos())

	res = g.Step(input(platformcore.ActionPause))
	assert.False(t, res.State.Paused)
}

func TestReloadKeepsProgress(t *testing.T) {
	g := newTestGame(t, Options{}, coinRight, lavaRight)
	runUntilFinished(t, g, input(platformcore.ActionRight), 300)
	require.Equal(t, 1, g.LevelIndex())
	score := g.State().Score

	g.Reload(testPack(coinRight))

	assert.Equal(t, 0, g.LevelIndex())
	assert.Equal(t, score, g.State().Score)
	assert.Equal(t, 3, g.Lives())
	assert.Equal(t, 1, g.Level().CoinsTotal())
}

func TestMissingLevelReportsError(t *testing.T) {
	g := New(levels.Pack{ID: "empty"}, Options{Config: config.DefaultPlatformerConfig()})
	g.Reset(platformcore.DefaultConfig())

	res := g.Step(input())
	assert.ErrorIs(t, res.Err, levels.ErrLevelNotFound)
	assert.True(t, res.State.GameOver)
}

func TestMissingPlayerReportsError(t *testing.T) {
	g := newTestGame(t, Options{}, []string{"  o", "xxx"})

	res := g.Step(input())
	assert.ErrorIs(t, res.Err, ErrNoPlayer)
}

func TestSameSeedSameRun(t *testing.T) {
	a := newTestGame(t, Options{}, coinRight)
	b := newTestGame(t, Options{}, coinRight)

	for i := 0; i < 20; i++ {
		a.Step(input())
		b.Step(input())
	}
	coinPos := func(g *Game) core.Vector {
		for _, act := range g.Level().Actors() {
			if act.Kind() == core.KindCoin {
				return act.Pos()
			}
		}
		return core.Vector{}
	}
	assert.Equal(t, coinPos(a), coinPos(b))
}

func TestRender(t *testing.T) {
	g := newTestGame(t, Options{}, coinRight)
	screen := platformcore.NewScreen(60, 12)

	g.Render(screen)
	out := screen.String()

	assert.Contains(t, out, "Test: A (1/1)")
	assert.Contains(t, out, "Lives: 3")
	assert.Contains(t, out, "Coins: 0/1")
	assert.Contains(t, out, string(PlayerHead))
	assert.Contains(t, out, string(CoinChar))
	assert.Contains(t, out, strings.Repeat(string(WallChar), 6))

	cell := screen.GetCell(1, 1+hudRows)
	assert.Equal(t, PlayerLegs, cell.Rune)
	assert.Equal(t, platformcore.ColorBrightWhite, cell.Color)
}

func TestRenderPaused(t *testing.T) {
	g := newTestGame(t, Options{}, coinRight)
	g.Step(input(platformcore.ActionPause))

	screen := platformcore.NewScreen(60, 12)
	g.Render(screen)
	assert.Contains(t, screen.String(), "PAUSED")
}
