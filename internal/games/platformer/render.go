package platformer

import (
	"fmt"
	"math"

	platformcore "github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/core"
)

// Visual characters for rendering
const (
	WallChar     = '█'
	LavaChar     = '▒'
	CoinChar     = 'o'
	FireballChar = '*'
	PlayerHead   = '@'
	PlayerLegs   = 'Λ'
)

// hudRows is the number of screen rows above the world view.
const hudRows = 1

// Render draws the visible part of the level and the HUD.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.level != nil {
		g.follow(dst)
		g.drawGrid(dst)
		g.drawActors(dst)
	}
	g.drawHUD(dst)

	switch {
	case g.gameOver && g.won:
		g.drawCenteredMessage(dst, "YOU WIN", fmt.Sprintf("Score: %d  |  Press R to play again", g.score))
	case g.gameOver:
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case g.level != nil && g.level.Status == core.StatusWon:
		g.drawBanner(dst, "LEVEL CLEAR", platformcore.ColorBrightYellow)
	case g.level != nil && g.level.Status == core.StatusLost:
		g.drawBanner(dst, "OUCH", platformcore.ColorBrightRed)
	}
}

// follow keeps the player inside the middle of the world view.
func (g *Game) follow(dst *platformcore.Screen) {
	g.viewport.W = float64(dst.Width())
	g.viewport.H = float64(dst.Height() - hudRows)

	player := g.level.Player()
	if player == nil {
		return
	}
	cx := player.Left() + player.Size().X/2
	cy := player.Top() + player.Size().Y/2
	g.viewport = g.viewport.Follow(cx, cy, g.level.Width(), g.level.Height())
}

func (g *Game) drawGrid(dst *platformcore.Screen) {
	grid := g.level.Grid()
	x0 := int(math.Floor(g.viewport.X))
	y0 := int(math.Floor(g.viewport.Y))

	for y := y0; y < y0+int(g.viewport.H)+1; y++ {
		for x := x0; x < x0+int(g.viewport.W)+1; x++ {
			sx, sy := g.viewport.ToScreen(float64(x), float64(y))
			switch grid.At(x, y) {
			case core.ObstacleWall:
				g.set(dst, sx, sy, WallChar, platformcore.ColorGray)
			case core.ObstacleLava:
				g.set(dst, sx, sy, LavaChar, platformcore.ColorRed)
			}
		}
	}
}

func (g *Game) drawActors(dst *platformcore.Screen) {
	var player core.Actor
	for _, a := range g.level.Actors() {
		switch a.Kind() {
		case core.KindCoin:
			sx, sy := g.viewport.ToScreen(a.Left()+a.Size().X/2, a.Top()+a.Size().Y/2)
			g.set(dst, sx, sy, CoinChar, platformcore.ColorBrightYellow)
		case core.KindFireball:
			sx, sy := g.viewport.ToScreen(a.Left()+a.Size().X/2, a.Top()+a.Size().Y/2)
			g.set(dst, sx, sy, FireballChar, platformcore.ColorOrange)
		case core.KindPlayer:
			player = a
		}
	}

	// Player last so it is drawn over everything else.
	if player != nil {
		color := platformcore.ColorBrightWhite
		if g.level.Status == core.StatusLost {
			color = platformcore.ColorBrightRed
		}
		cx := player.Left() + player.Size().X/2
		hx, hy := g.viewport.ToScreen(cx, player.Top())
		lx, ly := g.viewport.ToScreen(cx, player.Bottom()-0.01)
		g.set(dst, lx, ly, PlayerLegs, color)
		g.set(dst, hx, hy, PlayerHead, color)
	}
}

// set draws a world-view cell, shifted below the HUD.
func (g *Game) set(dst *platformcore.Screen, x, y int, r rune, c platformcore.Color) {
	if y < 0 {
		return
	}
	dst.SetColored(x, y+hudRows, r, c)
}

func (g *Game) drawHUD(dst *platformcore.Screen) {
	name := ""
	if lvl, err := g.pack.Level(g.levelIndex); err == nil {
		name = lvl.Name
	}

	left := fmt.Sprintf(" %s: %s (%d/%d)", g.pack.Title(), name, g.levelIndex+1, g.pack.Len())
	coins := ""
	if g.level != nil {
		coins = fmt.Sprintf("Coins: %d/%d  ", g.level.CoinsTotal()-g.level.CoinsLeft(), g.level.CoinsTotal())
	}
	right := fmt.Sprintf("%sLives: %d  Score: %d ", coins, g.lives, g.score)

	dst.DrawText(0, 0, left)
	dst.DrawText(dst.Width()-len([]rune(right)), 0, right)
}

// drawBanner shows a one-line status message over the world view.
func (g *Game) drawBanner(dst *platformcore.Screen, text string, c platformcore.Color) {
	text = " " + text + " "
	x := (dst.Width() - len(text)) / 2
	for i, r := range text {
		dst.SetColored(x+i, hudRows+1, r, c)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *platformcore.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := platformcore.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := platformcore.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
