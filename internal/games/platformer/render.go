package platformer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/emberghost/internal/core"
)

// Glyphs used for rendering
const (
	PlayerGlyph     = '█'
	PlayerEyeGlyph  = '•'
	GhostFadeGlyph  = '░'
	EnemyGlyph      = '▒'
	EnemyEyeGlyph   = '◆'
	EnemyDeadGlyph  = '·'
	EmberGlyph      = '✦'
	EmberAltGlyph   = '*'
	PlatformGlyph   = '▀'
	GroundGlyph     = '█'
	HangingGlyph    = '▬'
	DangerousGlyph  = '▓'
	ChainGlyph      = '┆'
	ThornUpGlyph    = '▲'
	ThornDownGlyph  = '▼'
	HUDSeparator    = '─'
	invincibleBlink = 4 // Ticks per visible/hidden half of the blink
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	g.RenderWith(dst, core.RenderOptions{})
}

// RenderWith draws the game. The debug option adds hitboxes, hazard zones
// and a physics readout.
func (g *Game) RenderWith(dst *core.Screen, opts core.RenderOptions) {
	dst.Clear()

	if g.screenTooSmall || dst.Width() < g.minScreenW || dst.Height() < g.minScreenH {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}
	if g.world == nil {
		dst.DrawTextCentered(dst.Height()/2, "Loading...")
		return
	}

	if c, ok := core.ParseColor(g.world.Spec.Background); ok {
		dst.SetBackdrop(c)
	}
	vp := g.viewport(dst)

	g.renderHUD(dst)
	g.renderPlatforms(dst, vp)
	g.renderCollectibles(dst, vp)
	g.renderEnemies(dst, vp)
	g.renderPlayer(dst, vp)

	if opts.Debug {
		g.renderDebug(dst, vp)
	} else {
		g.renderFooter(dst)
	}

	g.renderOverlay(dst)
}

// viewport maps the world onto every row between the HUD and the footer.
func (g *Game) viewport(dst *core.Screen) core.Viewport {
	cells := core.NewRect(0, 2, dst.Width(), dst.Height()-3)
	return core.NewViewport(g.cfg.World.Width, g.cfg.World.Height, cells)
}

// clip returns the part of r inside the playfield.
func clip(r, area core.Rect) core.Rect {
	x0 := core.Max(r.X, area.X)
	y0 := core.Max(r.Y, area.Y)
	x1 := core.Min(r.Right(), area.Right())
	y1 := core.Min(r.Bottom(), area.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return core.Rect{}
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

func boxCells(vp core.Viewport, b Box) core.Rect {
	return clip(vp.RectToCells(b.X, b.Y, b.W, b.H), vp.Cells)
}

func setIn(dst *core.Screen, vp core.Viewport, x, y int, r rune, c core.Color) {
	if vp.Cells.Contains(x, y) {
		dst.SetColored(x, y, r, c)
	}
}

// renderHUD draws score, lives, level and ember count.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := g.HUD()

	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", hud.Score))

	lives := fmt.Sprintf("Lives: %s", strings.Repeat("♥", hud.Lives))
	if hud.Lives == 0 {
		lives = "Lives: -"
	}
	dst.DrawTextColored(16, 0, lives, core.ColorBrightRed)

	embers := fmt.Sprintf("Embers: %d/%d", hud.Collected, hud.Total)
	dst.DrawTextColored(dst.Width()/2, 0, embers, core.ColorOrange)

	level := fmt.Sprintf("Level %d/%d", hud.Level, hud.LevelCount)
	dst.DrawText(dst.Width()-utf8.RuneCountInString(level)-1, 0, level)

	name := hud.LevelName
	if hud.Invincible {
		name += "  [invincible]"
	}
	dst.DrawTextCentered(1, name)

	sep := core.ColorDim
	if c, ok := core.ParseColor(g.world.Spec.Background); ok {
		sep = c
	}
	for x := range dst.Width() {
		if dst.Get(x, 1) == ' ' {
			dst.SetColored(x, 1, HUDSeparator, sep)
		}
	}
}

func (g *Game) renderPlatforms(dst *core.Screen, vp core.Viewport) {
	for _, p := range g.world.Platforms {
		r := boxCells(vp, p.Bounds())

		switch p.Kind {
		case KindGround:
			dst.DrawRectColored(r, GroundGlyph, core.ColorGray)
		case KindHanging:
			dst.DrawRectColored(r, HangingGlyph, core.ColorCyan)
			g.renderChains(dst, vp, p)
		case KindDangerous:
			dst.DrawRectColored(r, DangerousGlyph, core.ColorRed)
		default:
			dst.DrawRectColored(r, PlatformGlyph, core.ColorBrown)
		}

		if zone, ok := HazardZone(p); ok {
			glyph := ThornUpGlyph
			zr := vp.RectToCells(zone.X, zone.Y, zone.W, zone.H)
			row := zr.Bottom() - 1
			if !p.ThornsOnTop {
				glyph = ThornDownGlyph
				row = zr.Y
			}
			for x := zr.X; x < zr.Right(); x++ {
				setIn(dst, vp, x, row, glyph, core.ColorBrightRed)
			}
		}
	}
}

// renderChains draws the two chains a hanging platform is suspended from.
func (g *Game) renderChains(dst *core.Screen, vp core.Viewport, p Platform) {
	top, _ := vp.ToCell(0, p.Y-p.ChainLength)
	_, y := vp.ToCell(0, p.Y)
	for _, wx := range []float64{p.X + p.W*0.15, p.X + p.W*0.85} {
		x, _ := vp.ToCell(wx, 0)
		for cy := top; cy < y; cy++ {
			setIn(dst, vp, x, cy, ChainGlyph, core.ColorDim)
		}
	}
}

func (g *Game) renderCollectibles(dst *core.Screen, vp core.Viewport) {
	for _, c := range g.world.Collectibles {
		if c.Collected {
			continue
		}
		b := c.Bounds()
		x, y := vp.ToCell(b.X+b.W/2, b.Y+b.H/2)
		glyph := EmberGlyph
		if c.AnimFrame%2 == 1 {
			glyph = EmberAltGlyph
		}
		setIn(dst, vp, x, y, glyph, core.ColorOrange)
	}
}

func (g *Game) renderEnemies(dst *core.Screen, vp core.Viewport) {
	for _, e := range g.world.Enemies {
		r := boxCells(vp, e.Bounds())
		if e.Dying {
			dst.DrawRectColored(r, EnemyDeadGlyph, core.ColorGray)
			continue
		}
		dst.DrawRectColored(r, EnemyGlyph, core.ColorRed)

		eyeX := r.X
		if e.Direction > 0 {
			eyeX = r.Right() - 1
		}
		setIn(dst, vp, eyeX, r.Y, EnemyEyeGlyph, core.ColorBrightYellow)
	}
}

func (g *Game) renderPlayer(dst *core.Screen, vp core.Viewport) {
	p := g.player
	if !p.Alive && !p.Dying {
		return
	}
	if p.Invincible && !p.Dying && (p.InvincibleTicks/invincibleBlink)%2 == 1 {
		return
	}

	r := boxCells(vp, p.Bounds())
	if p.Dying {
		// The ghost fades from the top down as the death animation advances.
		fade := r.H * p.AnimFrame / (deathLastFrame + 1)
		r = core.NewRect(r.X, r.Y+fade, r.W, r.H-fade)
		dst.DrawRectColored(r, GhostFadeGlyph, core.ColorGray)
		return
	}

	dst.DrawRectColored(r, PlayerGlyph, core.ColorBrightWhite)
	if r.W >= 3 {
		eyes := []int{r.X + 1, r.X + 2}
		if p.Facing == FacingRight {
			eyes = []int{r.Right() - 3, r.Right() - 2}
		}
		for _, x := range eyes {
			setIn(dst, vp, x, r.Y, PlayerEyeGlyph, core.ColorBlue)
		}
	}
}

func (g *Game) renderFooter(dst *core.Screen) {
	hint := "←/→ move  SPACE jump  P pause  H debug  R restart  1-9 level"
	if g.phase == PhaseRespawning {
		hint = "Get ready..."
	}
	dst.DrawTextColored(1, dst.Height()-1, hint, core.ColorDim)
}

// renderDebug outlines every hitbox and thorn zone and prints the player's
// physics state on the footer row.
func (g *Game) renderDebug(dst *core.Screen, vp core.Viewport) {
	outline := func(b Box, c core.Color) {
		dst.DrawBoxColored(boxCells(vp, b), c)
	}

	for _, p := range g.world.Platforms {
		if zone, ok := HazardZone(p); ok {
			outline(zone, core.ColorMagenta)
		}
	}
	for _, c := range g.world.Collectibles {
		if !c.Collected {
			outline(c.Bounds(), core.ColorYellow)
		}
	}
	for _, e := range g.world.Enemies {
		outline(e.Bounds(), core.ColorBrightRed)
	}
	outline(g.player.Bounds(), core.ColorBrightGreen)

	p := g.player
	info := fmt.Sprintf("%s x=%.0f y=%.0f vx=%.1f vy=%.1f ground=%t anim=%s inv=%d t=%d",
		g.phase, p.X, p.Y, p.VX, p.VY, p.OnGround, p.Anim, p.InvincibleTicks, g.tickCount)
	dst.DrawTextColored(0, dst.Height()-1, info, core.ColorBrightGreen)
}

// renderOverlay draws phase messages over the playfield.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.phase {
	case PhasePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case PhaseLevelComplete:
		title := fmt.Sprintf("LEVEL %d CLEAR", g.level)
		subtitle := fmt.Sprintf("Bonus +%d", g.cfg.Scoring.LevelBonusPerLevel*g.level)
		g.drawCenteredBox(dst, title, subtitle)

	case PhaseGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.score)
		g.drawCenteredBox(dst, "GAME OVER", subtitle)

	case PhaseVictory:
		subtitle := fmt.Sprintf("Final Score: %d  |  Press R to restart", g.score)
		g.drawCenteredBox(dst, "ALL EMBERS GATHERED!", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()
	titleW := utf8.RuneCountInString(title)
	subtitleW := utf8.RuneCountInString(subtitle)

	boxW := core.Max(titleW, subtitleW) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextColored(boxX+(boxW-titleW)/2, boxY+1, title, core.ColorBrightYellow)
	dst.DrawText(boxX+(boxW-subtitleW)/2, boxY+3, subtitle)
}
