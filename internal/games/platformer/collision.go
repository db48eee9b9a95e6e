package platformer

// resolveCollisions arbitrates player contact with enemies and thorns for
// one tick. A stomp ends arbitration. A side hit that lands suppresses the
// thorn check.
func (g *Game) resolveCollisions() {
	if g.resolveStomp() {
		return
	}
	if g.resolveSideHit() {
		return
	}
	if g.player.Invincible || g.player.Dying {
		return
	}
	g.resolveThorns()
}

// resolveStomp kills the first enemy the player is landing on.
func (g *Game) resolveStomp() bool {
	for _, e := range g.world.Enemies {
		if !e.StompedBy(g.player) {
			continue
		}
		if e.TakeDamage() {
			points := g.cfg.Scoring.StompBase + g.cfg.Scoring.StompPerLevel*g.level
			g.addScore(points)
			g.player.Bounce(g.cfg.Gameplay.StompBounce, g.cfg.Gameplay.StompInvincibleTicks)
			g.stats.stomps++
			g.emit(EventStomp, points)
		}
		return true
	}
	return false
}

// resolveSideHit damages the player for the first enemy touching it from
// the side. It reports whether damage was applied.
func (g *Game) resolveSideHit() bool {
	for _, e := range g.world.Enemies {
		if !e.SideHit(g.player) {
			continue
		}
		if g.player.Invincible || g.player.Dying {
			return false
		}
		penalty := g.cfg.Scoring.SideHitBase + g.cfg.Scoring.SideHitPerLevel*g.level
		return g.damagePlayer(penalty, EventHurt)
	}
	return false
}

// resolveThorns damages the player for the first thorn zone it overlaps.
func (g *Game) resolveThorns() {
	body := g.player.Bounds()
	for _, p := range g.world.Platforms {
		zone, ok := HazardZone(p)
		if !ok || !Overlaps(body, zone) {
			continue
		}
		penalty := g.cfg.Scoring.ThornBase + g.cfg.Scoring.ThornPerLevel*g.level
		g.damagePlayer(penalty, EventThorns)
		return
	}
}

// damagePlayer applies a hit: knockback, a score penalty and one life.
// Losing the last life starts the death sequence.
func (g *Game) damagePlayer(penalty int, kind EventKind) bool {
	if !g.player.TakeDamage() {
		return false
	}
	before := g.score
	g.addScore(-penalty)
	g.lives = max(g.lives-1, 0)
	g.emit(kind, g.score-before)

	if g.lives <= 0 {
		g.player.Die()
		g.enterDying(causeDamage)
	}
	return true
}

// collectEmbers collects every ember the player touches this tick.
func (g *Game) collectEmbers() {
	if g.player.Dying {
		return
	}
	body := g.player.Bounds()
	for _, c := range g.world.Collectibles {
		if !c.Touches(body) {
			continue
		}
		if points := c.Collect(); points > 0 {
			g.addScore(points)
			g.stats.embers++
			g.emit(EventCollect, points)
		}
	}
}
