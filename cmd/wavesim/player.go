package main

import (
	"github.com/JulioGmz89/wave-director/core"
	"github.com/JulioGmz89/wave-director/engine"
	"github.com/JulioGmz89/wave-director/event"
	"github.com/JulioGmz89/wave-director/system"
)

// Synthetic player tuning. The model is deliberately crude: it only has to
// exercise the feedback loop, not be fun
const (
	playerPriority = 40

	arenaWidth  = 80.0
	arenaHeight = 24.0

	playerMaxHealth   = 100.0
	playerBaseKillSec = 1.2 // Seconds to kill one enemy at multiplier 1
	enemyBaseDPS      = 0.9 // Damage per second per alive enemy at multiplier 1
	powerUpHeal       = 18.0
	idleRegenPerSec   = 1.5

	playerEnemyCap = 256

	// playerStreamOffset keeps the player's randomness off the generator
	// and drop-roll streams
	playerStreamOffset = 0x9A4E
)

type enemyPos struct {
	x, y float64
}

// simPlayer is the synthetic combatant. It is the spawner's factory and
// placement provider, and it feeds kill, damage and health events back into
// the world so the director has something to react to.
//
// Kill speed scales inversely with the live difficulty multiplier and incoming
// damage scales with it, which closes the loop: a struggling player slows the
// pacing down, a dominant one speeds it up
type simPlayer struct {
	world *engine.World
	rng   *core.Rand
	dir   *system.DirectorSystem

	health  float64
	enemies []enemyPos

	killTimer float64
	damageAcc float64

	totalKills int
	deaths     int
	pickups    int
}

func newSimPlayer(world *engine.World, seed uint64, dir *system.DirectorSystem) *simPlayer {
	p := &simPlayer{world: world, dir: dir}
	p.rng = core.Derive(seed, playerStreamOffset)
	p.reset()
	return p
}

func (p *simPlayer) reset() {
	p.health = playerMaxHealth
	p.enemies = p.enemies[:0]
	p.killTimer = 0
	p.damageAcc = 0
	p.totalKills = 0
	p.deaths = 0
	p.pickups = 0
}

// SpawnEnemy implements system.EnemyFactory
func (p *simPlayer) SpawnEnemy(catalogID string, x, y float64) bool {
	if len(p.enemies) >= playerEnemyCap {
		return false
	}
	p.enemies = append(p.enemies, enemyPos{x: x, y: y})
	return true
}

// EnemySpawnPosition implements system.Placement
func (p *simPlayer) EnemySpawnPosition() (float64, float64) {
	return p.rng.Float64() * arenaWidth, p.rng.Float64() * arenaHeight
}

// PowerUpSpawnPosition implements system.Placement
func (p *simPlayer) PowerUpSpawnPosition() (float64, float64) {
	return p.rng.Float64() * arenaWidth, p.rng.Float64() * arenaHeight
}

func (p *simPlayer) Name() string  { return "player" }
func (p *simPlayer) Priority() int { return playerPriority }

func (p *simPlayer) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGameReset,
		event.EventPowerUpDropRequest,
		event.EventHelpPowerUpRequest,
	}
}

func (p *simPlayer) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		p.reset()
	case event.EventPowerUpDropRequest, event.EventHelpPowerUpRequest:
		// Every drop is picked up instantly
		p.pickups++
		p.setHealth(p.health + powerUpHeal)
	}
}

func (p *simPlayer) Update(dt float64) {
	mult := p.dir.DifficultyMultiplier()

	if len(p.enemies) == 0 {
		p.killTimer = 0
		if p.health < playerMaxHealth {
			p.setHealth(p.health + idleRegenPerSec*dt)
		}
		return
	}

	// Kill cadence, slower against scaled-up enemies
	p.killTimer += dt
	for ttk := playerBaseKillSec * mult; p.killTimer >= ttk && len(p.enemies) > 0; {
		p.killTimer -= ttk
		p.killOne()
	}

	// Incoming damage, integer chunks through the damage event
	p.damageAcc += enemyBaseDPS * mult * float64(len(p.enemies)) * dt
	if p.damageAcc >= 1 {
		dmg := float64(int(p.damageAcc))
		p.damageAcc -= dmg
		p.world.PushEvent(event.EventPlayerDamaged, &event.PlayerDamagedPayload{Amount: dmg})
		p.setHealth(p.health - dmg)
	}
}

func (p *simPlayer) killOne() {
	// Closest-to-spawn order is irrelevant here, take the oldest
	e := p.enemies[0]
	p.enemies = p.enemies[1:]
	p.totalKills++
	p.world.PushEvent(event.EventEnemyKilled, &event.EnemyKilledPayload{X: e.x, Y: e.y})
}

func (p *simPlayer) setHealth(h float64) {
	if h > playerMaxHealth {
		h = playerMaxHealth
	}
	if h <= 0 {
		// Arcade respawn, the run keeps going
		p.deaths++
		h = playerMaxHealth
	}
	p.health = h
	p.world.PushEvent(event.EventPlayerHealthChanged, &event.HealthChangedPayload{
		Current: p.health,
		Max:     playerMaxHealth,
	})
}

// Damage applies a manual hit, used by the simulator's keyboard overrides
// to probe the director's low-health reactions
func (p *simPlayer) Damage(amount float64) {
	p.world.PushEvent(event.EventPlayerDamaged, &event.PlayerDamagedPayload{Amount: amount})
	p.setHealth(p.health - amount)
}

// Heal restores health without a pickup
func (p *simPlayer) Heal(amount float64) {
	p.setHealth(p.health + amount)
}

// KillBurst defeats up to n alive enemies at once, used to provoke the
// rapid-kill breather path on demand
func (p *simPlayer) KillBurst(n int) {
	for i := 0; i < n && len(p.enemies) > 0; i++ {
		p.killOne()
	}
}

func (p *simPlayer) Health() float64 { return p.health }
func (p *simPlayer) AliveCount() int { return len(p.enemies) }
func (p *simPlayer) TotalKills() int { return p.totalKills }
func (p *simPlayer) Deaths() int     { return p.deaths }
func (p *simPlayer) Pickups() int    { return p.pickups }
