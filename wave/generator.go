package wave

import (
	"log"

	"github.com/JulioGmz89/wave-director/config"
	"github.com/JulioGmz89/wave-director/core"
	"github.com/JulioGmz89/wave-director/parameter"
)

// Generator is the pull-based, unbounded wave provider. One seeded random
// source per instance; two generators built with the same seed and config
// produce identical NextWave sequences
type Generator struct {
	cfg   *config.Config
	curve Curve
	seed  uint64
	rng   *core.Rand

	waveIndex     int
	composeAborts int

	warnedNoBoss   bool
	warnedNoConfig bool
}

// NewGenerator creates a generator over the given config and seed
func NewGenerator(cfg *config.Config, seed uint64) *Generator {
	g := &Generator{cfg: cfg}
	if cfg != nil {
		g.curve = NewCurve(cfg.Difficulty)
	}
	g.SetSeed(seed)
	return g
}

// Seed returns the seed of the current run
func (g *Generator) Seed() uint64 {
	return g.seed
}

// SetSeed returns to wave 0 and reseeds the stream, enabling reproducible runs
func (g *Generator) SetSeed(seed uint64) {
	g.seed = seed
	g.rng = core.NewRand(seed)
	g.waveIndex = 0
	g.composeAborts = 0
}

// Reset returns to wave 0 with the original seed
func (g *Generator) Reset() {
	g.SetSeed(g.seed)
}

// CurrentWave returns the index of the most recently generated wave,
// 0 before the first pull
func (g *Generator) CurrentWave() int {
	return g.waveIndex
}

// Curve exposes the pure difficulty-curve queries for preview tooling
func (g *Generator) Curve() Curve {
	return g.curve
}

// ComposeAborts counts compositions that hit the iteration cap this run
func (g *Generator) ComposeAborts() int {
	return g.composeAborts
}

// NextWave advances to the next wave and generates it
// Never reports exhaustion: the provider is unbounded by design
func (g *Generator) NextWave() *GeneratedWave {
	g.waveIndex++
	return g.generate(g.waveIndex, g.rng)
}

// PeekNextWave previews the upcoming wave without touching the generator's
// index or stream. The preview draws from a derived stream seeded from
// (seed, waveNumber), so it can diverge from the eventual real draw; that
// is accepted for preview purposes and must not drive gameplay decisions
func (g *Generator) PeekNextWave() *GeneratedWave {
	w := g.waveIndex + 1
	return g.generate(w, core.Derive(g.seed, uint64(w)))
}

func (g *Generator) generate(w int, rng *core.Rand) *GeneratedWave {
	if g.cfg == nil || len(g.cfg.Enemies) == 0 {
		// Absent catalog: emit an empty wave with conservative pacing
		// instead of failing the run
		if !g.warnedNoConfig {
			g.warnedNoConfig = true
			log.Printf("wave: no enemy catalog configured, emitting empty waves")
		}
		return &GeneratedWave{
			WaveNumber:           w,
			TimeToNextWave:       parameter.DifficultyTimeBetweenWavesBase,
			DifficultyMultiplier: 1,
		}
	}

	boss := g.curve.IsBossWave(w)
	swarm := g.curve.IsSwarmWave(w)
	budget := g.curve.Budget(w)

	maxEnemies := g.cfg.Difficulty.MaxEnemiesPerWave
	if swarm {
		maxEnemies = int(float64(maxEnemies) * g.cfg.Difficulty.SwarmCountMultiplier)
	}

	candidates := g.candidatesFor(w, boss, swarm)
	comp := Compose(rng, candidates, budget, g.cfg.Difficulty.MinEnemiesPerWave, maxEnemies, g.curve.SpawnInterval(w))
	if comp.Aborted {
		g.composeAborts++
		log.Printf("wave: composition hit iteration cap on wave %d (budget %d, %d candidates), kept %d enemies",
			w, budget, len(candidates), comp.TotalCount)
	}

	return &GeneratedWave{
		WaveNumber:             w,
		Groups:                 comp.Groups,
		EnemyCount:             comp.TotalCount,
		TimeToNextWave:         g.curve.TimeBetweenWaves(w),
		PowerUpChanceOnKill:    g.curve.PowerUpChance(w),
		SpawnPowerUpOnComplete: boss,
		DifficultyMultiplier:   1 + 0.1*float64(w-1),
		IsBoss:                 boss,
		IsSwarm:                swarm,
		Budget:                 budget,
	}
}

// candidatesFor filters the catalog for wave w
// Boss waves restrict to boss archetypes; a catalog with no unlocked boss
// falls back to the normal set rather than producing nothing. Swarm waves
// exclude bosses to favor many weak enemies
func (g *Generator) candidatesFor(w int, boss, swarm bool) []config.EnemyCatalogEntry {
	var out []config.EnemyCatalogEntry
	for _, e := range g.cfg.Enemies {
		if e.MinWaveToAppear > w {
			continue
		}
		switch {
		case boss:
			if e.IsBoss {
				out = append(out, e)
			}
		case swarm:
			if !e.IsBoss {
				out = append(out, e)
			}
		default:
			out = append(out, e)
		}
	}

	if boss && len(out) == 0 {
		if !g.warnedNoBoss {
			g.warnedNoBoss = true
			log.Printf("wave: boss wave %d has no unlocked boss archetype, using normal candidates", w)
		}
		return g.candidatesFor(w, false, false)
	}
	return out
}
