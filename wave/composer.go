package wave

import (
	"github.com/JulioGmz89/wave-director/config"
	"github.com/JulioGmz89/wave-director/core"
	"github.com/JulioGmz89/wave-director/parameter"
)

// Compose fills a wave from the candidate catalog using greedy weighted
// draws against the budget. Intentionally not an optimal knapsack: the
// point is fast, varied, authorable composition, not maximal budget use.
//
// Steps:
//  1. Weighted draws over candidates that are affordable and below their
//     per-wave cap, until the budget or the enemy cap runs out.
//  2. If still under minEnemies, backfill with the cheapest eligible
//     candidate ignoring the budget.
//  3. Fisher-Yates shuffle of group order for spawn variety.
//
// An empty candidate list yields an empty composition; callers treat that
// as a recoverable condition. The iteration cap guards pathological
// configs; hitting it sets Aborted and keeps what was accumulated
func Compose(rng *core.Rand, candidates []config.EnemyCatalogEntry, budget, minEnemies, maxEnemies int, baseSpawnInterval float64) Composition {
	var comp Composition
	if len(candidates) == 0 || maxEnemies <= 0 {
		return comp
	}

	counts := make([]int, len(candidates))
	weights := make([]float64, len(candidates))
	remaining := budget
	total := 0

	eligible := func(i int, ignoreBudget bool) bool {
		e := candidates[i]
		if !ignoreBudget && e.DifficultyCost > remaining {
			return false
		}
		return e.MaxPerWave == 0 || counts[i] < e.MaxPerWave
	}

	iterations := 0
	for remaining > 0 && total < maxEnemies {
		iterations++
		if iterations > parameter.ComposerIterationCap {
			comp.Aborted = true
			break
		}

		for i := range candidates {
			if eligible(i, false) {
				weights[i] = candidates[i].BaseWeight
			} else {
				weights[i] = 0
			}
		}
		pick := rng.WeightedIndex(weights)
		if pick < 0 {
			break // Nothing affordable under the remaining budget
		}

		counts[pick]++
		total++
		remaining -= candidates[pick].DifficultyCost
		comp.BudgetSpent += candidates[pick].DifficultyCost
	}

	// Minimum backfill: the wave must not be trivially small just because
	// the budget ran dry. Cheapest eligible candidate, budget ignored
	for total < minEnemies && total < maxEnemies {
		cheapest := -1
		for i := range candidates {
			if !eligible(i, true) {
				continue
			}
			if cheapest < 0 || candidates[i].DifficultyCost < candidates[cheapest].DifficultyCost {
				cheapest = i
			}
		}
		if cheapest < 0 {
			break // Every candidate is at its per-wave cap
		}
		counts[cheapest]++
		total++
		comp.Backfilled++
	}

	for i, n := range counts {
		if n == 0 {
			continue
		}
		e := candidates[i]
		comp.Groups = append(comp.Groups, EnemyGroup{
			CatalogID:     e.ID,
			Count:         n,
			SpawnInterval: baseSpawnInterval * e.SpawnIntervalMultiplier,
			InitialDelay:  e.InitialSpawnDelay,
		})
	}
	rng.Shuffle(len(comp.Groups), func(i, j int) {
		comp.Groups[i], comp.Groups[j] = comp.Groups[j], comp.Groups[i]
	})

	comp.TotalCount = total
	return comp
}
