package seedgen

import "math/rand/v2"

// ProductCounter decides how many products a business gets.
type ProductCounter interface {
	Count(businessID int, rng *rand.Rand) int
}

// Tier applies to every business id up to and including MaxBusinessID that
// an earlier tier did not claim. The count is drawn from [Min, Max].
type Tier struct {
	MaxBusinessID int
	Min           int
	Max           int
}

// DefaultTiers: many small sellers, five mid-size ones, one very large one.
var DefaultTiers = []Tier{
	{MaxBusinessID: 994, Min: 1, Max: 2},
	{MaxBusinessID: 999, Min: 250, Max: 250},
	{MaxBusinessID: 1000, Min: 1000, Max: 1000},
}

// TieredCounter walks Tiers in order; ids past the last tier use the last tier.
type TieredCounter struct {
	Tiers []Tier
}

func (c TieredCounter) Count(businessID int, rng *rand.Rand) int {
	if len(c.Tiers) == 0 {
		return 0
	}
	tier := c.Tiers[len(c.Tiers)-1]
	for _, t := range c.Tiers {
		if businessID <= t.MaxBusinessID {
			tier = t
			break
		}
	}
	return randInclusive(rng, tier.Min, tier.Max)
}

// FixedCounter gives every business the same number of products.
type FixedCounter int

func (c FixedCounter) Count(int, *rand.Rand) int {
	return int(c)
}

// randInclusive returns a uniform integer in [lo, hi].
func randInclusive(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.IntN(hi-lo+1)
}
