package footprint

import (
	"fmt"
	"slices"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/greensteps/ecofoot/internal/survey"
)

// DefaultMemoSize is the default capacity of a Memoizer. Interactive
// sessions revisit far fewer distinct snapshots than this.
const DefaultMemoSize = 256

// memoKey is the full input tuple of one estimate. Household packs its
// practice set into a bitmask, so the whole key is comparable.
type memoKey struct {
	household Household
	bonus     survey.Bonus
}

// Memoizer wraps Estimate with an LRU cache keyed on the complete input
// tuple. A pure optimization: results are identical to calling Estimate
// directly, cached entries are never aliased to callers, and eviction only
// ever costs a recompute.
type Memoizer struct {
	cache *lru.Cache[memoKey, Result]
}

// NewMemoizer creates a Memoizer with the given capacity. Sizes below one
// are rejected by the underlying cache.
func NewMemoizer(size int) (*Memoizer, error) {
	cache, err := lru.New[memoKey, Result](size)
	if err != nil {
		return nil, fmt.Errorf("creating estimate cache: %w", err)
	}
	return &Memoizer{cache: cache}, nil
}

// Estimate returns the cached result for the input tuple, computing and
// caching it on a miss.
func (m *Memoizer) Estimate(h Household, bonus survey.Bonus) Result {
	key := memoKey{household: h, bonus: bonus}
	if res, ok := m.cache.Get(key); ok {
		return res.clone()
	}

	res := Estimate(h, bonus)
	m.cache.Add(key, res.clone())
	return res
}

// Len returns the number of cached results.
func (m *Memoizer) Len() int {
	return m.cache.Len()
}

// clone returns a copy whose breakdown slice is independent of the receiver.
func (r Result) clone() Result {
	out := r
	out.Breakdown = slices.Clone(r.Breakdown)
	return out
}
