// Package collector implements a uniform way for callers to decide whether
// a narrowphase query reports
// every hit, the first hit, or only the closest hit, without the query
// itself knowing which policy the caller wants.
package collector

// Hit is anything a collector can rank: a single scalar "closeness" value
// (squared distance, time-of-impact fraction, penetration depth) that lower-
// is-better comparisons use to pick the best of several candidates.
type Hit interface {
	CollectorScore() float64
}

// Collector receives candidate hits from a query and decides whether the
// query should keep searching. AddHit returns false once the collector has
// everything it needs (Any after its first hit; Closest never early-outs
// since a later candidate could still be closer; All never early-outs
// either).
type Collector[T Hit] interface {
	AddHit(hit T) (keepGoing bool)
	Results() []T
}

// All collects every hit a query produces, unordered.
type All[T Hit] struct {
	hits []T
}

func (c *All[T]) AddHit(hit T) bool {
	c.hits = append(c.hits, hit)
	return true
}

func (c *All[T]) Results() []T { return c.hits }

// Any stops the query at its first hit.
type Any[T Hit] struct {
	hit   T
	found bool
}

func (c *Any[T]) AddHit(hit T) bool {
	if !c.found {
		c.hit = hit
		c.found = true
	}
	return false
}

func (c *Any[T]) Results() []T {
	if !c.found {
		return nil
	}
	return []T{c.hit}
}

// Closest retains only the lowest-scoring hit seen so far.
type Closest[T Hit] struct {
	hit   T
	found bool
}

func (c *Closest[T]) AddHit(hit T) bool {
	if !c.found || hit.CollectorScore() < c.hit.CollectorScore() {
		c.hit = hit
		c.found = true
	}
	return true
}

func (c *Closest[T]) Results() []T {
	if !c.found {
		return nil
	}
	return []T{c.hit}
}

// Inverted wraps a collector whose hits are expressed in terms of (shape B,
// shape A) and re-expresses them as (shape A, shape B) before forwarding,
// via the supplied swap function. This lets the dispatch table in the root
// package reuse a single handler for an unordered shape pair (e.g.
// Sphere-vs-Box and Box-vs-Sphere) without duplicating collision logic.
type Inverted[T Hit] struct {
	Inner Collector[T]
	Swap  func(T) T
}

func (c Inverted[T]) AddHit(hit T) bool {
	return c.Inner.AddHit(c.Swap(hit))
}

func (c Inverted[T]) Results() []T { return c.Inner.Results() }
