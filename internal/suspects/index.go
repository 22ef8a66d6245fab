// Package suspects maps clue texts to the suspect they incriminate.
package suspects

import (
	"slices"

	"github.com/myrjola/detectivequest/internal/models"
)

// BucketCount is fixed. The table is never resized, so collisions are expected and resolved by chaining.
const BucketCount = 10

// Unknown is returned by [Index.Lookup] for clues nobody is attributed to.
const Unknown = "Unknown"

type node struct {
	clue    string
	suspect string
	next    *node
}

// Index is a chained hash table built once before play. It is read-only afterwards.
type Index struct {
	buckets [BucketCount]*node
}

// Hash is a polynomial rolling hash reduced modulo buckets at every step.
func Hash(text string, buckets int) int {
	acc := 0
	for _, r := range text {
		acc = (acc*31 + int(r)) % buckets //nolint:mnd // hash multiplier
	}
	return acc
}

// Build inserts every attribution at the head of its bucket chain.
func Build(entries []models.Attribution) *Index {
	idx := &Index{}
	for _, e := range entries {
		b := Hash(e.Clue, BucketCount)
		idx.buckets[b] = &node{clue: e.Clue, suspect: e.Suspect, next: idx.buckets[b]}
	}
	return idx
}

// Lookup returns the suspect incriminated by clue, or [Unknown].
func (idx *Index) Lookup(clue string) string {
	for n := idx.buckets[Hash(clue, BucketCount)]; n != nil; n = n.next {
		if n.clue == clue {
			return n.suspect
		}
	}
	return Unknown
}

// Buckets returns the length of each bucket chain.
func (idx *Index) Buckets() [BucketCount]int {
	var lengths [BucketCount]int
	for i, head := range idx.buckets {
		for n := head; n != nil; n = n.next {
			lengths[i]++
		}
	}
	return lengths
}

// Suspects returns the distinct suspect names, sorted.
func (idx *Index) Suspects() []string {
	var names []string
	for _, head := range idx.buckets {
		for n := head; n != nil; n = n.next {
			if !slices.Contains(names, n.suspect) {
				names = append(names, n.suspect)
			}
		}
	}
	slices.Sort(names)
	return names
}

// Release drops every chain and returns how many entries were released.
func (idx *Index) Release() int {
	released := 0
	for i := range idx.buckets {
		released += release(idx.buckets[i])
		idx.buckets[i] = nil
	}
	return released
}

func release(n *node) int {
	if n == nil {
		return 0
	}
	released := release(n.next)
	n.next = nil
	return released + 1
}
