// Package evidence is the board that ties clue text to the suspect it
// implicates: a chained hash table with a fixed bucket count, sized for a
// handful of clues per case.
package evidence

import "strings"

const bucketCount = 10

type entry struct {
	clue    string
	suspect string
	next    *entry
}

type Board struct {
	buckets [bucketCount]*entry
	count   int
}

func NewBoard() *Board {
	return &Board{}
}

// Link associates a clue with a suspect, prepending to the bucket chain.
// Each clue is linked once per case, so there is no duplicate check.
func (b *Board) Link(clue, suspect string) {
	i := bucketFor(clue)
	b.buckets[i] = &entry{clue: clue, suspect: suspect, next: b.buckets[i]}
	b.count++
}

// SuspectFor returns the suspect a clue implicates. The clue match is
// exact; only bucket placement ignores case.
func (b *Board) SuspectFor(clue string) (string, bool) {
	for e := b.buckets[bucketFor(clue)]; e != nil; e = e.next {
		if e.clue == clue {
			return e.suspect, true
		}
	}
	return "", false
}

// Len is the number of linked clues.
func (b *Board) Len() int {
	return b.count
}

// ChainLengths reports how many entries sit in each bucket.
func (b *Board) ChainLengths() []int {
	lengths := make([]int, bucketCount)
	for i, head := range b.buckets {
		for e := head; e != nil; e = e.next {
			lengths[i]++
		}
	}
	return lengths
}

// bucketFor hashes the lowercase form of the clue with the classic
// multiplier-33 string hash.
func bucketFor(clue string) int {
	var h uint32
	for _, c := range []byte(strings.ToLower(clue)) {
		h = h*33 + uint32(c)
	}
	return int(h % bucketCount)
}
