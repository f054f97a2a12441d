// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package localization

import (
	"sync"
	"sync/atomic"

	"golang.org/x/text/cases"
)

// Dictionary is an ordered phrase table with two lookup tiers.
//
// # Concurrency
//
// Readers load an immutable snapshot through an atomic pointer and never
// block. Writers serialize on a mutex, copy the snapshot, apply their change
// and publish the copy, so a reader never observes a half-written entry.
type Dictionary struct {
	writeMu sync.Mutex
	current atomic.Pointer[snapshot]
}

// snapshot is never mutated after it is published.
type snapshot struct {
	entries []Entry
	// index maps an exact source phrase to its position in entries.
	index map[string]int
	// folded holds the case-folded source of entries[i] at position i.
	folded []string
}

// NewDictionary builds a dictionary seeded with entries in order.
// Duplicate sources follow [Dictionary.Add] semantics.
func NewDictionary(seed ...Entry) *Dictionary {
	dictionary := &Dictionary{}
	dictionary.current.Store(&snapshot{index: map[string]int{}})
	dictionary.AddAll(seed)
	return dictionary
}

// Lookup returns the target for phrase.
//
// An exact, case-sensitive match wins. Otherwise entries are scanned in
// insertion order and the first one whose source matches phrase under
// Unicode case folding is returned.
func (d *Dictionary) Lookup(phrase string) (string, bool) {
	snap := d.current.Load()

	if position, ok := snap.index[phrase]; ok {
		return snap.entries[position].Target, true
	}

	key := fold(phrase)
	for position, candidate := range snap.folded {
		if candidate == key {
			return snap.entries[position].Target, true
		}
	}

	return "", false
}

// Contains reports whether source is stored as an exact key.
func (d *Dictionary) Contains(source string) bool {
	_, ok := d.current.Load().index[source]
	return ok
}

// Add inserts or overwrites the mapping for source.
// Overwriting keeps the entry at its original position.
func (d *Dictionary) Add(source, target string) {
	d.AddAll([]Entry{{Source: source, Target: target}})
}

// AddAll applies several additions and publishes them as one snapshot.
func (d *Dictionary) AddAll(entries []Entry) {
	if len(entries) == 0 {
		return
	}

	d.writeMu.Lock()
	defer d.writeMu.Unlock()

	previous := d.current.Load()
	next := &snapshot{
		entries: make([]Entry, len(previous.entries), len(previous.entries)+len(entries)),
		index:   make(map[string]int, len(previous.index)+len(entries)),
		folded:  make([]string, len(previous.folded), len(previous.folded)+len(entries)),
	}
	copy(next.entries, previous.entries)
	copy(next.folded, previous.folded)
	for source, position := range previous.index {
		next.index[source] = position
	}

	for _, entry := range entries {
		if position, ok := next.index[entry.Source]; ok {
			next.entries[position].Target = entry.Target
			continue
		}
		next.index[entry.Source] = len(next.entries)
		next.entries = append(next.entries, entry)
		next.folded = append(next.folded, fold(entry.Source))
	}

	d.current.Store(next)
}

// All returns a copy of every entry in insertion order.
func (d *Dictionary) All() []Entry {
	snap := d.current.Load()
	entries := make([]Entry, len(snap.entries))
	copy(entries, snap.entries)
	return entries
}

// Len reports the number of distinct source phrases.
func (d *Dictionary) Len() int {
	return len(d.current.Load().entries)
}

// fold applies full Unicode case folding. A Caser keeps internal state, so a
// fresh one is created per call.
func fold(phrase string) string {
	return cases.Fold().String(phrase)
}
