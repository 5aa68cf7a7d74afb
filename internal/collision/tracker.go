// Package collision keeps the set of dataset names registered in a collection.
package collision

import (
	"github.com/arloliu/vecfield/errs"
	"github.com/arloliu/vecfield/internal/hash"
)

// Tracker maps name hashes to the names that produced them and keeps the
// registration order. Different names with the same hash share a bucket, so a
// lookup only compares strings within one bucket.
type Tracker struct {
	buckets      map[uint64][]string // Hash → names with that hash
	names        []string            // Registration order
	hasCollision bool                // Whether two names ever shared a hash
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{
		buckets: make(map[uint64][]string),
		names:   make([]string, 0),
	}
}

// Track registers name.
// Returns errs.ErrDuplicateName if the name is already registered; the tracker
// is left unchanged in that case.
func (t *Tracker) Track(name string) error {
	return t.TrackWithHash(name, hash.NameID(name))
}

// TrackWithHash registers name under a caller-supplied hash.
func (t *Tracker) TrackWithHash(name string, id uint64) error {
	bucket := t.buckets[id]
	for _, existing := range bucket {
		if existing == name {
			return errs.ErrDuplicateName
		}
	}

	if len(bucket) > 0 {
		t.hasCollision = true
	}

	t.buckets[id] = append(bucket, name)
	t.names = append(t.names, name)

	return nil
}

// Contains reports whether name is registered.
func (t *Tracker) Contains(name string) bool {
	return t.containsWithHash(name, hash.NameID(name))
}

func (t *Tracker) containsWithHash(name string, id uint64) bool {
	for _, existing := range t.buckets[id] {
		if existing == name {
			return true
		}
	}

	return false
}

// HasCollision returns true if two distinct names ever hashed to the same ID.
func (t *Tracker) HasCollision() bool {
	return t.hasCollision
}

// Names returns the registered names in registration order.
func (t *Tracker) Names() []string {
	return t.names
}

// Count returns the number of registered names.
func (t *Tracker) Count() int {
	return len(t.names)
}

// Reset clears all names and the collision flag.
func (t *Tracker) Reset() {
	clear(t.buckets)
	t.names = t.names[:0]
	t.hasCollision = false
}
