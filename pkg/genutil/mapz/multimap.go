package mapz

import (
	"iter"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"golang.org/x/exp/maps"
	"k8s.io/apimachinery/pkg/util/sets"

	log "github.com/reghzy/utils/internal/logging"
	"github.com/reghzy/utils/pkg/genutil"
	"github.com/reghzy/utils/pkg/utilerrors"
)

// ReadOnlyMultiMap exposes the operations of a MultiMap that never create
// keys.
type ReadOnlyMultiMap[K comparable, V comparable] interface {
	// ContainsKey returns true if the key is found in the map.
	ContainsKey(key K) bool

	// ValuesNoCreate returns the values for the given key and whether the key
	// existed. If the key does not exist, nil is returned. Views created by
	// AsReadOnly return copies; a *MultiMap returns its live set.
	ValuesNoCreate(key K) (sets.Set[V], bool)

	// ContainsValue returns true if any key holds the given value.
	ContainsValue(value V) bool

	// KeysSize returns the number of *keys* present.
	KeysSize() int

	// ValuesCount returns the number of key/value pairs present.
	ValuesCount() int

	// IsEmpty returns true if the map has no keys.
	IsEmpty() bool

	// Keys returns the keys of the map.
	Keys() []K

	// All iterates over each key and its set of values.
	All() iter.Seq2[K, sets.Set[V]]

	zerolog.LogObjectMarshaler
}

var _ ReadOnlyMultiMap[string, string] = (*MultiMap[string, string])(nil)

// Entry is a key along with its set of values.
type Entry[K comparable, V comparable] struct {
	Key    K
	Values sets.Set[V]
}

// NewMultiMap initializes a new MultiMap.
func NewMultiMap[K comparable, V comparable](opts ...ConfigOption) *MultiMap[K, V] {
	config := NewConfigWithOptionsAndDefaults(opts...)
	log.Trace().Object("config", config).Msg("creating multimap")

	return &MultiMap[K, V]{
		items:         make(map[K]sets.Set[V], config.KeyCapacity),
		valueCapacity: config.ValueCapacity,
	}
}

// NewMultiMapWithCap initializes with the provided capacity for the top-level
// map.
func NewMultiMapWithCap[K comparable, V comparable](capacity uint32) *MultiMap[K, V] {
	return NewMultiMap[K, V](WithKeyCapacity(capacity))
}

// MultiMap maps each key to a set of distinct values.
//
// Sets are created lazily and a key is only ever removed by RemoveKey or
// Clear: removing the last value of a key leaves the key present with an
// empty set. Several accessors (Values, Contains, ValuesSize and Remove)
// create an empty set for a key that is not present; ContainsKey and
// ValuesNoCreate never do.
//
// Sets returned by any method are shared with the map, so mutating them
// mutates the map.
//
// A MultiMap is not safe for concurrent use.
type MultiMap[K comparable, V comparable] struct {
	items         map[K]sets.Set[V]
	valueCapacity uint32
}

// GetOrCreate returns the set of values for the key, creating and storing an
// empty set if the key is not present.
func (mm *MultiMap[K, V]) GetOrCreate(key K) sets.Set[V] {
	utilerrors.DebugAssertNotNilf(mm.items, "multimap must be constructed with NewMultiMap")

	values, ok := mm.items[key]
	if !ok {
		values = make(sets.Set[V], mm.valueCapacity)
		mm.items[key] = values
	}

	utilerrors.DebugAssertNotNilf(values, "found nil value set in multimap")
	return values
}

// Peek returns the set of values for the key and whether the key existed,
// without modifying the map.
func (mm *MultiMap[K, V]) Peek(key K) (sets.Set[V], bool) {
	values, ok := mm.items[key]
	utilerrors.DebugAssertf(func() bool { return !ok || values != nil }, "found nil value set in multimap")
	return values, ok
}

// Put inserts the value into the set for the given key. Returns true if the
// value was not already present.
func (mm *MultiMap[K, V]) Put(key K, value V) bool {
	values := mm.GetOrCreate(key)
	if values.Has(value) {
		return false
	}

	values.Insert(value)
	return true
}

// PutAll inserts all the items into the set for the given key. Returns true if
// the set changed. The key is created even if no items are given.
func (mm *MultiMap[K, V]) PutAll(key K, items ...V) bool {
	values := mm.GetOrCreate(key)
	before := values.Len()
	values.Insert(items...)
	return values.Len() != before
}

// RemoveKey removes the key and returns its set of values, if it existed.
func (mm *MultiMap[K, V]) RemoveKey(key K) (sets.Set[V], bool) {
	values, ok := mm.items[key]
	if !ok {
		return nil, false
	}

	delete(mm.items, key)
	return values, true
}

// Remove removes the value from the set for the given key, returning whether
// it was present.
//
// If the key does not exist, an empty set is created for it.
func (mm *MultiMap[K, V]) Remove(key K, value V) bool {
	values := mm.GetOrCreate(key)
	if !values.Has(value) {
		return false
	}

	values.Delete(value)
	return true
}

// Keys returns the keys of the map. The slice is a snapshot; keys added or
// removed afterwards are not reflected in it.
func (mm *MultiMap[K, V]) Keys() []K { return maps.Keys(mm.items) }

// Values returns the set of values for the given key, creating it if the key
// does not exist.
func (mm *MultiMap[K, V]) Values(key K) sets.Set[V] {
	return mm.GetOrCreate(key)
}

// ValuesNoCreate returns the set of values for the given key and whether the
// key existed.
func (mm *MultiMap[K, V]) ValuesNoCreate(key K) (sets.Set[V], bool) {
	return mm.Peek(key)
}

// ContainsKey returns true if the key is found in the map.
func (mm *MultiMap[K, V]) ContainsKey(key K) bool {
	_, ok := mm.Peek(key)
	return ok
}

// Contains returns true if the value is in the set for the given key.
//
// If the key does not exist, an empty set is created for it.
func (mm *MultiMap[K, V]) Contains(key K, value V) bool {
	return mm.GetOrCreate(key).Has(value)
}

// ContainsValue returns true if the set of any key contains the value.
func (mm *MultiMap[K, V]) ContainsValue(value V) bool {
	for _, values := range mm.items {
		if values.Has(value) {
			return true
		}
	}
	return false
}

// KeysSize returns the length of the map, e.g. the number of *keys* present.
func (mm *MultiMap[K, V]) KeysSize() int { return len(mm.items) }

// ValuesSize returns the number of values stored for the given key.
//
// If the key does not exist, an empty set is created for it.
func (mm *MultiMap[K, V]) ValuesSize(key K) int {
	return mm.GetOrCreate(key).Len()
}

// ValuesCount returns the number of key/value pairs in the map.
func (mm *MultiMap[K, V]) ValuesCount() int {
	count := 0
	for _, values := range mm.items {
		count += values.Len()
	}
	return count
}

// IsEmpty returns true if the map is currently empty.
func (mm *MultiMap[K, V]) IsEmpty() bool { return len(mm.items) == 0 }

// Clear removes all keys, returning how many were removed.
func (mm *MultiMap[K, V]) Clear() int {
	log.Trace().Object("multimap", mm).Msg("clearing multimap")

	cleared := len(mm.items)
	clear(mm.items)
	return cleared
}

// AsMap returns a new map holding the same keys. The sets are shared with
// this map.
func (mm *MultiMap[K, V]) AsMap() map[K]sets.Set[V] {
	return maps.Clone(mm.items)
}

// AllValues returns the set of values of every key.
func (mm *MultiMap[K, V]) AllValues() []sets.Set[V] {
	return lo.Values(mm.items)
}

// Entries returns every key along with its set of values.
func (mm *MultiMap[K, V]) Entries() []Entry[K, V] {
	return lo.MapToSlice(mm.items, func(key K, values sets.Set[V]) Entry[K, V] {
		return Entry[K, V]{Key: key, Values: values}
	})
}

// All iterates over each key and its set of values.
func (mm *MultiMap[K, V]) All() iter.Seq2[K, sets.Set[V]] {
	return func(yield func(K, sets.Set[V]) bool) {
		for key, values := range mm.items {
			if !yield(key, values) {
				return
			}
		}
	}
}

// Clone returns a deep copy of the map; no sets are shared with the clone.
func (mm *MultiMap[K, V]) Clone() *MultiMap[K, V] {
	cloned := NewMultiMap[K, V](
		WithKeyCapacity(genutil.MustEnsureUInt32(len(mm.items))),
		WithValueCapacity(mm.valueCapacity),
	)
	for key, values := range mm.items {
		cloned.items[key] = values.Clone()
	}
	return cloned
}

// MarshalZerologObject logs the number of keys and of key/value pairs.
func (mm *MultiMap[K, V]) MarshalZerologObject(e *zerolog.Event) {
	e.
		Str("keys", humanize.Comma(int64(len(mm.items)))).
		Str("values", humanize.Comma(int64(mm.ValuesCount())))
}

// AsReadOnly returns a read-only *copy* of the multimap. Sets returned by the
// copy are themselves copies, so mutating them changes neither the copy nor
// this map.
func (mm *MultiMap[K, V]) AsReadOnly() ReadOnlyMultiMap[K, V] {
	return readOnlyMultiMap[K, V]{mm.Clone()}
}

type readOnlyMultiMap[K comparable, V comparable] struct {
	mm *MultiMap[K, V]
}

func (ro readOnlyMultiMap[K, V]) ContainsKey(key K) bool { return ro.mm.ContainsKey(key) }

func (ro readOnlyMultiMap[K, V]) ValuesNoCreate(key K) (sets.Set[V], bool) {
	values, ok := ro.mm.ValuesNoCreate(key)
	if !ok {
		return nil, false
	}
	return values.Clone(), true
}

func (ro readOnlyMultiMap[K, V]) ContainsValue(value V) bool { return ro.mm.ContainsValue(value) }

func (ro readOnlyMultiMap[K, V]) KeysSize() int { return ro.mm.KeysSize() }

func (ro readOnlyMultiMap[K, V]) ValuesCount() int { return ro.mm.ValuesCount() }

func (ro readOnlyMultiMap[K, V]) IsEmpty() bool { return ro.mm.IsEmpty() }

func (ro readOnlyMultiMap[K, V]) Keys() []K { return ro.mm.Keys() }

func (ro readOnlyMultiMap[K, V]) All() iter.Seq2[K, sets.Set[V]] {
	return func(yield func(K, sets.Set[V]) bool) {
		for key, values := range ro.mm.All() {
			if !yield(key, values.Clone()) {
				return
			}
		}
	}
}

func (ro readOnlyMultiMap[K, V]) MarshalZerologObject(e *zerolog.Event) {
	ro.mm.MarshalZerologObject(e)
}
