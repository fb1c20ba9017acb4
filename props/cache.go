package props

import (
	"fmt"
	"reflect"
	"sync"
)

// indexCache holds one built index per reflect.Type for the life of the process.
var indexCache sync.Map // map[reflect.Type]*Index

// For returns the index of rtype, building and caching it on first use.
// Concurrent first calls may each build an index; all of them return the one
// that was stored first.
func For(rtype reflect.Type) (*Index, error) {
	if rtype == nil {
		return nil, fmt.Errorf("%w: nil reflect.Type", ErrInvalidDescriptor)
	}

	if ix, ok := indexCache.Load(rtype); ok {
		return ix.(*Index), nil
	}

	d, err := DescriptorOf(rtype)
	if err != nil {
		return nil, err
	}

	ix, err := Build(d)
	if err != nil {
		return nil, fmt.Errorf("failed to index %s: %w", rtype, err)
	}

	actual, _ := indexCache.LoadOrStore(rtype, ix)

	return actual.(*Index), nil
}

// ForType returns the cached index of T.
func ForType[T any]() (*Index, error) {
	return For(reflect.TypeFor[T]())
}

// MustFor is like For but panics on error.
func MustFor(rtype reflect.Type) *Index {
	ix, err := For(rtype)
	if err != nil {
		panic(err)
	}

	return ix
}
