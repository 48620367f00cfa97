package genutil

import (
	"github.com/ccoveille/go-safecast/v2"

	"github.com/reghzy/utils/pkg/utilerrors"
)

// MustEnsureUInt32 is a helper function that calls EnsureUInt32 and panics on error.
func MustEnsureUInt32(value int) uint32 {
	ret, err := EnsureUInt32(value)
	if err != nil {
		panic(err)
	}
	return ret
}

// EnsureUInt32 ensures that the specified value can be represented as a uint32.
func EnsureUInt32(value int) (uint32, error) {
	ret, err := safecast.Convert[uint32](value)
	if err != nil {
		return 0, utilerrors.MustBugf("specified value %d cannot be represented as a uint32: %v", value, err)
	}
	return ret, nil
}
