package file

import (
	"sync"

	"github.com/cespare/xxhash/v2"
)

const lockStripes = 64

// keyLocks serialises work on the same key while letting unrelated keys
// proceed in parallel. Distinct keys may share a stripe.
type keyLocks struct {
	stripes [lockStripes]sync.Mutex
}

func (l *keyLocks) lock(key string) func() {
	mu := &l.stripes[xxhash.Sum64String(key)%lockStripes]
	mu.Lock()
	return mu.Unlock
}
