package script

import (
	"github.com/jmurray2011/hoard/internal/logging"
	"github.com/jmurray2011/hoard/pkg/lru"
)

// Result records what one operation did to the cache.
type Result struct {
	Op Op

	// Hit is set for get/peek/has when the key was present, and for
	// oldest when the cache was non-empty.
	Hit bool

	// Value is the looked-up or stored value. For has it is unset.
	Value int

	// Key is set by oldest to the least recently used key.
	Key int

	// Evicted reports that a put pushed the least recently used entry
	// out, and which key it was.
	Evicted    bool
	EvictedKey int

	// Len and Keys snapshot the cache after the operation, Keys ordered
	// most to least recently used.
	Len  int
	Keys []int
}

// Runner applies parsed operations to a cache.
type Runner struct {
	cache *lru.Cache
	log   logging.Logger
}

// NewRunner creates a runner around cache. logger may be logging.Nop.
func NewRunner(cache *lru.Cache, logger logging.Logger) *Runner {
	if logger == nil {
		logger = logging.Nop{}
	}
	return &Runner{cache: cache, log: logger}
}

// Run executes ops in order and returns one Result per op.
// The cache is left in its final state; the caller owns Close.
func (r *Runner) Run(ops []Op) ([]Result, error) {
	results := make([]Result, 0, len(ops))
	for _, op := range ops {
		res, err := r.apply(op)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

func (r *Runner) apply(op Op) (Result, error) {
	res := Result{Op: op}

	switch op.Kind {
	case KindPut:
		// An eviction is observable as a put of a new key that leaves
		// the size unchanged. Capture the victim before mutating.
		lenBefore := r.cache.Len()
		isNew := !r.cache.Contains(op.Key)
		oldestKey, _, hasOldest := r.cache.Oldest()

		if err := r.cache.Put(op.Key, op.Value); err != nil {
			return res, err
		}
		res.Value = op.Value

		if isNew && hasOldest && r.cache.Len() == lenBefore {
			res.Evicted = true
			res.EvictedKey = oldestKey
			r.log.Debug("put %d evicted key %d", op.Key, oldestKey)
		}

	case KindGet:
		res.Value, res.Hit = r.cache.Get(op.Key)

	case KindPeek:
		res.Value, res.Hit = r.cache.Peek(op.Key)

	case KindHas:
		res.Hit = r.cache.Contains(op.Key)

	case KindLen:
		// Len is always snapshotted below; nothing extra to do.

	case KindKeys:
		// Keys are always snapshotted below; nothing extra to do.

	case KindOldest:
		res.Key, res.Value, res.Hit = r.cache.Oldest()
	}

	res.Len = r.cache.Len()
	res.Keys = r.cache.Keys()
	r.log.Debug("%s -> len=%d order=%v", op, res.Len, res.Keys)
	return res, nil
}
