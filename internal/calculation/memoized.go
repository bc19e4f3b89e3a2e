package calculation

import (
	"context"

	"github.com/rpgo/withdrawal-simulator/internal/cache"
	"github.com/rpgo/withdrawal-simulator/internal/domain"
)

// MemoizedEngine caches ProjectionEngine results by parameter tuple.
// Its results are identical to calling Simulate directly; cache errors only cost a recomputation.
type MemoizedEngine struct {
	Engine *ProjectionEngine
	Store  cache.Store
}

// NewMemoizedEngine wraps engine with store. A nil store uses an in-memory cache.
func NewMemoizedEngine(engine *ProjectionEngine, store cache.Store) *MemoizedEngine {
	if engine == nil {
		engine = NewProjectionEngine()
	}
	if store == nil {
		store = cache.NewMemoryStore(cache.DefaultMaxEntries)
	}
	return &MemoizedEngine{Engine: engine, Store: store}
}

// Simulate returns the cached projection for params, computing and storing it on a miss.
func (me *MemoizedEngine) Simulate(ctx context.Context, params domain.SimulationParams) domain.ProjectionResult {
	key := cache.Key(params)

	cached, ok, err := me.Store.Get(ctx, key)
	if err != nil {
		me.Engine.Logger.Warnf("projection cache read failed for %s: %v", key, err)
	}
	if ok {
		me.Engine.Logger.Debugf("projection cache hit for %s", key)
		return *cached
	}

	result := me.Engine.Simulate(params)
	if err := me.Store.Set(ctx, key, &result); err != nil {
		me.Engine.Logger.Warnf("projection cache write failed for %s: %v", key, err)
	}
	return result
}

// Close releases the underlying cache store.
func (me *MemoizedEngine) Close() error {
	return me.Store.Close()
}
