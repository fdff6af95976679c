package registry

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Arena hands out registries with explicit view-lifetime ownership: Mount
// on view mount, Dispose on unmount. It is keyed by goal id only for
// targeted reloads; mounting the same goal twice yields two independent
// registries on purpose.
type Arena struct {
	store GoalStore

	mu      sync.Mutex
	mounted map[string][]*Registry
}

func NewArena(store GoalStore) *Arena {
	return &Arena{
		store:   store,
		mounted: make(map[string][]*Registry),
	}
}

// Mount creates a fresh registry for a goal-detail view.
func (a *Arena) Mount(goalID string) *Registry {
	r := newRegistry(goalID, a.store)

	a.mu.Lock()
	a.mounted[goalID] = append(a.mounted[goalID], r)
	a.mu.Unlock()

	return r
}

// Dispose cancels the registry's lifetime so in-flight loads cannot mutate
// an unmounted view, and drops it from the arena.
func (a *Arena) Dispose(r *Registry) {
	r.dispose()

	a.mu.Lock()
	defer a.mu.Unlock()

	regs := a.mounted[r.goalID]
	for i := range regs {
		if regs[i] == r {
			a.mounted[r.goalID] = append(regs[:i], regs[i+1:]...)
			break
		}
	}
	if len(a.mounted[r.goalID]) == 0 {
		delete(a.mounted, r.goalID)
	}
}

// ReloadGoal reloads every registry currently mounted for a goal. Used by
// the notification relay for targeted refreshes; goals with no mounted
// view are a no-op.
func (a *Arena) ReloadGoal(ctx context.Context, goalID string) error {
	a.mu.Lock()
	regs := make([]*Registry, len(a.mounted[goalID]))
	copy(regs, a.mounted[goalID])
	a.mu.Unlock()

	if len(regs) == 0 {
		return nil
	}

	slog.Debug("targeted reload",
		slog.String("goal_id", goalID),
		slog.Int("views", len(regs)),
	)

	g, ctx := errgroup.WithContext(ctx)
	for _, r := range regs {
		r := r
		g.Go(func() error {
			if err := r.Load(ctx); err != nil && err != ErrDisposed {
				return err
			}
			return nil
		})
	}
	return g.Wait()
}

// MountedViews reports how many views are open for a goal.
func (a *Arena) MountedViews(goalID string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.mounted[goalID])
}
