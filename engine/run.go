package engine

import (
	"context"
	"time"

	"github.com/lixenwraith/inputmanager/action"
	"github.com/lixenwraith/inputmanager/input"
)

// SnapshotProvider yields the devices' pressed set for the frame at now
// Returning nil is allowed and reads as nothing pressed
type SnapshotProvider interface {
	Snapshot(now time.Time) *input.Snapshot
}

// SnapshotFunc adapts a function to SnapshotProvider
type SnapshotFunc func(now time.Time) *input.Snapshot

func (f SnapshotFunc) Snapshot(now time.Time) *input.Snapshot {
	return f(now)
}

// Run calls Frame at the configured tick rate until ctx is done
// onFrame receives each frame's diffs, possibly empty, on the Run goroutine
// Returns nil on cancellation or the first Frame error
func (m *Manager[A, ID]) Run(ctx context.Context, clock TimeProvider, provider SnapshotProvider, onFrame func([]action.Diff[A, ID])) error {
	ticker := time.NewTicker(m.tickRate)
	defer ticker.Stop()

	m.log.Debug("frame loop started", "tick_rate", m.tickRate, "owners", len(m.owners))
	for {
		select {
		case <-ctx.Done():
			m.log.Debug("frame loop stopped")
			return nil
		case <-ticker.C:
			if ctx.Err() != nil {
				return nil
			}
		}

		now := clock.Now()
		diffs, err := m.Frame(now, provider.Snapshot(now))
		if err != nil {
			m.log.Error("frame failed", "error", err)
			return err
		}
		if onFrame != nil {
			onFrame(diffs)
		}
	}
}
