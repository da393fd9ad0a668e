package viz

import (
	"context"

	"github.com/guiguan/caster"
	"github.com/npillmayer/quads/geom"
)

// Snapshot is an immutable copy of a region listing at publish time.
//
// Snapshots carry rectangle values, not the tree's live handles, so
// observers may inspect them at any time without racing against later
// tree mutations.
type Snapshot []geom.Rect

// Monitor broadcasts region snapshots to any number of subscribers.
//
// A consuming application publishes a snapshot after each batch of tree
// mutations or queries; visualization frontends subscribe and redraw on
// every received snapshot. The monitor never touches a tree itself, so
// the tree's single-threaded contract is unaffected: the caller decides
// when a consistent listing is available to publish.
type Monitor struct {
	cast *caster.Caster // broadcaster for region snapshots
}

// NewMonitor creates a monitor ready for subscriptions.
func NewMonitor() *Monitor {
	return &Monitor{
		cast: caster.New(nil),
	}
}

// Publish copies regions into a Snapshot and broadcasts it to all
// current subscribers. It reports false after the monitor is closed.
func (m *Monitor) Publish(regions []*geom.Rect) bool {
	snap := make(Snapshot, len(regions))
	for i, r := range regions {
		snap[i] = *r
	}
	return m.cast.Pub(snap)
}

// Subscribe registers a subscriber channel with the given buffer
// capacity. The channel receives Snapshot values and is closed when ctx
// is canceled or the monitor is closed.
func (m *Monitor) Subscribe(ctx context.Context, capacity uint) (chan interface{}, bool) {
	return m.cast.Sub(ctx, capacity)
}

// Unsubscribe removes a subscriber channel and closes it.
func (m *Monitor) Unsubscribe(ch chan interface{}) {
	m.cast.Unsub(ch)
}

// Close shuts the monitor down and closes all subscriber channels.
func (m *Monitor) Close() bool {
	return m.cast.Close()
}
