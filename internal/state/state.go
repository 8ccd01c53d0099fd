package state

import (
	"sync"
	"time"

	"github.com/trackside-labs/fieldviz/field"
)

// Frame is one snapshot of tracked entities: current positions plus the
// movement history per entity.
type Frame struct {
	Seq      uint64
	Captured time.Time
	Points   []field.Point
	Paths    []field.Path
}

// Store holds the latest frame for the viewer and the preview server.
// Publish replaces the frame; Snapshot returns a deep copy so readers can
// render without racing the publisher.
type Store struct {
	mu    sync.RWMutex
	frame Frame
}

func NewStore() *Store {
	return &Store{}
}

func (store *Store) Snapshot() Frame {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return copyFrame(store.frame)
}

// Publish installs a new frame, assigning the next sequence number.
func (store *Store) Publish(points []field.Point, paths []field.Path) Frame {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.frame = Frame{
		Seq:      store.frame.Seq + 1,
		Captured: time.Now(),
		Points:   points,
		Paths:    paths,
	}
	return copyFrame(store.frame)
}

func copyFrame(f Frame) Frame {
	out := Frame{Seq: f.Seq, Captured: f.Captured}
	if f.Points != nil {
		out.Points = append([]field.Point(nil), f.Points...)
	}
	if f.Paths != nil {
		out.Paths = make([]field.Path, len(f.Paths))
		for i, p := range f.Paths {
			out.Paths[i] = append(field.Path(nil), p...)
		}
	}
	return out
}
