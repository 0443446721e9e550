package grove

import (
	"errors"
	"fmt"
)

// Spawner creates engine objects from transforms. Implementations bridge
// grove to whatever world representation the host uses: an entity store,
// an editor session, a test recorder.
type Spawner interface {
	// Spawn creates one object of the given kind at the given transform.
	Spawn(kind string, t Transform) error
}

// Place spawns every transform through s and returns the number spawned.
// A failed spawn skips that transform and continues with the rest; the
// joined failures come back as the error alongside the success count.
func Place(s Spawner, kind string, transforms []Transform) (int, error) {
	if s == nil {
		return 0, fmt.Errorf("%w: place needs a spawner", ErrInvalidArgument)
	}
	var errs []error
	placed := 0
	for i, tf := range transforms {
		if err := s.Spawn(kind, tf); err != nil {
			errs = append(errs, fmt.Errorf("grove: spawn %s[%d]: %w", kind, i, err))
			continue
		}
		placed++
	}
	return placed, errors.Join(errs...)
}

// --- Recorder ---

// PlacedObject is one object retained by a Recorder.
type PlacedObject struct {
	ID        uint32
	Kind      string
	Transform Transform
}

// Recorder is an in-memory Spawner for tests and previews. It retains
// every spawned object and assigns sequential IDs starting at 1.
type Recorder struct {
	objects []PlacedObject
	nextID  uint32

	// FailKind, when non-nil, is consulted before each spawn; a non-nil
	// return rejects the object. Lets tests exercise partial failures.
	FailKind func(kind string) error
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Spawn implements Spawner.
func (r *Recorder) Spawn(kind string, t Transform) error {
	if r.FailKind != nil {
		if err := r.FailKind(kind); err != nil {
			return err
		}
	}
	r.nextID++
	r.objects = append(r.objects, PlacedObject{ID: r.nextID, Kind: kind, Transform: t})
	return nil
}

// Objects returns the recorded objects in spawn order. The slice is the
// recorder's own; callers must not modify it.
func (r *Recorder) Objects() []PlacedObject {
	return r.objects
}

// Len returns the number of recorded objects.
func (r *Recorder) Len() int {
	return len(r.objects)
}
