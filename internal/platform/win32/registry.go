package win32

import "zzz/pkg/zzz"

// surface is the per-window state the adapter keeps next to the queue.
type surface struct {
	handle        Handle
	queue         *zzz.Queue
	closeReported bool
	destroyed     bool
	cursorInside  bool
	highSurrogate uint16
	sizeMode      uintptr
}

// Registry maps native window handles to the queue that receives their
// events. It replaces per-window OS user data so that any message source can
// locate the queue.
type Registry struct {
	surfaces map[Handle]*surface
}

func NewRegistry() *Registry {
	return &Registry{surfaces: map[Handle]*surface{}}
}

func (r *Registry) Register(hwnd Handle, q *zzz.Queue) error {
	if q == nil {
		return ErrNilQueue
	}
	if _, ok := r.surfaces[hwnd]; ok {
		return ErrAlreadyRegistered
	}
	r.surfaces[hwnd] = &surface{handle: hwnd, queue: q}
	return nil
}

func (r *Registry) Unregister(hwnd Handle) {
	delete(r.surfaces, hwnd)
}

// Lookup returns the queue registered for hwnd.
func (r *Registry) Lookup(hwnd Handle) (*zzz.Queue, bool) {
	s, ok := r.surfaces[hwnd]
	if !ok {
		return nil, false
	}
	return s.queue, true
}

func (r *Registry) Len() int { return len(r.surfaces) }

func (r *Registry) surface(hwnd Handle) *surface {
	if r == nil {
		return nil
	}
	return r.surfaces[hwnd]
}
