package interop

import "sync"

// Unknown is the minimal contract of a reference-counted native object.
// AddRef and Release return the updated count. QueryInterface returns a
// new reference that the caller must release.
type Unknown interface {
	AddRef() uint32
	Release() uint32
	QueryInterface(iid GUID) (Unknown, Result)
}

// Handle owns exactly one reference to a wrapped object. Close releases
// it; only the first Close does, repeated calls return nil.
type Handle struct {
	mu     sync.Mutex
	obj    Unknown
	closed bool
}

// NewHandle wraps obj, taking ownership of one existing reference.
func NewHandle(obj Unknown) *Handle {
	return &Handle{obj: obj}
}

// Object returns the wrapped object, or nil once the handle is closed.
// The handle keeps its reference; callers that retain the object beyond
// the handle's lifetime must AddRef it themselves.
func (h *Handle) Object() Unknown {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil
	}
	return h.obj
}

// Close releases the owned reference.
func (h *Handle) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil
	}
	h.closed = true
	if h.obj != nil {
		h.obj.Release()
		h.obj = nil
	}
	return nil
}
