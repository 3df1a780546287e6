package interop

// Platform creates managed graphics objects from native ones. Both
// methods return a new reference on success and a failure Result
// otherwise; on failure no reference changes hands.
type Platform interface {
	CreateDevice(native Unknown) (Unknown, Result)
	CreateSurface(native Unknown) (Unknown, Result)
}

// Bridge converts between native graphics objects and engine-managed
// handles on top of a Platform.
//
// Every wrap holds exactly one reference in the returned Handle, and
// every unwrap transfers exactly one reference to the caller. A wrap
// followed by Close, or an unwrap followed by Release, leaves the
// object's reference count where it started.
type Bridge struct {
	platform Platform
}

// NewBridge returns a bridge backed by p.
func NewBridge(p Platform) *Bridge {
	return &Bridge{platform: p}
}

// WrapDevice builds the managed wrapper for a native device and returns
// a handle owning one reference to its canonical identity.
func (b *Bridge) WrapDevice(native Unknown) (*Handle, error) {
	if b.platform == nil {
		return nil, ErrNilPlatform
	}
	if native == nil {
		return nil, ErrNilObject
	}
	wrapped, hr := b.platform.CreateDevice(native)
	if hr.Failed() {
		return nil, &DeviceCreationError{Code: hr}
	}
	return pin(wrapped)
}

// WrapSurface builds the managed wrapper for a native surface and
// returns a handle owning one reference to its canonical identity.
func (b *Bridge) WrapSurface(native Unknown) (*Handle, error) {
	if b.platform == nil {
		return nil, ErrNilPlatform
	}
	if native == nil {
		return nil, ErrNilObject
	}
	wrapped, hr := b.platform.CreateSurface(native)
	if hr.Failed() {
		return nil, &SurfaceCreationError{Code: hr}
	}
	return pin(wrapped)
}

// pin trades the intermediate wrapper reference for one reference to
// the object's interop identity. The intermediate is released on every
// path.
func pin(wrapped Unknown) (*Handle, error) {
	identity, hr := wrapped.QueryInterface(IIDInteropAccess)
	wrapped.Release()
	if hr.Failed() {
		return nil, &QueryError{IID: IIDInteropAccess, Code: hr}
	}
	return NewHandle(identity), nil
}

// UnwrapDevice queries the native device interface back out of a
// wrapped handle. The returned reference is owned by the caller.
func (b *Bridge) UnwrapDevice(h *Handle) (Unknown, error) {
	return unwrap(h, IIDDXGIDevice)
}

// UnwrapSurface queries the native surface interface back out of a
// wrapped handle. The returned reference is owned by the caller.
func (b *Bridge) UnwrapSurface(h *Handle) (Unknown, error) {
	return unwrap(h, IIDDXGISurface)
}

func unwrap(h *Handle, iid GUID) (Unknown, error) {
	if h == nil {
		return nil, ErrNilObject
	}
	obj := h.Object()
	if obj == nil {
		return nil, ErrClosedHandle
	}
	native, hr := obj.QueryInterface(iid)
	if hr.Failed() {
		return nil, &QueryError{IID: iid, Code: hr}
	}
	return native, nil
}
