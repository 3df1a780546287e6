//go:build windows

package interop

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

// IUnknown vtable slots.
const (
	vtblQueryInterface = 0
	vtblAddRef         = 1
	vtblRelease        = 2
)

var (
	d3d11DLL = windows.NewLazySystemDLL("d3d11.dll")

	procCreateDeviceFromDXGI  = d3d11DLL.NewProc("CreateDirect3D11DeviceFromDXGIDevice")
	procCreateSurfaceFromDXGI = d3d11DLL.NewProc("CreateDirect3D11SurfaceFromDXGISurface")
)

// comObject dispatches Unknown calls through a raw COM pointer's vtable.
type comObject uintptr

var _ Unknown = comObject(0)

// WrapNative adapts a raw IUnknown pointer without touching its
// reference count. A zero pointer yields nil.
func WrapNative(ptr uintptr) Unknown {
	if ptr == 0 {
		return nil
	}
	return comObject(ptr)
}

// vtblFn resolves the function pointer at slot idx of the object's
// vtable.
func (o comObject) vtblFn(idx int) uintptr {
	vtbl := *(*uintptr)(unsafe.Pointer(uintptr(o)))
	return *(*uintptr)(unsafe.Pointer(vtbl + uintptr(idx)*unsafe.Sizeof(uintptr(0))))
}

func (o comObject) AddRef() uint32 {
	n, _, _ := syscall.SyscallN(o.vtblFn(vtblAddRef), uintptr(o))
	return uint32(n)
}

func (o comObject) Release() uint32 {
	n, _, _ := syscall.SyscallN(o.vtblFn(vtblRelease), uintptr(o))
	return uint32(n)
}

func (o comObject) QueryInterface(iid GUID) (Unknown, Result) {
	var out uintptr
	hr, _, _ := syscall.SyscallN(o.vtblFn(vtblQueryInterface),
		uintptr(o),
		uintptr(unsafe.Pointer(&iid)),
		uintptr(unsafe.Pointer(&out)),
	)
	if Result(hr).Failed() {
		return nil, Result(hr)
	}
	return comObject(out), Result(hr)
}

// NativePlatform wraps devices and surfaces through the Direct3D
// interop exports in d3d11.dll. The zero value is ready to use.
type NativePlatform struct{}

var _ Platform = NativePlatform{}

func (NativePlatform) CreateDevice(native Unknown) (Unknown, Result) {
	return createManaged(procCreateDeviceFromDXGI, native)
}

func (NativePlatform) CreateSurface(native Unknown) (Unknown, Result) {
	return createManaged(procCreateSurfaceFromDXGI, native)
}

func createManaged(proc *windows.LazyProc, native Unknown) (Unknown, Result) {
	obj, ok := native.(comObject)
	if !ok {
		return nil, ResultInvalidArg
	}
	var out uintptr
	hr, _, _ := proc.Call(uintptr(obj), uintptr(unsafe.Pointer(&out)))
	if Result(hr).Failed() {
		return nil, Result(hr)
	}
	return comObject(out), Result(hr)
}
