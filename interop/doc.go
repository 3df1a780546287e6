// Package interop bridges native graphics objects into engine-managed
// handles across an ABI boundary.
//
// Native objects follow the COM ownership discipline: every object is
// reference counted, QueryInterface hands out new references, and the
// party that received a reference releases it. The package models that
// discipline with three pieces:
//
//   - [Unknown] is the minimal reference-counted object contract.
//   - [Handle] owns exactly one reference and releases it on Close.
//   - [Bridge] converts native objects to handles and back on top of a
//     [Platform].
//
// A wrap followed by Close, or an unwrap followed by Release, leaves
// the underlying reference count exactly where it started. Failures
// surface as typed errors carrying the native result code:
//
//	h, err := bridge.WrapDevice(native)
//	var dce *interop.DeviceCreationError
//	if errors.As(err, &dce) && dce.Code == interop.ResultDeviceRemoved {
//		// recreate the device and wrap again
//	}
//
// On Windows, [NativePlatform] dispatches through the Direct3D interop
// exports in d3d11.dll and [WrapNative] adapts raw IUnknown pointers.
// Elsewhere the bridge runs against injected [Platform] implementations,
// which is how the tests exercise it.
package interop
