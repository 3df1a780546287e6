package interop

import (
	"errors"
	"fmt"
)

// Errors.
var (
	ErrInvalidGUID  = errors.New("interop: invalid GUID")
	ErrNilPlatform  = errors.New("interop: nil platform")
	ErrNilObject    = errors.New("interop: nil object")
	ErrClosedHandle = errors.New("interop: handle closed")
)

// DeviceCreationError reports a platform failure while wrapping a
// native device, carrying the native result code.
type DeviceCreationError struct {
	Code Result
}

func (e *DeviceCreationError) Error() string {
	return "interop: create device failed: " + e.Code.String()
}

// SurfaceCreationError reports a platform failure while wrapping a
// native surface.
type SurfaceCreationError struct {
	Code Result
}

func (e *SurfaceCreationError) Error() string {
	return "interop: create surface failed: " + e.Code.String()
}

// QueryError reports a failed interface query.
type QueryError struct {
	IID  GUID
	Code Result
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("interop: query %s failed: %s", e.IID, e.Code)
}
