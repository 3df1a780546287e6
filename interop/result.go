package interop

import "fmt"

// Result is a native operation status in HRESULT layout: the high bit
// set marks failure, everything else is success.
type Result uint32

// Well-known result codes crossing the bridge.
const (
	ResultOK            Result = 0x00000000
	ResultNoInterface   Result = 0x80004002
	ResultFail          Result = 0x80004005
	ResultInvalidArg    Result = 0x80070057
	ResultDeviceRemoved Result = 0x887A0005
	ResultDeviceReset   Result = 0x887A0007
)

// Failed reports whether r carries the failure bit.
func (r Result) Failed() bool { return int32(r) < 0 }

func (r Result) String() string { return fmt.Sprintf("0x%08X", uint32(r)) }
