package interop

import (
	"fmt"
	"strconv"
)

// GUID identifies a COM interface in its canonical binary layout.
type GUID struct {
	Data1 uint32
	Data2 uint16
	Data3 uint16
	Data4 [8]byte
}

// Interface identifiers used by the bridge.
var (
	// IIDDXGIDevice is the native device interface queried by UnwrapDevice.
	IIDDXGIDevice = GUID{0x54ec77fa, 0x1377, 0x44e6, [8]byte{0x8c, 0x32, 0x88, 0xfd, 0x5f, 0x44, 0xc8, 0x4c}}

	// IIDDXGISurface is the native surface interface queried by UnwrapSurface.
	IIDDXGISurface = GUID{0xcafcb56c, 0x6ac3, 0x4889, [8]byte{0xbf, 0x47, 0x9e, 0x23, 0xbb, 0xd2, 0x60, 0xec}}

	// IIDInteropAccess is the canonical identity interface of wrapped
	// objects. Wrapping queries it to pin the one reference a Handle owns.
	IIDInteropAccess = GUID{0xa9b3d012, 0x3df2, 0x4ee3, [8]byte{0xb8, 0xd1, 0x86, 0x95, 0xf4, 0x57, 0xd3, 0xc1}}
)

// ParseGUID parses the canonical "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx"
// form, with or without surrounding braces. Hex digits may be in either
// case.
func ParseGUID(s string) (GUID, error) {
	raw := s
	if len(s) == 38 && s[0] == '{' && s[37] == '}' {
		s = s[1:37]
	}
	if len(s) != 36 || s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return GUID{}, fmt.Errorf("%w: %q", ErrInvalidGUID, raw)
	}
	d1, err1 := strconv.ParseUint(s[0:8], 16, 32)
	d2, err2 := strconv.ParseUint(s[9:13], 16, 16)
	d3, err3 := strconv.ParseUint(s[14:18], 16, 16)
	if err1 != nil || err2 != nil || err3 != nil {
		return GUID{}, fmt.Errorf("%w: %q", ErrInvalidGUID, raw)
	}
	g := GUID{Data1: uint32(d1), Data2: uint16(d2), Data3: uint16(d3)}
	tail := s[19:23] + s[24:36]
	for i := range g.Data4 {
		b, err := strconv.ParseUint(tail[2*i:2*i+2], 16, 8)
		if err != nil {
			return GUID{}, fmt.Errorf("%w: %q", ErrInvalidGUID, raw)
		}
		g.Data4[i] = byte(b)
	}
	return g, nil
}

// String renders the canonical lower-case form without braces.
func (g GUID) String() string {
	return fmt.Sprintf("%08x-%04x-%04x-%02x%02x-%02x%02x%02x%02x%02x%02x",
		g.Data1, g.Data2, g.Data3,
		g.Data4[0], g.Data4[1], g.Data4[2], g.Data4[3],
		g.Data4[4], g.Data4[5], g.Data4[6], g.Data4[7])
}
