package codec

// WireType identifies the payload shape of a field on the wire. Only two
// of the six historical protobuf wire types are supported; the rest are
// reserved and fail decoding if observed.
type WireType uint8

const (
	// WireVarint payloads are a sequence of 7-bit groups, little-endian,
	// each byte carrying a continuation flag in its high bit.
	WireVarint WireType = 0
	// WireLengthDelimited payloads are a varint length followed by that
	// many bytes.
	WireLengthDelimited WireType = 2
)

func (wt WireType) valid() bool {
	return wt == WireVarint || wt == WireLengthDelimited
}

// String renders wt for error messages and test failures.
func (wt WireType) String() string {
	switch wt {
	case WireVarint:
		return "varint"
	case WireLengthDelimited:
		return "length-delimited"
	default:
		return "reserved"
	}
}
