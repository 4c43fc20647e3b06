package nrf24

// Marshaling of addresses in the least-significant-byte-first
// order used on the wire.

func marshalAddress(addr Address) []byte {
	b := make([]byte, AddressWidth)
	for i := range b {
		b[i] = byte(addr >> (8 * uint(i)))
	}
	return b
}

func unmarshalAddress(b []byte) Address {
	var addr Address
	for i := len(b) - 1; i >= 0; i-- {
		addr = addr<<8 | Address(b[i])
	}
	return addr
}
