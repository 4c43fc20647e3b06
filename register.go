package nrf24

func readCommand(reg Register) Command {
	return R_REGISTER | Command(reg&registerMask)
}

func writeCommand(reg Register) Command {
	return W_REGISTER | Command(reg&registerMask)
}

// ReadRegister returns the value of an 8-bit register.
func (r *Radio) ReadRegister(reg Register) byte {
	return r.command(readCommand(reg), 1)[0]
}

// WriteRegister writes a value to an 8-bit register.
func (r *Radio) WriteRegister(reg Register, value byte) {
	r.commandWithData(writeCommand(reg), []byte{value})
}

// ReadAddress returns the address held in an address register.
// For RX_ADDR_P2 through RX_ADDR_P5, the high 4 bytes come from RX_ADDR_P1.
func (r *Radio) ReadAddress(reg Register) Address {
	reg &= registerMask
	if reg.isNarrowAddress() {
		b := r.command(readCommand(RX_ADDR_P1), AddressWidth)
		b[0] = r.ReadRegister(reg)
		return unmarshalAddress(b)
	}
	return unmarshalAddress(r.command(readCommand(reg), AddressWidth))
}

// WriteAddress writes an address register.
// Only the low byte of addr is written to RX_ADDR_P2 through RX_ADDR_P5.
func (r *Radio) WriteAddress(reg Register, addr Address) {
	reg &= registerMask
	if reg.IsWideAddress() {
		r.commandWithData(writeCommand(reg), marshalAddress(addr))
		return
	}
	r.WriteRegister(reg, byte(addr))
}

// setBits performs a read-modify-write of reg, setting the given bits.
func (r *Radio) setBits(reg Register, bits byte) {
	r.WriteRegister(reg, r.ReadRegister(reg)|bits)
}

// clearBits performs a read-modify-write of reg, clearing the given bits.
func (r *Radio) clearBits(reg Register, bits byte) {
	r.WriteRegister(reg, r.ReadRegister(reg)&^bits)
}

// Status returns the STATUS register.
func (r *Radio) Status() byte {
	return r.ReadRegister(STATUS)
}

// ClearStatus clears the given write-to-clear STATUS bits.
// Bits not named in flags are written as 0 and so left unchanged.
func (r *Radio) ClearStatus(flags byte) {
	r.WriteRegister(STATUS, flags&(RX_DR|TX_DS|MAX_RT))
}
