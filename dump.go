package nrf24

import (
	"fmt"
	"io"
)

// RegisterValue is one entry of a register dump.
type RegisterValue struct {
	Register Register
	Value    uint64
}

func (v RegisterValue) String() string {
	if v.Register.IsWideAddress() {
		return fmt.Sprintf("%s:0x%010x", v.Register, v.Value)
	}
	return fmt.Sprintf("%s:0x%02x", v.Register, v.Value)
}

var dumpRegisters = []Register{
	CONFIG, EN_AA, EN_RXADDR, SETUP_AW, SETUP_RETR, RF_CH, RF_SETUP, STATUS,
	RX_ADDR_P0, RX_ADDR_P1, RX_ADDR_P2, RX_ADDR_P3, RX_ADDR_P4, RX_ADDR_P5,
	TX_ADDR,
	RX_PW_P0, RX_PW_P1, RX_PW_P2, RX_PW_P3, RX_PW_P4, RX_PW_P5,
	FIFO_STATUS, DYNPD,
}

// Dump reads the configuration and status registers.
// The 5-byte address registers are read in full; RX_ADDR_P2 through
// RX_ADDR_P5 show only their own byte.
func (r *Radio) Dump() []RegisterValue {
	return r.readAll(dumpRegisters)
}

// DumpSummary reads only CONFIG and STATUS.
func (r *Radio) DumpSummary() []RegisterValue {
	return r.readAll([]Register{CONFIG, STATUS})
}

func (r *Radio) readAll(regs []Register) []RegisterValue {
	v := make([]RegisterValue, len(regs))
	for i, reg := range regs {
		v[i].Register = reg
		if reg.IsWideAddress() {
			v[i].Value = uint64(r.ReadAddress(reg))
		} else {
			v[i].Value = uint64(r.ReadRegister(reg))
		}
	}
	return v
}

// WriteDump writes one "NAME:0xVALUE" line per register to w.
func WriteDump(w io.Writer, values []RegisterValue) error {
	for _, v := range values {
		if _, err := fmt.Fprintln(w, v); err != nil {
			return err
		}
	}
	return nil
}
