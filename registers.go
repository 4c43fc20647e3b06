package nrf24

import "fmt"

// Register identifies an nRF24L01+ control or status register.
type Register byte

// nRF24L01+ registers.
const (
	CONFIG      Register = 0x00
	EN_AA       Register = 0x01
	EN_RXADDR   Register = 0x02
	SETUP_AW    Register = 0x03
	SETUP_RETR  Register = 0x04
	RF_CH       Register = 0x05
	RF_SETUP    Register = 0x06
	STATUS      Register = 0x07
	OBSERVE_TX  Register = 0x08
	RPD         Register = 0x09
	RX_ADDR_P0  Register = 0x0A
	RX_ADDR_P1  Register = 0x0B
	RX_ADDR_P2  Register = 0x0C
	RX_ADDR_P3  Register = 0x0D
	RX_ADDR_P4  Register = 0x0E
	RX_ADDR_P5  Register = 0x0F
	TX_ADDR     Register = 0x10
	RX_PW_P0    Register = 0x11
	RX_PW_P1    Register = 0x12
	RX_PW_P2    Register = 0x13
	RX_PW_P3    Register = 0x14
	RX_PW_P4    Register = 0x15
	RX_PW_P5    Register = 0x16
	FIFO_STATUS Register = 0x17
	DYNPD       Register = 0x1C
	FEATURE     Register = 0x1D
)

var registerNames = map[Register]string{
	CONFIG:      "CONFIG",
	EN_AA:       "EN_AA",
	EN_RXADDR:   "EN_RXADDR",
	SETUP_AW:    "SETUP_AW",
	SETUP_RETR:  "SETUP_RETR",
	RF_CH:       "RF_CH",
	RF_SETUP:    "RF_SETUP",
	STATUS:      "STATUS",
	OBSERVE_TX:  "OBSERVE_TX",
	RPD:         "RPD",
	RX_ADDR_P0:  "RX_ADDR_P0",
	RX_ADDR_P1:  "RX_ADDR_P1",
	RX_ADDR_P2:  "RX_ADDR_P2",
	RX_ADDR_P3:  "RX_ADDR_P3",
	RX_ADDR_P4:  "RX_ADDR_P4",
	RX_ADDR_P5:  "RX_ADDR_P5",
	TX_ADDR:     "TX_ADDR",
	RX_PW_P0:    "RX_PW_P0",
	RX_PW_P1:    "RX_PW_P1",
	RX_PW_P2:    "RX_PW_P2",
	RX_PW_P3:    "RX_PW_P3",
	RX_PW_P4:    "RX_PW_P4",
	RX_PW_P5:    "RX_PW_P5",
	FIFO_STATUS: "FIFO_STATUS",
	DYNPD:       "DYNPD",
	FEATURE:     "FEATURE",
}

func (reg Register) String() string {
	s, ok := registerNames[reg]
	if !ok {
		return fmt.Sprintf("Register(%02X)", byte(reg))
	}
	return s
}

// IsWideAddress reports whether reg holds a full 5-byte address.
// RX_ADDR_P2 through RX_ADDR_P5 hold only the least significant byte
// and share the rest with RX_ADDR_P1.
func (reg Register) IsWideAddress() bool {
	return reg == RX_ADDR_P0 || reg == RX_ADDR_P1 || reg == TX_ADDR
}

func (reg Register) isNarrowAddress() bool {
	return RX_ADDR_P2 <= reg && reg <= RX_ADDR_P5
}

// Command represents an SPI command byte.
type Command byte

// SPI commands.
const (
	R_REGISTER   Command = 0x00
	W_REGISTER   Command = 0x20
	R_RX_PL_WID  Command = 0x60
	R_RX_PAYLOAD Command = 0x61
	W_TX_PAYLOAD Command = 0xA0
	FLUSH_TX     Command = 0xE1
	FLUSH_RX     Command = 0xE2
	REUSE_TX_PL  Command = 0xE3
	NOP          Command = 0xFF

	registerMask = 0x1F
)

// CONFIG register bits.
const (
	MASK_RX_DR  = 1 << 6
	MASK_TX_DS  = 1 << 5
	MASK_MAX_RT = 1 << 4
	EN_CRC      = 1 << 3
	CRCO        = 1 << 2
	PWR_UP      = 1 << 1
	PRIM_RX     = 1 << 0
)

// STATUS register bits.
// RX_DR, TX_DS, and MAX_RT are cleared by writing a 1 to them.
const (
	RX_DR   = 1 << 6
	TX_DS   = 1 << 5
	MAX_RT  = 1 << 4
	RX_P_NO = 0x07 << 1
	TX_FULL = 1 << 0

	rxFIFOEmpty = RX_P_NO
)

// RF_SETUP register bits.
const (
	RF_DR  = 1 << 3
	RF_PWR = 0x03 << 1
)

// FEATURE register bits.
const (
	EN_DPL     = 1 << 2
	EN_ACK_PAY = 1 << 1
	EN_DYN_ACK = 1 << 0
)

// Payload and address sizes.
const (
	MaxPayloadSize = 32
	AddressWidth   = 5
)
