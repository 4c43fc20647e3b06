package nrf24

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Config holds everything needed to open and program a radio.
type Config struct {
	// Bus settings.
	SPIDevice string
	SPISpeed  int // Hz
	CustomCS  int
	CEPin     int
	IRQPin    int

	// Register programming applied by Init.
	TxAddress       Address
	RxAddress       Address
	Channel         uint8
	RFSetup         byte // RF_SETUP
	DynamicPayloads byte // DYNPD pipe bitmap
	Features        byte // FEATURE
	ConfigFlags     byte // CONFIG, without PWR_UP and PRIM_RX
	Retries         byte // SETUP_RETR
	PayloadSize     int  // fixed-length payload width

	// Transmit status polling.
	TxPollLimit    int
	TxPollInterval time.Duration

	// Sleep is used for every settle delay and poll interval.
	// If nil, time.Sleep is used.
	Sleep func(time.Duration)

	// Logger receives driver diagnostics.
	// If nil, the logrus standard logger is used.
	Logger *logrus.Logger
}

const (
	defaultAddress = 0xF0F0F0F001
	defaultChannel = 110
	maxChannel     = 125
)

// DefaultConfig returns the configuration used when nothing is overridden:
// full power, dynamic payloads on all pipes, CRC on, 15 retransmits.
func DefaultConfig() Config {
	return Config{
		SPIDevice:       spiDevice,
		SPISpeed:        1000000,
		CustomCS:        customCS,
		CEPin:           cePin,
		IRQPin:          irqPin,
		TxAddress:       defaultAddress,
		RxAddress:       defaultAddress,
		Channel:         defaultChannel,
		RFSetup:         RF_PWR,
		DynamicPayloads: 0x3F,
		Features:        EN_DPL,
		ConfigFlags:     EN_CRC,
		Retries:         0x0F,
		PayloadSize:     MaxPayloadSize,
		TxPollLimit:     100,
		TxPollInterval:  100 * time.Microsecond,
	}
}

// Validate checks the configuration before any bus activity takes place.
func (c Config) Validate() error {
	switch {
	case c.TxAddress == 0 || c.TxAddress > MaxAddress:
		return errors.Wrapf(ErrInvalidAddress, "transmit address %s", c.TxAddress)
	case c.RxAddress == 0 || c.RxAddress > MaxAddress:
		return errors.Wrapf(ErrInvalidAddress, "receive address %s", c.RxAddress)
	case c.Channel > maxChannel:
		return errors.Errorf("channel %d out of range", c.Channel)
	case c.PayloadSize < 1 || c.PayloadSize > MaxPayloadSize:
		return errors.Errorf("payload size %d out of range", c.PayloadSize)
	case c.TxPollLimit < 1:
		return errors.Errorf("transmit poll limit %d must be positive", c.TxPollLimit)
	}
	return nil
}
