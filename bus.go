package nrf24

import (
	"io"

	"github.com/ecc1/gpio"
	"github.com/ecc1/radio"
	"github.com/pkg/errors"
)

// Bus is the transport between the driver and the chip.
//
// Transfer exchanges len(buf) bytes in a single transaction,
// replacing the contents of buf with the bytes clocked in.
// The first byte clocked in is always the STATUS register.
type Bus interface {
	Transfer(buf []byte) error
	SetChipEnable(level bool) error
	Close() error
}

// spiMode is SPI mode 0 (CPOL=0, CPHA=0).
const spiMode = 0

// flavor describes the nRF24L01+ to radio.Open.
// Multi-byte register access on this chip is determined by transfer
// length, so burst addresses are the same as single ones.
type flavor struct {
	cfg Config
}

func (f flavor) SPIDevice() string              { return f.cfg.SPIDevice }
func (f flavor) Speed() int                     { return f.cfg.SPISpeed }
func (f flavor) CustomCS() int                  { return f.cfg.CustomCS }
func (f flavor) InterruptPin() int              { return f.cfg.IRQPin }
func (f flavor) ReadSingleAddress(a byte) byte  { return byte(readCommand(Register(a))) }
func (f flavor) ReadBurstAddress(a byte) byte   { return byte(readCommand(Register(a))) }
func (f flavor) WriteSingleAddress(a byte) byte { return byte(writeCommand(Register(a))) }
func (f flavor) WriteBurstAddress(a byte) byte  { return byte(writeCommand(Register(a))) }

// spidevBus drives the chip through the Linux spidev interface
// and a sysfs GPIO for the CE line.
type spidevBus struct {
	hw   *radio.Hardware
	ce   gpio.OutputPin
	name string
}

// OpenSPI opens the spidev device, IRQ pin, and CE pin named in cfg.
// Nothing is left open if any of them fails.
func OpenSPI(cfg Config) (Bus, error) {
	hw := radio.Open(flavor{cfg: cfg})
	if hw.Error() != nil {
		return nil, errors.Wrapf(hw.Error(), "opening %s", cfg.SPIDevice)
	}
	// radio.Open can close the device after a late failure and still
	// report success, so SetMode also checks that the device is usable.
	if err := hw.SPIDevice().SetMode(spiMode); err != nil {
		hw.Close()
		return nil, errors.Wrapf(err, "setting SPI mode on %s", cfg.SPIDevice)
	}
	ce, err := gpio.Output(cfg.CEPin, false, false)
	if err != nil {
		hw.Close()
		return nil, errors.Wrapf(err, "opening CE pin %d", cfg.CEPin)
	}
	return &spidevBus{hw: hw, ce: ce, name: hw.Device()}, nil
}

func (b *spidevBus) Transfer(buf []byte) error {
	return b.hw.SPIDevice().Transfer(buf, buf)
}

func (b *spidevBus) SetChipEnable(level bool) error {
	return b.ce.Write(level)
}

func (b *spidevBus) Close() error {
	err := b.ce.Write(false)
	if c, ok := b.ce.(io.Closer); ok {
		if cerr := c.Close(); err == nil {
			err = cerr
		}
	}
	b.hw.Close()
	if herr := b.hw.Error(); err == nil {
		err = herr
	}
	return err
}

func (b *spidevBus) String() string {
	return b.name
}
