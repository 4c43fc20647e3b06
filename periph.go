package nrf24

import (
	"github.com/pkg/errors"
	"periph.io/x/periph/conn/gpio"
	"periph.io/x/periph/conn/gpio/gpioreg"
	"periph.io/x/periph/conn/physic"
	"periph.io/x/periph/conn/spi"
	"periph.io/x/periph/conn/spi/spireg"
	"periph.io/x/periph/host"
)

// periphBus drives the chip through periph.io host drivers.
type periphBus struct {
	port spi.PortCloser
	conn spi.Conn
	ce   gpio.PinOut
	name string
}

// OpenPeriph opens the SPI port and CE pin by their periph.io names,
// for example "" (first port) and "GPIO25".
func OpenPeriph(portName, ceName string, speed int) (Bus, error) {
	if _, err := host.Init(); err != nil {
		return nil, errors.Wrap(err, "initializing periph host")
	}
	port, err := spireg.Open(portName)
	if err != nil {
		return nil, errors.Wrapf(err, "opening SPI port %q", portName)
	}
	conn, err := port.Connect(physic.Frequency(speed)*physic.Hertz, spi.Mode0, 8)
	if err != nil {
		_ = port.Close()
		return nil, errors.Wrapf(err, "configuring SPI port %q", portName)
	}
	ce := gpioreg.ByName(ceName)
	if ce == nil {
		_ = port.Close()
		return nil, errors.Errorf("unknown CE pin %q", ceName)
	}
	if err := ce.Out(gpio.Low); err != nil {
		_ = port.Close()
		return nil, errors.Wrapf(err, "driving CE pin %q", ceName)
	}
	return &periphBus{port: port, conn: conn, ce: ce, name: port.String()}, nil
}

func (b *periphBus) Transfer(buf []byte) error {
	rx := make([]byte, len(buf))
	if err := b.conn.Tx(buf, rx); err != nil {
		return err
	}
	copy(buf, rx)
	return nil
}

func (b *periphBus) SetChipEnable(level bool) error {
	return b.ce.Out(gpio.Level(level))
}

func (b *periphBus) Close() error {
	err := b.ce.Out(gpio.Low)
	if perr := b.port.Close(); err == nil {
		err = perr
	}
	return err
}

func (b *periphBus) String() string {
	return b.name
}
