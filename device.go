package nrf24

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Radio represents an open nRF24L01+ device.
// A Radio is not safe for concurrent use.
type Radio struct {
	bus    Bus
	config Config
	sleep  func(time.Duration)
	log    *logrus.Logger
	stats  Statistics
	err    error

	// Chip state as last driven: PWR_UP, CE, and PRIM_RX.
	powered bool
	ce      bool
	rx      bool
}

// Statistics holds packet and byte counts.
type Statistics struct {
	Bytes   struct{ Sent, Received int }
	Packets struct{ Sent, Received int }
}

// Open opens the radio through the spidev backend described by cfg.
// Any failure is reported by the returned Radio's Error method.
func Open(cfg Config) *Radio {
	r := New(nil, cfg)
	if r.err != nil {
		return r
	}
	r.bus, r.err = OpenSPI(cfg)
	return r
}

// New returns a Radio that takes ownership of bus.
func New(bus Bus, cfg Config) *Radio {
	r := &Radio{
		bus:    bus,
		config: cfg,
		sleep:  cfg.Sleep,
		log:    cfg.Logger,
	}
	if r.sleep == nil {
		r.sleep = time.Sleep
	}
	if r.log == nil {
		r.log = logrus.StandardLogger()
	}
	if err := cfg.Validate(); err != nil {
		r.err = err
	}
	return r
}

// Close releases the bus.
func (r *Radio) Close() {
	if r.bus == nil {
		return
	}
	err := r.bus.Close()
	r.bus = nil
	if err != nil && r.err == nil {
		r.err = errors.Wrap(err, "closing radio")
	}
}

// Device returns the name of the radio's bus.
func (r *Radio) Device() string {
	if s, ok := r.bus.(fmt.Stringer); ok {
		return s.String()
	}
	return r.config.SPIDevice
}

// Config returns the configuration the radio was opened with.
func (r *Radio) Config() Config {
	return r.config
}

// Statistics returns the byte and packet counts for the radio device.
func (r *Radio) Statistics() Statistics {
	return r.stats
}

// Error returns the error state of the radio device.
func (r *Radio) Error() error {
	return r.err
}

// SetError sets the error state of the radio device.
func (r *Radio) SetError(err error) {
	r.err = err
}

// xfer performs one bus transaction in place.
// It returns false (leaving buf zeroed) if the radio is in an error state.
func (r *Radio) xfer(buf []byte) bool {
	if r.err != nil {
		for i := range buf {
			buf[i] = 0
		}
		return false
	}
	if r.bus == nil {
		r.err = errors.New("radio is closed")
		return false
	}
	out := r.log.IsLevelEnabled(logrus.DebugLevel)
	var tx []byte
	if out {
		tx = append(tx, buf...)
	}
	if err := r.bus.Transfer(buf); err != nil {
		r.err = errors.Wrap(err, "SPI transfer")
		return false
	}
	if out {
		r.log.Debugf("xfer % X -> % X", tx, buf)
	}
	return true
}

// command sends a command byte followed by n NOPs
// and returns the n bytes clocked in after the status byte.
func (r *Radio) command(cmd Command, n int) []byte {
	buf := make([]byte, 1+n)
	buf[0] = byte(cmd)
	for i := 1; i < len(buf); i++ {
		buf[i] = byte(NOP)
	}
	r.xfer(buf)
	return buf[1:]
}

// commandWithData sends a command byte followed by data.
func (r *Radio) commandWithData(cmd Command, data []byte) {
	buf := make([]byte, 1+len(data))
	buf[0] = byte(cmd)
	copy(buf[1:], data)
	r.xfer(buf)
}

func (r *Radio) setChipEnable(level bool) {
	if r.err != nil {
		return
	}
	if r.bus == nil {
		r.err = errors.New("radio is closed")
		return
	}
	r.log.Debugf("CE %v", level)
	if err := r.bus.SetChipEnable(level); err != nil {
		r.err = errors.Wrap(err, "setting CE")
		return
	}
	r.ce = level
}
