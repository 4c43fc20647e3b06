package nrf24

import (
	"fmt"
	"io/ioutil"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

// fakeChip simulates enough of an nRF24L01+ to exercise the driver.
type fakeChip struct {
	regs  [0x20]byte
	addrs map[Register][]byte

	rxFIFO [][]byte
	txFIFO [][]byte
	sent   [][]byte

	// txResult is set in STATUS when CE rises with a payload loaded.
	txResult byte
	// width, if non-negative, overrides the reported payload width.
	width int
	// failAfter, if positive, makes the nth following transfer fail.
	failAfter int

	ce     bool
	ceLog  []bool
	cmds   []Command
	closed bool

	// events interleaves commands, CE changes, and sleeps in call order.
	events []string
}

func newFakeChip() *fakeChip {
	return &fakeChip{
		addrs:    make(map[Register][]byte),
		txResult: TX_DS,
		width:    -1,
	}
}

type errBus string

func (e errBus) Error() string { return string(e) }

func (c *fakeChip) status() byte {
	s := c.regs[STATUS] & (RX_DR | TX_DS | MAX_RT)
	if len(c.rxFIFO) == 0 {
		s |= rxFIFOEmpty
	}
	if len(c.txFIFO) >= 3 {
		s |= TX_FULL
	}
	return s
}

func (c *fakeChip) Transfer(buf []byte) error {
	if c.failAfter > 0 {
		c.failAfter--
		if c.failAfter == 0 {
			return errBus("bus failure")
		}
	}
	cmd := Command(buf[0])
	c.cmds = append(c.cmds, cmd)
	c.events = append(c.events, cmdEvent(cmd))
	status := c.status()
	reg := Register(cmd & registerMask)
	switch {
	case cmd&0xE0 == R_REGISTER:
		if reg.IsWideAddress() {
			a := c.addr(reg)
			copy(buf[1:], a)
		} else if reg == STATUS {
			buf[1] = status
		} else if len(buf) > 1 {
			buf[1] = c.regs[reg]
		}
	case cmd&0xE0 == W_REGISTER:
		if reg.IsWideAddress() {
			a := make([]byte, AddressWidth)
			copy(a, buf[1:])
			c.addrs[reg] = a
		} else if reg == STATUS {
			c.regs[STATUS] &^= buf[1] & (RX_DR | TX_DS | MAX_RT)
		} else {
			c.regs[reg] = buf[1]
		}
	case cmd == R_RX_PL_WID:
		switch {
		case c.width >= 0:
			buf[1] = byte(c.width)
		case len(c.rxFIFO) != 0:
			buf[1] = byte(len(c.rxFIFO[0]))
		default:
			buf[1] = 0
		}
	case cmd == R_RX_PAYLOAD:
		for i := 1; i < len(buf); i++ {
			buf[i] = 0
		}
		if len(c.rxFIFO) != 0 {
			copy(buf[1:], c.rxFIFO[0])
			c.rxFIFO = c.rxFIFO[1:]
		}
	case cmd == W_TX_PAYLOAD:
		p := make([]byte, len(buf)-1)
		copy(p, buf[1:])
		c.txFIFO = append(c.txFIFO, p)
	case cmd == FLUSH_TX:
		c.txFIFO = nil
	case cmd == FLUSH_RX:
		c.rxFIFO = nil
	}
	buf[0] = status
	return nil
}

func (c *fakeChip) addr(reg Register) []byte {
	a, ok := c.addrs[reg]
	if !ok {
		return make([]byte, AddressWidth)
	}
	return a
}

func (c *fakeChip) SetChipEnable(level bool) error {
	c.ceLog = append(c.ceLog, level)
	c.events = append(c.events, ceEvent(level))
	if level && !c.ce && len(c.txFIFO) != 0 && c.regs[CONFIG]&PRIM_RX == 0 {
		c.sent = append(c.sent, c.txFIFO[0])
		if c.txResult == TX_DS {
			c.txFIFO = c.txFIFO[1:]
		}
		c.regs[STATUS] |= c.txResult
	}
	c.ce = level
	return nil
}

func (c *fakeChip) Close() error {
	c.closed = true
	return nil
}

// receive places a payload in the receive FIFO as if it had arrived over the air.
func (c *fakeChip) receive(p string) {
	c.rxFIFO = append(c.rxFIFO, []byte(p))
	c.regs[STATUS] |= RX_DR
}

func (c *fakeChip) count(cmd Command) int {
	n := 0
	for _, sent := range c.cmds {
		if sent == cmd {
			n++
		}
	}
	return n
}

func cmdEvent(cmd Command) string       { return fmt.Sprintf("cmd %02X", byte(cmd)) }
func ceEvent(level bool) string         { return fmt.Sprintf("ce %v", level) }
func sleepEvent(d time.Duration) string { return fmt.Sprintf("sleep %v", d) }

// index returns the position of the first event equal to e at or after from, or -1.
func (c *fakeChip) index(e string, from int) int {
	for i := from; i < len(c.events); i++ {
		if c.events[i] == e {
			return i
		}
	}
	return -1
}

// fakeClock records sleeps, and also logs them as chip events
// when chip is set.
type fakeClock struct {
	chip   *fakeChip
	sleeps []time.Duration
}

func (c *fakeClock) Sleep(d time.Duration) {
	c.sleeps = append(c.sleeps, d)
	if c.chip != nil {
		c.chip.events = append(c.chip.events, sleepEvent(d))
	}
}

func (c *fakeClock) count(d time.Duration) int {
	n := 0
	for _, s := range c.sleeps {
		if s == d {
			n++
		}
	}
	return n
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(ioutil.Discard)
	return l
}

func testConfig(clock *fakeClock) Config {
	cfg := DefaultConfig()
	cfg.Sleep = clock.Sleep
	cfg.Logger = quietLogger()
	return cfg
}

func newTestRadio(t *testing.T) (*Radio, *fakeChip, *fakeClock) {
	t.Helper()
	chip := newFakeChip()
	clock := &fakeClock{chip: chip}
	r := New(chip, testConfig(clock))
	if r.Error() != nil {
		t.Fatal(r.Error())
	}
	return r, chip, clock
}
