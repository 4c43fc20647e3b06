package nrf24

import "time"

// Settle times from the nRF24L01+ datasheet.
const (
	ceHighSettle = 1 * time.Millisecond
	ceLowSettle  = 5 * time.Millisecond
	pwrUpSettle  = 1500 * time.Microsecond
	rxModeSettle = 150 * time.Microsecond
)

// State is the radio's power and mode state as last driven by this package.
type State int

// Radio states.
const (
	PoweredDown State = iota
	Standby
	Enabled
	Listening
)

func (s State) String() string {
	switch s {
	case PoweredDown:
		return "powered down"
	case Standby:
		return "standby"
	case Enabled:
		return "enabled"
	case Listening:
		return "listening"
	default:
		return "unknown"
	}
}

// State returns the radio's current state.
// PWR_UP decides between powered down and the other states;
// CE and PRIM_RX then distinguish standby, enabled, and listening.
func (r *Radio) State() State {
	switch {
	case !r.powered:
		return PoweredDown
	case !r.ce:
		return Standby
	case r.rx:
		return Listening
	default:
		return Enabled
	}
}

func (r *Radio) settle(d time.Duration) {
	if r.err != nil {
		return
	}
	r.sleep(d)
}

// PowerUp raises CE, which starts a pending transmission
// or enables the receiver, and waits for the chip to settle.
func (r *Radio) PowerUp() {
	r.setChipEnable(true)
	r.settle(ceHighSettle)
}

// PowerDown lowers CE and waits for in-flight operations to finish.
func (r *Radio) PowerDown() {
	r.setChipEnable(false)
	r.settle(ceLowSettle)
}

// StartRadio sets PWR_UP, moving the chip from power down to standby.
func (r *Radio) StartRadio() {
	r.setBits(CONFIG, PWR_UP)
	r.settle(pwrUpSettle)
	if r.err == nil {
		r.powered = true
	}
}

// StopRadio clears PWR_UP, moving the chip to power down.
func (r *Radio) StopRadio() {
	r.clearBits(CONFIG, PWR_UP)
	r.settle(pwrUpSettle)
	if r.err == nil {
		r.powered = false
	}
}

// StartRx puts the radio in receive mode.
func (r *Radio) StartRx() {
	r.PowerUp()
	r.setBits(CONFIG, PRIM_RX)
	r.settle(rxModeSettle)
	if r.err == nil {
		r.rx = true
	}
}

// StopRx leaves receive mode.
func (r *Radio) StopRx() {
	r.PowerDown()
	r.clearBits(CONFIG, PRIM_RX)
	r.settle(rxModeSettle)
	if r.err == nil {
		r.rx = false
	}
}
