package nrf24

import "github.com/pkg/errors"

// nRF24L01+ channels are 1 MHz apart starting at 2400 MHz.
const (
	baseFrequency    = 2400000000 // Hz
	channelBandwidth = 1000000    // Hz
)

// Init programs the radio from its configuration, powers it up to
// standby, and empties both FIFOs.
func (r *Radio) Init() {
	if r.err != nil {
		return
	}
	if r.ce {
		r.PowerDown()
	}
	c := r.config
	r.WriteAddress(TX_ADDR, c.TxAddress)
	r.WriteAddress(RX_ADDR_P0, c.RxAddress)
	r.WriteRegister(RF_SETUP, c.RFSetup)
	r.WriteRegister(DYNPD, c.DynamicPayloads)
	r.WriteRegister(FEATURE, c.Features)
	r.WriteRegister(RF_CH, c.Channel)
	r.WriteRegister(CONFIG, c.ConfigFlags&^(PWR_UP|PRIM_RX))
	if r.err == nil {
		r.powered, r.rx = false, false
	}
	r.WriteRegister(SETUP_RETR, c.Retries)
	r.WriteRegister(RX_PW_P0, byte(c.PayloadSize))
	r.StartRadio()
	r.Flush()
	if r.err != nil {
		r.err = errors.Wrap(r.err, "initializing radio")
	}
}

// Shutdown powers the radio down and releases the bus.
func (r *Radio) Shutdown() {
	if r.bus == nil {
		return
	}
	r.StopRadio()
	r.Close()
}

// ReceiveLoop enables the receiver, polls for dynamic-length payloads
// the given number of times, and returns copies of everything received.
func (r *Radio) ReceiveLoop(polls int) [][]byte {
	var received [][]byte
	buf := make([]byte, MaxPayloadSize+1)
	r.StartRx()
	for i := 0; i < polls && r.err == nil; i++ {
		n := r.ReceiveDynamic(buf)
		if n == 0 {
			continue
		}
		p := make([]byte, n)
		copy(p, buf)
		r.log.Debugf("received %d-byte payload % X", n, p)
		received = append(received, p)
	}
	r.StopRx()
	return received
}

// Frequency returns the radio's current frequency, in Hertz.
func (r *Radio) Frequency() uint32 {
	return baseFrequency + uint32(r.ReadRegister(RF_CH))*channelBandwidth
}

// SetFrequency tunes the radio to the channel nearest freq, in Hertz.
func (r *Radio) SetFrequency(freq uint32) {
	ch := 0
	if freq > baseFrequency {
		ch = int((freq - baseFrequency + channelBandwidth/2) / channelBandwidth)
	}
	if ch > maxChannel {
		ch = maxChannel
	}
	r.config.Channel = uint8(ch)
	r.WriteRegister(RF_CH, uint8(ch))
}
