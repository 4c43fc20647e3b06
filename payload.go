package nrf24

import "github.com/pkg/errors"

// ErrPayloadTooLong is returned by ValidatePayload.
var ErrPayloadTooLong = errors.Errorf("payload longer than %d bytes", MaxPayloadSize)

// ValidatePayload checks that p fits in a single packet.
func ValidatePayload(p []byte) error {
	if len(p) > MaxPayloadSize {
		return errors.Wrapf(ErrPayloadTooLong, "%d bytes", len(p))
	}
	return nil
}

// FlushTx empties the transmit FIFO.
func (r *Radio) FlushTx() {
	r.command(FLUSH_TX, 0)
}

// FlushRx empties the receive FIFO.
func (r *Radio) FlushRx() {
	r.command(FLUSH_RX, 0)
}

// Flush empties both FIFOs.
func (r *Radio) Flush() {
	r.FlushTx()
	r.FlushRx()
}

// RxReady reports whether a payload is waiting in the receive FIFO.
// It does not block.
func (r *Radio) RxReady() bool {
	status := r.Status()
	return r.err == nil && status&RX_P_NO != rxFIFOEmpty
}

// payloadLength returns the width of the payload at the head of the
// receive FIFO. A width above MaxPayloadSize means the FIFO is corrupt;
// it is flushed and 0 is returned.
func (r *Radio) payloadLength() int {
	n := int(r.command(R_RX_PL_WID, 1)[0])
	if n > MaxPayloadSize {
		r.log.Warnf("receive FIFO reported %d-byte payload; flushing", n)
		r.FlushRx()
		return 0
	}
	return n
}

func (r *Radio) checkPayloadBuffer(payload []byte, n int) bool {
	if len(payload) < n {
		r.log.Errorf("%d-byte payload buffer is smaller than %d bytes", len(payload), n)
		return false
	}
	return true
}

// ReceiveDynamic reads a dynamic-length payload into payload, which must
// have room for MaxPayloadSize bytes. If there is room, the byte after the
// payload is set to 0. It returns the payload length, or 0 if nothing was
// received; an empty payload cannot be told apart from no payload.
// A smaller buffer is refused without touching the bus.
func (r *Radio) ReceiveDynamic(payload []byte) int {
	if !r.checkPayloadBuffer(payload, MaxPayloadSize) || !r.RxReady() {
		return 0
	}
	n := r.payloadLength()
	if n == 0 {
		return 0
	}
	data := r.command(R_RX_PAYLOAD, n)
	if r.err != nil {
		return 0
	}
	copy(payload, data)
	if len(payload) > n {
		payload[n] = 0
	}
	r.ClearStatus(RX_DR)
	r.countReceived(n)
	return n
}

// ReceiveFixed reads a payload of the configured fixed size into payload.
// It reports whether a payload was read.
func (r *Radio) ReceiveFixed(payload []byte) bool {
	size := r.config.PayloadSize
	if !r.checkPayloadBuffer(payload, size) || !r.RxReady() {
		return false
	}
	data := r.command(R_RX_PAYLOAD, size)
	if r.err != nil {
		return false
	}
	copy(payload, data)
	r.ClearStatus(RX_DR)
	r.countReceived(size)
	return true
}

// Transmit sends payload and waits for the chip to report the outcome
// of its automatic retransmission sequence. It reports whether the
// payload was acknowledged. Whatever the outcome, CE is left low.
// A radio in receive mode is taken out of it first.
func (r *Radio) Transmit(payload []byte) bool {
	if err := ValidatePayload(payload); err != nil {
		r.log.Error(err)
		return false
	}
	if r.err != nil {
		return false
	}
	if r.rx {
		r.log.Debug("leaving receive mode to transmit")
		r.StopRx()
	}
	r.FlushTx()
	r.commandWithData(W_TX_PAYLOAD, payload)
	r.PowerUp()
	for i := 0; i < r.config.TxPollLimit && r.err == nil; i++ {
		status := r.Status()
		switch {
		case r.err != nil:
		case status&TX_DS != 0:
			r.ClearStatus(TX_DS)
			r.PowerDown()
			if r.err != nil {
				return false
			}
			r.stats.Packets.Sent++
			r.stats.Bytes.Sent += len(payload)
			return true
		case status&MAX_RT != 0:
			r.log.Debug("maximum retransmits reached")
			r.ClearStatus(MAX_RT)
			r.FlushTx()
			r.PowerDown()
			return false
		default:
			r.settle(r.config.TxPollInterval)
		}
	}
	if r.err != nil {
		return false
	}
	r.log.Warnf("transmit timed out after %d polls", r.config.TxPollLimit)
	r.PowerDown()
	r.FlushTx()
	return false
}

func (r *Radio) countReceived(n int) {
	r.stats.Packets.Received++
	r.stats.Bytes.Received += n
}
