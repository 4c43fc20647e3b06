package nrf24

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFlavor(t *testing.T) {
	cfg := DefaultConfig()
	f := flavor{cfg: cfg}
	require.Equal(t, cfg.SPIDevice, f.SPIDevice())
	require.Equal(t, 1000000, f.Speed())
	require.Equal(t, cfg.IRQPin, f.InterruptPin())
	cases := []struct {
		addr        byte
		read, write byte
	}{
		{byte(CONFIG), 0x00, 0x20},
		{byte(TX_ADDR), 0x10, 0x30},
		{byte(FEATURE), 0x1D, 0x3D},
		{0xE0 | byte(STATUS), 0x07, 0x27},
	}
	for _, c := range cases {
		t.Run(Register(c.addr&registerMask).String(), func(t *testing.T) {
			require.Equal(t, c.read, f.ReadSingleAddress(c.addr))
			require.Equal(t, c.read, f.ReadBurstAddress(c.addr))
			require.Equal(t, c.write, f.WriteSingleAddress(c.addr))
			require.Equal(t, c.write, f.WriteBurstAddress(c.addr))
		})
	}
}
