package nrf24

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMarshalAddress(t *testing.T) {
	cases := []struct {
		val Address
		rep []byte
	}{
		{0xF0F0F0F001, []byte{0x01, 0xF0, 0xF0, 0xF0, 0xF0}},
		{0x0102030405, []byte{0x05, 0x04, 0x03, 0x02, 0x01}},
		{1, []byte{1, 0, 0, 0, 0}},
		{MaxAddress, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF}},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("marshal_%s", c.val), func(t *testing.T) {
			require.Equal(t, c.rep, marshalAddress(c.val))
			require.Equal(t, c.val, unmarshalAddress(c.rep))
		})
	}
}

func TestAddressRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		v := Address(rng.Int63())&MaxAddress | 1
		require.Equal(t, v, unmarshalAddress(marshalAddress(v)))
	}
}
