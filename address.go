package nrf24

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Address is a 40-bit radio pipe address.
type Address uint64

// MaxAddress is the largest representable radio address.
const MaxAddress Address = 1<<(8*AddressWidth) - 1

// ErrInvalidAddress is returned by ParseAddress for malformed or zero addresses.
var ErrInvalidAddress = errors.New("invalid radio address")

// ParseAddress parses a radio address written as at least 10 hex digits,
// most significant byte first, such as "f0f0f0f001".
// Only the first 10 digits are used. A zero address is rejected.
func ParseAddress(s string) (Address, error) {
	digits := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(digits) < 2*AddressWidth {
		return 0, errors.Wrapf(ErrInvalidAddress, "%q is too short", s)
	}
	var addr Address
	for i := 0; i < 2*AddressWidth; i += 2 {
		b, err := strconv.ParseUint(digits[i:i+2], 16, 8)
		if err != nil {
			return 0, errors.Wrapf(ErrInvalidAddress, "%q", s)
		}
		addr = addr<<8 | Address(b)
	}
	if addr == 0 {
		return 0, errors.Wrap(ErrInvalidAddress, "address is zero")
	}
	return addr, nil
}

func (addr Address) String() string {
	return fmt.Sprintf("%010x", uint64(addr&MaxAddress))
}
