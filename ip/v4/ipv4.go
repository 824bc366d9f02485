package ipv4

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type Addr [4]byte

// ParseAddr parses a dotted-quad IPv4 address. Leading zeros are rejected
// so that an octet is never read as octal.
func ParseAddr(s string) (Addr, error) {
	octets := strings.Split(s, ".")
	if len(octets) != 4 {
		return Addr{}, errors.Errorf("expected 4 octets, got %d", len(octets))
	}

	var addr Addr
	for idx, octet := range octets {
		n, err := strconv.ParseUint(octet, 10, 8)
		if err != nil {
			return Addr{}, errors.Wrap(err, "parsing octet")
		}
		if octet[0] == '0' && len(octet) > 1 {
			// "00", "01"
			return Addr{}, errors.New("octet has a leading zero")
		}
		addr[idx] = byte(n)
	}

	return addr, nil
}

func (a Addr) String() string {
	parts := make([]string, len(a))
	for idx, b := range a {
		parts[idx] = strconv.FormatUint(uint64(b), 10)
	}
	return strings.Join(parts, ".")
}

func (a Addr) ToUint32() uint32 {
	return uint32(a[0])<<24 | uint32(a[1])<<16 | uint32(a[2])<<8 | uint32(a[3])
}
