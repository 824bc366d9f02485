package ipv6

import (
	"strconv"
	"strings"
	ipv4 "uriview/ip/v4"

	"github.com/pkg/errors"
)

type Addr [16]byte

// ParseAddr parses the textual IPv6 forms: eight hex groups, a
// "::"-compressed zero run, and an embedded dotted-quad IPv4 tail.
func ParseAddr(s string) (Addr, error) {
	head, tail, compressed := strings.Cut(s, "::")

	headGroups, err := parseGroups(head, !compressed)
	if err != nil {
		return Addr{}, errors.Wrap(err, "parsing groups before ::")
	}

	if !compressed {
		if len(headGroups) != 8 {
			return Addr{}, errors.New("address is not 128 bits")
		}
		return fromGroups(headGroups, nil), nil
	}

	tailGroups, err := parseGroups(tail, true)
	if err != nil {
		return Addr{}, errors.Wrap(err, "parsing groups after ::")
	}

	if len(headGroups)+len(tailGroups) >= 8 {
		// "::" must stand for at least one omitted group.
		return Addr{}, errors.New("too many groups around ::")
	}

	return fromGroups(headGroups, tailGroups), nil
}

func parseGroups(s string, allowV4Tail bool) ([]uint16, error) {
	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, ":")
	groups := make([]uint16, 0, len(parts)+1)
	for idx, part := range parts {
		if part == "" {
			// ":::" or a stray colon next to the "::" cut.
			return nil, errors.New("empty group")
		}

		n, err := strconv.ParseUint(part, 16, 16)
		if err == nil {
			groups = append(groups, uint16(n))
			continue
		}

		// The last group may be an embedded IPv4 address.
		if !allowV4Tail || idx != len(parts)-1 {
			return nil, errors.Wrap(err, "parsing hex group")
		}
		v4, err := ipv4.ParseAddr(part)
		if err != nil {
			return nil, errors.Wrap(err, "last group is neither hex nor an ipv4 address")
		}
		packed := v4.ToUint32()
		groups = append(groups, uint16(packed>>16), uint16(packed&0xFFFF))
	}

	return groups, nil
}

// fromGroups writes head at the front of the address and tail at the back,
// leaving the "::"-omitted groups in between as zeros.
func fromGroups(head, tail []uint16) Addr {
	var addr Addr
	for idx, g := range head {
		addr[idx*2] = byte(g >> 8)
		addr[idx*2+1] = byte(g)
	}
	offset := len(addr) - len(tail)*2
	for idx, g := range tail {
		addr[offset+idx*2] = byte(g >> 8)
		addr[offset+idx*2+1] = byte(g)
	}
	return addr
}

// String renders the address with leading zeros of each group dropped and
// the longest run of two or more all-zero groups compressed to "::"
// (the leftmost run wins on ties).
func (a Addr) String() string {
	var groups [8]uint16
	for idx := range groups {
		groups[idx] = uint16(a[idx*2])<<8 | uint16(a[idx*2+1])
	}

	start, length := -1, 0
	for idx := 0; idx < len(groups); {
		if groups[idx] != 0 {
			idx++
			continue
		}
		runStart := idx
		for idx < len(groups) && groups[idx] == 0 {
			idx++
		}
		if run := idx - runStart; run > length {
			start, length = runStart, run
		}
	}
	if length < 2 {
		// A lone zero group is written as "0".
		start = -1
	}

	b := new(strings.Builder)
	for idx := 0; idx < len(groups); {
		if idx == start {
			b.WriteString("::")
			idx += length
			continue
		}
		if idx > 0 && idx != start+length {
			b.WriteByte(':')
		}
		b.WriteString(strings.ToUpper(strconv.FormatUint(uint64(groups[idx]), 16)))
		idx++
	}

	return b.String()
}
