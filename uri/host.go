package uri

import (
	"strings"
	ipv4 "uriview/ip/v4"
	ipv6 "uriview/ip/v6"
)

// Host is the classified form of an authority host: Domain, IPv4 or IPv6.
// It is derived on demand by ClassifyHost and never stored on Authority.
type Host interface {
	String() string
	isHost()
}

type Domain string

func (d Domain) String() string { return string(d) }
func (Domain) isHost()          {}

type IPv4 ipv4.Addr

func (a IPv4) String() string { return ipv4.Addr(a).String() }
func (IPv4) isHost()          {}

type IPv6 ipv6.Addr

func (a IPv6) String() string { return "[" + ipv6.Addr(a).String() + "]" }
func (IPv6) isHost()          {}

// ClassifyHost decides what kind of host an authority carries.
// Reference: https://datatracker.ietf.org/doc/html/rfc3986#section-3.2.2
//
//	host = IP-literal / IPv4address / reg-name
//
// A bracketed literal that isn't a valid IPv6 address (e.g. IPvFuture)
// falls back to Domain, as does anything that isn't a dotted quad.
func ClassifyHost(host string) Host {
	if strings.HasPrefix(host, "[") && strings.HasSuffix(host, "]") {
		if addr, err := ipv6.ParseAddr(host[1 : len(host)-1]); err == nil {
			return IPv6(addr)
		}
	}

	if addr, err := ipv4.ParseAddr(host); err == nil {
		return IPv4(addr)
	}

	return Domain(host)
}
