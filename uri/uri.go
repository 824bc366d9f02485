package uri

import (
	"sort"
	"strconv"
	"strings"
	"uriview/lib/types/pointer"
)

// URI is the borrowed view produced by Parse: every string field is a
// substring of the parsed input, so a retained URI keeps the whole input
// buffer alive. Clone cuts that dependency.
type URI struct {
	Scheme    string
	Authority Authority

	// Path is never nil after a successful parse; consecutive or trailing
	// slashes yield empty segments.
	Path []string

	// Query is nil when the URI carries no '?'. Duplicate keys collapse to
	// the value of the last occurrence.
	Query map[string]string

	Fragment *string
}

type Authority struct {
	// Host is never empty after a successful parse. Bracketed IP literals
	// keep their brackets; see ClassifyHost for the decoded form.
	Host string

	// UserInfo is nil when the authority carries no credentials.
	UserInfo UserInfo

	// NOTE: RFC-wise a port is digits of any length, but it is stored as
	// uint16 for usability. Values above 65535 fail the parse instead of
	// wrapping.
	// Reference: https://datatracker.ietf.org/doc/html/rfc3986#section-3.2.3
	Port *uint16
}

// UserInfo is the credential part of an authority: either User or
// UserAndPassword. The two-variant shape makes a password without a
// username unrepresentable.
type UserInfo interface {
	String() string
	clone() UserInfo
}

type User string

func (u User) String() string  { return string(u) }
func (u User) clone() UserInfo { return User(strings.Clone(string(u))) }

type UserAndPassword struct {
	Name     string
	Password string
}

func (up UserAndPassword) String() string { return up.Name + ":" + up.Password }

func (up UserAndPassword) clone() UserInfo {
	return UserAndPassword{
		Name:     strings.Clone(up.Name),
		Password: strings.Clone(up.Password),
	}
}

// Clone deep-copies u into storage independent of the buffer it was parsed
// from. It is the only way a result outlives its input; nothing is copied
// implicitly.
func (u URI) Clone() URI {
	out := URI{
		Scheme:    strings.Clone(u.Scheme),
		Authority: u.Authority.Clone(),
	}

	if u.Path != nil {
		out.Path = make([]string, len(u.Path))
		for idx, segment := range u.Path {
			out.Path[idx] = strings.Clone(segment)
		}
	}

	if u.Query != nil {
		out.Query = make(map[string]string, len(u.Query))
		for k, v := range u.Query {
			out.Query[strings.Clone(k)] = strings.Clone(v)
		}
	}

	if u.Fragment != nil {
		out.Fragment = pointer.To(strings.Clone(*u.Fragment))
	}

	return out
}

func (a Authority) Clone() Authority {
	out := Authority{Host: strings.Clone(a.Host)}
	if a.UserInfo != nil {
		out.UserInfo = a.UserInfo.clone()
	}
	if a.Port != nil {
		out.Port = pointer.To(*a.Port)
	}
	return out
}

// String renders the URI as
//
//	scheme "://" [userinfo "@"] host [":" port] *("/" segment) ["?" pairs] ["#" fragment]
//
// Query pairs are written in sorted key order: the mapping doesn't retain
// the original ordering or duplicate keys, so reconstruction is lossy with
// respect to both. No percent re-encoding is performed.
func (u URI) String() string {
	b := new(strings.Builder)
	b.WriteString(u.Scheme)
	b.WriteString("://")
	b.WriteString(u.Authority.String())

	for _, segment := range u.Path {
		b.WriteByte('/')
		b.WriteString(segment)
	}

	if u.Query != nil {
		b.WriteByte('?')
		keys := make([]string, 0, len(u.Query))
		for k := range u.Query {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for idx, k := range keys {
			if idx > 0 {
				b.WriteByte('&')
			}
			b.WriteString(k)
			b.WriteByte('=')
			b.WriteString(u.Query[k])
		}
	}

	if u.Fragment != nil {
		b.WriteByte('#')
		b.WriteString(*u.Fragment)
	}

	return b.String()
}

func (a Authority) String() string {
	b := new(strings.Builder)
	if a.UserInfo != nil {
		b.WriteString(a.UserInfo.String())
		b.WriteByte('@')
	}
	b.WriteString(a.Host)
	if a.Port != nil {
		b.WriteByte(':')
		b.WriteString(strconv.FormatUint(uint64(*a.Port), 10))
	}
	return b.String()
}
