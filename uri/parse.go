package uri

import (
	"strconv"
	"strings"
	"uriview/lib/types/pointer"
	"uriview/util/rule"

	"github.com/pkg/errors"
)

// Parse decomposes input into a URI. Stages run strictly left to right
// (scheme, credentials, host/port, path, query, fragment), each consuming
// a prefix of what the previous stage left over. The parse succeeds only
// if the stages together consume the whole input; there is no partial
// result on failure.
//
// The returned URI is a borrowed view of input. See URI and Clone.
func Parse(input string) (URI, error) {
	var uri URI

	scheme, rest, err := cutScheme(input)
	if err != nil {
		return URI{}, errors.Wrap(err, "parsing scheme")
	}
	uri.Scheme = scheme

	uri.Authority, rest, err = cutAuthority(rest)
	if err != nil {
		return URI{}, errors.Wrap(err, "parsing authority")
	}

	uri.Path, rest = cutPath(rest)
	uri.Query, rest = cutQuery(rest)
	uri.Fragment, rest = cutFragment(rest)

	if rest != "" {
		return URI{}, errors.Errorf("unconsumed input: %q", rest)
	}

	return uri, nil
}

// ParseAuthority parses a standalone authority such as
// "user:pass@example.com:5432". The whole input must be consumed.
func ParseAuthority(input string) (Authority, error) {
	authority, rest, err := cutAuthority(input)
	if err != nil {
		return Authority{}, err
	}
	if rest != "" {
		return Authority{}, errors.Errorf("unconsumed input: %q", rest)
	}
	return authority, nil
}

// cutScheme scans to the first ':' and requires the literal "://" there.
// The scheme's character set is deliberately not validated; anything
// before the first ':' passes, including the empty string.
func cutScheme(input string) (scheme, rest string, err error) {
	idx := strings.IndexByte(input, ':')
	if idx < 0 || !strings.HasPrefix(input[idx:], "://") {
		return "", "", errors.New(`missing "://" delimiter`)
	}
	return input[:idx], input[idx+3:], nil
}

func cutAuthority(input string) (Authority, string, error) {
	userInfo, rest := cutUserInfo(input)

	host, port, rest, err := cutHostPort(rest)
	if err != nil {
		return Authority{}, "", err
	}

	return Authority{Host: host, UserInfo: userInfo, Port: port}, rest, nil
}

// cutUserInfo attempts the credential sub-grammars, "user:password@" first
// and "user@" second, at the start of the authority. Absence is not an
// error: when neither form matches, the original input is handed back
// untouched and the host parser restarts from the same position.
func cutUserInfo(input string) (UserInfo, string) {
	user, rest := span(input, isUserInfoChar)
	if user == "" {
		return nil, input
	}

	if afterColon, found := strings.CutPrefix(rest, ":"); found {
		if password, after := span(afterColon, isUserInfoChar); password != "" {
			if afterAt, found := strings.CutPrefix(after, "@"); found {
				return UserAndPassword{Name: user, Password: password}, afterAt
			}
		}
	}

	if afterAt, found := strings.CutPrefix(rest, "@"); found {
		return User(user), afterAt
	}

	return nil, input
}

// cutHostPort splits the host and an optional port off the authority
// remainder. A "["-prefixed host is captured up to the matching "]",
// brackets included, so the colons inside an IPv6 literal don't terminate
// the host early; everything else stops at the first of '/', '?', ':', '#'.
func cutHostPort(input string) (host string, port *uint16, rest string, err error) {
	if strings.HasPrefix(input, "[") {
		end := strings.IndexByte(input, ']')
		if end < 0 {
			return "", nil, "", errors.New("missing ']' in IP literal")
		}
		host, rest = input[:end+1], input[end+1:]
	} else {
		host, rest = spanUntil(input, func(c byte) bool {
			return c == '/' || c == '?' || c == ':' || c == '#'
		})
		if host == "" {
			return "", nil, "", errors.New("host is empty")
		}
	}

	port, rest, err = cutPort(rest)
	if err != nil {
		return "", nil, "", err
	}

	return host, port, rest, nil
}

// cutPort parses a ':'-introduced digit run. A missing colon or a colon
// with no digits after it means no port (the input is handed back
// untouched); a digit run that doesn't fit in 16 bits is fatal rather than
// truncated.
func cutPort(input string) (*uint16, string, error) {
	afterColon, found := strings.CutPrefix(input, ":")
	if !found {
		return nil, input, nil
	}

	digits, rest := span(afterColon, func(c byte) bool { return rule.IsDigit(rune(c)) })
	if digits == "" {
		return nil, input, nil
	}

	n, err := strconv.ParseUint(digits, 10, 16)
	if err != nil {
		return nil, "", errors.Wrapf(err, "port %q doesn't fit in 16 bits", digits)
	}

	return pointer.To(uint16(n)), rest, nil
}

// cutPath matches zero or more '/'-introduced segments. Adjacent or
// trailing slashes produce empty segments; a URI with no path at all
// produces an empty, non-nil slice.
func cutPath(input string) ([]string, string) {
	segments := []string{}
	rest := input
	for {
		after, found := strings.CutPrefix(rest, "/")
		if !found {
			return segments, rest
		}

		var segment string
		segment, rest = span(after, isPChar)
		segments = append(segments, segment)
	}
}

// cutQuery matches a '?'-introduced run of "key=value[&]" pairs. A later
// occurrence of a key overwrites the earlier value. The pair loop stops at
// the first text that doesn't fit the pattern, leaving it for the fragment
// stage or the total-consumption check; a '?' followed by no parseable
// pairs still yields a (non-nil) empty map.
func cutQuery(input string) (map[string]string, string) {
	rest, found := strings.CutPrefix(input, "?")
	if !found {
		return nil, input
	}

	query := make(map[string]string)
	for {
		key, afterKey := span(rest, isQueryKeyChar)
		if key == "" {
			break
		}
		afterEq, found := strings.CutPrefix(afterKey, "=")
		if !found {
			break
		}

		value, after := span(afterEq, isQueryValueChar)
		after, _ = strings.CutPrefix(after, "&")

		query[key] = value
		rest = after
	}

	return query, rest
}

// cutFragment matches '#' followed by one or more fragment characters.
// A bare trailing '#' doesn't match and stays in the remainder.
func cutFragment(input string) (*string, string) {
	afterHash, found := strings.CutPrefix(input, "#")
	if !found {
		return nil, input
	}

	fragment, rest := span(afterHash, isQueryChar)
	if fragment == "" {
		return nil, input
	}

	return pointer.To(fragment), rest
}

// span cuts the longest prefix of s whose bytes all satisfy pred.
func span(s string, pred func(byte) bool) (prefix, rest string) {
	idx := 0
	for idx < len(s) && pred(s[idx]) {
		idx++
	}
	return s[:idx], s[idx:]
}

// spanUntil cuts the longest prefix of s containing no byte for which stop
// holds.
func spanUntil(s string, stop func(byte) bool) (prefix, rest string) {
	for idx := 0; idx < len(s); idx++ {
		if stop(s[idx]) {
			return s[:idx], s[idx:]
		}
	}
	return s, ""
}
