package uri

import "uriview/util/rule"

// Reference: https://datatracker.ietf.org/doc/html/rfc3986#section-2.3
func isUnreserved(c byte) bool {
	if rule.IsAlpha(rune(c)) || rule.IsDigit(rune(c)) {
		return true
	}
	switch c {
	case '-', '.', '_', '~':
		return true
	}
	return false
}

// Reference: https://datatracker.ietf.org/doc/html/rfc3986#section-2.2
func isSubDelim(c byte) bool {
	switch c {
	case '!', '$', '&', '\'', '(', ')', '*', '+', ',', ';', '=':
		return true
	}
	return false
}

// Userinfo chars exclude ':' and '@', which delimit the credential forms.
func isUserInfoChar(c byte) bool {
	return isUnreserved(c) || isSubDelim(c) || c == '%'
}

// Reference: https://datatracker.ietf.org/doc/html/rfc3986#section-3.3
func isPChar(c byte) bool {
	return isUnreserved(c) || isSubDelim(c) || c == '%' || c == ':' || c == '@'
}

// Queries and fragments share one class.
// Reference: https://datatracker.ietf.org/doc/html/rfc3986#section-3.4
func isQueryChar(c byte) bool {
	return isPChar(c) || c == '/' || c == '?'
}

// Query keys exclude '=' and '&', the pair delimiters.
func isQueryKeyChar(c byte) bool {
	if isUnreserved(c) || c == '%' {
		return true
	}
	switch c {
	case '!', '$', '\'', '(', ')', '*', '+', ',', ';', ':', '@', '/', '?':
		return true
	}
	return false
}

func isQueryValueChar(c byte) bool {
	return isQueryKeyChar(c) || c == '='
}
