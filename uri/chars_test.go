package uri

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCharClasses(t *testing.T) {
	testcases := []struct {
		desc    string
		class   func(byte) bool
		allowed string
		denied  string
	}{
		{
			desc:    "unreserved",
			class:   isUnreserved,
			allowed: "azAZ09-._~",
			denied:  "!$&:/@%?#",
		},
		{
			desc:    "sub-delim",
			class:   isSubDelim,
			allowed: "!$&'()*+,;=",
			denied:  "a0-.:/@%?#",
		},
		{
			desc:    "userinfo excludes its delimiters",
			class:   isUserInfoChar,
			allowed: "a0-.!$&%",
			denied:  ":@/?#",
		},
		{
			desc:    "pchar allows colon and at",
			class:   isPChar,
			allowed: "a0-.!$&%:@",
			denied:  "/?#",
		},
		{
			desc:    "query and fragment allow slash and question mark",
			class:   isQueryChar,
			allowed: "a0:@/?%=",
			denied:  "#",
		},
		{
			desc:    "query key excludes the pair delimiters",
			class:   isQueryKeyChar,
			allowed: "a0%!$:@/?",
			denied:  "=&#",
		},
		{
			desc:    "query value allows equals but not ampersand",
			class:   isQueryValueChar,
			allowed: "a0%=:@/?",
			denied:  "&#",
		},
	}

	for _, tc := range testcases {
		t.Run(tc.desc, func(t *testing.T) {
			for idx := 0; idx < len(tc.allowed); idx++ {
				assert.True(t, tc.class(tc.allowed[idx]), string(tc.allowed[idx]))
			}
			for idx := 0; idx < len(tc.denied); idx++ {
				assert.False(t, tc.class(tc.denied[idx]), string(tc.denied[idx]))
			}
		})
	}
}
