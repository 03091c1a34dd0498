package woops

import (
	"strings"
)

// AuthAttributes is the part of a WWW-Authenticate challenge that follows the
// scheme. It is either an AuthToken or AuthParams.
type AuthAttributes interface {
	challenge() string
}

// AuthToken is a single opaque attribute, percent-encoded after the scheme.
type AuthToken string

func (t AuthToken) challenge() string {
	if t == "" {
		return ""
	}
	return " " + encodeURIComponent(string(t))
}

// AuthParam is one key="value" pair of a challenge.
type AuthParam struct {
	Key   string
	Value string
}

// AuthParams renders as key="value" pairs in the given order.
type AuthParams []AuthParam

func (p AuthParams) challenge() string {
	pairs := make([]string, 0, len(p))
	for _, param := range p {
		pairs = append(pairs, param.Key+`="`+encodeURIComponent(param.Value)+`"`)
	}
	return " " + strings.Join(pairs, ", ")
}

// Params builds AuthParams from alternating keys and values. A trailing key
// without a value gets an empty value.
func Params(keysAndValues ...string) AuthParams {
	params := make(AuthParams, 0, (len(keysAndValues)+1)/2)
	for i := 0; i < len(keysAndValues); i += 2 {
		param := AuthParam{Key: keysAndValues[i]}
		if i+1 < len(keysAndValues) {
			param.Value = keysAndValues[i+1]
		}
		params = append(params, param)
	}
	return params
}

// Allow is the value of an Allow header. It is either an AllowValue or an
// AllowList.
type Allow interface {
	allowHeader() string
}

// AllowValue is used as the Allow header verbatim.
type AllowValue string

func (v AllowValue) allowHeader() string {
	return string(v)
}

// AllowList is joined with ", " to form the Allow header.
type AllowList []string

func (l AllowList) allowHeader() string {
	return strings.Join(l, ", ")
}

// wwwAuthenticate builds the WWW-Authenticate value; empty means no header
func wwwAuthenticate(scheme string, attrs AuthAttributes) string {
	if scheme == "" {
		return ""
	}
	if attrs == nil {
		return scheme
	}
	return scheme + attrs.challenge()
}

const upperhex = "0123456789ABCDEF"

// encodeURIComponent percent-encodes s the way ECMAScript's
// encodeURIComponent does. net/url escapes a different character set.
func encodeURIComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
