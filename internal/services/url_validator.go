package services

import (
	"errors"
	"net"
	"net/url"
	"path"
	"strings"
	"unicode/utf8"

	paperstash_errors "paperstash/pkg/errors"

	"golang.org/x/net/idna"
)

// DefaultFileName is used when nothing of the submitted file name survives
// sanitization.
const DefaultFileName = "content.pdf"

type URLOptions struct {
	StripWWW bool
}

type NormalizedUpload struct {
	URL      string
	Title    string
	FileName string
}

var defaultPorts = map[string]string{
	"http":  "80",
	"https": "443",
}

// ValidateUploadURL canonicalizes a submitted document location and derives
// the default title and a filesystem-safe file name from its last path
// segment. Internationalized hosts are converted to punycode. It fails with
// ErrBadInput when raw is not an absolute URL, the host is not a valid
// domain name or a path segment cannot be decoded.
func ValidateUploadURL(raw string, opts URLOptions) (NormalizedUpload, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return NormalizedUpload{}, paperstash_errors.ErrBadInput
	}

	u.Scheme = strings.ToLower(u.Scheme)
	u.Host, err = canonicalHost(u, opts)
	if err != nil {
		return NormalizedUpload{}, paperstash_errors.ErrBadInput
	}
	u.Fragment = ""
	u.RawFragment = ""

	segment := lastSegment(u.EscapedPath())
	decoded, err := decodeSegment(segment)
	if err != nil {
		return NormalizedUpload{}, paperstash_errors.ErrBadInput
	}

	title := decoded
	if title != ".pdf" {
		title = strings.TrimSuffix(title, ".pdf")
	}

	fileName := SanitizeFileName(decoded)
	if fileName == "" {
		fileName = DefaultFileName
	}

	return NormalizedUpload{
		URL:      u.String(),
		Title:    title,
		FileName: fileName,
	}, nil
}

// SanitizeFileName keeps only [A-Za-z0-9-_.]; everything else is dropped.
func SanitizeFileName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-', r == '_', r == '.':
			b.WriteRune(r)
		}
	}
	return b.String()
}

func canonicalHost(u *url.URL, opts URLOptions) (string, error) {
	host := strings.ToLower(u.Hostname())
	if !isASCII(host) {
		ascii, err := idna.Lookup.ToASCII(host)
		if err != nil {
			return "", err
		}
		host = ascii
	}
	if opts.StripWWW {
		host = strings.TrimPrefix(host, "www.")
	}
	port := u.Port()
	if port == defaultPorts[u.Scheme] {
		port = ""
	}
	if port != "" {
		return net.JoinHostPort(host, port), nil
	}
	if strings.Contains(host, ":") {
		return "[" + host + "]", nil
	}
	return host, nil
}

// reservedEscapes stay percent-encoded when a path segment is decoded.
const reservedEscapes = ";/?:@&=+$,#"

// decodeSegment percent-decodes s except for escapes of reserved
// characters, which are kept verbatim. The result must be valid UTF-8.
func decodeSegment(s string) (string, error) {
	if !strings.Contains(s, "%") {
		return s, nil
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '%' {
			b.WriteByte(s[i])
			continue
		}
		if i+2 >= len(s) || !isHex(s[i+1]) || !isHex(s[i+2]) {
			return "", url.EscapeError(s[i:min(i+3, len(s))])
		}
		c := unhex(s[i+1])<<4 | unhex(s[i+2])
		if strings.IndexByte(reservedEscapes, c) >= 0 {
			b.WriteString(s[i : i+3])
		} else {
			b.WriteByte(c)
		}
		i += 2
	}
	decoded := b.String()
	if !utf8.ValidString(decoded) {
		return "", errors.New("path segment is not valid utf-8")
	}
	return decoded, nil
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

func lastSegment(p string) string {
	base := path.Base(p)
	if base == "." || base == "/" {
		return ""
	}
	return base
}
