package node

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// ErrFingerprintUnset is returned for an empty or placeholder fingerprint.
var ErrFingerprintUnset = errors.New("TLS fingerprint not set")

// FingerprintSize is the length of a SHA1 digest.
const FingerprintSize = 20

// Fingerprint is the SHA1 fingerprint of the broker's server certificate
// (not the CA certificate).
type Fingerprint [FingerprintSize]byte

// ParseFingerprint accepts 20 hex bytes separated by spaces or colons, e.g.
// "AB CD ..." or "AB:CD:...". The sample placeholder made of "XX" bytes is
// reported as ErrFingerprintUnset.
func ParseFingerprint(s string) (Fingerprint, error) {
	var fp Fingerprint

	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ':'
	})
	if len(fields) == 0 || isPlaceholder(fields) {
		return fp, ErrFingerprintUnset
	}
	if len(fields) != FingerprintSize {
		return fp, fmt.Errorf("TLS fingerprint has %d bytes, want %d", len(fields), FingerprintSize)
	}

	for i, f := range fields {
		if len(f) != 2 {
			return fp, fmt.Errorf("TLS fingerprint byte %d %q is not two hex digits", i, f)
		}
		if _, err := hex.Decode(fp[i:i+1], []byte(f)); err != nil {
			return fp, fmt.Errorf("TLS fingerprint byte %d %q: %w", i, f, err)
		}
	}
	return fp, nil
}

// String renders the fingerprint as upper-case space separated hex bytes.
func (f Fingerprint) String() string {
	parts := make([]string, len(f))
	for i, b := range f {
		parts[i] = fmt.Sprintf("%02X", b)
	}
	return strings.Join(parts, " ")
}

func isPlaceholder(fields []string) bool {
	for _, f := range fields {
		if !strings.EqualFold(f, "XX") {
			return false
		}
	}
	return true
}
