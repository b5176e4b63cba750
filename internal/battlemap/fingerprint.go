package battlemap

import (
	"bytes"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns the BLAKE2b-256 digest of the encoded template.
// Equal templates have equal fingerprints.
func (t *Template) Fingerprint() [blake2b.Size256]byte {
	var buf bytes.Buffer
	_ = Encode(&buf, t) // bytes.Buffer writes never fail
	return blake2b.Sum256(buf.Bytes())
}
