package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"golang.org/x/text/unicode/norm"
)

// Size is the byte length of a Checksum.
const Size = sha256.Size

// Checksum is a fixed-size digest accumulator value.
// The zero value is the identity for Merge.
type Checksum [Size]byte

// Identity returns the neutral element: Merge(Identity(), x) == x.
func Identity() Checksum {
	return Checksum{}
}

// Digest computes the SHA-256 digest of text.
// Text is NFC-normalized first so canonically equivalent names produce
// the same digest regardless of how the input files were encoded.
func Digest(text string) Checksum {
	return Checksum(sha256.Sum256([]byte(norm.NFC.String(text))))
}

// Merge combines two checksums. It is pure, commutative and associative.
func Merge(a, b Checksum) Checksum {
	var out Checksum
	for i := range out {
		out[i] = a[i] ^ b[i]
	}
	return out
}

// Add folds the digest of text into c and returns the result.
// Shorthand for Merge(c, Digest(text)).
func (c Checksum) Add(text string) Checksum {
	return Merge(c, Digest(text))
}

// IsIdentity reports whether c is the neutral element.
func (c Checksum) IsIdentity() bool {
	return c == Checksum{}
}

// String returns the lowercase hex encoding (64 characters).
func (c Checksum) String() string {
	return hex.EncodeToString(c[:])
}

// Parse decodes a hex string produced by String.
func Parse(s string) (Checksum, error) {
	var c Checksum
	raw, err := hex.DecodeString(s)
	if err != nil {
		return c, fmt.Errorf("parse checksum: %w", err)
	}
	if len(raw) != Size {
		return c, fmt.Errorf("parse checksum: want %d bytes, got %d", Size, len(raw))
	}
	copy(c[:], raw)
	return c, nil
}

// MarshalText encodes c as hex, so JSON and YAML render it as a string.
func (c Checksum) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes a hex checksum.
func (c *Checksum) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
