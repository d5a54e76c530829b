package valuegen

import (
	"encoding/base64"

	"github.com/jacoelho/xsdgen/internal/constraint"
	"github.com/jacoelho/xsdgen/pkg/doctree"
)

// defaultEncodedLength is the encoded size used when no length constraint
// applies. Base64 output lengths are always multiples of 4.
const defaultEncodedLength = 8

// BinaryGenerator emits base64 text for synthetic bytes, sizing the encoded
// output to the nearest multiple of 4 that satisfies the length bounds.
type BinaryGenerator struct{}

// Generate produces one binary value.
func (g *BinaryGenerator) Generate(elementName string, cs *constraint.Set) doctree.Value {
	encodedLen := encodedLength(cs)
	raw := make([]byte, encodedLen/4*3)
	for i := range raw {
		raw[i] = byte(0xA5 ^ i)
	}
	return doctree.Value{Kind: doctree.Binary, Lexical: base64.StdEncoding.EncodeToString(raw)}
}

func encodedLength(cs *constraint.Set) int {
	length := defaultEncodedLength
	if cs != nil {
		if cs.ExactLength != nil {
			return roundUpToMultipleOfFour(*cs.ExactLength)
		}
		if cs.MinLength != nil {
			length = max(length, *cs.MinLength)
		}
	}
	length = roundUpToMultipleOfFour(length)
	// a max bound must not be exceeded: floor to the largest multiple of 4
	// that satisfies it
	if cs != nil && cs.MaxLength != nil && length > *cs.MaxLength {
		length = max(*cs.MaxLength/4*4, 4)
	}
	return length
}

func roundUpToMultipleOfFour(n int) int {
	if n <= 0 {
		return 4
	}
	return (n + 3) / 4 * 4
}
