package cipher

import (
	"fmt"
	"strconv"
	"strings"
)

// Algorithm identifies one of the supported ciphers.
type Algorithm string

const (
	AlgorithmCaesar    Algorithm = "caesar"
	AlgorithmVigenere  Algorithm = "vigenere"
	AlgorithmRailFence Algorithm = "railfence"
	AlgorithmPlayfair  Algorithm = "playfair"
)

// Algorithms returns the supported cipher identifiers.
func Algorithms() []Algorithm {
	return []Algorithm{AlgorithmCaesar, AlgorithmVigenere, AlgorithmRailFence, AlgorithmPlayfair}
}

// ParseIntKey parses a numeric key string, falling back to def when the
// string is blank or not an integer. Numeric-keyed ciphers never reject a
// key; out-of-range values are normalized by the cipher itself.
func ParseIntKey(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return n
}

// Transform routes text and key to the named cipher. The key string is
// parsed to an integer for Caesar and Rail Fence (default 3 on blank or
// non-numeric input) and used as a keyword for Vigenère and Playfair.
// The only error is an unknown algorithm identifier.
func Transform(algorithm Algorithm, text, key string, decrypt bool) (string, error) {
	switch algorithm {
	case AlgorithmCaesar:
		c := NewCaesar(ParseIntKey(key, DefaultShift))
		if decrypt {
			return c.Decrypt(text), nil
		}
		return c.Encrypt(text), nil
	case AlgorithmVigenere:
		v := NewVigenere(key)
		if decrypt {
			return v.Decrypt(text), nil
		}
		return v.Encrypt(text), nil
	case AlgorithmRailFence:
		rf := NewRailFence(ParseIntKey(key, DefaultRails))
		if decrypt {
			return rf.Decrypt(text), nil
		}
		return rf.Encrypt(text), nil
	case AlgorithmPlayfair:
		p := NewPlayfair(key)
		if decrypt {
			return p.Decrypt(text), nil
		}
		return p.Encrypt(text), nil
	default:
		return "", fmt.Errorf("unsupported cipher algorithm: %q", algorithm)
	}
}
