// Package cipher contains the four classical text ciphers: Caesar,
// Vigenère, Rail Fence and Playfair.
package cipher

// DefaultShift is the Caesar shift used when the key string is blank or
// not a number.
const DefaultShift = 3

type Caesar struct {
	shift int
}

func NewCaesar(shift int) *Caesar {
	return &Caesar{shift: shift}
}

func (c *Caesar) Encrypt(plaintext string) string {
	return shiftLetters(plaintext, c.shift)
}

func (c *Caesar) Decrypt(ciphertext string) string {
	return shiftLetters(ciphertext, -c.shift)
}

// shiftLetters rotates every ASCII letter by n positions within its own
// case, leaving all other characters untouched. Any n is valid; the result
// is reduced into the alphabet by mod26.
func shiftLetters(text string, n int) string {
	out := []rune(text)
	for i, r := range out {
		switch {
		case r >= 'A' && r <= 'Z':
			out[i] = rune('A' + mod26(int(r-'A')+n))
		case r >= 'a' && r <= 'z':
			out[i] = rune('a' + mod26(int(r-'a')+n))
		}
	}
	return string(out)
}

// mod26 reduces n into [0,26), unlike the % operator for negative n.
func mod26(n int) int {
	n %= 26
	if n < 0 {
		n += 26
	}
	return n
}

func isLetter(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}
