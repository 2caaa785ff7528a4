package cipher

import "strings"

type Vigenere struct {
	key []rune
}

func NewVigenere(key string) *Vigenere {
	return &Vigenere{key: []rune(strings.ToUpper(key))}
}

func (v *Vigenere) Encrypt(plaintext string) string {
	return v.transform(plaintext, false)
}

func (v *Vigenere) Decrypt(ciphertext string) string {
	return v.transform(ciphertext, true)
}

// transform applies the key letters as running Caesar shifts. The key
// cursor advances only when an input letter is consumed, so non-letters
// pass through without disturbing the alignment and decryption replays
// the exact shift sequence of encryption.
func (v *Vigenere) transform(text string, decrypt bool) string {
	if len(v.key) == 0 {
		return text
	}

	out := []rune(text)
	cursor := 0
	for i, r := range out {
		if !isLetter(r) {
			continue
		}
		shift := int(v.key[cursor%len(v.key)] - 'A')
		if decrypt {
			shift = -shift
		}
		if r >= 'a' && r <= 'z' {
			out[i] = rune('a' + mod26(int(r-'a')+shift))
		} else {
			out[i] = rune('A' + mod26(int(r-'A')+shift))
		}
		cursor++
	}
	return string(out)
}
