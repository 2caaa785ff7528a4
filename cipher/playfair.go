package cipher

import "strings"

// playfairAlphabet is the 25-letter alphabet of the key square, with J
// folded into I.
const playfairAlphabet = "ABCDEFGHIKLMNOPQRSTUVWXYZ"

const (
	squareSize = 5
	filler     = 'X'
)

type Playfair struct {
	square []rune
	pos    map[rune]int
}

// NewPlayfair builds the 5x5 key square: the keyword's unique letters in
// order, then the rest of the alphabet. A keyword with no letters yields
// an identity cipher.
func NewPlayfair(keyword string) *Playfair {
	p := &Playfair{}
	cleaned := cleanLetters(keyword)
	if cleaned == "" {
		return p
	}

	p.square = make([]rune, 0, len(playfairAlphabet))
	p.pos = make(map[rune]int, len(playfairAlphabet))
	for _, r := range cleaned + playfairAlphabet {
		if _, ok := p.pos[r]; !ok {
			p.pos[r] = len(p.square)
			p.square = append(p.square, r)
		}
	}
	return p
}

// KeySquare returns the 25 letters of the square in row-major order, or
// "" for an identity cipher.
func (p *Playfair) KeySquare() string {
	return string(p.square)
}

func (p *Playfair) Encrypt(plaintext string) string {
	return p.transform(plaintext, false)
}

func (p *Playfair) Decrypt(ciphertext string) string {
	return p.transform(ciphertext, true)
}

// transform cleans the text, splits it into digraphs and substitutes each
// pair by the square's positional rules: same row shifts columns, same
// column shifts rows (right/down on encrypt, left/up on decrypt, wrapping
// at the edge), and the rectangle case swaps the two columns. Filler
// letters inserted during segmentation are not removed on decryption.
func (p *Playfair) transform(text string, decrypt bool) string {
	if len(p.square) == 0 {
		return text
	}

	// +4 walks one step backwards mod 5.
	step := 1
	if decrypt {
		step = squareSize - 1
	}

	var b strings.Builder
	for _, d := range digraphs(cleanLetters(text)) {
		i1, i2 := p.pos[d[0]], p.pos[d[1]]
		r1, c1 := i1/squareSize, i1%squareSize
		r2, c2 := i2/squareSize, i2%squareSize

		switch {
		case r1 == r2:
			c1 = (c1 + step) % squareSize
			c2 = (c2 + step) % squareSize
		case c1 == c2:
			r1 = (r1 + step) % squareSize
			r2 = (r2 + step) % squareSize
		default:
			c1, c2 = c2, c1
		}

		b.WriteRune(p.square[r1*squareSize+c1])
		b.WriteRune(p.square[r2*squareSize+c2])
	}
	return b.String()
}

// cleanLetters upper-cases the text, folds J to I and drops everything
// that is not a letter.
func cleanLetters(s string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(s) {
		if r < 'A' || r > 'Z' {
			continue
		}
		if r == 'J' {
			r = 'I'
		}
		b.WriteRune(r)
	}
	return b.String()
}

// digraphs pairs the cleaned letters left to right. When a pair would
// repeat a letter, the filler takes the second slot and the repeated
// letter starts the next pair; a lone trailing letter is padded with the
// filler.
func digraphs(cleaned string) [][2]rune {
	letters := []rune(cleaned)
	pairs := make([][2]rune, 0, (len(letters)+1)/2)
	for i := 0; i < len(letters); {
		a := letters[i]
		if i+1 < len(letters) && letters[i+1] != a {
			pairs = append(pairs, [2]rune{a, letters[i+1]})
			i += 2
		} else {
			pairs = append(pairs, [2]rune{a, filler})
			i++
		}
	}
	return pairs
}
