package cipher

// DefaultRails is the rail count used when the key string is blank or
// not a number.
const DefaultRails = 3

type RailFence struct {
	rails int
}

func NewRailFence(rails int) *RailFence {
	return &RailFence{rails: rails}
}

// Encrypt writes the text along the rails in a zigzag, then reads the
// rails top to bottom. A rail count of 1 or less leaves the text as is.
func (rf *RailFence) Encrypt(plaintext string) string {
	if rf.rails <= 1 {
		return plaintext
	}

	tracks := make([][]rune, rf.rails)
	rail, dir := 0, 1
	for _, r := range plaintext {
		tracks[rail] = append(tracks[rail], r)
		if rail == 0 {
			dir = 1
		} else if rail == rf.rails-1 {
			dir = -1
		}
		rail += dir
	}

	out := make([]rune, 0, len(plaintext))
	for _, track := range tracks {
		out = append(out, track...)
	}
	return string(out)
}

// Decrypt rebuilds the zigzag grid in three passes: replay the traversal
// to mark which cell each position lands on, fill the marked cells row by
// row with the ciphertext, then replay the traversal again to read the
// plaintext back in its original order. The cell marking depends only on
// text length and rail count, never on character values.
func (rf *RailFence) Decrypt(ciphertext string) string {
	if rf.rails <= 1 {
		return ciphertext
	}

	runes := []rune(ciphertext)
	n := len(runes)

	marked := make([][]bool, rf.rails)
	grid := make([][]rune, rf.rails)
	for i := range marked {
		marked[i] = make([]bool, n)
		grid[i] = make([]rune, n)
	}

	rail, dir := 0, 1
	for col := 0; col < n; col++ {
		marked[rail][col] = true
		if rail == 0 {
			dir = 1
		} else if rail == rf.rails-1 {
			dir = -1
		}
		rail += dir
	}

	idx := 0
	for r := 0; r < rf.rails; r++ {
		for col := 0; col < n; col++ {
			if marked[r][col] {
				grid[r][col] = runes[idx]
				idx++
			}
		}
	}

	out := make([]rune, 0, n)
	rail, dir = 0, 1
	for col := 0; col < n; col++ {
		out = append(out, grid[rail][col])
		if rail == 0 {
			dir = 1
		} else if rail == rf.rails-1 {
			dir = -1
		}
		rail += dir
	}
	return string(out)
}
