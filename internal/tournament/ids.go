package tournament

import (
	"crypto/rand"
	"io"
	"strings"
	"unicode/utf8"
)

const (
	idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	idLength   = 7
)

// GenerateID returns a short random token. Uniqueness is probabilistic only.
func GenerateID() string {
	id, err := generateID(rand.Reader)
	if err != nil {
		return "0000000"
	}
	return id
}

// generateID draws bytes from r and keeps only those below the largest multiple
// of the alphabet size, so every character is equally likely.
func generateID(r io.Reader) (string, error) {
	const limit = 256 - 256%len(idAlphabet)
	out := make([]byte, 0, idLength)
	buf := make([]byte, idLength*2)
	for len(out) < idLength {
		if _, err := io.ReadFull(r, buf); err != nil {
			return "", err
		}
		for _, b := range buf {
			if int(b) >= limit {
				continue
			}
			out = append(out, idAlphabet[int(b)%len(idAlphabet)])
			if len(out) == idLength {
				break
			}
		}
	}
	return string(out), nil
}

// DeriveInitial returns the avatar text for a player name: the last character of
// names containing CJK ideographs, otherwise the first two characters upper-cased.
func DeriveInitial(name string) string {
	for _, r := range name {
		if isIdeograph(r) {
			last, _ := utf8.DecodeLastRuneInString(name)
			return string(last)
		}
	}
	runes := []rune(name)
	if len(runes) > 2 {
		runes = runes[:2]
	}
	return strings.ToUpper(string(runes))
}

func isIdeograph(r rune) bool {
	return r >= 0x4e00 && r <= 0x9fa5
}

// NewPlayer builds a player with a fresh id and zero total.
func NewPlayer(name string) Player {
	return Player{
		ID:      GenerateID(),
		Name:    name,
		Initial: DeriveInitial(name),
	}
}
