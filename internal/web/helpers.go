package web

import (
	"strconv"
	"strings"
)

func itoa(value int) string {
	return strconv.Itoa(value)
}

// signedScore renders a total with an explicit plus sign for gains.
func signedScore(score int) string {
	if score > 0 {
		return "+" + itoa(score)
	}
	return itoa(score)
}

func scoreClass(score int) string {
	switch {
	case score > 0:
		return "score-up"
	case score < 0:
		return "score-down"
	default:
		return "score-even"
	}
}

func medalClass(rank int) string {
	switch rank {
	case 1:
		return "medal-gold"
	case 2:
		return "medal-silver"
	case 3:
		return "medal-bronze"
	default:
		return ""
	}
}

func joinNames(names []string) string {
	return strings.Join(names, " · ")
}
