// features.go - Sonstige Wort-Features (etc_dim)
package input

import (
	"unicode"
	"unicode/utf8"

	"github.com/etagger/etagger/config"
)

// Reihenfolge der Features im Vektor
const (
	FeatAllUpper = iota
	FeatInitUpper
	FeatAllLower
	FeatMixedCase
	FeatHasDigit
	FeatAllDigit
	FeatHasPunct
	FeatAllPunct
	FeatSingleRune
)

// EtcFeatures berechnet die binaeren Form-Features eines Wortes
func EtcFeatures(word string) []float64 {
	f := make([]float64, config.DefaultEtcDim)
	if word == "" {
		return f
	}

	var upper, lower, digit, punct, letters int
	total := utf8.RuneCountInString(word)
	for _, r := range word {
		switch {
		case unicode.IsUpper(r):
			upper++
			letters++
		case unicode.IsLower(r):
			lower++
			letters++
		case unicode.IsLetter(r):
			letters++
		case unicode.IsDigit(r):
			digit++
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			punct++
		}
	}

	first, _ := utf8.DecodeRuneInString(word)
	set := func(i int, ok bool) {
		if ok {
			f[i] = 1
		}
	}

	set(FeatAllUpper, letters > 0 && upper == letters)
	set(FeatInitUpper, unicode.IsUpper(first))
	set(FeatAllLower, letters > 0 && lower == letters)
	set(FeatMixedCase, upper > 0 && lower > 0)
	set(FeatHasDigit, digit > 0)
	set(FeatAllDigit, digit == total)
	set(FeatHasPunct, punct > 0)
	set(FeatAllPunct, punct == total)
	set(FeatSingleRune, total == 1)
	return f
}
