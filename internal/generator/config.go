// Package generator produces passwords from an entropy stream, in either a
// fully random mode or a pronounceable consonant/vowel mode, and enforces
// required character classes on the result.
package generator

import (
	"errors"

	"github.com/pwgen/pwgen-go/internal/charset"
)

var (
	ErrInvalidLength = errors.New("password length must be at least 1")
	ErrNegativeCount = errors.New("password count must not be negative")
)

// Mode selects the generation algorithm.
type Mode int

const (
	// ModePattern alternates consonant and vowel sub-alphabets for
	// pronounceability.
	ModePattern Mode = iota
	// ModeUniform samples every position independently from the full
	// allowed alphabet.
	ModeUniform
)

// Policy is the tri-state stance on a character class. Forbidden always
// wins over Required; the CLI and API resolve their flag pairs into a
// single Policy so the precedence cannot be misstated here.
type Policy int

const (
	// PolicyDefault neither requires nor forbids the class.
	PolicyDefault Policy = iota
	// PolicyRequired includes the class and guarantees at least one member.
	PolicyRequired
	// PolicyForbidden excludes the class entirely.
	PolicyForbidden
)

// Config describes one generation run. It is read-only once handed to
// Generate.
type Config struct {
	Length int
	Count  int

	Upper  Policy
	Digits Policy
	// Symbols has no forbid form: symbols are simply absent unless required.
	Symbols bool

	ExcludeAmbiguous bool
	ExcludeVowels    bool
	Exclude          []byte

	Mode Mode
}

// Validate checks the run parameters that have no sensible interpretation.
func (c Config) Validate() error {
	if c.Length < 1 {
		return ErrInvalidLength
	}
	if c.Count < 0 {
		return ErrNegativeCount
	}
	return nil
}

// rules derives the alphabet-construction rules for uniform sampling.
func (c Config) rules() charset.Rules {
	return charset.Rules{
		Upper:            c.Upper == PolicyRequired,
		Digits:           c.Digits == PolicyRequired,
		Symbols:          c.Symbols,
		ExcludeAmbiguous: c.ExcludeAmbiguous,
		ExcludeVowels:    c.ExcludeVowels,
		Exclude:          c.Exclude,
	}
}

// excluded reports whether c's exclusion rules reject the candidate byte.
// Vowel exclusion is handled by alphabet choice, not here.
func (c Config) excluded(b byte) bool {
	if c.ExcludeAmbiguous && charset.IsAmbiguous(b) {
		return true
	}
	for _, e := range c.Exclude {
		if b == e {
			return true
		}
	}
	return false
}
