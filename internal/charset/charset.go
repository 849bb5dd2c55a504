// Package charset defines the fixed character tables used for password
// generation and builds sampling alphabets from them.
package charset

import "strings"

const (
	Lowercase = "abcdefghijklmnopqrstuvwxyz"
	Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Digits    = "0123456789"
	Symbols   = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

	// Vowels includes 'y'/'Y', matching the consonant tables below.
	Vowels = "aeiouyAEIOUY"

	// Ambiguous lists characters prone to visual confusion (0/O, 1/l/I, ...).
	Ambiguous = "B8G6I1l0OQDS5Z2"

	Consonants      = "bcdfghjklmnpqrstvwxzBCDFGHJKLMNPQRSTVWXZ"
	ConsonantsLower = "bcdfghjklmnpqrstvwxz"
	VowelsLower     = "aeiouy"
)

// Rules selects which character classes enter an alphabet and which
// exclusions are applied to it afterwards.
type Rules struct {
	Upper            bool
	Digits           bool
	Symbols          bool
	ExcludeAmbiguous bool
	ExcludeVowels    bool
	Exclude          []byte
}

// Build assembles the sampling alphabet for the given rules. Lowercase
// letters are always included; uppercase, digits and symbols join per the
// rules, then the exclusion filters strip ambiguous characters, vowels and
// user-excluded bytes. The result can be empty if the exclusions eliminate
// every candidate.
func Build(r Rules) []byte {
	alphabet := make([]byte, 0, len(Lowercase)+len(Uppercase)+len(Digits)+len(Symbols))
	alphabet = append(alphabet, Lowercase...)
	if r.Upper {
		alphabet = append(alphabet, Uppercase...)
	}
	if r.Digits {
		alphabet = append(alphabet, Digits...)
	}
	if r.Symbols {
		alphabet = append(alphabet, Symbols...)
	}
	return filter(alphabet, func(c byte) bool {
		return !r.Excludes(c)
	})
}

// Excludes reports whether c is removed by any active exclusion rule.
func (r Rules) Excludes(c byte) bool {
	if r.ExcludeAmbiguous && IsAmbiguous(c) {
		return true
	}
	if r.ExcludeVowels && IsVowel(c) {
		return true
	}
	for _, e := range r.Exclude {
		if c == e {
			return true
		}
	}
	return false
}

// IsAmbiguous reports whether c belongs to the ambiguous set.
func IsAmbiguous(c byte) bool {
	return strings.IndexByte(Ambiguous, c) >= 0
}

// IsVowel reports whether c is a vowel (either case, including y).
func IsVowel(c byte) bool {
	return strings.IndexByte(Vowels, c) >= 0
}

// IsSymbol reports whether c is one of the ASCII punctuation characters.
func IsSymbol(c byte) bool {
	return strings.IndexByte(Symbols, c) >= 0
}

func filter(set []byte, keep func(byte) bool) []byte {
	out := set[:0]
	for _, c := range set {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}
