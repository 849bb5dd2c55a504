package generator

import (
	"github.com/pwgen/pwgen-go/internal/charset"
	"github.com/pwgen/pwgen-go/internal/entropy"
)

// maxRejects bounds the rejection loop per position. Once the ceiling is
// hit the last-drawn candidate is accepted even if an exclusion rule
// rejects it, so generation terminates under any exclusion set.
const maxRejects = 100

// Pattern produces a pronounceable password: even positions draw from the
// consonant table, odd positions from the vowel table. Candidates hit by
// the exclusion rules are rejected and redrawn, up to maxRejects per
// position. Uppercase-forbidden runs use the lowercase-only tables. When
// vowels are excluded a consonant/vowel pattern is impossible, and the
// run falls back to uniform sampling over the class-filtered alphabet.
func Pattern(length int, cfg Config, src entropy.Source) ([]byte, error) {
	if cfg.ExcludeVowels {
		return Uniform(length, charset.Build(cfg.rules()), src)
	}

	consonants, vowels := charset.Consonants, charset.Vowels
	if cfg.Upper == PolicyForbidden {
		consonants, vowels = charset.ConsonantsLower, charset.VowelsLower
	}

	pw := make([]byte, 0, length)
	for i := 0; i < length; i++ {
		set := consonants
		if i%2 == 1 {
			set = vowels
		}
		c, err := drawFiltered(set, cfg, src)
		if err != nil {
			return nil, err
		}
		pw = append(pw, c)
	}
	return pw, nil
}

func drawFiltered(set string, cfg Config, src entropy.Source) (byte, error) {
	var c byte
	for attempt := 0; ; attempt++ {
		b, err := entropy.Byte(src)
		if err != nil {
			return 0, err
		}
		c = set[int(b)%len(set)]
		if attempt >= maxRejects || !cfg.excluded(c) {
			return c, nil
		}
	}
}
