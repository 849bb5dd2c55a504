package generator

import (
	"bytes"

	"github.com/pwgen/pwgen-go/internal/charset"
	"github.com/pwgen/pwgen-go/internal/entropy"
)

// Enforce guarantees the presence of required character classes in an
// already-filled password by overwriting a random position with a random
// member of the missing class. Checks run in a fixed order — uppercase,
// digit, symbol — and a later injection may overwrite an earlier one;
// with a fixed entropy stream the outcome is reproducible. A password
// that already satisfies a requirement is left alone and consumes no
// entropy for that check.
//
// When exclusions empty a required class entirely the check is skipped
// without error: the requirement cannot be met, and aborting the batch
// over it would reject exclusion sets the tool otherwise supports.
func Enforce(pw []byte, cfg Config, src entropy.Source) error {
	if len(pw) == 0 {
		return nil
	}

	if cfg.Upper == PolicyRequired && !bytes.ContainsAny(pw, charset.Uppercase) {
		class := classAlphabet(charset.Uppercase, cfg, true)
		if err := inject(pw, class, src); err != nil {
			return err
		}
	}

	if cfg.Digits == PolicyRequired && !bytes.ContainsAny(pw, charset.Digits) {
		class := classAlphabet(charset.Digits, cfg, true)
		if err := inject(pw, class, src); err != nil {
			return err
		}
	}

	if cfg.Symbols && !containsSymbol(pw) {
		// Symbols are never in the ambiguous set, so only the user
		// exclusion list filters the class.
		class := classAlphabet(charset.Symbols, cfg, false)
		if err := inject(pw, class, src); err != nil {
			return err
		}
	}

	return nil
}

// classAlphabet filters a class table down to injectable candidates.
func classAlphabet(set string, cfg Config, ambiguity bool) []byte {
	class := make([]byte, 0, len(set))
	for i := 0; i < len(set); i++ {
		c := set[i]
		if ambiguity && cfg.ExcludeAmbiguous && charset.IsAmbiguous(c) {
			continue
		}
		if bytes.IndexByte(cfg.Exclude, c) >= 0 {
			continue
		}
		class = append(class, c)
	}
	return class
}

// inject overwrites a random position of pw with a random member of class.
// An empty class is a silent no-op.
func inject(pw, class []byte, src entropy.Source) error {
	if len(class) == 0 {
		return nil
	}
	cb, err := entropy.Byte(src)
	if err != nil {
		return err
	}
	pb, err := entropy.Byte(src)
	if err != nil {
		return err
	}
	pw[int(pb)%len(pw)] = class[int(cb)%len(class)]
	return nil
}

func containsSymbol(pw []byte) bool {
	for _, c := range pw {
		if charset.IsSymbol(c) {
			return true
		}
	}
	return false
}
