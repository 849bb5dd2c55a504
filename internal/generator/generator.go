package generator

import (
	"github.com/pwgen/pwgen-go/internal/charset"
	"github.com/pwgen/pwgen-go/internal/entropy"
)

// Generate produces cfg.Count passwords from the entropy stream. Each
// password is generated independently by the configured mode and then
// passed through requirement enforcement. The first entropy failure
// aborts the whole batch; a partial batch is never returned.
func Generate(cfg Config, src entropy.Source) ([]string, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// The uniform alphabet is a pure function of the config, so build it once.
	var alphabet []byte
	if cfg.Mode == ModeUniform {
		alphabet = charset.Build(cfg.rules())
	}

	passwords := make([]string, 0, cfg.Count)
	for i := 0; i < cfg.Count; i++ {
		var pw []byte
		var err error
		switch cfg.Mode {
		case ModeUniform:
			pw, err = Uniform(cfg.Length, alphabet, src)
		default:
			pw, err = Pattern(cfg.Length, cfg, src)
		}
		if err != nil {
			return nil, err
		}
		if err := Enforce(pw, cfg, src); err != nil {
			return nil, err
		}
		passwords = append(passwords, string(pw))
	}
	return passwords, nil
}
