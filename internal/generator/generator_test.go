package generator

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/pwgen/pwgen-go/internal/charset"
	"github.com/pwgen/pwgen-go/internal/entropy"
)

// scripted serves a fixed byte sequence and fails once it runs out.
type scripted struct {
	data []byte
	pos  int
}

func (s *scripted) ReadFull(p []byte) error {
	for i := range p {
		if s.pos >= len(s.data) {
			return fmt.Errorf("%w: script exhausted", entropy.ErrUnavailable)
		}
		p[i] = s.data[s.pos]
		s.pos++
	}
	return nil
}

// counting wraps a source and records how many bytes were drawn.
type counting struct {
	src   entropy.Source
	drawn int
}

func (c *counting) ReadFull(p []byte) error {
	if err := c.src.ReadFull(p); err != nil {
		return err
	}
	c.drawn += len(p)
	return nil
}

func seeded(t *testing.T, seed string) *entropy.Seeded {
	t.Helper()
	src, err := entropy.NewSeeded([]byte(seed))
	if err != nil {
		t.Fatalf("seeding entropy: %v", err)
	}
	return src
}

func TestGenerateCount(t *testing.T) {
	for _, count := range []int{0, 1, 7, 25} {
		t.Run(fmt.Sprintf("count=%d", count), func(t *testing.T) {
			cfg := Config{Length: 8, Count: count, Upper: PolicyRequired, Digits: PolicyRequired}
			passwords, err := Generate(cfg, seeded(t, "count"))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(passwords) != count {
				t.Errorf("got %d passwords, want %d", len(passwords), count)
			}
			for _, pw := range passwords {
				if len(pw) != 8 {
					t.Errorf("password %q has length %d, want 8", pw, len(pw))
				}
			}
		})
	}
}

func TestGenerateValidation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{"zero length", Config{Length: 0, Count: 1}, ErrInvalidLength},
		{"negative length", Config{Length: -3, Count: 1}, ErrInvalidLength},
		{"negative count", Config{Length: 8, Count: -1}, ErrNegativeCount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Generate(tt.cfg, seeded(t, "validation"))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestGenerateDefaultsEndToEnd(t *testing.T) {
	cfg := Config{Length: 8, Count: 1, Upper: PolicyRequired, Digits: PolicyRequired, Mode: ModePattern}
	passwords, err := Generate(cfg, seeded(t, "defaults"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pw := passwords[0]
	if len(pw) != 8 {
		t.Fatalf("password %q has length %d, want 8", pw, len(pw))
	}
	if !strings.ContainsAny(pw, charset.Uppercase) {
		t.Errorf("password %q missing required uppercase letter", pw)
	}
	if !strings.ContainsAny(pw, charset.Digits) {
		t.Errorf("password %q missing required digit", pw)
	}
}

func TestGenerateExcludesAmbiguous(t *testing.T) {
	for _, mode := range []Mode{ModePattern, ModeUniform} {
		name := "pattern"
		if mode == ModeUniform {
			name = "uniform"
		}
		t.Run(name, func(t *testing.T) {
			cfg := Config{
				Length: 16, Count: 20,
				Upper: PolicyRequired, Digits: PolicyRequired,
				ExcludeAmbiguous: true,
				Mode:             mode,
			}
			passwords, err := Generate(cfg, seeded(t, "ambiguous"))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for _, pw := range passwords {
				if strings.ContainsAny(pw, charset.Ambiguous) {
					t.Errorf("password %q contains an ambiguous character", pw)
				}
			}
		})
	}
}

func TestGenerateUserExclusionsUniform(t *testing.T) {
	excluded := "aeiouAEIOU"
	cfg := Config{
		Length: 24, Count: 15,
		Upper: PolicyRequired, Digits: PolicyRequired,
		Exclude: []byte(excluded),
		Mode:    ModeUniform,
	}
	passwords, err := Generate(cfg, seeded(t, "exclusions"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, pw := range passwords {
		if strings.ContainsAny(pw, excluded) {
			t.Errorf("password %q contains an excluded character", pw)
		}
	}
}

func TestGenerateForbiddenUppercase(t *testing.T) {
	for _, mode := range []Mode{ModePattern, ModeUniform} {
		cfg := Config{
			Length: 16, Count: 10,
			Upper: PolicyForbidden, Digits: PolicyRequired,
			Mode: mode,
		}
		passwords, err := Generate(cfg, seeded(t, "forbidden"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, pw := range passwords {
			if strings.ContainsAny(pw, charset.Uppercase) {
				t.Errorf("mode %d: password %q contains forbidden uppercase", mode, pw)
			}
		}
	}
}

func TestGenerateAbortsOnEntropyFailure(t *testing.T) {
	// Enough bytes for roughly one password, nowhere near five.
	src := &scripted{data: make([]byte, 10)}
	cfg := Config{Length: 8, Count: 5, Mode: ModeUniform}
	passwords, err := Generate(cfg, src)
	if !errors.Is(err, entropy.ErrUnavailable) {
		t.Fatalf("error = %v, want ErrUnavailable", err)
	}
	if passwords != nil {
		t.Errorf("expected no partial batch, got %d passwords", len(passwords))
	}
}

func TestGenerateDegenerateFallback(t *testing.T) {
	// Excluding every lowercase letter with no other classes leaves an
	// empty alphabet; the run still produces output.
	cfg := Config{
		Length: 8, Count: 2,
		Exclude: []byte(charset.Lowercase),
		Mode:    ModeUniform,
	}
	passwords, err := Generate(cfg, seeded(t, "fallback"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, pw := range passwords {
		if pw != "aaaaaaaa" {
			t.Errorf("expected degenerate fallback %q, got %q", "aaaaaaaa", pw)
		}
	}
}
