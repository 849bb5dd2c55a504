package service

import (
	"errors"

	"github.com/pwgen/pwgen-go/internal/entropy"
	"github.com/pwgen/pwgen-go/internal/generator"
	"github.com/pwgen/pwgen-go/internal/model"
)

// Request limits for the HTTP surface. The engine itself has no upper
// bounds; these keep a single API call from tying up the server.
const (
	MinLength = 1
	MaxLength = 128
	MinCount  = 1
	MaxCount  = 256
)

var (
	ErrLengthTooShort = errors.New("password length must be at least 1")
	ErrLengthTooLong  = errors.New("password length must be at most 128")
	ErrCountTooSmall  = errors.New("password count must be at least 1")
	ErrCountTooLarge  = errors.New("password count must be at most 256")
)

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	entropy entropy.Source
}

// NewGeneratorService creates a GeneratorService drawing from src.
func NewGeneratorService(src entropy.Source) *GeneratorService {
	return &GeneratorService{entropy: src}
}

// Generate produces a batch of passwords based on the given request.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	cfg := configFromRequest(req)

	if cfg.Length < MinLength {
		return model.GenerateResponse{}, ErrLengthTooShort
	}
	if cfg.Length > MaxLength {
		return model.GenerateResponse{}, ErrLengthTooLong
	}
	if cfg.Count < MinCount {
		return model.GenerateResponse{}, ErrCountTooSmall
	}
	if cfg.Count > MaxCount {
		return model.GenerateResponse{}, ErrCountTooLarge
	}

	passwords, err := generator.Generate(cfg, s.entropy)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	return model.GenerateResponse{
		Passwords: passwords,
		Length:    cfg.Length,
		Count:     len(passwords),
	}, nil
}

func configFromRequest(req model.GenerateRequest) generator.Config {
	cfg := generator.Config{
		Length:           req.Length,
		Count:            req.Count,
		Upper:            policyOrDefault(req.Uppercase),
		Digits:           policyOrDefault(req.Numerals),
		Symbols:          req.Symbols,
		ExcludeAmbiguous: req.NoAmbiguous,
		ExcludeVowels:    req.NoVowels,
		Exclude:          []byte(req.Exclude),
	}
	if req.Secure {
		cfg.Mode = generator.ModeUniform
	}
	if cfg.Length == 0 {
		cfg.Length = 16
	}
	if cfg.Count == 0 {
		cfg.Count = 1
	}
	return cfg
}

// policyOrDefault resolves a request's pointer bool: absent means the
// class is required, false forbids it.
func policyOrDefault(p *bool) generator.Policy {
	if p == nil || *p {
		return generator.PolicyRequired
	}
	return generator.PolicyForbidden
}
