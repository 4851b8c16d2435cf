package bot

import "github.com/google/uuid"

// RunTokenGenerator produces the correlation token stamped on every log line
// of one run. Implemented by UUIDGenerator (production) and FixedGenerator
// (tests).
type RunTokenGenerator interface {
	Generate() string
}

// UUIDGenerator issues random UUID run tokens.
type UUIDGenerator struct{}

// Generate implements RunTokenGenerator.
func (UUIDGenerator) Generate() string {
	return uuid.NewString()
}

// FixedGenerator always returns the same token, for deterministic test logs.
type FixedGenerator struct {
	Token string
}

// Generate implements RunTokenGenerator.
func (g FixedGenerator) Generate() string {
	return g.Token
}
