package crypto

import (
	"errors"
	"fmt"
	"strings"
)

const (
	letterChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	digitChars  = "0123456789"
	symbolChars = "!@#$%^&*-_+=[]{}~`"

	MinLength     = 6
	MaxLength     = 32
	DefaultLength = 8
)

var ErrLengthOutOfRange = errors.New("password length must be between 6 and 32")

// GeneratorOptions configures the password generator.
// Letters are always part of the alphabet.
type GeneratorOptions struct {
	Length  int
	Digits  bool
	Symbols bool
}

// DefaultOptions returns the initial configuration: 8 characters, symbols on, digits off.
func DefaultOptions() GeneratorOptions {
	return GeneratorOptions{
		Length:  DefaultLength,
		Digits:  false,
		Symbols: true,
	}
}

// Clamp forces n into [MinLength, MaxLength].
func Clamp(n int) int {
	return min(max(n, MinLength), MaxLength)
}

// Alphabet returns the characters eligible for selection under opts.
func Alphabet(opts GeneratorOptions) string {
	var sb strings.Builder
	sb.Grow(len(letterChars) + len(digitChars) + len(symbolChars))

	sb.WriteString(letterChars)
	if opts.Digits {
		sb.WriteString(digitChars)
	}
	if opts.Symbols {
		sb.WriteString(symbolChars)
	}
	return sb.String()
}

// Generator draws passwords from a Source.
type Generator struct {
	src Source
}

// NewGenerator creates a Generator. A nil src falls back to SecureSource.
func NewGenerator(src Source) *Generator {
	if src == nil {
		src = SecureSource{}
	}
	return &Generator{src: src}
}

// Generate creates a password of exactly opts.Length characters, each drawn
// independently and uniformly from Alphabet(opts).
func (g *Generator) Generate(opts GeneratorOptions) (string, error) {
	if opts.Length < MinLength || opts.Length > MaxLength {
		return "", ErrLengthOutOfRange
	}

	pool := Alphabet(opts)
	result := make([]byte, opts.Length)

	for i := range result {
		idx, err := g.src.IntN(len(pool))
		if err != nil {
			return "", fmt.Errorf("drawing character %d: %w", i, err)
		}
		result[i] = pool[idx]
	}

	return string(result), nil
}

// Generate creates a password using crypto/rand.
func Generate(opts GeneratorOptions) (string, error) {
	return NewGenerator(SecureSource{}).Generate(opts)
}

// IsLetter reports whether ch belongs to the base alphabet.
func IsLetter(ch rune) bool {
	return strings.ContainsRune(letterChars, ch)
}

// IsDigit reports whether ch is one of the optional digit characters.
func IsDigit(ch rune) bool {
	return strings.ContainsRune(digitChars, ch)
}

// IsSymbol reports whether ch is one of the optional symbol characters.
func IsSymbol(ch rune) bool {
	return strings.ContainsRune(symbolChars, ch)
}
