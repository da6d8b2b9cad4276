package domain

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidCompatibilityLevel = errors.New("invalid compatibility level")

// CompatibilityLevel is stored and echoed back to clients. It is never
// enforced on registration.
type CompatibilityLevel string

const (
	CompatibilityBackward           CompatibilityLevel = "BACKWARD"
	CompatibilityBackwardTransitive CompatibilityLevel = "BACKWARD_TRANSITIVE"
	CompatibilityForward            CompatibilityLevel = "FORWARD"
	CompatibilityForwardTransitive  CompatibilityLevel = "FORWARD_TRANSITIVE"
	CompatibilityFull               CompatibilityLevel = "FULL"
	CompatibilityFullTransitive     CompatibilityLevel = "FULL_TRANSITIVE"
	CompatibilityNone               CompatibilityLevel = "NONE"
)

const DefaultCompatibilityLevel = CompatibilityBackward

func (level CompatibilityLevel) IsValid() bool {
	switch level {
	case CompatibilityBackward,
		CompatibilityBackwardTransitive,
		CompatibilityForward,
		CompatibilityForwardTransitive,
		CompatibilityFull,
		CompatibilityFullTransitive,
		CompatibilityNone:
		return true
	default:
		return false
	}
}

func (level CompatibilityLevel) String() string {
	return string(level)
}

func ParseCompatibilityLevel(value string) (CompatibilityLevel, error) {
	parsed := CompatibilityLevel(strings.ToUpper(strings.TrimSpace(value)))
	if parsed == "" {
		return "", fmt.Errorf("%w: level is required", ErrInvalidCompatibilityLevel)
	}
	if !parsed.IsValid() {
		return "", fmt.Errorf("%w: %s", ErrInvalidCompatibilityLevel, value)
	}
	return parsed, nil
}

func NormalizeCompatibilityLevel(level CompatibilityLevel) CompatibilityLevel {
	if level.IsValid() {
		return level
	}
	return DefaultCompatibilityLevel
}
