package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidVersion = errors.New("invalid version")

const latestVersionLiteral = "latest"

// VersionSelector addresses either a concrete version number or the latest
// version present in a subject.
type VersionSelector struct {
	Number int
	Latest bool
}

func LatestVersion() VersionSelector {
	return VersionSelector{Latest: true}
}

func ExactVersion(number int) VersionSelector {
	return VersionSelector{Number: number}
}

// ParseVersion accepts "latest", "-1" or a positive integer.
func ParseVersion(value string) (VersionSelector, error) {
	value = strings.TrimSpace(value)
	if strings.EqualFold(value, latestVersionLiteral) {
		return LatestVersion(), nil
	}
	number, err := strconv.Atoi(value)
	if err != nil {
		return VersionSelector{}, fmt.Errorf("%w: %q", ErrInvalidVersion, value)
	}
	if number == -1 {
		return LatestVersion(), nil
	}
	if number < 1 {
		return VersionSelector{}, fmt.Errorf("%w: %d", ErrInvalidVersion, number)
	}
	return ExactVersion(number), nil
}

func (v VersionSelector) String() string {
	if v.Latest {
		return latestVersionLiteral
	}
	return strconv.Itoa(v.Number)
}
