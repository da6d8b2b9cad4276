package domain

import "strings"

const (
	keySubjectSuffix   = "-key"
	valueSubjectSuffix = "-value"
)

// IsValidSubjectName reports whether name can be used as a store key.
// Subjects are opaque, so only blank names are rejected.
func IsValidSubjectName(name string) bool {
	return strings.TrimSpace(name) != ""
}

// KeySubject returns the conventional subject for a topic's record keys.
func KeySubject(topic string) string {
	return topic + keySubjectSuffix
}

// ValueSubject returns the conventional subject for a topic's record values.
func ValueSubject(topic string) string {
	return topic + valueSubjectSuffix
}
