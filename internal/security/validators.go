package security

import (
	"fmt"
	"regexp"
	"strings"
)

// Input length constraints
const (
	MaxPlayerNameLength = 20
	MinNameLength       = 1

	RoomCodeLength = 6
)

var (
	// PocketBase ID regex - 15 character alphanumeric
	pocketbaseIDRegex = regexp.MustCompile(`^[a-zA-Z0-9]{15}$`)
	// Room codes are 6 uppercase alphanumerics
	roomCodeRegex = regexp.MustCompile(`^[A-Z0-9]{6}$`)
	// Name validation regex - Unicode letters, digits, spaces, apostrophes, hyphens, underscores, dots
	nameRegex = regexp.MustCompile(`^[\p{L}\p{N}\s'\-_.]+$`)
	// Dangerous characters that could be used for injection attacks
	dangerousCharsRegex = regexp.MustCompile(`[<>{}[\]\\;|&$()` + "`" + `]`)
)

// ValidateRecordID validates that a string is a PocketBase record ID
// (15 alphanumeric characters).
func ValidateRecordID(id string) error {
	if id == "" {
		return fmt.Errorf("ID cannot be empty")
	}
	if !pocketbaseIDRegex.MatchString(id) {
		return fmt.Errorf("invalid ID format (expected 15-character PocketBase ID)")
	}
	return nil
}

// ValidateRoomCode validates a human-entered join code and returns it
// normalized to uppercase.
func ValidateRoomCode(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return "", fmt.Errorf("room code cannot be empty")
	}
	if !roomCodeRegex.MatchString(code) {
		return "", fmt.Errorf("invalid room code format (expected %d letters or digits)", RoomCodeLength)
	}
	return code, nil
}

// ValidatePlayerName validates a display name and returns the sanitized form.
func ValidatePlayerName(name string) (string, error) {
	name = strings.TrimSpace(name)

	if name == "" {
		return "", fmt.Errorf("name cannot be empty")
	}
	if len(name) < MinNameLength {
		return "", fmt.Errorf("name too short (min %d characters)", MinNameLength)
	}
	if len(name) > MaxPlayerNameLength {
		return "", fmt.Errorf("name too long (max %d characters)", MaxPlayerNameLength)
	}

	if !nameRegex.MatchString(name) {
		return "", fmt.Errorf("name contains invalid characters (allowed: letters, numbers, spaces, apostrophes, hyphens, underscores, dots)")
	}
	if dangerousCharsRegex.MatchString(name) {
		return "", fmt.Errorf("name contains potentially dangerous characters")
	}
	for _, r := range name {
		if r < 32 || r == 127 {
			return "", fmt.Errorf("name contains control characters")
		}
	}

	return name, nil
}
