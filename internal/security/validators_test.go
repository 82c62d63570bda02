package security_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alouani-moncif/secret-word-society-replit/internal/security"
)

func TestValidatePlayerName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"simple name", "Alice", "Alice", false},
		{"trims whitespace", "  Bob  ", "Bob", false},
		{"unicode letters", "Émilie", "Émilie", false},
		{"with apostrophe", "O'Brien", "O'Brien", false},
		{"with digits", "Player2", "Player2", false},
		{"empty", "", "", true},
		{"whitespace only", "   ", "", true},
		{"too long", strings.Repeat("a", 21), "", true},
		{"max length ok", strings.Repeat("a", 20), strings.Repeat("a", 20), false},
		{"html injection", "<script>", "", true},
		{"shell characters", "a;rm -rf", "", true},
		{"control characters", "a\x00b", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := security.ValidatePlayerName(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateRoomCode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"uppercase code", "ABC123", "ABC123", false},
		{"lowercase normalized", "abc123", "ABC123", false},
		{"trims whitespace", " ABC123 ", "ABC123", false},
		{"empty", "", "", true},
		{"too short", "ABC12", "", true},
		{"too long", "ABC1234", "", true},
		{"invalid characters", "ABC-12", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := security.ValidateRoomCode(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateRecordID(t *testing.T) {
	assert.NoError(t, security.ValidateRecordID("abcdefghij12345"))
	assert.Error(t, security.ValidateRecordID(""))
	assert.Error(t, security.ValidateRecordID("short"))
	assert.Error(t, security.ValidateRecordID("abcdefghij1234!"))
}
