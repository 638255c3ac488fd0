package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeEntryCursor(t *testing.T) {
	createdAt := time.Date(2026, 5, 15, 14, 30, 45, 123456789, time.UTC)

	token := EncodeEntryCursor(createdAt, "entry-1")
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedAt, decodedID, err := DecodeEntryCursor(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.True(t, createdAt.Equal(decodedAt), "Created at time should match after decode")
	assert.Equal(t, "entry-1", decodedID)

	// Non-UTC times survive the round trip as the same instant.
	riyadh := time.FixedZone("AST", 3*60*60)
	local := time.Date(2026, 1, 2, 3, 4, 5, 6, riyadh)
	decodedAt, _, err = DecodeEntryCursor(EncodeEntryCursor(local, "e"))
	assert.NoError(t, err)
	assert.True(t, local.Equal(decodedAt))
}

func TestDecodeEntryCursorError(t *testing.T) {
	_, _, err := DecodeEntryCursor("this is not base64!")
	assert.Error(t, err, "Should return an error for invalid base64")
	assert.Contains(t, err.Error(), "base64 decode", "Error should mention base64 decoding")

	_, _, err = DecodeEntryCursor(EncodeMultiFieldToken("2026-01-01T00:00:00Z"))
	assert.Error(t, err, "Should return an error when the entry id is missing")
	assert.Contains(t, err.Error(), "split")

	_, _, err = DecodeEntryCursor(EncodeMultiFieldToken("yesterday", "e1"))
	assert.Error(t, err, "Should return an error for an invalid time")
	assert.Contains(t, err.Error(), "created_at parse")
}

func TestMultiFieldToken(t *testing.T) {
	token := EncodeMultiFieldToken("a", "b", "c")
	parts, err := DecodeMultiFieldToken(token)
	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, parts)
}
