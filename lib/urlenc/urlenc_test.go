package urlenc_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptframe/promptframe/lib/urlenc"
)

func TestRoundTrip(t *testing.T) {
	for _, raw := range []string{
		"",
		"theme=opencode&lang=bash&title=Setup",
		strings.Repeat("prompt=Build a REST API for billing&", 40),
		"unicode ❯ · ⇡ ok",
	} {
		encoded, err := urlenc.Encode(raw)
		require.NoError(t, err)
		assert.NotContains(t, encoded, "+")
		assert.NotContains(t, encoded, "/")

		decoded, err := urlenc.Decode(encoded)
		require.NoError(t, err)
		assert.Equal(t, raw, decoded)
	}
}

func TestDecodeGarbage(t *testing.T) {
	_, err := urlenc.Decode("!!!not-base64!!!")
	assert.Error(t, err)
}
