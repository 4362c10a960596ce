package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G'}

func TestGenerateQRCode(t *testing.T) {
	png, err := GenerateQRCode("https://example.com/bookings/BKG-a1b2c3d4", 256)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngHeader), "output should be a PNG")
}

func TestGenerateQRCode_EmptyContent(t *testing.T) {
	_, err := GenerateQRCode("", 256)
	assert.Error(t, err)
}
