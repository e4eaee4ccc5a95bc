package sharekey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeflateInflate_RoundTrip(t *testing.T) {
	payload := []byte(`{"t":"Capitals","q":[]}`)

	compressed, err := Deflate(payload)
	require.NoError(t, err)
	require.NotEmpty(t, compressed)

	decompressed, err := Inflate(compressed)
	require.NoError(t, err)
	assert.Equal(t, payload, decompressed)
}

func TestDeflate_EmitsZlibFraming(t *testing.T) {
	compressed, err := Deflate([]byte("x"))
	require.NoError(t, err)

	// RFC 1950 CMF byte for deflate with a 32K window; existing share keys
	// were produced by browsers' zlib-framed "deflate" stream mode.
	assert.Equal(t, byte(0x78), compressed[0])
}

func TestDeflate_EmptyInput(t *testing.T) {
	compressed, err := Deflate(nil)
	require.NoError(t, err)
	require.NotEmpty(t, compressed)

	decompressed, err := Inflate(compressed)
	require.NoError(t, err)
	assert.Empty(t, decompressed)
}

func TestInflate_RejectsCorruptStream(t *testing.T) {
	_, err := Inflate([]byte("this is not a deflate stream"))
	assert.Error(t, err)

	_, err = Inflate(nil)
	assert.Error(t, err)
}

func TestInflate_RejectsTruncatedStream(t *testing.T) {
	compressed, err := Deflate([]byte("some payload that compresses to more than a few bytes, repeated, repeated"))
	require.NoError(t, err)

	_, err = Inflate(compressed[:len(compressed)/2])
	assert.Error(t, err)
}

func TestBase64_RoundTrip(t *testing.T) {
	data := []byte{0x00, 0x01, 0xFE, 0xFF, 0x78, 0x9C}

	encoded := EncodeBase64(data)
	decoded, err := DecodeBase64(encoded)
	require.NoError(t, err)
	assert.Equal(t, data, decoded)
}

func TestDecodeBase64_RejectsInvalidInput(t *testing.T) {
	_, err := DecodeBase64("!!! not base64 !!!")
	assert.Error(t, err)
}
