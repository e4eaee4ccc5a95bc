package sharekey

import (
	"bytes"
	"encoding/base64"
	"io"

	"github.com/klauspost/compress/zlib"
)

// Deflate compresses data into a zlib-framed DEFLATE stream (RFC 1950
// framing over RFC 1951 data). This is the framing browsers emit in their
// native "deflate" stream mode, which existing share keys were produced
// with, so it is the bit-level compatibility target. A zero-length input
// yields a valid empty stream.
func Deflate(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		w.Close()
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Inflate decompresses a zlib-framed DEFLATE stream, draining it fully into
// a single contiguous buffer. Corrupt or truncated streams return an error
// and no partial output.
func Inflate(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// EncodeBase64 renders bytes in the standard padded Base64 alphabet. Share
// keys deliberately use the non-URL-safe variant.
func EncodeBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// DecodeBase64 is the inverse of EncodeBase64.
func DecodeBase64(s string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(s)
}
