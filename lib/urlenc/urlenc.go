// Package urlenc encodes generator form state as a compressed base64 string
// for shareable permalinks.
package urlenc

import (
	"bytes"
	"compress/flate"
	"encoding/base64"
	"io"
	"strings"

	"oss.terrastruct.com/xdefer"
)

// Encode compresses raw and encodes it URL-safe for embedding in a query
// parameter.
func Encode(raw string) (_ string, err error) {
	defer xdefer.Errorf(&err, "failed to encode permalink state")

	b := &bytes.Buffer{}

	zw, err := flate.NewWriter(b, flate.BestCompression)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(zw, strings.NewReader(raw)); err != nil {
		return "", err
	}
	if err := zw.Close(); err != nil {
		return "", err
	}

	return base64.URLEncoding.EncodeToString(b.Bytes()), nil
}

// Decode reverses Encode.
func Decode(encoded string) (_ string, err error) {
	defer xdefer.Errorf(&err, "failed to decode permalink state")

	b64Decoded, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		return "", err
	}

	zr := flate.NewReader(bytes.NewReader(b64Decoded))
	var b bytes.Buffer
	if _, err := io.Copy(&b, zr); err != nil {
		return "", err
	}
	if err := zr.Close(); err != nil {
		return "", err
	}
	return b.String(), nil
}
