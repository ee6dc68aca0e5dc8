package api

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"
)

// Response decoding constants
const (
	AcceptEncoding  = "br, gzip"
	MaxResponseSize = 8 << 20
)

// readBody reads the response body, undoing br or gzip content encoding.
// MaxResponseSize caps both the wire bytes and the decoded output.
func readBody(res *http.Response) ([]byte, error) {
	var reader io.Reader = io.LimitReader(res.Body, MaxResponseSize)

	switch strings.ToLower(strings.TrimSpace(res.Header.Get("Content-Encoding"))) {
	case "", "identity":
	case "br":
		reader = brotli.NewReader(reader)
	case "gzip":
		gzipReader, err := gzip.NewReader(reader)
		if err != nil {
			return nil, fmt.Errorf("creating gzip reader: %w", err)
		}
		defer gzipReader.Close()
		reader = gzipReader
	default:
		return nil, fmt.Errorf("unsupported content encoding: %s", res.Header.Get("Content-Encoding"))
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, io.LimitReader(reader, MaxResponseSize)); err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	return buf.Bytes(), nil
}
