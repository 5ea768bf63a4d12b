package portal

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
)

const defaultReadLimit int64 = 5 * 1024 * 1024

// BaseURL returns the scheme and host the request was addressed to, honouring
// proxy forwarding headers.
func BaseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}

	if v := strings.TrimSpace(r.Header.Get("X-Forwarded-Proto")); v != "" {
		scheme = v
	}

	host := r.Host
	if v := strings.TrimSpace(r.Header.Get("X-Forwarded-Host")); v != "" {
		host = v
	}

	return scheme + "://" + host
}

func CloseWithLog(c io.Closer) {
	if c == nil {
		return
	}

	if err := c.Close(); err != nil {
		slog.Error("failed to close resource", "err", err)
	}
}

func Sha256Hex(b []byte) string {
	h := sha256.Sum256(b)

	return hex.EncodeToString(h[:])
}

func ParseClientIP(r *http.Request) string {
	if xff := strings.TrimSpace(r.Header.Get(ForwardedForHeader)); xff != "" {
		parts := strings.Split(xff, ",")

		return strings.TrimSpace(parts[0])
	}

	host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
	if err == nil && host != "" {
		return host
	}

	return strings.TrimSpace(r.RemoteAddr)
}

// ReadWithSizeLimit reads at most maxSize bytes (5MB by default) and fails
// when the reader holds more than that.
func ReadWithSizeLimit(reader io.Reader, maxSize ...int64) ([]byte, error) {
	if reader == nil {
		return nil, io.ErrUnexpectedEOF
	}

	limit := defaultReadLimit
	if len(maxSize) > 0 && maxSize[0] > 0 {
		limit = maxSize[0]
	}

	data, err := io.ReadAll(&io.LimitedReader{R: reader, N: limit + 1})
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	if int64(len(data)) > limit {
		return nil, fmt.Errorf("read exceeds size limit: %d", limit)
	}

	return data, nil
}
