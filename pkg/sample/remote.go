/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: remote.go
Description: Remote sample input. Fetches a CSV, JSON Lines or HTML sample over HTTP(S),
taking the charset from the response when the caller names none.
*/

package sample

import (
	"context"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

// RemoteTimeout bounds one sample download
var RemoteTimeout = 30 * time.Second

// IsRemote reports whether path names an HTTP(S) resource
func IsRemote(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// remoteBody is a response body that also cancels its request
type remoteBody struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (b *remoteBody) Close() error {
	defer b.cancel()
	return b.ReadCloser.Close()
}

// openRemote GETs url and returns its body and the charset it declares
func openRemote(ctx context.Context, url string) (io.ReadCloser, string, error) {
	ctx, cancel := context.WithTimeout(ctx, RemoteTimeout)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		cancel()
		return nil, "", errors.Wrap(err, "failed to create request")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		cancel()
		return nil, "", errors.Wrap(err, "failed to fetch sample")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		cancel()
		return nil, "", errors.Newf("sample URL returned status %d", resp.StatusCode)
	}

	charset := ""
	if _, params, err := mime.ParseMediaType(resp.Header.Get("Content-Type")); err == nil {
		charset = params["charset"]
	}
	return &remoteBody{ReadCloser: resp.Body, cancel: cancel}, charset, nil
}
