//go:build unit || e2e

package httptest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// PerformRequest sends body as JSON, with a bearer token when authToken is set.
func PerformRequest(t *testing.T, router http.Handler, method, path string, body any, authToken string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader = http.NoBody
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err, "Failed to encode request body to JSON")
		reader = bytes.NewReader(jsonBody)
	}
	return perform(router, method, path, reader, body != nil, authToken)
}

// PerformRawRequest sends raw as the JSON body unmodified, for malformed payloads.
func PerformRawRequest(t *testing.T, router http.Handler, method, path, raw string) *httptest.ResponseRecorder {
	t.Helper()
	return perform(router, method, path, bytes.NewBufferString(raw), true, "")
}

func perform(router http.Handler, method, path string, body io.Reader, isJSON bool, authToken string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if isJSON {
		req.Header.Set("Content-Type", "application/json")
	}
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
