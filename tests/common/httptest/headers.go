//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

const jsonContentType = "application/json; charset=utf-8"

func AssertJSONContentType(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()
	assert.Equal(t, jsonContentType, w.Header().Get("Content-Type"))
}

// AssertNoBody is for 204 responses such as leaving a shared session.
func AssertNoBody(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()
	assert.Zero(t, w.Body.Len(), "expected empty body, got %s", w.Body.String())
}
