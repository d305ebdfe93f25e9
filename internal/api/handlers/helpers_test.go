package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/storefront/internal/testutils"
	"github.com/aaravmahajanofficial/storefront/internal/utils/response"
	"github.com/stretchr/testify/require"
)

type envelope[T any] struct {
	Success bool                    `json:"success"`
	Data    T                       `json:"data"`
	Error   *response.ErrorResponse `json:"error"`
}

func newTestRequest(method, target string, body []byte, pathParams map[string]string) *http.Request {
	return testutils.CreateTestRequest(method, target, bytes.NewReader(body), pathParams)
}

func decodeEnvelope[T any](t *testing.T, rr *httptest.ResponseRecorder) envelope[T] {
	t.Helper()

	var resp envelope[T]
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

	return resp
}
