package docs

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAPIJSON(t *testing.T) {
	body, err := OpenAPIJSON()
	require.NoError(t, err)

	var doc struct {
		OpenAPI string                    `json:"openapi"`
		Paths   map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(body, &doc))

	assert.Equal(t, "3.0.0", doc.OpenAPI)
	assert.Contains(t, doc.Paths, "/months")
	assert.Contains(t, doc.Paths, "/formatted-months")
	assert.Contains(t, doc.Paths, "/health")
}

func TestHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	Handler(rec, httptest.NewRequest(http.MethodGet, "/api-docs/openapi.json", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	rec = httptest.NewRecorder()
	Handler(rec, httptest.NewRequest(http.MethodPost, "/api-docs/openapi.json", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
