// Package docs serves the OpenAPI description of the HTTP API.
package docs

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed openapi.yaml
var openAPIYAML []byte

var (
	specOnce sync.Once
	specJSON []byte
	specErr  error
)

// OpenAPIJSON returns the embedded OpenAPI document converted to JSON.
func OpenAPIJSON() ([]byte, error) {
	specOnce.Do(func() {
		var doc map[string]any
		if err := yaml.Unmarshal(openAPIYAML, &doc); err != nil {
			specErr = fmt.Errorf("openapi: parse yaml: %w", err)
			return
		}
		specJSON, specErr = json.Marshal(doc)
		if specErr != nil {
			specErr = fmt.Errorf("openapi: encode json: %w", specErr)
		}
	})
	return specJSON, specErr
}

func Handler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := OpenAPIJSON()
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(body)
}
