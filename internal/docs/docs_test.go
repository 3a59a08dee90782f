package docs

import (
	"encoding/json"
	"testing"
)

func TestSwaggerDocument(t *testing.T) {
	var doc struct {
		BasePath    string                                `json:"basePath"`
		Paths       map[string]map[string]json.RawMessage `json:"paths"`
		Definitions map[string]json.RawMessage            `json:"definitions"`
	}
	if err := json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &doc); err != nil {
		t.Fatalf("swagger document is not valid JSON: %v", err)
	}
	if doc.BasePath != "/api/v1" {
		t.Errorf("expected base path /api/v1, got %q", doc.BasePath)
	}

	routes := map[string][]string{
		"/auth/register":          {"post"},
		"/auth/login":             {"post"},
		"/profile":                {"get"},
		"/categories":             {"get"},
		"/banks":                  {"get"},
		"/dashboard/summary":      {"get"},
		"/dashboard/insights":     {"get"},
		"/dashboard/banks":        {"get"},
		"/dashboard/annual":       {"get"},
		"/savings":                {"get", "put"},
		"/transactions":           {"get", "post"},
		"/transactions/{id}":      {"get", "put", "delete"},
		"/transactions/{id}/paid": {"patch"},
		"/wishlist":               {"get", "post"},
		"/wishlist/{id}":          {"put", "delete"},
	}
	for path, methods := range routes {
		ops, ok := doc.Paths[path]
		if !ok {
			t.Errorf("missing path %s", path)
			continue
		}
		for _, m := range methods {
			if _, ok := ops[m]; !ok {
				t.Errorf("missing %s %s", m, path)
			}
		}
	}

	for _, name := range []string{
		"handlers.CreateTransactionRequest",
		"models.Transaction",
		"services.Summary",
		"pagination.PageResponse-models_Transaction",
	} {
		if _, ok := doc.Definitions[name]; !ok {
			t.Errorf("missing definition %s", name)
		}
	}
}
