package tools_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/alphahuman/memtools/tools"
)

// schemaProperties marshals a tool's input schema and returns its top-level
// property names.
func schemaProperties(t *testing.T, def tools.ToolDefinition) map[string]json.RawMessage {
	t.Helper()
	b, err := json.Marshal(def.InputSchema.Properties)
	if err != nil {
		t.Fatalf("marshal schema for %s: %v", def.Name, err)
	}
	var props map[string]json.RawMessage
	if err := json.Unmarshal(b, &props); err != nil {
		t.Fatalf("schema properties for %s should be an object: %v", def.Name, err)
	}
	return props
}

func TestSchemas_NeverExposeCredentials(t *testing.T) {
	defs := tools.New(&fakeClient{}).Registry()
	forbidden := []string{"token", "api_key", "apikey", "base_url", "authorization"}

	for _, d := range defs {
		props := schemaProperties(t, d)
		for name := range props {
			for _, bad := range forbidden {
				if strings.EqualFold(name, bad) {
					t.Errorf("%s: credential-shaped property %q in input schema", d.Name, name)
				}
			}
		}
	}
}

func TestSchemas_DeclareExpectedProperties(t *testing.T) {
	defs := tools.New(&fakeClient{}).Registry()
	want := map[string][]string{
		"ingest_memory": {"items"},
		"read_memory":   {"key", "keys", "namespace"},
		"delete_memory": {"key", "keys", "namespace", "delete_all"},
	}

	for _, d := range defs {
		props := schemaProperties(t, d)
		for _, p := range want[d.Name] {
			if _, ok := props[p]; !ok {
				t.Errorf("%s: missing property %q in schema, have %v", d.Name, p, keys(props))
			}
		}
	}
}

func keys(m map[string]json.RawMessage) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
