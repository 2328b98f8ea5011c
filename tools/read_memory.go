package tools

import (
	"context"
	"encoding/json"

	"github.com/alphahuman/memtools/memoryapi"
)

type ReadMemoryInput struct {
	Key       string   `json:"key,omitempty" jsonschema_description:"Single key to read."`
	Keys      []string `json:"keys,omitempty" jsonschema_description:"List of keys to read."`
	Namespace string   `json:"namespace,omitempty" jsonschema_description:"Namespace scope."`
}

var ReadMemoryInputSchema = GenerateSchema[ReadMemoryInput]()

func (t *Toolset) readMemoryDefinition() ToolDefinition {
	return ToolDefinition{
		Name:        "read_memory",
		Description: "Read memory items from the Alphahuman Memory API, optionally filtered by 'key', 'keys', or 'namespace'. Returns all user memory when no filters are given.",
		InputSchema: ReadMemoryInputSchema,
		Function:    t.ReadMemory,
	}
}

// ReadMemory forwards the filters exactly as supplied: absent filters stay
// absent on the wire, so an empty input reads everything.
func (t *Toolset) ReadMemory(ctx context.Context, input json.RawMessage) (string, error) {
	var in ReadMemoryInput
	if err := json.Unmarshal(input, &in); err != nil {
		return "", err
	}

	resp, err := t.client.ReadMemory(ctx, memoryapi.ReadMemoryRequest{
		Key:       in.Key,
		Keys:      in.Keys,
		Namespace: in.Namespace,
	})
	if err != nil {
		return "", err
	}
	// Keep the items field a JSON array even when the API returns none.
	if resp.Items == nil {
		resp.Items = []memoryapi.MemoryItem{}
	}
	out, err := json.Marshal(resp)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
