package tools

import (
	"context"
	"encoding/json"

	"github.com/alphahuman/memtools/memoryapi"
)

type DeleteMemoryInput struct {
	Key       string   `json:"key,omitempty" jsonschema_description:"Single key to delete."`
	Keys      []string `json:"keys,omitempty" jsonschema_description:"List of keys to delete."`
	Namespace string   `json:"namespace,omitempty" jsonschema_description:"Namespace scope."`
	DeleteAll bool     `json:"delete_all,omitempty" jsonschema_description:"Delete all user memory. Use with caution."`
}

var DeleteMemoryInputSchema = GenerateSchema[DeleteMemoryInput]()

func (t *Toolset) deleteMemoryDefinition() ToolDefinition {
	return ToolDefinition{
		Name:        "delete_memory",
		Description: "Delete memory items from the Alphahuman Memory API. Provide 'key' (single), 'keys' (list), or set 'delete_all' to true; optionally scope by 'namespace'. Returns the deleted count.",
		InputSchema: DeleteMemoryInputSchema,
		Function:    t.DeleteMemory,
	}
}

// DeleteMemory forwards the request as given. Precedence between key, keys,
// and delete_all is not arbitrated here; the API's semantics govern.
func (t *Toolset) DeleteMemory(ctx context.Context, input json.RawMessage) (string, error) {
	var in DeleteMemoryInput
	if err := json.Unmarshal(input, &in); err != nil {
		return "", err
	}

	resp, err := t.client.DeleteMemory(ctx, memoryapi.DeleteMemoryRequest{
		Key:       in.Key,
		Keys:      in.Keys,
		Namespace: in.Namespace,
		DeleteAll: in.DeleteAll,
	})
	if err != nil {
		return "", err
	}
	out, err := json.Marshal(resp)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
