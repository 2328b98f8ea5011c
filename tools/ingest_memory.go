package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/alphahuman/memtools/memoryapi"
)

type IngestMemoryInput struct {
	Items []IngestItem `json:"items" jsonschema_description:"Memory items to ingest (upsert). Each needs 'key' and 'content'."`
}

type IngestItem struct {
	Key       string         `json:"key" jsonschema_description:"Unique key within the namespace. Required."`
	Content   string         `json:"content" jsonschema_description:"Memory content to store. Required."`
	Namespace string         `json:"namespace,omitempty" jsonschema_description:"Logical partition (default 'default')."`
	Metadata  map[string]any `json:"metadata,omitempty" jsonschema_description:"Optional key/value metadata."`
}

var IngestMemoryInputSchema = GenerateSchema[IngestMemoryInput]()

func (t *Toolset) ingestMemoryDefinition() ToolDefinition {
	return ToolDefinition{
		Name:        "ingest_memory",
		Description: "Ingest (upsert) memory items into the Alphahuman Memory API. Each item must have 'key' and 'content'; 'namespace' defaults to 'default'. Returns counts of ingested, updated, and errored items.",
		InputSchema: IngestMemoryInputSchema,
		Function:    t.IngestMemory,
	}
}

// IngestMemory validates and forwards a batch of items. Required fields are
// checked before any request is built; the first incomplete item fails the
// whole call with its index and missing field.
func (t *Toolset) IngestMemory(ctx context.Context, input json.RawMessage) (string, error) {
	var in IngestMemoryInput
	if err := json.Unmarshal(input, &in); err != nil {
		return "", err
	}

	items := make([]memoryapi.MemoryItem, 0, len(in.Items))
	for i, item := range in.Items {
		if item.Key == "" {
			return "", fmt.Errorf("items[%d]: missing required field %q", i, "key")
		}
		if item.Content == "" {
			return "", fmt.Errorf("items[%d]: missing required field %q", i, "content")
		}
		namespace := item.Namespace
		if namespace == "" {
			namespace = memoryapi.DefaultNamespace
		}
		metadata := item.Metadata
		if metadata == nil {
			metadata = map[string]any{}
		}
		items = append(items, memoryapi.MemoryItem{
			Key:       item.Key,
			Content:   item.Content,
			Namespace: namespace,
			Metadata:  metadata,
		})
	}

	resp, err := t.client.IngestMemory(ctx, memoryapi.IngestMemoryRequest{Items: items})
	if err != nil {
		return "", err
	}
	out, err := json.Marshal(resp)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
