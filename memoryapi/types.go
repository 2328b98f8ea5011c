package memoryapi

import "time"

// DefaultBaseURL is the staging endpoint; override via Config.BaseURL or
// the ALPHAHUMAN_BASE_URL environment variable.
const DefaultBaseURL = "https://memory.staging.alphahuman.ai/api/v1"

// DefaultNamespace is the namespace assigned to items ingested without one.
const DefaultNamespace = "default"

// MemoryItem is a namespaced key/content/metadata record stored by the API.
// Keys are unique within a namespace. Timestamps are server-assigned and
// only populated on items returned by reads.
type MemoryItem struct {
	Key       string         `json:"key"`
	Content   string         `json:"content"`
	Namespace string         `json:"namespace,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"created_at,omitzero"`
	UpdatedAt time.Time      `json:"updated_at,omitzero"`
}

// IngestMemoryRequest upserts a batch of items in one call.
type IngestMemoryRequest struct {
	Items []MemoryItem `json:"items"`
}

type IngestMemoryResponse struct {
	Ingested int `json:"ingested"`
	Updated  int `json:"updated"`
	Errors   int `json:"errors"`
}

// ReadMemoryRequest filters by key, keys, or namespace. Absent filters are
// omitted from the wire body; an empty request returns all user memory.
type ReadMemoryRequest struct {
	Key       string   `json:"key,omitempty"`
	Keys      []string `json:"keys,omitempty"`
	Namespace string   `json:"namespace,omitempty"`
}

type ReadMemoryResponse struct {
	Items []MemoryItem `json:"items"`
	Count int          `json:"count"`
}

// DeleteMemoryRequest deletes by key, keys, or everything when DeleteAll is
// set. Precedence between multiple filters is decided by the API, not here.
type DeleteMemoryRequest struct {
	Key       string   `json:"key,omitempty"`
	Keys      []string `json:"keys,omitempty"`
	Namespace string   `json:"namespace,omitempty"`
	DeleteAll bool     `json:"delete_all,omitempty"`
}

type DeleteMemoryResponse struct {
	Deleted int `json:"deleted"`
}
