package tools

import (
	"context"
	"fmt"
	"os"

	"github.com/alphahuman/memtools/memoryapi"
)

// Environment variables consulted by FromEnv and NewFromToken.
const (
	TokenEnv   = "ALPHAHUMAN_API_KEY"
	BaseURLEnv = "ALPHAHUMAN_BASE_URL"
)

// Client is the slice of the Memory API the tools call. *memoryapi.Client
// satisfies it; tests substitute fakes.
type Client interface {
	IngestMemory(ctx context.Context, req memoryapi.IngestMemoryRequest) (*memoryapi.IngestMemoryResponse, error)
	ReadMemory(ctx context.Context, req memoryapi.ReadMemoryRequest) (*memoryapi.ReadMemoryResponse, error)
	DeleteMemory(ctx context.Context, req memoryapi.DeleteMemoryRequest) (*memoryapi.DeleteMemoryResponse, error)
}

// Toolset binds the three memory tools to one configured client. The client
// (and the credentials inside it) is unexported: tool inputs carry memory
// filters only, never tokens or endpoints.
type Toolset struct {
	client Client
}

// New returns a Toolset over an already-configured client.
func New(client Client) *Toolset {
	return &Toolset{client: client}
}

// NewFromToken builds the underlying client from a bearer token. An empty
// baseURL falls back to ALPHAHUMAN_BASE_URL, then the documented staging URL.
func NewFromToken(token, baseURL string) (*Toolset, error) {
	if baseURL == "" {
		baseURL = os.Getenv(BaseURLEnv)
	}
	client, err := memoryapi.NewClient(memoryapi.Config{Token: token, BaseURL: baseURL})
	if err != nil {
		return nil, err
	}
	return New(client), nil
}

// FromEnv builds a Toolset from ALPHAHUMAN_API_KEY and ALPHAHUMAN_BASE_URL.
func FromEnv() (*Toolset, error) {
	token := os.Getenv(TokenEnv)
	if token == "" {
		return nil, fmt.Errorf("%s not set; export it or use NewFromToken", TokenEnv)
	}
	return NewFromToken(token, "")
}

// Registry returns all memory tool definitions wired for the agent.
func (t *Toolset) Registry() []ToolDefinition {
	return []ToolDefinition{
		t.ingestMemoryDefinition(),
		t.readMemoryDefinition(),
		t.deleteMemoryDefinition(),
	}
}
