package tools_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/alphahuman/memtools/tools"
)

func TestIngestMemory_MissingKeyFailsBeforeNetwork(t *testing.T) {
	fake := &fakeClient{}
	ts := tools.New(fake)

	input := json.RawMessage(`{"items":[{"key":"a","content":"alpha"},{"content":"no key here"}]}`)
	_, err := ts.IngestMemory(context.Background(), input)
	if err == nil {
		t.Fatal("expected error for item without key")
	}
	if !strings.Contains(err.Error(), `items[1]`) || !strings.Contains(err.Error(), `"key"`) {
		t.Errorf("error should name the offending index and field, got %v", err)
	}
	if fake.ingestCalls != 0 {
		t.Fatalf("client must not be called on validation failure, got %d calls", fake.ingestCalls)
	}
}

func TestIngestMemory_MissingContentFailsBeforeNetwork(t *testing.T) {
	fake := &fakeClient{}
	ts := tools.New(fake)

	input := json.RawMessage(`{"items":[{"key":"a"}]}`)
	_, err := ts.IngestMemory(context.Background(), input)
	if err == nil || !strings.Contains(err.Error(), `"content"`) {
		t.Fatalf("expected missing content error, got %v", err)
	}
	if fake.ingestCalls != 0 {
		t.Fatalf("client must not be called on validation failure, got %d calls", fake.ingestCalls)
	}
}

func TestIngestMemory_DefaultsNamespaceAndMetadata(t *testing.T) {
	fake := &fakeClient{}
	ts := tools.New(fake)

	input := json.RawMessage(`{"items":[{"key":"a","content":"alpha"}]}`)
	if _, err := ts.IngestMemory(context.Background(), input); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if got := len(fake.lastIngest.Items); got != 1 {
		t.Fatalf("forwarded items: got %d want 1", got)
	}
	item := fake.lastIngest.Items[0]
	if item.Namespace != "default" {
		t.Errorf("namespace: got %q want %q", item.Namespace, "default")
	}
	if item.Metadata == nil || len(item.Metadata) != 0 {
		t.Errorf("metadata should default to an empty map, got %v", item.Metadata)
	}
}

func TestIngestMemory_PreservesExplicitFields(t *testing.T) {
	fake := &fakeClient{}
	ts := tools.New(fake)

	input := json.RawMessage(`{"items":[{"key":"a","content":"alpha","namespace":"work","metadata":{"source":"chat"}}]}`)
	if _, err := ts.IngestMemory(context.Background(), input); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	item := fake.lastIngest.Items[0]
	if item.Namespace != "work" {
		t.Errorf("namespace: got %q want %q", item.Namespace, "work")
	}
	if item.Metadata["source"] != "chat" {
		t.Errorf("metadata not forwarded: %v", item.Metadata)
	}
}

func TestIngestMemory_ReturnsCounts(t *testing.T) {
	fake := &fakeClient{}
	ts := tools.New(fake)

	input := json.RawMessage(`{"items":[{"key":"a","content":"alpha"},{"key":"b","content":"beta"}]}`)
	out, err := ts.IngestMemory(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	var counts map[string]int
	if err := json.Unmarshal([]byte(out), &counts); err != nil {
		t.Fatalf("output should be JSON counts: %v", err)
	}
	want := map[string]int{"ingested": 2, "updated": 0, "errors": 0}
	for k, v := range want {
		if counts[k] != v {
			t.Errorf("%s: got %d want %d", k, counts[k], v)
		}
	}
}

func TestIngestMemory_ClientErrorSurfacesUnmodified(t *testing.T) {
	fake := &fakeClient{err: errBackend}
	ts := tools.New(fake)

	input := json.RawMessage(`{"items":[{"key":"a","content":"alpha"}]}`)
	_, err := ts.IngestMemory(context.Background(), input)
	if err != errBackend {
		t.Fatalf("client error should pass through untouched, got %v", err)
	}
}
