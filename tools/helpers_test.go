package tools_test

import (
	"context"
	"fmt"

	"github.com/alphahuman/memtools/memoryapi"
)

// fakeClient records the last request per operation and returns canned
// responses, so tests can assert on exactly what the tool layer forwards.
type fakeClient struct {
	ingestCalls int
	lastIngest  memoryapi.IngestMemoryRequest
	ingestResp  *memoryapi.IngestMemoryResponse

	readCalls int
	lastRead  memoryapi.ReadMemoryRequest
	readResp  *memoryapi.ReadMemoryResponse

	deleteCalls int
	lastDelete  memoryapi.DeleteMemoryRequest
	deleteResp  *memoryapi.DeleteMemoryResponse

	err error
}

func (f *fakeClient) IngestMemory(ctx context.Context, req memoryapi.IngestMemoryRequest) (*memoryapi.IngestMemoryResponse, error) {
	f.ingestCalls++
	f.lastIngest = req
	if f.err != nil {
		return nil, f.err
	}
	if f.ingestResp != nil {
		return f.ingestResp, nil
	}
	return &memoryapi.IngestMemoryResponse{Ingested: len(req.Items)}, nil
}

func (f *fakeClient) ReadMemory(ctx context.Context, req memoryapi.ReadMemoryRequest) (*memoryapi.ReadMemoryResponse, error) {
	f.readCalls++
	f.lastRead = req
	if f.err != nil {
		return nil, f.err
	}
	if f.readResp != nil {
		return f.readResp, nil
	}
	return &memoryapi.ReadMemoryResponse{}, nil
}

func (f *fakeClient) DeleteMemory(ctx context.Context, req memoryapi.DeleteMemoryRequest) (*memoryapi.DeleteMemoryResponse, error) {
	f.deleteCalls++
	f.lastDelete = req
	if f.err != nil {
		return nil, f.err
	}
	if f.deleteResp != nil {
		return f.deleteResp, nil
	}
	return &memoryapi.DeleteMemoryResponse{}, nil
}

var errBackend = fmt.Errorf("backend unavailable")
