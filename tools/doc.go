// Package tools adapts the Alphahuman Memory API into agent tool definitions.
//
// Includes:
//   - ToolDefinition: name, description, JSON input schema, handler.
//   - GenerateSchema[T](): derive JSON Schema from Go structs.
//   - Toolset: binds ingest_memory, read_memory, delete_memory to one client.
//   - Invariant: credentials are captured by the Toolset at construction and
//     never appear in any tool's input schema.
package tools
