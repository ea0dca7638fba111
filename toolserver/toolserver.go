// Package toolserver implements the demo MCP tool server: a weather
// lookup, a constrained calculator, and a local-time lookup, served over
// the official MCP SDK.
package toolserver

import (
	"context"
	"encoding/json"
	"reflect"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/xlog"
	"github.com/invopop/jsonschema"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

var logger = xlog.NewPackageLogger("github.com/saimohit20/gemini-mcp-tools", "toolserver")

const (
	serverName    = "gemini-tool-server"
	serverVersion = "dev"
)

// NewServer creates an MCP server with the demo tools registered.
func NewServer() *mcpsdk.Server {
	server := mcpsdk.NewServer(&mcpsdk.Implementation{Name: serverName, Version: serverVersion}, nil)
	RegisterTools(server)
	return server
}

// RegisterTools registers the demo tools on the given server.
func RegisterTools(server *mcpsdk.Server) {
	server.AddTool(&mcpsdk.Tool{
		Name:        "get_weather",
		Description: "Get current weather in a specified city.",
		InputSchema: inputSchema(reflect.TypeOf(WeatherInput{})),
	}, handle(GetWeather))

	server.AddTool(&mcpsdk.Tool{
		Name:        "calculate",
		Description: "Evaluate a basic math expression safely.",
		InputSchema: inputSchema(reflect.TypeOf(CalculateInput{})),
	}, handle(Calculate))

	server.AddTool(&mcpsdk.Tool{
		Name:        "get_time",
		Description: "Get the current time in a specified city.",
		InputSchema: inputSchema(reflect.TypeOf(TimeInput{})),
	}, handle(GetTime))
}

// ServeStdio runs the demo server over standard input and output until the
// client disconnects or the context is cancelled.
func ServeStdio(ctx context.Context) error {
	logger.KV(xlog.INFO, "status", "serving", "transport", "stdio")
	return NewServer().Run(ctx, &mcpsdk.StdioTransport{})
}

// handle adapts a typed tool function to the SDK handler signature.
// A returned error becomes a tool execution failure carrying the error
// text, which clients fold back into the conversation.
func handle[I any](fn func(ctx context.Context, input I) (string, error)) func(context.Context, *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
	return func(ctx context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
		var input I
		if len(req.Params.Arguments) > 0 {
			if err := json.Unmarshal(req.Params.Arguments, &input); err != nil {
				return errorResult(errors.WithMessage(err, "invalid arguments")), nil
			}
		}

		text, err := fn(ctx, input)
		if err != nil {
			logger.ContextKV(ctx, xlog.WARNING,
				"status", "tool_failed",
				"tool", req.Params.Name,
				"err", err.Error(),
			)
			return errorResult(err), nil
		}

		return &mcpsdk.CallToolResult{
			Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: text}},
		}, nil
	}
}

func errorResult(err error) *mcpsdk.CallToolResult {
	return &mcpsdk.CallToolResult{
		IsError: true,
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: err.Error()}},
	}
}

// inputSchema reflects a tool input struct into a plain JSON schema map,
// the form the MCP SDK publishes to clients.
func inputSchema(t reflect.Type) map[string]any {
	r := new(jsonschema.Reflector)
	r.ExpandedStruct = true
	r.DoNotReference = true

	js, err := json.Marshal(r.ReflectFromType(t))
	if err != nil {
		panic(errors.WithMessagef(err, "failed to reflect schema for %s", t.Name()))
	}
	var m map[string]any
	if err := json.Unmarshal(js, &m); err != nil {
		panic(errors.WithMessagef(err, "failed to decode schema for %s", t.Name()))
	}
	return m
}
