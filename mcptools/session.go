// Package mcptools manages the lifecycle of a client session against an MCP
// tool server: connect and handshake, tool discovery, invocation, and
// resource release.
package mcptools

import (
	"context"
	"encoding/json"
	"os/exec"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/xlog"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

var logger = xlog.NewPackageLogger("github.com/saimohit20/gemini-mcp-tools", "mcptools")

const (
	clientName    = "gemini-mcp-tools"
	clientVersion = "dev"

	stdioSchemePrefix = "stdio://"
	sseSchemePrefix   = "sse://"
)

// Descriptor describes one tool offered by the endpoint. The InputSchema
// is the raw JSON schema as published by the server; callers clean it
// before handing it to a model API.
type Descriptor struct {
	Name        string
	Description string
	InputSchema map[string]any
}

// Result is the textual outcome of one tool invocation.
type Result struct {
	Name    string
	Content string
}

// Session is an open connection to an MCP tool server. It is exclusively
// owned by the caller that created it and is not safe for concurrent use.
type Session struct {
	session *mcpsdk.ClientSession
}

// Connect establishes a transport to the given endpoint and performs the
// MCP initialize handshake. The endpoint spec is either a command line for
// a stdio subprocess ("stdio://python server.py" or a bare command), an
// "sse://" URL, or an http(s) URL for the streamable transport.
//
// Failures are marked as connection errors and are fatal to the session.
// On success the caller owns the session and must Close it.
func Connect(ctx context.Context, endpoint string) (*Session, error) {
	transport, err := buildTransport(ctx, endpoint)
	if err != nil {
		return nil, errors.Mark(err, ErrConnection)
	}
	return connect(ctx, transport)
}

// ConnectTransport is Connect over an already-built transport. It is used
// by tests with in-memory transports.
func ConnectTransport(ctx context.Context, transport mcpsdk.Transport) (*Session, error) {
	return connect(ctx, transport)
}

func connect(ctx context.Context, transport mcpsdk.Transport) (*Session, error) {
	client := mcpsdk.NewClient(&mcpsdk.Implementation{Name: clientName, Version: clientVersion}, nil)
	session, err := client.Connect(ctx, transport, nil)
	if err != nil {
		return nil, errors.Mark(errors.WithMessage(err, "failed to connect to tool server"), ErrConnection)
	}

	logger.ContextKV(ctx, xlog.DEBUG,
		"status", "connected",
	)
	return &Session{session: session}, nil
}

// ListTools queries the endpoint for its currently offered tools, in the
// order the endpoint returns them.
func (s *Session) ListTools(ctx context.Context) ([]Descriptor, error) {
	var list []Descriptor
	for tool, err := range s.session.Tools(ctx, nil) {
		if err != nil {
			return nil, errors.Mark(errors.WithMessage(err, "failed to list tools"), ErrConnection)
		}
		d, err := toDescriptor(tool)
		if err != nil {
			return nil, err
		}
		list = append(list, d)
	}

	logger.ContextKV(ctx, xlog.DEBUG,
		"status", "tools_listed",
		"count", len(list),
	)
	return list, nil
}

// Invoke sends a named invocation with arguments and blocks until the
// endpoint replies. An execution failure reported by the endpoint is
// returned as an invocation error with a human-readable message; callers
// fold it into the conversation as the tool's textual result.
func (s *Session) Invoke(ctx context.Context, name string, arguments map[string]any) (*Result, error) {
	if arguments == nil {
		arguments = map[string]any{}
	}

	res, err := s.session.CallTool(ctx, &mcpsdk.CallToolParams{
		Name:      name,
		Arguments: arguments,
	})
	if err != nil {
		logger.ContextKV(ctx, xlog.WARNING,
			"status", "tool_call_failed",
			"tool", name,
			"err", err.Error(),
		)
		return nil, errors.Mark(errors.WithMessagef(err, "failed to call tool %s", name), ErrInvocation)
	}

	content := textContent(res)
	if res.IsError {
		logger.ContextKV(ctx, xlog.WARNING,
			"status", "tool_reported_error",
			"tool", name,
		)
		if content == "" {
			content = "tool execution failed"
		}
		return nil, errors.Mark(errors.Newf("tool %s: %s", name, content), ErrInvocation)
	}

	return &Result{Name: name, Content: content}, nil
}

// Close releases the transport and any associated process resources. It is
// nil-safe and idempotent, so it can be deferred on every exit path.
func (s *Session) Close() error {
	if s == nil || s.session == nil {
		return nil
	}
	err := s.session.Close()
	s.session = nil
	return err
}

func toDescriptor(tool *mcpsdk.Tool) (Descriptor, error) {
	d := Descriptor{
		Name:        tool.Name,
		Description: tool.Description,
	}
	if tool.InputSchema == nil {
		return d, nil
	}

	// The SDK surfaces the schema as whatever the server published; pass it
	// through JSON to get the plain map form the cleaner operates on.
	js, err := json.Marshal(tool.InputSchema)
	if err != nil {
		return d, errors.Wrapf(err, "tool %s: invalid input schema", tool.Name)
	}
	if err := json.Unmarshal(js, &d.InputSchema); err != nil {
		return d, errors.Wrapf(err, "tool %s: invalid input schema", tool.Name)
	}
	return d, nil
}

func textContent(res *mcpsdk.CallToolResult) string {
	var parts []string
	for _, content := range res.Content {
		if tc, ok := content.(*mcpsdk.TextContent); ok && tc.Text != "" {
			parts = append(parts, tc.Text)
		}
	}
	return strings.Join(parts, "\n")
}

func buildTransport(ctx context.Context, spec string) (mcpsdk.Transport, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, errors.New("endpoint spec is empty")
	}

	lowered := strings.ToLower(spec)
	switch {
	case strings.HasPrefix(lowered, stdioSchemePrefix):
		return buildStdioTransport(ctx, spec[len(stdioSchemePrefix):])
	case strings.HasPrefix(lowered, sseSchemePrefix):
		return &mcpsdk.SSEClientTransport{Endpoint: "https://" + spec[len(sseSchemePrefix):]}, nil
	case strings.HasPrefix(lowered, "http://"), strings.HasPrefix(lowered, "https://"):
		return &mcpsdk.StreamableClientTransport{Endpoint: spec}, nil
	}

	return buildStdioTransport(ctx, spec)
}

func buildStdioTransport(ctx context.Context, cmdSpec string) (mcpsdk.Transport, error) {
	parts := strings.Fields(strings.TrimSpace(cmdSpec))
	if len(parts) == 0 {
		return nil, errors.New("stdio command is empty")
	}
	cmd := exec.CommandContext(ctx, parts[0], parts[1:]...)
	return &mcpsdk.CommandTransport{Command: cmd}, nil
}
