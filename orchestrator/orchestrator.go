// Package orchestrator runs a single user query through a Gemini model
// with MCP tools attached: it advertises the available tools, executes
// any calls the model requests, folds the results back into the
// conversation, and asks the model for a final answer.
package orchestrator

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/xlog"
	"github.com/google/uuid"

	"github.com/saimohit20/gemini-mcp-tools/mcptools"
	"github.com/saimohit20/gemini-mcp-tools/pkg/llms"
	"github.com/saimohit20/gemini-mcp-tools/schema"
)

var logger = xlog.NewPackageLogger("github.com/saimohit20/gemini-mcp-tools", "orchestrator")

const (
	// fallbackNoReply is returned when the first model reply carries
	// neither text nor tool calls.
	fallbackNoReply = "No response or tool call from the model."
	// fallbackNoFinalText is returned when the follow-up reply after
	// tool execution carries no text.
	fallbackNoFinalText = "No discernable text response after tool execution."
)

// ToolSource provides the tools the model may call. It is the subset of
// mcptools.Session the orchestrator needs, so tests can supply fakes.
type ToolSource interface {
	ListTools(ctx context.Context) ([]mcptools.Descriptor, error)
	Invoke(ctx context.Context, name string, arguments map[string]any) (*mcptools.Result, error)
}

// Orchestrator drives the query/tool-call/answer loop for one model and
// one tool source. It is stateless across queries: each ProcessQuery
// call starts a fresh conversation.
type Orchestrator struct {
	model llms.Model
	tools ToolSource
	opts  options
}

type options struct {
	systemPrompt string
	callOptions  []llms.CallOption
	cleaner      *schema.Cleaner
}

// Option configures an Orchestrator.
type Option func(*options)

// WithSystemPrompt sets a system instruction sent with every query.
func WithSystemPrompt(prompt string) Option {
	return func(o *options) {
		o.systemPrompt = prompt
	}
}

// WithCallOptions sets extra call options, such as temperature or max
// tokens, applied to every model call.
func WithCallOptions(callOpts ...llms.CallOption) Option {
	return func(o *options) {
		o.callOptions = append(o.callOptions, callOpts...)
	}
}

// WithSchemaCleaner overrides the cleaner applied to tool input schemas
// before they are advertised to the model.
func WithSchemaCleaner(cleaner *schema.Cleaner) Option {
	return func(o *options) {
		o.cleaner = cleaner
	}
}

// New creates an Orchestrator for the given model and tool source.
func New(model llms.Model, tools ToolSource, opts ...Option) *Orchestrator {
	o := options{
		cleaner: schema.NewCleaner(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Orchestrator{
		model: model,
		tools: tools,
		opts:  o,
	}
}

// ProcessQuery sends a user query to the model with the tool source's
// tools attached. If the model requests tool calls, they are executed
// sequentially in the order they appear in the reply, and the model is
// called once more with the results to produce the final answer. At
// most two model calls are made per query.
func (o *Orchestrator) ProcessQuery(ctx context.Context, query string) (string, error) {
	declarations, err := o.toolDeclarations(ctx)
	if err != nil {
		return "", err
	}

	history := make([]llms.Message, 0, 2)
	if o.opts.systemPrompt != "" {
		history = append(history, llms.MessageFromTextParts(llms.RoleSystem, o.opts.systemPrompt))
	}
	history = append(history, llms.MessageFromTextParts(llms.RoleHuman, query))

	choice, err := o.generate(ctx, history, declarations)
	if err != nil {
		return "", errors.WithMessage(err, "model call failed")
	}
	if choice == nil || (choice.Content == "" && len(choice.ToolCalls) == 0) {
		logger.ContextKV(ctx, xlog.DEBUG, "status", "empty_reply")
		return fallbackNoReply, nil
	}
	if len(choice.ToolCalls) == 0 {
		return choice.Content, nil
	}

	history = append(history, modelTurn(choice))
	history = append(history, o.executeToolCalls(ctx, choice.ToolCalls)...)

	final, err := o.generate(ctx, history, declarations)
	if err != nil {
		return "", errors.WithMessage(err, "model call failed")
	}
	if final == nil || final.Content == "" {
		logger.ContextKV(ctx, xlog.DEBUG, "status", "no_final_text")
		return fallbackNoFinalText, nil
	}
	if len(final.ToolCalls) > 0 {
		logger.ContextKV(ctx, xlog.WARNING,
			"status", "followup_tool_calls_ignored",
			"count", len(final.ToolCalls),
		)
	}
	return final.Content, nil
}

// toolDeclarations lists the source's tools and cleans their input
// schemas into the form the Gemini function-calling API accepts.
func (o *Orchestrator) toolDeclarations(ctx context.Context) ([]llms.Tool, error) {
	descriptors, err := o.tools.ListTools(ctx)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to list tools")
	}

	declarations := make([]llms.Tool, 0, len(descriptors))
	for _, d := range descriptors {
		declarations = append(declarations, llms.Tool{
			Type: "function",
			Function: &llms.FunctionDefinition{
				Name:        d.Name,
				Description: d.Description,
				Parameters:  o.opts.cleaner.CleanMap(d.InputSchema),
			},
		})
	}
	logger.ContextKV(ctx, xlog.DEBUG, "status", "tools_listed", "count", len(declarations))
	return declarations, nil
}

func (o *Orchestrator) generate(ctx context.Context, history []llms.Message, declarations []llms.Tool) (*llms.ContentChoice, error) {
	callOpts := make([]llms.CallOption, 0, len(o.opts.callOptions)+2)
	callOpts = append(callOpts, o.opts.callOptions...)
	if len(declarations) > 0 {
		callOpts = append(callOpts,
			llms.WithTools(declarations),
			llms.WithToolChoice(llms.FunctionCallBehaviorAuto),
		)
	}

	resp, err := o.model.GenerateContent(ctx, history, callOpts...)
	if err != nil {
		return nil, err
	}
	if resp == nil || len(resp.Choices) == 0 {
		return nil, nil
	}
	return resp.Choices[0], nil
}

// executeToolCalls runs the requested calls one at a time, in order,
// and returns one tool turn per call. A failed call does not abort the
// loop: its error text becomes the result payload, so the model can
// explain the failure in its final answer.
func (o *Orchestrator) executeToolCalls(ctx context.Context, calls []llms.ToolCall) []llms.Message {
	turns := make([]llms.Message, 0, len(calls))
	for _, call := range calls {
		if call.FunctionCall == nil {
			continue
		}
		name := call.FunctionCall.Name
		id := call.ID
		if id == "" {
			id = uuid.NewString()
		}

		content, err := o.invoke(ctx, call)
		if err != nil {
			logger.ContextKV(ctx, xlog.WARNING,
				"status", "tool_call_failed",
				"tool", name,
				"err", err.Error(),
			)
			content = "Error: " + err.Error()
		} else {
			logger.ContextKV(ctx, xlog.DEBUG, "status", "tool_call_done", "tool", name)
		}

		turns = append(turns, llms.MessageFromToolResponse(llms.RoleTool, llms.ToolCallResponse{
			ToolCallID: id,
			Name:       name,
			Content:    content,
		}))
	}
	return turns
}

func (o *Orchestrator) invoke(ctx context.Context, call llms.ToolCall) (string, error) {
	args, err := call.FunctionCall.ArgumentsMap()
	if err != nil {
		return "", err
	}
	result, err := o.tools.Invoke(ctx, call.FunctionCall.Name, args)
	if err != nil {
		return "", err
	}
	return result.Content, nil
}

// modelTurn rebuilds the model reply as a conversation turn, keeping
// any text alongside the tool calls.
func modelTurn(choice *llms.ContentChoice) llms.Message {
	parts := make([]llms.ContentPart, 0, len(choice.ToolCalls)+1)
	if choice.Content != "" {
		parts = append(parts, llms.TextPart(choice.Content))
	}
	for _, call := range choice.ToolCalls {
		parts = append(parts, call)
	}
	return llms.MessageFromParts(llms.RoleAI, parts...)
}
