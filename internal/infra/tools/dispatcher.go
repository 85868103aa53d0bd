package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"cufmcp/internal/domain"
	"cufmcp/internal/infra/cufinder"
	"cufmcp/internal/infra/telemetry"
)

// Dispatcher routes invocations to the per-operation handlers and converts
// every failure into a uniform error result. The process never terminates on
// an operation failure; the only fatal path is startup.
type Dispatcher struct {
	client  *cufinder.Client
	logger  *zap.Logger
	metrics domain.Metrics
}

type DispatcherOptions struct {
	Client  *cufinder.Client
	Logger  *zap.Logger
	Metrics domain.Metrics
}

func NewDispatcher(opts DispatcherOptions) *Dispatcher {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	metrics := opts.Metrics
	if metrics == nil {
		metrics = domain.NopMetrics{}
	}
	return &Dispatcher{
		client:  opts.Client,
		logger:  logger.Named("dispatcher"),
		metrics: metrics,
	}
}

// Register adds every catalog tool to the server, routing calls back through
// Dispatch.
func (d *Dispatcher) Register(server *mcp.Server) {
	for _, tool := range Catalog() {
		tool := tool
		server.AddTool(&tool, d.toolHandler(tool.Name))
	}
}

func (d *Dispatcher) toolHandler(name string) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return d.Dispatch(ctx, name, json.RawMessage(req.Params.Arguments)), nil
	}
}

// Dispatch handles one invocation end to end. The returned result is always
// well-formed: either the formatted text or an is_error result whose text
// starts with "Error: ".
func (d *Dispatcher) Dispatch(ctx context.Context, name string, args json.RawMessage) *mcp.CallToolResult {
	ctx, requestID := telemetry.EnsureRequestID(ctx)
	logger := d.logger.With(
		zap.String(telemetry.FieldRequestID, requestID),
		zap.String("tool", name),
	)

	op := domain.Operation(name)
	if !op.Known() {
		logger.Warn("unknown tool invoked")
		d.metrics.ObserveInvocation(name, 0, domain.ErrUnknownTool)
		return errorResult(fmt.Sprintf("Unknown tool: %s", name))
	}

	start := time.Now()
	text, err := d.handle(ctx, op, args)
	duration := time.Since(start)
	d.metrics.ObserveInvocation(name, duration, err)

	if err != nil {
		logger.Warn("invocation failed", zap.Duration("duration", duration), zap.Error(err))
		return errorResult(fmt.Sprintf("Failed to %s: %s", op.FailureVerb(), err))
	}

	logger.Debug("invocation completed", zap.Duration("duration", duration))
	return textResult(text)
}

func (d *Dispatcher) handle(ctx context.Context, op domain.Operation, args json.RawMessage) (string, error) {
	switch op {
	case domain.OpFindBusiness:
		return d.findBusiness(ctx, args)
	case domain.OpFindPerson:
		return d.findPerson(ctx, args)
	case domain.OpSearchBusinesses:
		return d.searchBusinesses(ctx, args)
	case domain.OpSearchPersons:
		return d.searchPersons(ctx, args)
	case domain.OpSearchLocalBusinesses:
		return d.searchLocalBusinesses(ctx, args)
	default:
		return "", domain.ErrUnknownTool
	}
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: "Error: " + message}},
		IsError: true,
	}
}

// decodeParams performs the structural validation at the dispatch boundary:
// arguments must be a JSON object matching the operation's params shape.
// Filter values are forwarded verbatim; enum conformance is the agent's job.
func decodeParams(args json.RawMessage, out any) error {
	if len(args) == 0 {
		return nil
	}
	if err := json.Unmarshal(args, out); err != nil {
		return domain.E(domain.CodeInvalidArgument, "", "", err)
	}
	return nil
}
