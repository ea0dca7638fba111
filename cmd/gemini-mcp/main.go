// Command gemini-mcp connects a Gemini model to an MCP tool server and
// runs the configured demo queries through the tool-calling loop.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/saimohit20/gemini-mcp-tools/config"
	"github.com/saimohit20/gemini-mcp-tools/mcptools"
	"github.com/saimohit20/gemini-mcp-tools/orchestrator"
	"github.com/saimohit20/gemini-mcp-tools/pkg/llms"
	"github.com/saimohit20/gemini-mcp-tools/pkg/llms/googleai"
)

func main() {
	cfgPath := flag.String("cfg", "config.toml", "path to the configuration file")
	endpoint := flag.String("server", "", "tool server endpoint, overrides the configuration")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, *cfgPath, *endpoint, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "gemini-mcp: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfgPath, endpoint string, queries []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if endpoint != "" {
		cfg.Server.Endpoint = endpoint
	}
	if len(queries) == 0 {
		queries = cfg.Demo.Queries
	}

	model, err := googleai.New(ctx,
		googleai.WithDefaultModel(cfg.Model.Name),
		googleai.WithAPIKey(cfg.Model.APIKey),
	)
	if err != nil {
		return err
	}

	session, err := mcptools.Connect(ctx, cfg.Server.Endpoint)
	if err != nil {
		return err
	}
	defer session.Close()

	opts := []orchestrator.Option{
		orchestrator.WithCallOptions(
			llms.WithTemperature(cfg.Model.Temperature),
			llms.WithMaxTokens(cfg.Model.MaxTokens),
		),
	}
	if cfg.Model.SystemPrompt != "" {
		opts = append(opts, orchestrator.WithSystemPrompt(cfg.Model.SystemPrompt))
	}
	orc := orchestrator.New(model, session, opts...)

	for _, query := range queries {
		fmt.Printf("\nQuery: %s\n", query)
		answer, err := orc.ProcessQuery(ctx, query)
		if err != nil {
			return err
		}
		fmt.Printf("Response: %s\n", answer)
	}
	return nil
}
