package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/schynno0/studio/internal/config"
	"github.com/schynno0/studio/internal/flows"
	"github.com/schynno0/studio/internal/forms"
	"github.com/schynno0/studio/internal/labclient"
	"github.com/schynno0/studio/internal/llm"
	"github.com/schynno0/studio/internal/logger"
	"github.com/schynno0/studio/internal/tui"
	"github.com/spf13/cobra"
)

type options struct {
	endpoint string
	local    bool
	timeout  time.Duration
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "studio",
		Short: "Studio - terminal AI lab",
		Long: `Studio runs the AI lab tools from the terminal: explain code, generate
code, summarize a topic, grade a resume and suggest projects.

By default the tools call a studio server (STUDIO_API_ENDPOINT). With
--local they run in-process using the server's LLM_* settings.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLab(cmd.Context(), opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.endpoint, "endpoint", "", "Studio server URL (default: $STUDIO_API_ENDPOINT)")
	cmd.PersistentFlags().BoolVar(&opts.local, "local", false, "Run the flows in-process instead of calling a server")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 0, "Per-submission timeout (default: $STUDIO_CLIENT_TIMEOUT)")

	cmd.AddCommand(newToolsCommand(opts))

	return cmd
}

func newToolsCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List the lab tools and their field rules",
		RunE: func(cmd *cobra.Command, _ []string) error {
			tools, err := listTools(cmd.Context(), opts)
			if err != nil {
				return err
			}

			printTools(cmd.OutOrStdout(), tools)

			return nil
		},
	}
}

func runLab(ctx context.Context, opts *options) error {
	backend, mode, clientCfg, err := newBackend(ctx, opts)
	if err != nil {
		return err
	}

	set := forms.NewSet(backend, forms.WithTimeout(clientCfg.Timeout))

	p := tea.NewProgram(tui.NewApp(mode, set), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui failed: %w", err)
	}

	return nil
}

// picks the in-process flows or the REST client and describes the choice
func newBackend(ctx context.Context, opts *options) (forms.Backend, string, *config.ClientConfig, error) {
	clientCfg, err := clientConfig(opts)
	if err != nil {
		return nil, "", nil, err
	}

	if opts.local {
		registry, provider, err := localRegistry()
		if err != nil {
			return nil, "", nil, err
		}

		return forms.LocalBackend{Registry: registry}, "local " + provider, clientCfg, nil
	}

	client := labclient.New(clientCfg)

	if _, err := client.Health(ctx); err != nil {
		return nil, "", nil, fmt.Errorf("cannot reach studio server at %s (use --local to run without one): %w", clientCfg.Endpoint, err)
	}

	return client, clientCfg.Environment + " " + clientCfg.Endpoint, clientCfg, nil
}

func clientConfig(opts *options) (*config.ClientConfig, error) {
	cfg, err := config.LoadClientConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if opts.endpoint != "" {
		cfg.Endpoint = opts.endpoint
	}

	if opts.timeout > 0 {
		cfg.Timeout = opts.timeout
	}

	return cfg, nil
}

func localRegistry() (*flows.Registry, string, error) {
	cfg, err := config.LoadEnvironmentVariables()
	if err != nil {
		return nil, "", fmt.Errorf("failed to load configuration: %w", err)
	}

	// the alt screen owns the terminal, keep flow logs to errors
	logger.Configure(cfg.Environment, "error")

	generator, err := llm.NewGenerator(cfg.LLM)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create LLM client: %w", err)
	}

	if err := flows.UseSampleReplies(generator); err != nil {
		return nil, "", err
	}

	registry, err := flows.NewRegistry(generator, flows.WithTimeout(cfg.FlowTimeout))
	if err != nil {
		return nil, "", fmt.Errorf("failed to create flows: %w", err)
	}

	return registry, cfg.LLM.Provider, nil
}

func listTools(ctx context.Context, opts *options) ([]flows.ToolInfo, error) {
	if opts.local {
		registry, _, err := localRegistry()
		if err != nil {
			return nil, err
		}
		return registry.Describe(), nil
	}

	cfg, err := clientConfig(opts)
	if err != nil {
		return nil, err
	}

	return labclient.New(cfg).Tools(ctx)
}

func printTools(w io.Writer, tools []flows.ToolInfo) {
	for _, t := range tools {
		fmt.Fprintf(w, "%s - %s\n", t.Name, t.Title)
		if t.Description != "" {
			fmt.Fprintf(w, "  %s\n", t.Description)
		}

		for _, f := range t.Fields {
			rules := f.Rules
			if f.Optional {
				rules = strings.TrimPrefix(strings.TrimPrefix(rules, "omitempty"), ",")
				if rules == "" {
					rules = "optional"
				} else {
					rules = "optional," + rules
				}
			}
			fmt.Fprintf(w, "  %-20s %-24s %s\n", f.Name, f.Label, rules)
		}

		fmt.Fprintln(w)
	}
}
