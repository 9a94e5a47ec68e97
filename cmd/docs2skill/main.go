package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"
	"github.com/jcharovsky/docs2skill"
	"github.com/jcharovsky/docs2skill/crawl"
	"github.com/jcharovsky/docs2skill/fs"
	"github.com/jcharovsky/docs2skill/htmltomarkdown"
	d2shttp "github.com/jcharovsky/docs2skill/http"
	"github.com/jcharovsky/docs2skill/llm"
	"github.com/jcharovsky/docs2skill/skill"
	d2sslog "github.com/jcharovsky/docs2skill/slog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docs2skill"),
		kong.Description("Archive the pages linked from a documentation URL and generate a SKILL.md for them"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	if docs2skill.DomainToken(cli.URL) == "" {
		return fmt.Errorf("invalid URL %q: expected an absolute http(s) URL", cli.URL)
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})).
		With("run", uuid.NewString())

	timeout := cli.Timeout
	if timeout == 0 {
		timeout = d2shttp.DefaultFetchTimeout
	}

	fetcher := d2sslog.NewLoggingFetcher(d2shttp.NewFetcher(d2shttp.WithTimeout(timeout)), logger)
	limiter := crawl.NewDomainLimiter(cli.Rate)

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Collector: &crawl.Collector{
			Fetcher:     fetcher,
			RateLimiter: limiter,
			Logger:      logger,
		},
		Archiver: &crawl.Archiver{
			Fetcher:     fetcher,
			Converter:   htmltomarkdown.NewConverter(),
			RateLimiter: limiter,
			Logger:      logger,
		},
		CreateBundle: func(path string) (docs2skill.Bundle, error) {
			return fs.CreateBundle(path)
		},
	}

	if !cli.NoSkill {
		deps.Finalizer = &skill.Finalizer{
			Gateway: d2sslog.NewLoggingGateway(llm.NewGateway(llm.WithTimeout(llm.DefaultTimeout)), logger),
			Config:  docs2skill.NewProviderConfig(cli.Provider, cli.APIKey, cli.Model, cli.Endpoint),
			Logger:  logger,
		}
	}

	cmd := &SkillCmd{
		URL:        cli.URL,
		Output:     cli.Output,
		AllDomains: cli.AllDomains,
		Preview:    cli.Preview,
		NoSkill:    cli.NoSkill,
	}

	return cmd.Run(deps)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	URL        string        `arg:"" required:"" help:"Page whose links should be archived"`
	Output     string        `short:"o" help:"Bundle directory (default: ../<domain>)"`
	AllDomains bool          `name:"all-domains" help:"Follow links to other hosts too"`
	Preview    bool          `short:"p" help:"Print the links that would be archived and exit"`
	Timeout    time.Duration `short:"t" default:"10s" help:"Fetch timeout per page"`
	Rate       float64       `default:"0" help:"Maximum requests per second per host (0 = unlimited)"`
	NoSkill    bool          `name:"no-skill" help:"Skip SKILL.md generation"`
	Verbose    bool          `short:"v" help:"Enable debug logging"`

	Provider string `env:"LLM_PROVIDER" default:"anthropic" help:"LLM provider (anthropic, openai, openrouter, gemini, grok, ollama)"`
	APIKey   string `name:"api-key" env:"LLM_API_KEY" help:"LLM provider API key"`
	Model    string `env:"LLM_MODEL" default:"claude-3-5-sonnet-20241022" help:"Model name"`
	Endpoint string `env:"LLM_ENDPOINT" help:"Override the provider endpoint URL"`
}
