package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"skyline-samplegen/internal/config"
	"skyline-samplegen/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	_ = godotenv.Load()

	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "samplegen: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("samplegen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "Path to YAML config")
	discovery := fs.String("discovery", "", "Discovery document file or http(s) URL (overrides config)")
	language := fs.String("language", "", "Naming language: default, go, java, python")
	script := fs.String("naming-script", "", "TypeScript/JavaScript module overriding names")
	out := fs.String("out", "", "Output file (default stdout)")
	format := fs.String("format", "", "Output format: json or yaml")
	dumpSchema := fs.String("dump-schema", "", "Write the imported protobuf schema as JSON to this file")
	logFormat := fs.String("log-format", "", "Log format: auto, text, json")
	logLevel := fs.String("log-level", "", "Log level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.LoadPartial(*configPath)
	if err != nil {
		return err
	}
	if err := cfg.ApplyEnvOverrides(); err != nil {
		return err
	}
	if *discovery != "" {
		cfg.SetDiscovery(*discovery)
	}
	setIfNotEmpty(&cfg.Naming.Language, *language)
	setIfNotEmpty(&cfg.Naming.Script, *script)
	setIfNotEmpty(&cfg.Output.File, *out)
	setIfNotEmpty(&cfg.Output.Format, *format)
	setIfNotEmpty(&cfg.Logging.Format, *logFormat)
	setIfNotEmpty(&cfg.Logging.Level, *logLevel)
	if err := cfg.Finalize(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger, err := logging.Setup(stderr, cfg.Logging.Format, cfg.Logging.Level)
	if err != nil {
		return err
	}
	return generate(ctx, cfg, logger, stdout, *dumpSchema)
}

func setIfNotEmpty(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
