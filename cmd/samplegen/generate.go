package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"skyline-samplegen/internal/config"
	"skyline-samplegen/internal/converter"
	"skyline-samplegen/internal/filter"
	"skyline-samplegen/internal/googleapi"
	"skyline-samplegen/internal/naming"
	"skyline-samplegen/internal/redact"
	"skyline-samplegen/internal/sampleconfig"
	"skyline-samplegen/internal/store"
)

// nameCacheSize bounds the memoized script names; a discovery document has a
// few thousand types at most.
const nameCacheSize = 4096

// generate runs one conversion: import, filter, convert, encode, validate,
// write, store.
func generate(ctx context.Context, cfg *config.Config, logger *slog.Logger, stdout io.Writer, dumpSchema string) error {
	raw, err := readDiscovery(ctx, cfg.Discovery, logger)
	if err != nil {
		return err
	}
	schema, methods, err := googleapi.Import(ctx, raw)
	if err != nil {
		return err
	}
	logger.Info("imported discovery document",
		"api", schema.APIName(),
		"version", schema.APIVersion(),
		"methods", len(methods),
		"types", len(schema.TypeNames()))

	if dumpSchema != "" {
		snapshot, err := schema.MarshalSnapshot()
		if err != nil {
			return err
		}
		if err := os.WriteFile(dumpSchema, snapshot, 0o644); err != nil {
			return fmt.Errorf("write schema dump: %w", err)
		}
	}

	methods = filter.Apply(methods, cfg.Filter)
	if len(methods) == 0 {
		return fmt.Errorf("no methods left after filtering")
	}

	if cfg.Overrides.AuthType != "" || cfg.Overrides.AuthInstructionsURL != "" {
		authType := schema.AuthType()
		if cfg.Overrides.AuthType != "" {
			authType = sampleconfig.AuthType(cfg.Overrides.AuthType)
		}
		instructions := schema.AuthInstructionsURL()
		if cfg.Overrides.AuthInstructionsURL != "" {
			instructions = cfg.Overrides.AuthInstructionsURL
		}
		schema.SetAuth(authType, instructions)
	}

	names, err := naming.ForLanguage(cfg.Naming.Language)
	if err != nil {
		return err
	}
	var script *naming.ScriptStrategy
	if cfg.Naming.Script != "" {
		if script, err = naming.LoadScript(cfg.Naming.Script, names); err != nil {
			return err
		}
		if names, err = naming.Cached(script, nameCacheSize); err != nil {
			return err
		}
	}

	sample, err := converter.New(methods, schema, names, converter.WithLogger(logger)).Convert()
	if err != nil {
		return err
	}
	if script != nil {
		if err := script.Err(); err != nil {
			return err
		}
	}

	body, err := sampleconfig.Encode(sample, cfg.Output.Format)
	if err != nil {
		return err
	}
	if cfg.ValidateOutput() {
		doc := body
		if !strings.EqualFold(cfg.Output.Format, sampleconfig.FormatJSON) {
			if doc, err = sampleconfig.Encode(sample, sampleconfig.FormatJSON); err != nil {
				return err
			}
		}
		if err := sampleconfig.Validate(doc); err != nil {
			return err
		}
	}

	if err := writeOutput(cfg.Output.File, body, stdout); err != nil {
		return err
	}

	if cfg.Output.Store != "" {
		st, err := store.Open(cfg.Output.Store)
		if err != nil {
			return err
		}
		defer st.Close()
		id, err := st.Save(ctx, sample, cfg.Output.Format, body)
		if err != nil {
			return err
		}
		logger.Info("stored sample config", "id", id, "store", cfg.Output.Store)
	}
	return nil
}

func readDiscovery(ctx context.Context, src config.DiscoveryConfig, logger *slog.Logger) ([]byte, error) {
	if src.URL != "" {
		logger.Debug("fetching discovery document", "url", redact.URL(src.URL))
		fetcher := googleapi.NewFetcher(time.Duration(src.TimeoutSeconds) * time.Second)
		return fetcher.Fetch(ctx, src.URL)
	}
	data, err := os.ReadFile(src.File)
	if err != nil {
		return nil, fmt.Errorf("read discovery document: %w", err)
	}
	return data, nil
}

func writeOutput(path string, body []byte, stdout io.Writer) error {
	if path == "" || path == "-" {
		_, err := stdout.Write(body)
		return err
	}
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
