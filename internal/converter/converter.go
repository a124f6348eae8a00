// Package converter lowers an imported discovery schema into a
// sampleconfig.SampleConfig. It classifies every field as scalar, array, map
// or message, names request and response types, and guesses which methods
// are paginated.
//
// Message types are expanded at most one level deep: the request type of a
// method is expanded into its parameters, and every message reached from
// there is described by name only. Cyclic type graphs therefore terminate
// without any bookkeeping.
package converter

import (
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/protobuf/types/known/apipb"

	"skyline-samplegen/internal/apiary"
	"skyline-samplegen/internal/logging"
	"skyline-samplegen/internal/naming"
	"skyline-samplegen/internal/sampleconfig"
)

// Converter turns a fixed set of methods into a SampleConfig. It reads the
// schema and naming strategy but never modifies them.
type Converter struct {
	methods []*apipb.Method
	schema  apiary.Schema
	names   naming.Strategy
	logger  *slog.Logger

	// nameComponents holds each method's name split on "." without the API
	// name, computed once so request type names and MethodInfo agree.
	nameComponents map[string][]string
}

// Option configures a Converter.
type Option func(*Converter)

// WithLogger sets the logger for progress messages. Nil keeps the default,
// which discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Converter) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New returns a Converter for methods, resolved against schema and named by
// names.
func New(methods []*apipb.Method, schema apiary.Schema, names naming.Strategy, opts ...Option) *Converter {
	c := &Converter{
		methods:        methods,
		schema:         schema,
		names:          names,
		logger:         logging.Discard(),
		nameComponents: make(map[string][]string, len(methods)),
	}
	for _, opt := range opts {
		opt(c)
	}
	for _, m := range methods {
		c.nameComponents[m.GetName()] = splitMethodName(m.GetName())
	}
	return c
}

func splitMethodName(name string) []string {
	parts := strings.Split(name, ".")
	return parts[1:]
}

// Convert builds the configuration for every method. The first malformed
// reference aborts the run and no configuration is returned.
func (c *Converter) Convert() (*sampleconfig.SampleConfig, error) {
	apiName := c.schema.APIName()
	apiVersion := c.schema.APIVersion()

	methods := make(map[string]*sampleconfig.MethodInfo, len(c.methods))
	for _, m := range c.methods {
		info, err := c.buildMethod(m)
		if err != nil {
			return nil, fmt.Errorf("convert method %s: %w", m.GetName(), err)
		}
		methods[m.GetName()] = info
		c.logger.Debug("converted method",
			"method", m.GetName(),
			"fields", len(info.Fields),
			"page_streaming", info.IsPageStreaming)
	}
	c.logger.Info("conversion complete", "api", apiName, "version", apiVersion, "methods", len(methods))

	return &sampleconfig.SampleConfig{
		APITitle:            c.schema.APITitle(),
		APIName:             apiName,
		APIVersion:          apiVersion,
		APITypeName:         c.names.APITypeName(apiName),
		PackagePrefix:       c.names.PackagePrefix(apiName, apiVersion),
		Methods:             methods,
		AuthType:            c.schema.AuthType(),
		AuthInstructionsURL: c.schema.AuthInstructionsURL(),
	}, nil
}
