// Package apiary holds the read-only schema a conversion runs against: the
// protobuf descriptions of every type and method imported from a discovery
// document, together with the metadata the protobuf descriptors cannot carry
// (field descriptions, map entries, auth scopes, API identity).
package apiary

import (
	"errors"
	"fmt"
	"strings"

	"google.golang.org/protobuf/types/known/apipb"
	"google.golang.org/protobuf/types/known/typepb"

	"skyline-samplegen/internal/sampleconfig"
)

var (
	ErrTypeNotFound  = errors.New("type not found")
	ErrFieldNotFound = errors.New("field not found")
)

const typeURLPrefix = "type.googleapis.com/"

// Schema is the lookup surface the converter needs. Implementations must not
// change while a conversion is running.
type Schema interface {
	APITitle() string
	APIName() string
	APIVersion() string
	AuthType() sampleconfig.AuthType
	AuthInstructionsURL() string

	// Type returns nil when no type is registered under url.
	Type(url string) *typepb.Type
	Field(t *typepb.Type, name string) (*typepb.Field, error)
	// Description returns "" when the field has no description.
	Description(typeURL, fieldName string) string
	// AdditionalProperties returns the map entry type of the field, or nil
	// when the field is not a map.
	AdditionalProperties(typeURL, fieldName string) *typepb.Type
	MethodParams(methodName string) []string
	AuthScopes(methodName string) []string
}

type fieldKey struct {
	typeName  string
	fieldName string
}

// Config is the in-memory Schema built by an importer.
type Config struct {
	title   string
	name    string
	version string

	authType            sampleconfig.AuthType
	authInstructionsURL string

	types        map[string]*typepb.Type
	typeOrder    []string
	methods      []*apipb.Method
	params       map[string][]string
	scopes       map[string][]string
	descriptions map[fieldKey]string
	additional   map[fieldKey]*typepb.Type
}

func NewConfig(title, name, version string) *Config {
	return &Config{
		title:        title,
		name:         name,
		version:      version,
		authType:     sampleconfig.AuthNone,
		types:        map[string]*typepb.Type{},
		params:       map[string][]string{},
		scopes:       map[string][]string{},
		descriptions: map[fieldKey]string{},
		additional:   map[fieldKey]*typepb.Type{},
	}
}

func (c *Config) APITitle() string                       { return c.title }
func (c *Config) APIName() string                        { return c.name }
func (c *Config) APIVersion() string                     { return c.version }
func (c *Config) AuthType() sampleconfig.AuthType        { return c.authType }
func (c *Config) AuthInstructionsURL() string            { return c.authInstructionsURL }
func (c *Config) MethodParams(methodName string) []string { return c.params[methodName] }
func (c *Config) AuthScopes(methodName string) []string   { return c.scopes[methodName] }

// SetAuth records how callers authenticate against the API.
func (c *Config) SetAuth(authType sampleconfig.AuthType, instructionsURL string) {
	c.authType = authType
	c.authInstructionsURL = instructionsURL
}

// AddType registers t under its name. A later registration with the same name
// replaces the earlier one but keeps its position.
func (c *Config) AddType(t *typepb.Type) {
	if _, ok := c.types[t.GetName()]; !ok {
		c.typeOrder = append(c.typeOrder, t.GetName())
	}
	c.types[t.GetName()] = t
}

// AddMethod registers m with its ordered parameter names.
func (c *Config) AddMethod(m *apipb.Method, params []string) {
	c.methods = append(c.methods, m)
	c.params[m.GetName()] = params
}

func (c *Config) SetAuthScopes(methodName string, scopes []string) {
	c.scopes[methodName] = scopes
}

func (c *Config) SetDescription(typeName, fieldName, description string) {
	c.descriptions[fieldKey{typeName, fieldName}] = description
}

func (c *Config) SetAdditionalProperties(typeName, fieldName string, entry *typepb.Type) {
	c.additional[fieldKey{typeName, fieldName}] = entry
}

// Methods returns the registered methods in registration order.
func (c *Config) Methods() []*apipb.Method {
	return c.methods
}

// TypeNames returns the registered type names in registration order.
func (c *Config) TypeNames() []string {
	return c.typeOrder
}

func (c *Config) Type(url string) *typepb.Type {
	return c.types[strings.TrimPrefix(url, typeURLPrefix)]
}

func (c *Config) Field(t *typepb.Type, name string) (*typepb.Field, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: lookup of field %q on nil type", ErrTypeNotFound, name)
	}
	for _, f := range t.GetFields() {
		if f.GetName() == name {
			return f, nil
		}
	}
	return nil, fmt.Errorf("%w: %s.%s", ErrFieldNotFound, t.GetName(), name)
}

func (c *Config) Description(typeURL, fieldName string) string {
	return c.descriptions[fieldKey{strings.TrimPrefix(typeURL, typeURLPrefix), fieldName}]
}

func (c *Config) AdditionalProperties(typeURL, fieldName string) *typepb.Type {
	return c.additional[fieldKey{strings.TrimPrefix(typeURL, typeURLPrefix), fieldName}]
}
