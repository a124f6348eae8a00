package googleapi

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"google.golang.org/protobuf/types/known/apipb"
	"google.golang.org/protobuf/types/known/typepb"

	"skyline-samplegen/internal/apiary"
	"skyline-samplegen/internal/sampleconfig"
)

// anyTypeName is the message used for untyped ("any") schemas.
const anyTypeName = "google.protobuf.Value"

// LooksLikeDiscovery reports whether payload appears to be a Google API Discovery document.
func LooksLikeDiscovery(raw []byte) bool {
	var payload struct {
		Kind string `json:"kind"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return false
	}
	return strings.HasPrefix(strings.ToLower(payload.Kind), "discovery#")
}

// Import lowers a discovery document into protobuf types and methods.
//
// Every method gets a synthetic request type named "<method id>$Request"
// holding its parameters, required ones (parameterOrder) first, followed by a
// request$ field when the method takes a body. Methods without a response
// body respond with empty$. Inline object schemas become types named
// "<parent>.<property>"; additionalProperties become map entry types of the
// same name with key and value fields.
func Import(ctx context.Context, raw []byte) (*apiary.Config, []*apipb.Method, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	var doc DiscoveryDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, nil, fmt.Errorf("google discovery: parse failed: %w", err)
	}
	if doc.Name == "" {
		return nil, nil, fmt.Errorf("google discovery: api name missing")
	}

	cfg := apiary.NewConfig(doc.Title, doc.Name, doc.Version)
	cfg.SetAuth(authType(&doc), doc.DocumentationLink)
	b := &typeBuilder{cfg: cfg}

	for _, name := range doc.Schemas.Keys {
		schema := doc.Schemas.Values[name]
		if schema == nil {
			continue
		}
		id := schema.ID
		if id == "" {
			id = name
		}
		if err := b.addSchema(id, schema); err != nil {
			return nil, nil, fmt.Errorf("google discovery: schema %s: %w", id, err)
		}
	}

	var entries []methodEntry
	entries = append(entries, collectMethods("", doc.Methods)...)
	for _, name := range doc.Resources.Keys {
		entries = append(entries, collectResourceMethods(name, doc.Resources.Values[name])...)
	}
	if len(entries) == 0 {
		return nil, nil, fmt.Errorf("google discovery: no methods found")
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].FullName < entries[j].FullName
	})

	methods := make([]*apipb.Method, 0, len(entries))
	for _, entry := range entries {
		m, err := b.addMethod(doc.Name, entry)
		if err != nil {
			return nil, nil, fmt.Errorf("google discovery: method %s: %w", entry.FullName, err)
		}
		methods = append(methods, m)
	}
	return cfg, methods, nil
}

func authType(doc *DiscoveryDoc) sampleconfig.AuthType {
	if doc.Auth != nil && doc.Auth.OAuth2 != nil && doc.Auth.OAuth2.Scopes.Len() > 0 {
		return sampleconfig.AuthOAuth3L
	}
	if _, ok := doc.Parameters.Values["key"]; ok {
		return sampleconfig.AuthAPIKey
	}
	return sampleconfig.AuthNone
}

type methodEntry struct {
	FullName string
	Method   *DiscoveryMethod
}

func collectResourceMethods(prefix string, res *DiscoveryResource) []methodEntry {
	if res == nil {
		return nil
	}
	entries := collectMethods(prefix, res.Methods)
	for _, name := range res.Resources.Keys {
		entries = append(entries, collectResourceMethods(prefix+"."+name, res.Resources.Values[name])...)
	}
	return entries
}

func collectMethods(prefix string, methods Ordered[*DiscoveryMethod]) []methodEntry {
	var entries []methodEntry
	for _, name := range methods.Keys {
		full := name
		if prefix != "" {
			full = prefix + "." + name
		}
		entries = append(entries, methodEntry{FullName: full, Method: methods.Values[name]})
	}
	return entries
}

type typeBuilder struct {
	cfg        *apiary.Config
	anyDefined bool
}

func (b *typeBuilder) addMethod(apiName string, entry methodEntry) (*apipb.Method, error) {
	method := entry.Method
	if method == nil {
		return nil, fmt.Errorf("nil method")
	}
	id := method.ID
	if id == "" {
		id = apiName + "." + entry.FullName
	}

	requestName := id + "$Request"
	request := &typepb.Type{Name: requestName}
	params := parameterOrder(method)
	for _, name := range params {
		p := method.Parameters.Values[name]
		field, err := b.paramField(requestName, name, p)
		if err != nil {
			return nil, fmt.Errorf("parameter %s: %w", name, err)
		}
		field.Number = int32(len(request.Fields) + 1)
		request.Fields = append(request.Fields, field)
		if p.Description != "" {
			b.cfg.SetDescription(requestName, name, p.Description)
		}
	}
	if method.Request != nil && method.Request.Ref != "" {
		request.Fields = append(request.Fields, &typepb.Field{
			Name:        apiary.RequestFieldName,
			Kind:        typepb.Field_TYPE_MESSAGE,
			Cardinality: typepb.Field_CARDINALITY_OPTIONAL,
			Number:      int32(len(request.Fields) + 1),
			TypeUrl:     method.Request.Ref,
		})
		if method.Request.Description != "" {
			b.cfg.SetDescription(requestName, apiary.RequestFieldName, method.Request.Description)
		}
		params = append(params, apiary.RequestFieldName)
	}
	b.cfg.AddType(request)

	response := apiary.EmptyTypeName
	if method.Response != nil && method.Response.Ref != "" {
		response = method.Response.Ref
	}
	m := &apipb.Method{
		Name:            id,
		RequestTypeUrl:  requestName,
		ResponseTypeUrl: response,
	}
	b.cfg.AddMethod(m, params)
	b.cfg.SetAuthScopes(id, method.Scopes)
	return m, nil
}

// parameterOrder lists required parameters in their declared order, then the
// rest in document order.
func parameterOrder(method *DiscoveryMethod) []string {
	order := make([]string, 0, method.Parameters.Len())
	seen := map[string]bool{}
	for _, name := range method.ParameterOrder {
		if _, ok := method.Parameters.Values[name]; ok && !seen[name] {
			order = append(order, name)
			seen[name] = true
		}
	}
	for _, name := range method.Parameters.Keys {
		if !seen[name] && method.Parameters.Values[name] != nil {
			order = append(order, name)
			seen[name] = true
		}
	}
	return order
}

func (b *typeBuilder) paramField(parent, name string, p *DiscoveryParam) (*typepb.Field, error) {
	if p.Type == "array" && p.Items != nil {
		field, err := b.schemaField(parent, name, p.Items)
		if err != nil {
			return nil, err
		}
		field.Cardinality = typepb.Field_CARDINALITY_REPEATED
		return field, nil
	}
	if p.Type == "object" || p.Type == "any" {
		return b.schemaField(parent, name, &DiscoverySchema{Type: p.Type})
	}
	kind, err := scalarKind(p.Type, p.Format)
	if err != nil {
		return nil, err
	}
	field := &typepb.Field{
		Name:        name,
		Kind:        kind,
		Cardinality: typepb.Field_CARDINALITY_OPTIONAL,
	}
	if p.Repeated {
		field.Cardinality = typepb.Field_CARDINALITY_REPEATED
	}
	return field, nil
}

func (b *typeBuilder) addSchema(name string, schema *DiscoverySchema) error {
	t := &typepb.Type{Name: name}
	for _, prop := range schema.Properties.Keys {
		ps := schema.Properties.Values[prop]
		if ps == nil {
			continue
		}
		field, err := b.schemaField(name, prop, ps)
		if err != nil {
			return fmt.Errorf("property %s: %w", prop, err)
		}
		field.Number = int32(len(t.Fields) + 1)
		t.Fields = append(t.Fields, field)
		if ps.Description != "" {
			b.cfg.SetDescription(name, prop, ps.Description)
		}
	}
	b.cfg.AddType(t)
	return nil
}

// schemaField converts the schema of property prop of parent, registering any
// types it declares inline.
func (b *typeBuilder) schemaField(parent, prop string, s *DiscoverySchema) (*typepb.Field, error) {
	field := &typepb.Field{
		Name:        prop,
		Cardinality: typepb.Field_CARDINALITY_OPTIONAL,
	}
	switch {
	case s.Ref != "":
		field.Kind = typepb.Field_TYPE_MESSAGE
		field.TypeUrl = s.Ref
	case s.Type == "array":
		items := s.Items
		if items == nil {
			items = &DiscoverySchema{Type: "any"}
		}
		inner, err := b.schemaField(parent, prop, items)
		if err != nil {
			return nil, err
		}
		field.Kind = inner.Kind
		field.TypeUrl = inner.TypeUrl
		field.Cardinality = typepb.Field_CARDINALITY_REPEATED
	case s.Type == "object" && s.AdditionalProperties != nil:
		entryName := parent + "." + prop
		value, err := b.schemaField(entryName, apiary.ValueFieldName, s.AdditionalProperties)
		if err != nil {
			return nil, err
		}
		value.Number = 2
		entry := &typepb.Type{
			Name: entryName,
			Fields: []*typepb.Field{
				{
					Name:        apiary.KeyFieldName,
					Kind:        typepb.Field_TYPE_STRING,
					Cardinality: typepb.Field_CARDINALITY_OPTIONAL,
					Number:      1,
				},
				value,
			},
		}
		b.cfg.AddType(entry)
		b.cfg.SetAdditionalProperties(parent, prop, entry)
		field.Kind = typepb.Field_TYPE_MESSAGE
		field.TypeUrl = entryName
		field.Cardinality = typepb.Field_CARDINALITY_REPEATED
	case s.Type == "object" && s.Properties.Len() > 0:
		nested := parent + "." + prop
		if err := b.addSchema(nested, s); err != nil {
			return nil, err
		}
		field.Kind = typepb.Field_TYPE_MESSAGE
		field.TypeUrl = nested
	case s.Type == "object" || s.Type == "any" || s.Type == "":
		field.Kind = typepb.Field_TYPE_MESSAGE
		field.TypeUrl = b.anyType()
	default:
		kind, err := scalarKind(s.Type, s.Format)
		if err != nil {
			return nil, err
		}
		field.Kind = kind
	}
	return field, nil
}

func (b *typeBuilder) anyType() string {
	if !b.anyDefined {
		b.cfg.AddType(&typepb.Type{Name: anyTypeName})
		b.anyDefined = true
	}
	return anyTypeName
}

// scalarKind maps a discovery type and format to a protobuf kind. 64-bit
// integers travel as strings in discovery documents and are recognized by
// their format.
func scalarKind(typ, format string) (typepb.Field_Kind, error) {
	switch typ {
	case "string", "":
		switch format {
		case "int64":
			return typepb.Field_TYPE_INT64, nil
		case "uint64":
			return typepb.Field_TYPE_UINT64, nil
		case "byte":
			return typepb.Field_TYPE_BYTES, nil
		}
		return typepb.Field_TYPE_STRING, nil
	case "integer":
		switch format {
		case "uint32":
			return typepb.Field_TYPE_UINT32, nil
		case "int64":
			return typepb.Field_TYPE_INT64, nil
		}
		return typepb.Field_TYPE_INT32, nil
	case "number":
		if format == "float" {
			return typepb.Field_TYPE_FLOAT, nil
		}
		return typepb.Field_TYPE_DOUBLE, nil
	case "boolean":
		return typepb.Field_TYPE_BOOL, nil
	default:
		return typepb.Field_TYPE_UNKNOWN, fmt.Errorf("unsupported type %q", typ)
	}
}
