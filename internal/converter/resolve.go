package converter

import (
	"fmt"

	"google.golang.org/protobuf/types/known/apipb"
	"google.golang.org/protobuf/types/known/typepb"

	"skyline-samplegen/internal/apiary"
	"skyline-samplegen/internal/sampleconfig"
)

// Expansion depth. Only buildMethod asks for deep; everything resolved
// beneath a deep expansion is shallow.
const (
	shallow = 0
	deep    = 1
)

// fieldInfo describes f as seen from method m. Descriptions are always looked
// up on the method's request type.
func (c *Converter) fieldInfo(f *typepb.Field, m *apipb.Method, depth int) (*sampleconfig.FieldInfo, error) {
	t, err := c.resolveField(f, m, depth)
	if err != nil {
		return nil, err
	}
	return &sampleconfig.FieldInfo{
		Name:        f.GetName(),
		Description: c.schema.Description(m.GetRequestTypeUrl(), f.GetName()),
		Type:        t,
	}, nil
}

// resolveField classifies f. A map declared on the method's response type wins
// over repeated cardinality; message kinds are then expanded to depth.
func (c *Converter) resolveField(f *typepb.Field, m *apipb.Method, depth int) (*sampleconfig.TypeInfo, error) {
	info := &sampleconfig.TypeInfo{Kind: sampleconfig.Kind(f.GetKind())}

	if c.schema.AdditionalProperties(m.GetResponseTypeUrl(), f.GetName()) != nil {
		entry := c.schema.Type(f.GetTypeUrl())
		if entry == nil {
			return nil, fmt.Errorf("%w: %s (map entry of %s)", apiary.ErrTypeNotFound, f.GetTypeUrl(), f.GetName())
		}
		key, err := c.schema.Field(entry, apiary.KeyFieldName)
		if err != nil {
			return nil, err
		}
		value, err := c.schema.Field(entry, apiary.ValueFieldName)
		if err != nil {
			return nil, err
		}
		info.IsMap = true
		if info.MapKey, err = c.resolveField(key, m, shallow); err != nil {
			return nil, err
		}
		if info.MapValue, err = c.resolveField(value, m, shallow); err != nil {
			return nil, err
		}
		return info, nil
	}

	info.IsArray = f.GetCardinality() == typepb.Field_CARDINALITY_REPEATED
	if f.GetKind() == typepb.Field_TYPE_MESSAGE {
		msg, err := c.expandMessage(f.GetTypeUrl(), m, depth)
		if err != nil {
			return nil, err
		}
		info.IsMessage = true
		info.Message = msg
	}
	return info, nil
}

// methodType describes the request or response message of m. It never carries
// fields; consumers that need members go through the method's field map.
func (c *Converter) methodType(m *apipb.Method, isRequest bool) *sampleconfig.TypeInfo {
	var typeName string
	if isRequest {
		typeName = c.names.RequestTypeName(c.nameComponents[m.GetName()])
	} else {
		typeName = c.names.MessageTypeName(m.GetResponseTypeUrl())
	}
	return &sampleconfig.TypeInfo{
		Kind:      sampleconfig.Kind(typepb.Field_TYPE_MESSAGE),
		IsMessage: true,
		Message: &sampleconfig.MessageTypeInfo{
			TypeName:   typeName,
			Subpackage: c.names.Subpackage(isRequest),
			Fields:     sampleconfig.FieldMap{},
		},
	}
}
