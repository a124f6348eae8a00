package converter

import (
	"fmt"

	"google.golang.org/protobuf/types/known/apipb"

	"skyline-samplegen/internal/apiary"
	"skyline-samplegen/internal/sampleconfig"
)

// expandMessage names the message at typeURL. At depth deep it also resolves
// every declared field, each of them shallow.
func (c *Converter) expandMessage(typeURL string, m *apipb.Method, depth int) (*sampleconfig.MessageTypeInfo, error) {
	t := c.schema.Type(typeURL)
	if t == nil {
		return nil, fmt.Errorf("%w: %s", apiary.ErrTypeNotFound, typeURL)
	}
	msg := &sampleconfig.MessageTypeInfo{
		TypeName:   c.names.MessageTypeName(typeURL),
		Subpackage: c.names.Subpackage(false),
		Fields:     sampleconfig.FieldMap{},
	}
	if depth <= shallow {
		return msg, nil
	}
	for _, f := range t.GetFields() {
		info, err := c.fieldInfo(f, m, depth-1)
		if err != nil {
			return nil, fmt.Errorf("field %s.%s: %w", t.GetName(), f.GetName(), err)
		}
		msg.Fields = append(msg.Fields, info)
	}
	return msg, nil
}
