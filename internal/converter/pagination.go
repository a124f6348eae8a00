package converter

import (
	"google.golang.org/protobuf/types/known/apipb"
	"google.golang.org/protobuf/types/known/typepb"

	"skyline-samplegen/internal/apiary"
	"skyline-samplegen/internal/sampleconfig"
)

// detectPagination is a best-effort guess. A response type with a
// nextPageToken field is taken to be one page of results, and its first
// repeated field is taken to hold them. Both guesses can be wrong; the
// renderer's overrides correct them. A paginated method with no repeated
// field is reported with a nil resource.
func (c *Converter) detectPagination(m *apipb.Method) (bool, *sampleconfig.FieldInfo, error) {
	t := c.schema.Type(m.GetResponseTypeUrl())
	if t == nil || !hasField(t, apiary.NextPageTokenFieldName) {
		return false, nil, nil
	}
	for _, f := range t.GetFields() {
		if f.GetCardinality() != typepb.Field_CARDINALITY_REPEATED {
			continue
		}
		resource, err := c.fieldInfo(f, m, shallow)
		if err != nil {
			return false, nil, err
		}
		return true, resource, nil
	}
	return true, nil, nil
}

func hasField(t *typepb.Type, name string) bool {
	for _, f := range t.GetFields() {
		if f.GetName() == name {
			return true
		}
	}
	return false
}
