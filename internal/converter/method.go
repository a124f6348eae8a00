package converter

import (
	"fmt"
	"slices"

	"google.golang.org/protobuf/types/known/apipb"

	"skyline-samplegen/internal/apiary"
	"skyline-samplegen/internal/sampleconfig"
)

func (c *Converter) buildMethod(m *apipb.Method) (*sampleconfig.MethodInfo, error) {
	request, err := c.expandMessage(m.GetRequestTypeUrl(), m, deep)
	if err != nil {
		return nil, fmt.Errorf("request type: %w", err)
	}

	fields := sampleconfig.FieldMap{}
	var requestBody *sampleconfig.TypeInfo
	for _, name := range c.schema.MethodParams(m.GetName()) {
		field := request.Fields.Get(name)
		if field == nil {
			return nil, fmt.Errorf("%w: parameter %s.%s", apiary.ErrFieldNotFound, m.GetRequestTypeUrl(), name)
		}
		if name == apiary.RequestFieldName {
			requestBody = field.Type
			continue
		}
		fields = append(fields, field)
	}

	var responseType *sampleconfig.TypeInfo
	if url := m.GetResponseTypeUrl(); url != "" && !apiary.IsEmptyType(url) {
		responseType = c.methodType(m, false)
	}

	var (
		pageStreaming bool
		resource      *sampleconfig.FieldInfo
	)
	if responseType != nil {
		pageStreaming, resource, err = c.detectPagination(m)
		if err != nil {
			return nil, fmt.Errorf("page streaming resource: %w", err)
		}
	}

	return &sampleconfig.MethodInfo{
		NameComponents:             slices.Clone(c.nameComponents[m.GetName()]),
		Fields:                     fields,
		RequestBodyType:            requestBody,
		RequestType:                c.methodType(m, true),
		ResponseType:               responseType,
		IsPageStreaming:            pageStreaming,
		PageStreamingResourceField: resource,
		AuthScopes:                 uniqueScopes(c.schema.AuthScopes(m.GetName())),
	}, nil
}

func uniqueScopes(scopes []string) []string {
	out := make([]string, 0, len(scopes))
	seen := make(map[string]struct{}, len(scopes))
	for _, s := range scopes {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
