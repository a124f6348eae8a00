package googleapi

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// DiscoveryDoc is the part of a Google API Discovery document the importer
// reads. Ordered fields keep their declaration order.
type DiscoveryDoc struct {
	Kind              string                      `json:"kind"`
	ID                string                      `json:"id"`
	Name              string                      `json:"name"`
	Version           string                      `json:"version"`
	Title             string                      `json:"title"`
	Description       string                      `json:"description"`
	DocumentationLink string                      `json:"documentationLink"`
	RootURL           string                      `json:"rootUrl"`
	ServicePath       string                      `json:"servicePath"`
	BaseURL           string                      `json:"baseUrl"`
	Auth              *DiscoveryAuth              `json:"auth"`
	Parameters        Ordered[*DiscoveryParam]    `json:"parameters"`
	Schemas           Ordered[*DiscoverySchema]   `json:"schemas"`
	Resources         Ordered[*DiscoveryResource] `json:"resources"`
	Methods           Ordered[*DiscoveryMethod]   `json:"methods"`
}

type DiscoveryAuth struct {
	OAuth2 *DiscoveryOAuth2 `json:"oauth2"`
}

type DiscoveryOAuth2 struct {
	Scopes Ordered[*ScopeInfo] `json:"scopes"`
}

type ScopeInfo struct {
	Description string `json:"description"`
}

type DiscoveryResource struct {
	Resources Ordered[*DiscoveryResource] `json:"resources"`
	Methods   Ordered[*DiscoveryMethod]   `json:"methods"`
}

type DiscoveryMethod struct {
	ID             string                   `json:"id"`
	Path           string                   `json:"path"`
	HTTPMethod     string                   `json:"httpMethod"`
	Description    string                   `json:"description"`
	Parameters     Ordered[*DiscoveryParam] `json:"parameters"`
	ParameterOrder []string                 `json:"parameterOrder"`
	Request        *SchemaRef               `json:"request"`
	Response       *SchemaRef               `json:"response"`
	Scopes         []string                 `json:"scopes"`
}

type DiscoveryParam struct {
	Location    string           `json:"location"`
	Type        string           `json:"type"`
	Format      string           `json:"format"`
	Description string           `json:"description"`
	Enum        []string         `json:"enum"`
	Required    bool             `json:"required"`
	Repeated    bool             `json:"repeated"`
	Items       *DiscoverySchema `json:"items"`
}

type SchemaRef struct {
	Ref           string `json:"$ref"`
	Description   string `json:"description"`
	ParameterName string `json:"parameterName"`
}

type DiscoverySchema struct {
	ID                   string                    `json:"id"`
	Ref                  string                    `json:"$ref"`
	Type                 string                    `json:"type"`
	Format               string                    `json:"format"`
	Description          string                    `json:"description"`
	Enum                 []string                  `json:"enum"`
	Properties           Ordered[*DiscoverySchema] `json:"properties"`
	Items                *DiscoverySchema          `json:"items"`
	AdditionalProperties *DiscoverySchema          `json:"additionalProperties"`
}

// Ordered is a JSON object decoded with its key order intact.
type Ordered[T any] struct {
	Keys   []string
	Values map[string]T
}

func (o *Ordered[T]) UnmarshalJSON(data []byte) error {
	o.Keys = nil
	o.Values = map[string]T{}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected an object, got %v", tok)
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key := tok.(string)
		var v T
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		if _, dup := o.Values[key]; !dup {
			o.Keys = append(o.Keys, key)
		}
		o.Values[key] = v
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// Len reports the number of keys.
func (o Ordered[T]) Len() int { return len(o.Keys) }
