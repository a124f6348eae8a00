// Package sampleconfig defines the renderer-facing description of an API that
// the converter produces: one MethodInfo per method, each carrying the
// resolved shape of its request, request body and response.
package sampleconfig

import (
	"fmt"
	"sort"

	"google.golang.org/protobuf/types/known/typepb"
)

// AuthType is how samples authenticate against the API.
type AuthType string

const (
	AuthNone                          AuthType = "NONE"
	AuthAPIKey                        AuthType = "API_KEY"
	AuthOAuth3L                       AuthType = "OAUTH_3L"
	AuthApplicationDefaultCredentials AuthType = "APPLICATION_DEFAULT_CREDENTIALS"
)

// ParseAuthType accepts the serialized auth type names.
func ParseAuthType(s string) (AuthType, error) {
	switch t := AuthType(s); t {
	case AuthNone, AuthAPIKey, AuthOAuth3L, AuthApplicationDefaultCredentials:
		return t, nil
	default:
		return "", fmt.Errorf("unknown auth type %q", s)
	}
}

// SampleConfig is the root of a conversion result.
type SampleConfig struct {
	APITitle            string                 `json:"apiTitle" yaml:"apiTitle"`
	APIName             string                 `json:"apiName" yaml:"apiName"`
	APIVersion          string                 `json:"apiVersion" yaml:"apiVersion"`
	APITypeName         string                 `json:"apiTypeName" yaml:"apiTypeName"`
	PackagePrefix       string                 `json:"packagePrefix" yaml:"packagePrefix"`
	Methods             map[string]*MethodInfo `json:"methods" yaml:"methods"`
	AuthType            AuthType               `json:"authType" yaml:"authType"`
	AuthInstructionsURL string                 `json:"authInstructionsUrl" yaml:"authInstructionsUrl"`
}

// MethodNames returns the method identifiers in sorted order.
func (c *SampleConfig) MethodNames() []string {
	names := make([]string, 0, len(c.Methods))
	for name := range c.Methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MethodInfo describes one method.
type MethodInfo struct {
	NameComponents  []string  `json:"nameComponents" yaml:"nameComponents"`
	Fields          FieldMap  `json:"fields" yaml:"fields"`
	RequestBodyType *TypeInfo `json:"requestBodyType,omitempty" yaml:"requestBodyType,omitempty"`
	RequestType     *TypeInfo `json:"requestType" yaml:"requestType"`
	ResponseType    *TypeInfo `json:"responseType,omitempty" yaml:"responseType,omitempty"`
	IsPageStreaming bool      `json:"isPageStreaming" yaml:"isPageStreaming"`
	// PageStreamingResourceField is nil when the response type has no
	// repeated field; the renderer's overrides are expected to fill it in.
	PageStreamingResourceField *FieldInfo `json:"pageStreamingResourceField,omitempty" yaml:"pageStreamingResourceField,omitempty"`
	AuthScopes                 []string   `json:"authScopes" yaml:"authScopes"`
}

// FieldInfo is a named, described field.
type FieldInfo struct {
	Name        string    `json:"name" yaml:"name"`
	Description string    `json:"description" yaml:"description"`
	Type        *TypeInfo `json:"type" yaml:"type"`
}

// FieldMap keeps fields in declaration order.
type FieldMap []*FieldInfo

// Get returns the field called name, or nil.
func (m FieldMap) Get(name string) *FieldInfo {
	for _, f := range m {
		if f.Name == name {
			return f
		}
	}
	return nil
}

func (m FieldMap) Names() []string {
	names := make([]string, len(m))
	for i, f := range m {
		names[i] = f.Name
	}
	return names
}

// TypeInfo is the resolved shape of a field or of a method's request or
// response. At most one of IsArray and IsMap is set.
type TypeInfo struct {
	Kind      Kind             `json:"kind" yaml:"kind"`
	IsArray   bool             `json:"isArray" yaml:"isArray"`
	IsMap     bool             `json:"isMap" yaml:"isMap"`
	MapKey    *TypeInfo        `json:"mapKey,omitempty" yaml:"mapKey,omitempty"`
	MapValue  *TypeInfo        `json:"mapValue,omitempty" yaml:"mapValue,omitempty"`
	IsMessage bool             `json:"isMessage" yaml:"isMessage"`
	Message   *MessageTypeInfo `json:"message,omitempty" yaml:"message,omitempty"`
}

// MessageTypeInfo names a message type. Fields is only populated by a deep
// expansion.
type MessageTypeInfo struct {
	TypeName   string   `json:"typeName" yaml:"typeName"`
	Subpackage string   `json:"subpackage" yaml:"subpackage"`
	Fields     FieldMap `json:"fields" yaml:"fields"`
}

// Kind is a protobuf field kind that serializes by name.
type Kind typepb.Field_Kind

func (k Kind) String() string {
	return typepb.Field_Kind(k).String()
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	v, ok := typepb.Field_Kind_value[string(text)]
	if !ok {
		return fmt.Errorf("unknown field kind %q", text)
	}
	*k = Kind(v)
	return nil
}
