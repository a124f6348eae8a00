package sampleconfig

import (
	"reflect"
	"strings"
	"testing"

	"google.golang.org/protobuf/types/known/typepb"
)

func sample() *SampleConfig {
	str := &TypeInfo{Kind: Kind(typepb.Field_TYPE_STRING)}
	route := &TypeInfo{
		Kind:      Kind(typepb.Field_TYPE_MESSAGE),
		IsArray:   true,
		IsMessage: true,
		Message:   &MessageTypeInfo{TypeName: "Route", Fields: FieldMap{}},
	}
	return &SampleConfig{
		APITitle:      "Maps API",
		APIName:       "maps",
		APIVersion:    "v1",
		APITypeName:   "Maps",
		PackagePrefix: "com.google.api.services.maps",
		AuthType:      AuthAPIKey,
		Methods: map[string]*MethodInfo{
			"maps.routes.list": {
				NameComponents: []string{"routes", "list"},
				Fields: FieldMap{
					{Name: "origin", Description: "Start.", Type: str},
					{Name: "labels", Type: &TypeInfo{Kind: Kind(typepb.Field_TYPE_MESSAGE), IsMap: true, MapKey: str, MapValue: str}},
				},
				RequestType: &TypeInfo{
					Kind:      Kind(typepb.Field_TYPE_MESSAGE),
					IsMessage: true,
					Message:   &MessageTypeInfo{TypeName: "Routes.List", Fields: FieldMap{}},
				},
				ResponseType: &TypeInfo{
					Kind:      Kind(typepb.Field_TYPE_MESSAGE),
					IsMessage: true,
					Message:   &MessageTypeInfo{TypeName: "RoutesResponse", Subpackage: "model", Fields: FieldMap{}},
				},
				IsPageStreaming:            true,
				PageStreamingResourceField: &FieldInfo{Name: "routes", Type: route},
				AuthScopes:                 []string{},
			},
			"maps.routes.delete": {
				NameComponents: []string{"routes", "delete"},
				Fields:         FieldMap{},
				RequestType: &TypeInfo{
					Kind:      Kind(typepb.Field_TYPE_MESSAGE),
					IsMessage: true,
					Message:   &MessageTypeInfo{TypeName: "Routes.Delete", Fields: FieldMap{}},
				},
				AuthScopes: []string{"https://www.googleapis.com/auth/maps"},
			},
		},
	}
}

func TestKindText(t *testing.T) {
	k := Kind(typepb.Field_TYPE_INT64)
	text, err := k.MarshalText()
	if err != nil || string(text) != "TYPE_INT64" {
		t.Fatalf("MarshalText = %q, %v", text, err)
	}
	var back Kind
	if err := back.UnmarshalText(text); err != nil || back != k {
		t.Fatalf("UnmarshalText = %v, %v", back, err)
	}
	if err := back.UnmarshalText([]byte("TYPE_NOPE")); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
}

func TestFieldMap(t *testing.T) {
	fields := sample().Methods["maps.routes.list"].Fields
	if got := fields.Names(); !reflect.DeepEqual(got, []string{"origin", "labels"}) {
		t.Fatalf("Names = %v", got)
	}
	if f := fields.Get("labels"); f == nil || !f.Type.IsMap {
		t.Fatalf("Get(labels) = %+v", f)
	}
	if f := fields.Get("missing"); f != nil {
		t.Fatalf("Get(missing) = %+v", f)
	}
}

func TestMethodNamesSorted(t *testing.T) {
	if got := sample().MethodNames(); !reflect.DeepEqual(got, []string{"maps.routes.delete", "maps.routes.list"}) {
		t.Fatalf("MethodNames = %v", got)
	}
}

func TestParseAuthType(t *testing.T) {
	if got, err := ParseAuthType("OAUTH_3L"); err != nil || got != AuthOAuth3L {
		t.Fatalf("ParseAuthType = %v, %v", got, err)
	}
	if _, err := ParseAuthType("oauth"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestEncodeDecode(t *testing.T) {
	for _, format := range []string{FormatJSON, FormatYAML} {
		t.Run(format, func(t *testing.T) {
			data, err := Encode(sample(), format)
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			if !strings.Contains(string(data), "TYPE_STRING") {
				t.Fatalf("expected kinds by name:\n%s", data)
			}
			got, err := Decode(data, format)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if !reflect.DeepEqual(got, sample()) {
				t.Fatalf("decoded config differs from original")
			}
			again, err := Encode(got, format)
			if err != nil {
				t.Fatalf("re-encode: %v", err)
			}
			if string(again) != string(data) {
				t.Fatalf("encoding is not stable")
			}
		})
	}
	if _, err := Encode(sample(), "toml"); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}

func TestValidate(t *testing.T) {
	data, err := Encode(sample(), FormatJSON)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := Validate(data); err != nil {
		t.Fatalf("valid document rejected: %v", err)
	}

	bad := sample()
	bad.Methods["maps.routes.list"].Fields[1].Type.IsArray = true
	data, err = Encode(bad, FormatJSON)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := Validate(data); err == nil {
		t.Fatalf("expected array and map together to be rejected")
	}

	bad = sample()
	bad.AuthType = "PASSWORD"
	data, _ = Encode(bad, FormatJSON)
	if err := Validate(data); err == nil {
		t.Fatalf("expected unknown auth type to be rejected")
	}

	if err := Validate([]byte("{")); err == nil {
		t.Fatalf("expected malformed JSON to be rejected")
	}
}
