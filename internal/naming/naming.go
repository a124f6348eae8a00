// Package naming turns API names, method name components and type URLs into
// the identifiers a sample in a given language uses.
package naming

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/iancoleman/strcase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Strategy produces language-appropriate names. Implementations are pure.
type Strategy interface {
	APITypeName(apiName string) string
	PackagePrefix(apiName, apiVersion string) string
	RequestTypeName(nameComponents []string) string
	MessageTypeName(typeURL string) string
	Subpackage(isRequest bool) string
}

// Languages lists the names accepted by ForLanguage.
var Languages = []string{"default", "go", "java", "python"}

// ForLanguage returns the strategy registered for lang.
func ForLanguage(lang string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(lang)) {
	case "", "default":
		return Default{}, nil
	case "go", "golang":
		return Go{}, nil
	case "java":
		return Java{}, nil
	case "python", "py":
		return Python{}, nil
	default:
		return nil, fmt.Errorf("naming: unknown language %q", lang)
	}
}

// upperCamel joins the words of s in UpperCamelCase, splitting on anything
// that is not a letter or digit.
func upperCamel(parts ...string) string {
	// Casers are stateful, so each call gets its own.
	title := cases.Title(language.Und, cases.NoLower)
	var b strings.Builder
	for _, part := range parts {
		for _, word := range words(part) {
			b.WriteString(title.String(word))
		}
	}
	return b.String()
}

func words(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// lastSegment strips a type URL host and any package qualifier.
func lastSegment(typeURL string) string {
	if i := strings.LastIndex(typeURL, "/"); i >= 0 {
		typeURL = typeURL[i+1:]
	}
	return typeURL
}

// Default keeps type names as declared and produces no package prefix.
type Default struct{}

func (Default) APITypeName(apiName string) string          { return upperCamel(apiName) }
func (Default) PackagePrefix(apiName, apiVersion string) string { return "" }
func (Default) RequestTypeName(nameComponents []string) string {
	return upperCamel(nameComponents...)
}
func (Default) MessageTypeName(typeURL string) string { return lastSegment(typeURL) }
func (Default) Subpackage(isRequest bool) string      { return "" }

// Java follows the com.google.api.services client layout: request classes are
// nested under their resource, models live in the model subpackage.
type Java struct{}

func (Java) APITypeName(apiName string) string { return upperCamel(apiName) }

func (Java) PackagePrefix(apiName, apiVersion string) string {
	return "com.google.api.services." + strings.ToLower(strings.Join(words(apiName), ""))
}

func (Java) RequestTypeName(nameComponents []string) string {
	parts := make([]string, len(nameComponents))
	for i, c := range nameComponents {
		parts[i] = upperCamel(c)
	}
	return strings.Join(parts, ".")
}

func (Java) MessageTypeName(typeURL string) string {
	return upperCamel(lastSegment(typeURL))
}

func (Java) Subpackage(isRequest bool) string {
	if isRequest {
		return ""
	}
	return "model"
}

// Go follows the google.golang.org/api layout, where every method is a Call.
type Go struct{}

func (Go) APITypeName(apiName string) string { return "Service" }

func (Go) PackagePrefix(apiName, apiVersion string) string {
	name := strings.ToLower(strings.Join(words(apiName), ""))
	version := strings.ToLower(strings.Join(words(apiVersion), ""))
	return "google.golang.org/api/" + name + "/" + version
}

func (Go) RequestTypeName(nameComponents []string) string {
	return upperCamel(nameComponents...) + "Call"
}

func (Go) MessageTypeName(typeURL string) string {
	return upperCamel(lastSegment(typeURL))
}

func (Go) Subpackage(isRequest bool) string { return "" }

// Python samples are dynamically typed; only the service name matters.
type Python struct{}

func (Python) APITypeName(apiName string) string { return strcase.ToSnake(apiName) }
func (Python) PackagePrefix(apiName, apiVersion string) string {
	return "googleapiclient.discovery"
}
func (Python) RequestTypeName(nameComponents []string) string {
	parts := make([]string, len(nameComponents))
	for i, c := range nameComponents {
		parts[i] = strcase.ToSnake(c)
	}
	return strings.Join(parts, ".")
}
func (Python) MessageTypeName(typeURL string) string { return lastSegment(typeURL) }
func (Python) Subpackage(isRequest bool) string      { return "" }
