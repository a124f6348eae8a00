package naming

import (
	"fmt"
	"strings"
	"sync"

	"github.com/dop251/goja"
	"github.com/evanw/esbuild/pkg/api"
)

const scriptGlobal = "naming"

// ScriptStrategy lets a project override names with a TypeScript or
// JavaScript module. The module may export any of apiTypeName,
// packagePrefix, requestTypeName, messageTypeName and subpackage; anything it
// does not export, or answers with undefined or null, is answered by the base
// strategy.
type ScriptStrategy struct {
	base Strategy

	mu  sync.Mutex
	vm  *goja.Runtime
	fns map[string]goja.Callable
	err error
}

var scriptExports = []string{"apiTypeName", "packagePrefix", "requestTypeName", "messageTypeName", "subpackage"}

// LoadScript bundles the module at path and evaluates it once.
func LoadScript(path string, base Strategy) (*ScriptStrategy, error) {
	js, err := bundle(path)
	if err != nil {
		return nil, fmt.Errorf("naming script %s: %w", path, err)
	}
	vm := goja.New()
	if _, err := vm.RunString(js); err != nil {
		return nil, fmt.Errorf("naming script %s: evaluate: %w", path, err)
	}
	exports := vm.Get(scriptGlobal)
	if exports == nil || goja.IsUndefined(exports) || goja.IsNull(exports) {
		return nil, fmt.Errorf("naming script %s: no exports", path)
	}
	obj := exports.ToObject(vm)
	fns := map[string]goja.Callable{}
	for _, name := range scriptExports {
		if fn, ok := goja.AssertFunction(obj.Get(name)); ok {
			fns[name] = fn
		}
	}
	if len(fns) == 0 {
		return nil, fmt.Errorf("naming script %s: exports none of %s", path, strings.Join(scriptExports, ", "))
	}
	return &ScriptStrategy{base: base, vm: vm, fns: fns}, nil
}

// bundle transpiles the module and its imports into one IIFE that assigns
// the module's exports to the global scriptGlobal.
func bundle(path string) (string, error) {
	result := api.Build(api.BuildOptions{
		EntryPoints: []string{path},
		Bundle:      true,
		Write:       false,
		Format:      api.FormatIIFE,
		GlobalName:  scriptGlobal,
		Target:      api.ES2020,
		Platform:    api.PlatformNeutral,
		LogLevel:    api.LogLevelSilent,
	})
	if len(result.Errors) > 0 {
		msgs := make([]string, 0, len(result.Errors))
		for _, e := range result.Errors {
			msgs = append(msgs, e.Text)
		}
		return "", fmt.Errorf("build errors: %s", strings.Join(msgs, "; "))
	}
	if len(result.OutputFiles) == 0 {
		return "", fmt.Errorf("no output from esbuild")
	}
	return string(result.OutputFiles[0].Contents), nil
}

// Err returns the first error a script function raised. Callers must check
// it after a conversion and discard the result if it is non-nil.
func (s *ScriptStrategy) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// call runs the named export. ok is false when the script does not export it,
// when it returns undefined or null, or when it throws; the first throw is
// kept for Err.
func (s *ScriptStrategy) call(name string, args ...any) (string, bool) {
	fn, ok := s.fns[name]
	if !ok {
		return "", false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	values := make([]goja.Value, len(args))
	for i, a := range args {
		if list, isList := a.([]string); isList {
			items := make([]any, len(list))
			for j, v := range list {
				items[j] = v
			}
			values[i] = s.vm.NewArray(items...)
			continue
		}
		values[i] = s.vm.ToValue(a)
	}
	out, err := fn(goja.Undefined(), values...)
	if err != nil {
		if s.err == nil {
			s.err = fmt.Errorf("naming script: %s: %w", name, err)
		}
		return "", false
	}
	if out == nil || goja.IsUndefined(out) || goja.IsNull(out) {
		return "", false
	}
	return out.String(), true
}

func (s *ScriptStrategy) APITypeName(apiName string) string {
	if out, ok := s.call("apiTypeName", apiName); ok {
		return out
	}
	return s.base.APITypeName(apiName)
}

func (s *ScriptStrategy) PackagePrefix(apiName, apiVersion string) string {
	if out, ok := s.call("packagePrefix", apiName, apiVersion); ok {
		return out
	}
	return s.base.PackagePrefix(apiName, apiVersion)
}

func (s *ScriptStrategy) RequestTypeName(nameComponents []string) string {
	if out, ok := s.call("requestTypeName", nameComponents); ok {
		return out
	}
	return s.base.RequestTypeName(nameComponents)
}

func (s *ScriptStrategy) MessageTypeName(typeURL string) string {
	if out, ok := s.call("messageTypeName", typeURL); ok {
		return out
	}
	return s.base.MessageTypeName(typeURL)
}

func (s *ScriptStrategy) Subpackage(isRequest bool) string {
	if out, ok := s.call("subpackage", isRequest); ok {
		return out
	}
	return s.base.Subpackage(isRequest)
}
