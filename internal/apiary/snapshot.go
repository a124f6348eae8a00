package apiary

import (
	"encoding/json"
	"fmt"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/apipb"
)

type snapshot struct {
	API   json.RawMessage   `json:"api"`
	Types []json.RawMessage `json:"types"`
}

// MarshalSnapshot renders the imported API and its types as protojson, for
// inspecting what a discovery document was lowered to.
func (c *Config) MarshalSnapshot() ([]byte, error) {
	opts := protojson.MarshalOptions{UseProtoNames: false}
	api, err := opts.Marshal(&apipb.Api{
		Name:    c.name,
		Version: c.version,
		Methods: c.methods,
	})
	if err != nil {
		return nil, fmt.Errorf("snapshot api: %w", err)
	}
	out := snapshot{API: api, Types: make([]json.RawMessage, 0, len(c.typeOrder))}
	for _, name := range c.typeOrder {
		raw, err := opts.Marshal(c.types[name])
		if err != nil {
			return nil, fmt.Errorf("snapshot type %s: %w", name, err)
		}
		out.Types = append(out.Types, raw)
	}
	return json.MarshalIndent(out, "", "  ")
}
