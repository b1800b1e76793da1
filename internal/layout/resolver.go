package layout

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Resolver maps viewport widths to configurations
// Classification and lookup are split so the set of configurations stays finite
type Resolver struct {
	table Table
}

// NewResolver validates the table and returns a resolver over a private copy
func NewResolver(table Table) (*Resolver, error) {
	if err := table.Validate(); err != nil {
		return nil, err
	}
	return &Resolver{table: table}, nil
}

// Resolve classifies width and returns that class's configuration
func (r *Resolver) Resolve(width int) (SizeClass, Configuration) {
	class := Classify(width)
	return class, r.table[class]
}

// Lookup returns the configuration of a class
func (r *Resolver) Lookup(class SizeClass) Configuration {
	return r.table[class]
}

// Table returns a copy of the resolver's table
func (r *Resolver) Table() Table {
	return r.table
}

// LoadTable decodes YAML overrides keyed by class name on top of base
// Each class is decoded over its own base entry, never over another class
//
//	desktop:
//	  star_count: 1000
//	  camera: {fov: 58}
func LoadTable(r io.Reader, base Table) (Table, error) {
	var doc map[string]yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return base, nil
		}
		return base, fmt.Errorf("decode layout table: %w", err)
	}

	out := base
	for name, node := range doc {
		class, err := ParseClass(name)
		if err != nil {
			return base, err
		}
		cfg := out[class]
		if err := decodeStrict(&node, &cfg); err != nil {
			return base, fmt.Errorf("decode %s layout: %w", class, err)
		}
		cfg.Class = class
		out[class] = cfg
	}

	if err := out.Validate(); err != nil {
		return base, err
	}
	return out, nil
}

// decodeStrict rejects keys that match no field
// yaml.Node.Decode has no KnownFields switch; the node goes back through a Decoder
func decodeStrict(node *yaml.Node, out *Configuration) error {
	raw, err := yaml.Marshal(node)
	if err != nil {
		return err
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	return dec.Decode(out)
}
