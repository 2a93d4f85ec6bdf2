package network

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// yamlNetwork is the on-disk YAML shape.
type yamlNetwork struct {
	Cities []string    `yaml:"cities"`
	Routes []yamlRoute `yaml:"routes"`
}

type yamlRoute struct {
	From string  `yaml:"from"`
	To   string  `yaml:"to"`
	Cost float64 `yaml:"cost"`
}

// ParseYAML reads a network of the form:
//
//	cities: [Denver, Omaha]
//	routes:
//	  - {from: Denver, to: Omaha, cost: 4}
func ParseYAML(r io.Reader) (Network, error) {
	var doc yamlNetwork
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Network{}, fmt.Errorf("%w: yaml network", ErrEmptyNetwork)
		}
		return Network{}, fmt.Errorf("decoding yaml network: %w", err)
	}

	records := make([]Record, len(doc.Routes))
	for i, rt := range doc.Routes {
		records[i] = Record{Source: rt.From, Destination: rt.To, Weight: rt.Cost}
	}

	return normalize(doc.Cities, records, "yaml network")
}
