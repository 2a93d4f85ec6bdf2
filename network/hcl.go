package network

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// hclNetworkFile represents the top-level structure of an HCL network for decoding.
type hclNetworkFile struct {
	Cities []string    `hcl:"cities,optional"`
	Routes []*hclRoute `hcl:"route,block"`
}

// hclRoute is a single `route "from" "to" { cost = n }` block.
type hclRoute struct {
	From string  `hcl:"from,label"`
	To   string  `hcl:"to,label"`
	Cost float64 `hcl:"cost"`
}

// ParseHCL decodes a network written in HCL:
//
//	cities = ["Denver", "Omaha"]
//
//	route "Denver" "Omaha" {
//	  cost = 4
//	}
//
// filename is only used in diagnostics.
func ParseHCL(src []byte, filename string) (Network, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return Network{}, fmt.Errorf("failed to parse HCL network %s: %w", filename, diags)
	}

	var parsed hclNetworkFile
	diags = gohcl.DecodeBody(file.Body, nil, &parsed)
	if diags.HasErrors() {
		return Network{}, fmt.Errorf("failed to decode HCL network %s: %w", filename, diags)
	}

	records := make([]Record, len(parsed.Routes))
	for i, rt := range parsed.Routes {
		records[i] = Record{Source: rt.From, Destination: rt.To, Weight: rt.Cost}
	}

	return normalize(parsed.Cities, records, filename)
}
