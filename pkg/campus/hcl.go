package campus

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// hcl campus definition:
//
//	name = "PUP Sta. Mesa"
//	bounds {
//	  left_lon   = 121.0082
//	  right_lon  = 121.01532
//	  bottom_lat = 14.5958
//	}
//	vertex "Oval" {
//	  name          = "Oval"
//	  class         = "dn"
//	  lat           = 14.598115
//	  lon           = 121.012039
//	  vulnerability = 1
//	}
//	edge "Oval" "Grandstand" {}
type hclCampus struct {
	Name     string      `hcl:"name,optional"`
	Bounds   *Bounds     `hcl:"bounds,block"`
	Vertices []hclVertex `hcl:"vertex,block"`
	Edges    []hclEdge   `hcl:"edge,block"`
}

type hclVertex struct {
	ID            string  `hcl:"id,label"`
	Name          string  `hcl:"name,optional"`
	Class         string  `hcl:"class,optional"`
	Lat           float64 `hcl:"lat"`
	Lon           float64 `hcl:"lon"`
	Vulnerability float64 `hcl:"vulnerability"`
}

type hclEdge struct {
	From string `hcl:"from,label"`
	To   string `hcl:"to,label"`
}

func ReadHCLFile(filename string) (*Source, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL campus file %s: %s", filename, diags.Error())
	}
	return decodeHCL(file, filename)
}

func ReadHCL(src []byte, filename string) (*Source, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL campus file %s: %s", filename, diags.Error())
	}
	return decodeHCL(file, filename)
}

func decodeHCL(file *hcl.File, filename string) (*Source, error) {
	var c hclCampus
	diags := gohcl.DecodeBody(file.Body, nil, &c)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL campus file %s: %s", filename, diags.Error())
	}

	src := NewSource(c.Name)
	src.Bounds = c.Bounds
	for _, v := range c.Vertices {
		src.AddVertex(SourceVertex{
			ID:            v.ID,
			Name:          v.Name,
			Class:         v.Class,
			Lat:           v.Lat,
			Lon:           v.Lon,
			Vulnerability: v.Vulnerability,
		})
	}
	for _, e := range c.Edges {
		src.AddEdge(e.From, e.To)
	}
	return src, nil
}
