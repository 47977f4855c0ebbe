package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/samplemaker/boopy"
	"github.com/tdewolff/argp"
)

type Combine struct {
	Op     string   `short:"p" default:"union" desc:"Operation: union, intersection, difference, xor or normalize"`
	Scale  int64    `short:"s" default:"1000000" desc:"Engine sub-units per coordinate unit"`
	Output string   `short:"o" default:"" desc:"Output GeoJSON file, writes to stdout when empty"`
	Inputs []string `index:"*" desc:"Operand GeoJSON files, one operand per file"`
}

func main() {
	cmd := argp.NewCmd(&Combine{}, "Boolean operations on polygon sets in GeoJSON")
	cmd.Parse()
	cmd.PrintHelp()
}

func (cmd *Combine) Run() error {
	if len(cmd.Inputs) == 0 {
		return argp.ShowUsage
	}

	operands := make([]boopy.PolygonSet, 0, len(cmd.Inputs))
	for _, name := range cmd.Inputs {
		operand, err := loadOperand(name, cmd.Scale)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		operands = append(operands, operand)
	}

	var result boopy.PolygonSet
	var err error
	if cmd.Op == "normalize" {
		all := boopy.PolygonSet{}
		for _, operand := range operands {
			all = append(all, operand...)
		}
		result, err = boopy.Normalize(context.Background(), all)
	} else {
		op, perr := parseOp(cmd.Op)
		if perr != nil {
			return perr
		}
		result, err = boopy.Combine(context.Background(), op, operands...)
	}
	if err != nil {
		return err
	}

	fc := geojson.NewFeatureCollection()
	fc.Append(geojson.NewFeature(result.ToOrb(cmd.Scale)))
	b, err := json.Marshal(fc)
	if err != nil {
		return err
	}
	if cmd.Output == "" {
		fmt.Println(string(b))
		return nil
	}
	return os.WriteFile(cmd.Output, b, 0644)
}

func parseOp(s string) (boopy.Op, error) {
	switch s {
	case "union", "or":
		return boopy.Union, nil
	case "intersection", "and":
		return boopy.Intersection, nil
	case "difference", "not":
		return boopy.Difference, nil
	case "xor":
		return boopy.Xor, nil
	}
	return 0, fmt.Errorf("unknown operator %q", s)
}

// loadOperand reads all polygonal geometry of a GeoJSON file into a single
// operand.
func loadOperand(name string, scale int64) (boopy.PolygonSet, error) {
	b, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}

	var geoms []orb.Geometry
	if fc, err := geojson.UnmarshalFeatureCollection(b); err == nil {
		for _, f := range fc.Features {
			geoms = append(geoms, f.Geometry)
		}
	} else if f, err := geojson.UnmarshalFeature(b); err == nil {
		geoms = append(geoms, f.Geometry)
	} else if g, err := geojson.UnmarshalGeometry(b); err == nil {
		geoms = append(geoms, g.Geometry())
	} else {
		return nil, fmt.Errorf("not a GeoJSON feature collection, feature, or geometry")
	}

	operand := boopy.PolygonSet{}
	for _, g := range geoms {
		switch g.(type) {
		case orb.Polygon, orb.MultiPolygon, orb.Ring:
			p, err := boopy.FromOrb(g, scale)
			if err != nil {
				return nil, err
			}
			operand = append(operand, p...)
		}
	}
	if len(operand) == 0 {
		return nil, fmt.Errorf("no polygonal geometry found")
	}
	return operand, nil
}
