// Command geom2dctl is a small utility for exercising the geom2d kernel
// from the shell: generating random test geometry and running it through
// the planar-subdivision builder, emitting JSON at each step.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand/v2"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/gopherplane/geom2d/dcel"
	"github.com/gopherplane/geom2d/linesegment"
	"github.com/gopherplane/geom2d/options"
	"github.com/gopherplane/geom2d/point"
	"github.com/gopherplane/geom2d/pointlocation"
	"github.com/gopherplane/geom2d/rectangle"
	"github.com/gopherplane/geom2d/voronoi"
)

func main() {
	cmd := &cli.Command{
		Name:  "geom2dctl",
		Usage: "Exercises the geom2d planar-subdivision kernel from the shell",
		Commands: []*cli.Command{
			genSegmentsCommand(),
			subdivideCommand(),
			voronoiCommand(),
			locateCommand(),
		},
		HideVersion: true,
		Authors:     []any{"https://github.com/mikenye"},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func genSegmentsCommand() *cli.Command {
	return &cli.Command{
		Name:      "gen-segments",
		Usage:     "Generates random line segments in a plane and writes them to stdout as JSON",
		UsageText: "geom2dctl gen-segments --number <value> --maxx <value> --minx <value> --maxy <value> --miny <value>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "number",
				Usage:    "The number of segments to create",
				Value:    3,
				Aliases:  []string{"n"},
				OnlyOnce: true,
				Validator: func(u int64) error {
					if u <= 0 {
						return fmt.Errorf("number must be greater than zero")
					}
					return nil
				},
			},
			&cli.FloatFlag{Name: "maxx", Usage: "The maximum X value of the plane", OnlyOnce: true, Value: 10},
			&cli.FloatFlag{Name: "minx", Usage: "The minimum X value of the plane", OnlyOnce: true, Value: 0},
			&cli.FloatFlag{Name: "maxy", Usage: "The maximum Y value of the plane", OnlyOnce: true, Value: 10},
			&cli.FloatFlag{Name: "miny", Usage: "The minimum Y value of the plane", OnlyOnce: true, Value: 0},
		},
		Action: runGenSegments,
	}
}

func runGenSegments(_ context.Context, cmd *cli.Command) error {
	minX := cmd.Float("minx")
	maxX := cmd.Float("maxx")
	minY := cmd.Float("miny")
	maxY := cmd.Float("maxy")
	n := cmd.Int("number")

	if minX >= maxX {
		return fmt.Errorf("maxx must be greater than minx")
	}
	if minY >= maxY {
		return fmt.Errorf("maxy must be greater than miny")
	}

	output := make([]linesegment.LineSegment, n)
	for i := int64(0); i < n; i++ {
		for {
			output[i] = linesegment.New(
				randomFloatInRange(minX, maxX),
				randomFloatInRange(minY, maxY),
				randomFloatInRange(minX, maxX),
				randomFloatInRange(minY, maxY),
			)
			if !output[i].Upper().Eq(output[i].Lower()) {
				break
			}
		}
	}

	return writeJSON(output)
}

func randomFloatInRange(min, max float64) float64 {
	return min + rand.Float64()*(max-min)
}

func subdivideCommand() *cli.Command {
	return &cli.Command{
		Name:      "subdivide",
		Usage:     "Reads a JSON array of line segments from stdin and writes the resulting planar subdivision's faces to stdout as JSON",
		UsageText: "geom2dctl subdivide --epsilon <value> < segments.json",
		Flags: []cli.Flag{
			&cli.FloatFlag{Name: "epsilon", Usage: "Tolerance for coincident vertex snapping", Value: 1e-9, OnlyOnce: true},
		},
		Action: runSubdivide,
	}
}

type faceJSON struct {
	Face     int           `json:"face"`
	Vertices []point.Point `json:"vertices"`
}

func runSubdivide(_ context.Context, cmd *cli.Command) error {
	var raw []linesegment.LineSegment
	if err := json.NewDecoder(os.Stdin).Decode(&raw); err != nil {
		return fmt.Errorf("decoding input segments: %w", err)
	}

	epsilon := cmd.Float("epsilon")
	sub := dcel.FromLines(raw, options.WithEpsilon(epsilon))

	var faces []faceJSON
	for f := 1; f < sub.FaceCount(); f++ {
		cycle := sub.Cycle(dcel.FaceID(f))
		faces = append(faces, faceJSON{Face: f, Vertices: sub.Vertices(cycle)})
	}

	return writeJSON(faces)
}

func voronoiCommand() *cli.Command {
	return &cli.Command{
		Name:      "voronoi",
		Usage:     "Reads a JSON array of sites from stdin and writes their Delaunay/Voronoi diagram to stdout as JSON",
		UsageText: "geom2dctl voronoi --minx <value> --miny <value> --maxx <value> --maxy <value> < sites.json",
		Flags: []cli.Flag{
			&cli.FloatFlag{Name: "minx", Usage: "The minimum X of the clipping rectangle", OnlyOnce: true, Value: 0},
			&cli.FloatFlag{Name: "miny", Usage: "The minimum Y of the clipping rectangle", OnlyOnce: true, Value: 0},
			&cli.FloatFlag{Name: "maxx", Usage: "The maximum X of the clipping rectangle", OnlyOnce: true, Value: 100},
			&cli.FloatFlag{Name: "maxy", Usage: "The maximum Y of the clipping rectangle", OnlyOnce: true, Value: 100},
			&cli.FloatFlag{Name: "epsilon", Usage: "Tolerance for coincident-site detection", Value: 1e-9, OnlyOnce: true},
		},
		Action: runVoronoi,
	}
}

func runVoronoi(_ context.Context, cmd *cli.Command) error {
	var sites []point.Point
	if err := json.NewDecoder(os.Stdin).Decode(&sites); err != nil {
		return fmt.Errorf("decoding input sites: %w", err)
	}

	bounds := rectangle.New(cmd.Float("minx"), cmd.Float("miny"), cmd.Float("maxx"), cmd.Float("maxy"))

	diagram, err := voronoi.Build(sites, bounds, options.WithEpsilon(cmd.Float("epsilon")))
	if err != nil {
		return fmt.Errorf("building voronoi diagram: %w", err)
	}

	return writeJSON(diagram)
}

func locateCommand() *cli.Command {
	return &cli.Command{
		Name:      "locate",
		Usage:     "Reads a JSON array of line segments from stdin, builds a trapezoidal-map locator over their subdivision, and reports where a query point lands",
		UsageText: "geom2dctl locate --x <value> --y <value> --seed <value> --epsilon <value> < segments.json",
		Flags: []cli.Flag{
			&cli.FloatFlag{Name: "x", Usage: "The query point's X coordinate", OnlyOnce: true},
			&cli.FloatFlag{Name: "y", Usage: "The query point's Y coordinate", OnlyOnce: true},
			&cli.IntFlag{Name: "seed", Usage: "RNG seed for the trapezoidal map's randomized segment insertion order", Value: 1, OnlyOnce: true},
			&cli.FloatFlag{Name: "epsilon", Usage: "Tolerance for coincident vertex snapping and on-edge tests", Value: 1e-9, OnlyOnce: true},
		},
		Action: runLocate,
	}
}

type locateResultJSON struct {
	Kind   string `json:"kind"`
	Vertex int    `json:"vertex,omitempty"`
	Edge   int    `json:"edge,omitempty"`
	Face   int    `json:"face,omitempty"`
}

func runLocate(_ context.Context, cmd *cli.Command) error {
	var raw []linesegment.LineSegment
	if err := json.NewDecoder(os.Stdin).Decode(&raw); err != nil {
		return fmt.Errorf("decoding input segments: %w", err)
	}

	epsilon := cmd.Float("epsilon")
	sub := dcel.FromLines(raw, options.WithEpsilon(epsilon))
	locator := pointlocation.Build(sub, uint64(cmd.Int("seed")), options.WithEpsilon(epsilon))

	q := point.New(cmd.Float("x"), cmd.Float("y"))
	elem := locator.Find(q, options.WithEpsilon(epsilon))

	result := locateResultJSON{}
	switch elem.Kind {
	case dcel.ElementVertex:
		result.Kind = "vertex"
		result.Vertex = int(elem.Vertex)
	case dcel.ElementEdge:
		result.Kind = "edge"
		result.Edge = int(elem.Edge)
	default:
		result.Kind = "face"
		result.Face = int(elem.Face)
	}

	return writeJSON(result)
}

func writeJSON(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	fmt.Print(string(b))
	return nil
}
