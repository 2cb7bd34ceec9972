// Package datasets generates small synthetic 2-D classification datasets.
//
// Points are drawn uniformly from the unit square and labelled by a fixed
// decision rule. Labelling rules are written with the scalar operators so
// the generators double as callers of the kernel.
package datasets

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/born-ml/minitorch/internal/funcs"
	"github.com/born-ml/minitorch/internal/operators"
)

// ErrUnknownDataset is returned by Lookup for unregistered names.
var ErrUnknownDataset = errors.New("unknown dataset")

// Point is a point in the plane.
type Point struct {
	X1 float64 `json:"x1"`
	X2 float64 `json:"x2"`
}

// Graph is a labelled point set.
type Graph struct {
	N int     `json:"n"` // Requested number of points.
	X []Point `json:"x"`
	Y []int   `json:"y"` // Label per point, 0 or 1.
}

// Generator builds a Graph of n points. Random generators draw from src.
type Generator func(n int, src rand.Source) Graph

// MakePoints draws n points with both coordinates uniform in [0, 1).
// Each point consumes x1 then x2 from src, by inverse transform sampling.
func MakePoints(n int, src rand.Source) []Point {
	r := rand.New(src)
	u := distuv.Uniform{Min: 0, Max: 1}
	pts := make([]Point, n)
	for i := range pts {
		pts[i].X1 = u.Quantile(r.Float64())
		pts[i].X2 = u.Quantile(r.Float64())
	}
	return pts
}

func label(ok bool) int {
	if ok {
		return 1
	}
	return 0
}

// labelled draws n points and labels each with rule.
func labelled(n int, src rand.Source, rule func(p Point) bool) Graph {
	x := MakePoints(n, src)
	y := funcs.Map(func(p Point) int { return label(rule(p)) }, x)
	return Graph{N: n, X: x, Y: y}
}

// Simple labels y=1 iff x1 < 0.5.
func Simple(n int, src rand.Source) Graph {
	return labelled(n, src, func(p Point) bool {
		return operators.LT(p.X1, 0.5)
	})
}

// Diag labels y=1 iff x1 + x2 < 0.5.
func Diag(n int, src rand.Source) Graph {
	return labelled(n, src, func(p Point) bool {
		return operators.LT(operators.Add(p.X1, p.X2), 0.5)
	})
}

// Split labels y=1 iff x1 < 0.2 or x1 > 0.8.
func Split(n int, src rand.Source) Graph {
	return labelled(n, src, func(p Point) bool {
		return operators.LT(p.X1, 0.2) || operators.LT(0.8, p.X1)
	})
}

// Xor labels y=1 iff exactly one coordinate is above 0.5.
func Xor(n int, src rand.Source) Graph {
	return labelled(n, src, func(p Point) bool {
		return operators.LT(p.X1, 0.5) && operators.LT(0.5, p.X2) ||
			operators.LT(0.5, p.X1) && operators.LT(p.X2, 0.5)
	})
}

// Circle labels y=1 outside the circle of radius sqrt(0.1) centred at (0.5, 0.5).
func Circle(n int, src rand.Source) Graph {
	return labelled(n, src, func(p Point) bool {
		dx := operators.Add(p.X1, -0.5)
		dy := operators.Add(p.X2, -0.5)
		return operators.LT(0.1, operators.Add(operators.Mul(dx, dx), operators.Mul(dy, dy)))
	})
}

// Spiral returns two interleaved spiral arms of n/2 points each, labelled 0
// and 1. It is deterministic and ignores src.
func Spiral(n int, _ rand.Source) Graph {
	half := n / 2
	xt := func(t float64) float64 { return t * math.Cos(t) / 20.0 }
	yt := func(t float64) float64 { return t * math.Sin(t) / 20.0 }

	x := make([]Point, 0, 2*half)
	for i := 5; i < 5+half; i++ {
		t := 10.0 * (float64(i) / float64(half))
		x = append(x, Point{X1: xt(t) + 0.5, X2: yt(t) + 0.5})
	}
	for i := 5; i < 5+half; i++ {
		t := operators.Neg(10.0 * (float64(i) / float64(half)))
		x = append(x, Point{X1: yt(t) + 0.5, X2: xt(t) + 0.5})
	}

	y := make([]int, 2*half)
	for i := half; i < len(y); i++ {
		y[i] = 1
	}
	return Graph{N: n, X: x, Y: y}
}

type entry struct {
	name string
	gen  Generator
}

var registry = []entry{
	{"simple", Simple},
	{"diag", Diag},
	{"split", Split},
	{"xor", Xor},
	{"circle", Circle},
	{"spiral", Spiral},
}

// Names returns the registered dataset names.
func Names() []string {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	return names
}

// Lookup returns the generator registered under name (case-insensitive).
func Lookup(name string) (Generator, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, e := range registry {
		if e.name == key {
			return e.gen, nil
		}
	}
	return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownDataset, name, strings.Join(Names(), ", "))
}

// Summary returns the number of points labelled 1 and their share of all points.
func Summary(g Graph) (positives int, ratio float64) {
	labels := funcs.Map(func(y int) float64 { return float64(y) }, g.Y)
	total := funcs.Sum(labels)
	if len(labels) == 0 {
		return 0, 0
	}
	return int(total), total / float64(len(labels))
}
