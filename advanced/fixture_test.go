package advanced

import (
	"embed"
	"log"
	"strconv"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs point sets. This is not a
// full (or even correct) svg parser. Every <circle> element is one point, at
// its center. If anything goes wrong, it panics.
//
// Fixtures are available by name in this fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	circles := rootEl.FindAll("circle")
	if len(circles) == 0 {
		log.Fatalf("No circles found in fixture %q", name)
	}

	points := make([]Point, 0, len(circles))
	for _, circleEl := range circles {
		x, err := strconv.ParseFloat(circleEl.Attributes["cx"], 64)
		if err != nil {
			log.Fatalf("Invalid cx value %q: %v", circleEl.Attributes["cx"], err)
		}
		y, err := strconv.ParseFloat(circleEl.Attributes["cy"], 64)
		if err != nil {
			log.Fatalf("Invalid cy value %q: %v", circleEl.Attributes["cy"], err)
		}
		points = append(points, Point{x, y})
	}
	return points
}

// Pseudo random points in [0, scale) squared, from a 64 bit LCG. Written out
// so the sequence never changes with the standard library.
func lcgPoints(seed uint64, n int, scale float64) []Point {
	state := seed
	next := func() float64 {
		state = state*6364136223846793005 + 1442695040888963407
		return float64(state>>11) / float64(1<<53)
	}
	points := make([]Point, n)
	for i := range points {
		x := next() * scale
		y := next() * scale
		points[i] = Point{x, y}
	}
	return points
}

func UnitSquare() []Point {
	return []Point{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: 1, Y: 1},
		{X: 0, Y: 1},
	}
}

func UnitTriangle() []Point {
	return []Point{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: 0, Y: 1},
	}
}
