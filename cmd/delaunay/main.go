package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/osuushi/delaunay/advanced"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Demo of triangulation. Input should be newline separated points in the form
// "x y", on stdin or in the named file. Blank lines and lines starting with #
// are skipped. Each output line is one triangle, either as three points or as
// three zero based indices of points in input order.

var (
	input   = kingpin.Arg("file", "File of points to read instead of stdin.").File()
	indices = kingpin.Flag("indices", "Print vertex indices instead of coordinates.").Short('i').Bool()
	epsilon = kingpin.Flag("epsilon", "Tolerance for near equal y values and on-circle tests.").Default(strconv.FormatFloat(advanced.DefaultEpsilon, 'g', -1, 64)).Float64()
	margin  = kingpin.Flag("margin", "Supertriangle size, in multiples of the larger bounding box side.").Default("20").Float64()
	verbose = kingpin.Flag("verbose", "Trace the sweep to stderr.").Short('v').Bool()
)

func main() {
	kingpin.Parse()

	logger := zap.NewNop()
	if *verbose {
		var err error
		logger, err = zap.NewDevelopment()
		kingpin.FatalIfError(err, "creating logger")
		defer logger.Sync()
	}

	in := io.Reader(os.Stdin)
	if *input != nil {
		defer (*input).Close()
		in = *input
	}
	points, err := readPoints(in)
	kingpin.FatalIfError(err, "reading points")

	opts := advanced.DefaultOptions()
	opts.Epsilon = *epsilon
	opts.SuperTriangleMargin = *margin
	opts.Logger = logger
	t, err := advanced.New(opts)
	kingpin.FatalIfError(err, "")

	result, err := t.TriangulateIndices(points)
	kingpin.FatalIfError(err, "triangulating %d points", len(points))

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	fmt.Fprintf(os.Stderr, "Read %d points, generated %d triangles\n", len(points), len(result))
	for _, tri := range result {
		if *indices {
			fmt.Fprintf(w, "%d %d %d\n", tri.A, tri.B, tri.C)
			continue
		}
		p := tri.Points(points)
		fmt.Fprintf(w, "%g %g %g %g %g %g\n", p.A.X, p.A.Y, p.B.X, p.B.Y, p.C.X, p.C.Y)
	}
}

func readPoints(in io.Reader) ([]advanced.Point, error) {
	var points []advanced.Point
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	return points, scanner.Err()
}

func parsePoint(line string) (advanced.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return advanced.Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return advanced.Point{}, errors.Wrap(err, "x")
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return advanced.Point{}, errors.Wrap(err, "y")
	}
	return advanced.Point{X: x, Y: y}, nil
}
