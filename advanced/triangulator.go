package advanced

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/exp/slices"
)

// A configured triangulation engine. It holds no state between calls, so one
// Triangulator can be shared by any number of goroutines. Build one with New;
// the zero value works, with the default options.
type Triangulator struct {
	opts Options
}

func New(opts Options) (*Triangulator, error) {
	opts = opts.withDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Triangulator{opts: opts}, nil
}

func (t *Triangulator) Options() Options {
	return t.opts.withDefaults()
}

// Delaunay triangulation of the points, as copies of the input points. See
// TriangulateIndices.
func (t *Triangulator) Triangulate(points []Point) (TriangleList, error) {
	indices, err := t.TriangulateIndices(points)
	if err != nil {
		return nil, err
	}
	return indices.ToTriangleList(points), nil
}

// Delaunay triangulation of the points, as index triples into the input slice.
//
// Fewer than three points, or points that all lie on one line, have no
// triangulation, and produce an empty result rather than an error. Repeated
// points are only used once; the first occurrence is the one that appears in
// the output. Triangles come out in the order the sweep finished with them,
// and are counterclockwise: a triangle the sweep built clockwise has its last
// two vertices swapped, so vertex order is not the sweep's own.
//
// With the default supertriangle margin, a thin triangle on the convex hull is
// occasionally left out, so the result does not always cover the whole hull.
// Every triangle that is returned is Delaunay. A larger
// Options.SuperTriangleMargin makes the loss less likely.
func (t *Triangulator) TriangulateIndices(points []Point) (result IndexTriangleList, err error) {
	defer func() {
		recoveredErr := HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()

	if len(points) < 3 {
		return IndexTriangleList{}, nil
	}
	for i, p := range points {
		if !p.IsFinite() {
			return nil, errors.Wrapf(ErrInvalidPoint, "point %d is not finite: %v", i, p)
		}
	}

	opts := t.Options()
	unique, sourceIndex := uniquePoints(points)
	if len(unique) < 3 || AllCollinear(unique, opts.Epsilon) {
		opts.Logger.Debug("no triangulation for degenerate input",
			zap.Int("points", len(points)),
			zap.Int("unique", len(unique)),
		)
		return IndexTriangleList{}, nil
	}

	s := newSweep(unique, opts)
	triangles, err := s.run()
	if err != nil {
		return nil, err
	}

	for i, tri := range triangles {
		triangles[i] = IndexTriangle{sourceIndex[tri.A], sourceIndex[tri.B], sourceIndex[tri.C]}
	}
	return triangles, nil
}

// Drop repeated points, keeping the first of each. Along with the unique
// points, this returns the index in the original slice of each one.
func uniquePoints(points []Point) (unique []Point, sourceIndex []int) {
	seen := make(map[Point]struct{}, len(points))
	unique = make([]Point, 0, len(points))
	sourceIndex = make([]int, 0, len(points))
	for i, p := range points {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		unique = append(unique, p)
		sourceIndex = append(sourceIndex, i)
	}
	return unique, sourceIndex
}

// State for a single run of the Bowyer-Watson sweep.
//
// Points are inserted from left to right. A circle that lies entirely to the
// left of the current point can't contain any point that remains, so it moves
// from the open set to the completed set, and is never looked at again. This
// keeps the per-point scan proportional to the triangles near the sweep line
// rather than the whole mesh.
type sweep struct {
	// Working copy of the points, with the supertriangle at n, n+1 and n+2
	points []Point
	n      int
	eps    float64
	// Working coordinates are the input times scale
	scale float64

	arena *circleArena
	open  []circleHandle
	edges []Edge

	log   *zap.Logger
	debug bool
}

func newSweep(points []Point, opts Options) *sweep {
	n := len(points)
	scale := unitScale(points)
	working := make([]Point, n, n+3)
	for i, p := range points {
		working[i] = Point{p.X * scale, p.Y * scale}
	}
	super := superTriangle(working, opts.SuperTriangleMargin, opts.MinSpan)
	working = append(working, super[:]...)

	return &sweep{
		points: working,
		n:      n,
		eps:    opts.Epsilon,
		scale:  scale,
		// Each insertion adds about two triangles net, and replaces a few
		arena: newCircleArena(6 * (n + 1)),
		log:   opts.Logger,
		debug: opts.Logger.Core().Enabled(zapcore.DebugLevel),
	}
}

func (s *sweep) run() (IndexTriangleList, error) {
	seed, err := circumcircleOf(s.points, s.n, s.n+1, s.n+2, s.eps)
	if err != nil {
		return nil, errors.Wrap(err, "supertriangle")
	}
	s.open = append(s.open, s.arena.add(seed))

	if s.debug {
		s.log.Debug("starting sweep",
			zap.Int("points", s.n),
			zap.Float64("scale", s.scale),
			zap.Any("supertriangle", s.points[s.n:]),
			zap.Stringer("seed", &seed),
		)
	}

	for _, c := range s.sortedByX() {
		if err := s.insert(c); err != nil {
			return nil, err
		}
	}
	return s.finish(), nil
}

// Indices of the real points, ordered by x. Ties keep their input order, so
// the result is deterministic.
func (s *sweep) sortedByX() []int {
	order := make([]int, s.n)
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) bool {
		return s.points[a].X < s.points[b].X
	})
	return order
}

func (s *sweep) insert(c int) error {
	p := s.points[c]
	s.edges = s.edges[:0]

	// Walk the open circles, newest first
	cavity := 0
	for j := len(s.open) - 1; j >= 0; j-- {
		h := s.open[j]
		record := s.arena.get(h)

		dx := p.X - record.x
		if dx > 0 && dx*dx > record.rSqr {
			s.arena.complete(h)
			continue
		}

		dy := p.Y - record.y
		if dx*dx+dy*dy-record.rSqr > s.eps {
			continue
		}

		// The point is inside or on the circle, so the triangle is no longer
		// Delaunay.
		s.edges = append(s.edges,
			Edge{record.i, record.j},
			Edge{record.j, record.k},
			Edge{record.k, record.i},
		)
		s.arena.discard(h)
		cavity++
	}

	// Everything left of the point has been completed, and nothing to its right
	// has been built yet, so some triangle around it must be open.
	if cavity == 0 {
		fatalf("point %d at %v is not inside any open circumcircle", c, p)
	}

	open := s.open[:0]
	for _, h := range s.open {
		if s.arena.get(h).state == circleOpen {
			open = append(open, h)
		}
	}
	s.open = open

	boundary := dedupEdges(s.edges)
	var created []string
	for e := len(boundary) - 1; e >= 0; e-- {
		edge := boundary[e]
		circle, err := circumcircleOf(s.points, edge.A, edge.B, c, s.eps)
		if err != nil {
			return errors.Wrapf(err, "inserting point %d at %v", c, Point{p.X / s.scale, p.Y / s.scale})
		}
		h := s.arena.add(circle)
		s.open = append(s.open, h)
		if s.debug {
			created = append(created, s.arena.dbgName(h))
		}
	}
	s.edges = boundary

	if s.debug {
		s.log.Debug("inserted point",
			zap.Int("index", c),
			zap.Float64("x", p.X),
			zap.Float64("y", p.Y),
			zap.Int("cavity", cavity),
			zap.Int("boundary", len(boundary)),
			zap.Strings("created", created),
			zap.Int("open", len(s.open)),
			zap.Int("completed", len(s.arena.completed)),
		)
	}
	return nil
}

// Close out every open circle, and keep the triangles that don't use the
// supertriangle, in the order they were completed.
func (s *sweep) finish() IndexTriangleList {
	for j := len(s.open) - 1; j >= 0; j-- {
		s.arena.complete(s.open[j])
	}
	s.open = nil

	result := make(IndexTriangleList, 0, len(s.arena.completed))
	for _, h := range s.arena.completed {
		record := s.arena.get(h)
		if record.touchesSuperTriangle(s.n) {
			continue
		}
		tri := record.indexTriangle()
		if !tri.Points(s.points).IsCCW() {
			tri.B, tri.C = tri.C, tri.B
		}
		result = append(result, tri)
	}

	if s.debug {
		s.log.Debug("finished sweep",
			zap.Int("triangles", len(result)),
			zap.Int("supertriangle", len(s.arena.completed)-len(result)),
			zap.Int("discarded", s.arena.countState(circleDiscarded)),
		)
	}
	return result
}
