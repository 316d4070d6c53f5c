package advanced

import (
	"math"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	// Threshold for treating two y values as equal when computing a
	// circumcircle, and for treating a point as lying on a circle. Coordinates
	// are double precision throughout, so this suits point sets spanning up to
	// roughly 1e6. Sets spanning less than half a unit are scaled up by a power
	// of two before the sweep, so the threshold applies to them as if they were
	// unit sized.
	DefaultEpsilon = 1.0 / 1048576.0

	// How far the supertriangle vertices are pushed out, in multiples of the
	// larger side of the bounding box. Larger values make it less likely that a
	// hull triangle is lost next to the supertriangle, at the cost of precision
	// in the circumcircles that touch it.
	DefaultSuperTriangleMargin = 20

	// Span used for the supertriangle when the bounding box has zero width and
	// height.
	DefaultMinSpan = 1
)

type Options struct {
	Epsilon             float64
	SuperTriangleMargin float64
	MinSpan             float64

	// Receives debug level traces of the sweep. Nil disables logging.
	Logger *zap.Logger
}

func DefaultOptions() Options {
	return Options{
		Epsilon:             DefaultEpsilon,
		SuperTriangleMargin: DefaultSuperTriangleMargin,
		MinSpan:             DefaultMinSpan,
	}
}

// Fill zero fields with their defaults. Negative and non-finite values are
// left alone so Validate can report them.
func (o Options) withDefaults() Options {
	if o.Epsilon == 0 {
		o.Epsilon = DefaultEpsilon
	}
	if o.SuperTriangleMargin == 0 {
		o.SuperTriangleMargin = DefaultSuperTriangleMargin
	}
	if o.MinSpan == 0 {
		o.MinSpan = DefaultMinSpan
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

func (o Options) Validate() error {
	check := func(name string, v float64) error {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return errors.Wrapf(ErrInvalidOptions, "%s must be positive and finite, got %v", name, v)
		}
		return nil
	}
	if err := check("epsilon", o.Epsilon); err != nil {
		return err
	}
	if err := check("supertriangle margin", o.SuperTriangleMargin); err != nil {
		return err
	}
	// Below roughly 1.37 the corners of the bounding box fall outside the
	// supertriangle.
	if o.SuperTriangleMargin < 2 {
		return errors.Wrapf(ErrInvalidOptions, "supertriangle margin must be at least 2, got %v", o.SuperTriangleMargin)
	}
	return check("min span", o.MinSpan)
}
