package backdrop

import (
	"errors"
	"fmt"
)

// Default pipeline parameters.
const (
	DefaultWidth          = 10920
	DefaultHeight         = 8080
	DefaultShapeCount     = 50
	DefaultMaxShapeSize   = 100
	DefaultGridSpacing    = 100
	DefaultNoiseIntensity = 50
	DefaultNoiseBlend     = 0.1
)

// DefaultGridColor is white at roughly 12% opacity.
var DefaultGridColor = Color{R: 255, G: 255, B: 255, A: 30}

// ErrInvalidOptions is returned when pipeline options fail validation.
var ErrInvalidOptions = errors.New("backdrop: invalid options")

// Option configures a Generate or Run call.
// Use functional options to override the defaults.
//
// Example:
//
//	// Small preview with fewer shapes
//	pm, report, err := backdrop.Generate(rng,
//	    backdrop.WithSize(800, 600),
//	    backdrop.WithShapes(10, 60))
type Option func(*Options)

// Options holds every parameter of the pipeline.
type Options struct {
	Width, Height  int
	ShapeCount     int
	MaxShapeSize   int
	GridSpacing    int
	GridColor      Color
	NoiseIntensity float64
	NoiseBlend     float64
}

// DefaultOptions returns the parameters of the standard background.
func DefaultOptions() Options {
	return Options{
		Width:          DefaultWidth,
		Height:         DefaultHeight,
		ShapeCount:     DefaultShapeCount,
		MaxShapeSize:   DefaultMaxShapeSize,
		GridSpacing:    DefaultGridSpacing,
		GridColor:      DefaultGridColor,
		NoiseIntensity: DefaultNoiseIntensity,
		NoiseBlend:     DefaultNoiseBlend,
	}
}

// WithSize sets the canvas dimensions in pixels.
func WithSize(width, height int) Option {
	return func(o *Options) {
		o.Width = width
		o.Height = height
	}
}

// WithShapes sets how many shapes are stamped and their maximum radius.
func WithShapes(count, maxSize int) Option {
	return func(o *Options) {
		o.ShapeCount = count
		o.MaxShapeSize = maxSize
	}
}

// WithGrid sets the grid line spacing and color. A spacing of zero
// disables the grid.
func WithGrid(spacing int, c Color) Option {
	return func(o *Options) {
		o.GridSpacing = spacing
		o.GridColor = c
	}
}

// WithNoise sets the noise standard deviation and the blend factor.
func WithNoise(intensity, blendFactor float64) Option {
	return func(o *Options) {
		o.NoiseIntensity = intensity
		o.NoiseBlend = blendFactor
	}
}

// newOptions applies opts on top of the defaults and validates the result.
func newOptions(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.Validate(); err != nil {
		return Options{}, err
	}
	return o, nil
}

// Validate reports whether the options describe a renderable image.
func (o Options) Validate() error {
	switch {
	case o.Width <= 0 || o.Height <= 0:
		return fmt.Errorf("%w: size %dx%d must be positive", ErrInvalidOptions, o.Width, o.Height)
	case o.ShapeCount < 0:
		return fmt.Errorf("%w: shape count %d is negative", ErrInvalidOptions, o.ShapeCount)
	case o.ShapeCount > 0 && o.MaxShapeSize < 1:
		return fmt.Errorf("%w: max shape size %d must be at least 1", ErrInvalidOptions, o.MaxShapeSize)
	case o.GridSpacing < 0:
		return fmt.Errorf("%w: grid spacing %d is negative", ErrInvalidOptions, o.GridSpacing)
	case o.NoiseIntensity < 0:
		return fmt.Errorf("%w: noise intensity %v is negative", ErrInvalidOptions, o.NoiseIntensity)
	case o.NoiseBlend < 0 || o.NoiseBlend > 1:
		return fmt.Errorf("%w: noise blend %v outside [0, 1]", ErrInvalidOptions, o.NoiseBlend)
	}
	return nil
}
