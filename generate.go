package backdrop

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Report summarizes one pipeline run.
type Report struct {
	RunID       string
	Center      Color // gradient color at the middle
	Edge        Color // gradient color at the corners
	Shapes      []Shape
	Skipped     int
	GridLines   [2]int // vertical, horizontal
	Width       int
	Height      int
	PeakBytes   int
	ElapsedTime time.Duration
}

// Generate runs the image pipeline and returns the final pixmap:
// two random colors, a radial gradient between them, random shapes,
// a grid overlay and a noise blend. All randomness is drawn from rng,
// so a seeded rng reproduces the same image.
func Generate(rng *rand.Rand, opts ...Option) (*Pixmap, *Report, error) {
	o, err := newOptions(opts...)
	if err != nil {
		return nil, nil, err
	}

	start := time.Now()
	report := &Report{
		RunID:  uuid.NewString(),
		Width:  o.Width,
		Height: o.Height,
	}
	log := Logger().With(slog.String("run_id", report.RunID))

	// Two full buffers are alive during the noise blend.
	report.PeakBytes = 2 * o.Width * o.Height * 4
	p := message.NewPrinter(language.English)
	log.Info("backdrop: generating image",
		"dimensions", p.Sprintf("%d×%d", o.Width, o.Height),
		"peak_memory", humanize.Bytes(uint64(report.PeakBytes)))

	report.Center = RandomColor(rng)
	report.Edge = RandomColor(rng)
	pm := RadialGradient(o.Width, o.Height, report.Center, report.Edge)

	report.Shapes, report.Skipped = StampShapes(pm, rng, o.ShapeCount, o.MaxShapeSize)
	log.Debug("backdrop: shapes stamped", "stamped", len(report.Shapes), "skipped", report.Skipped)

	v, h := DrawGrid(pm, o.GridSpacing, o.GridColor)
	report.GridLines = [2]int{v, h}

	pm = BlendNoise(pm, rng, o.NoiseIntensity, o.NoiseBlend)

	report.ElapsedTime = time.Since(start)
	log.Info("backdrop: image generated", "elapsed", report.ElapsedTime.Round(time.Millisecond))
	return pm, report, nil
}

// Run generates an image and saves it into dir under the name Filename(now).
// It returns the absolute path of the written file.
func Run(dir string, now time.Time, rng *rand.Rand, opts ...Option) (string, *Report, error) {
	pm, report, err := Generate(rng, opts...)
	if err != nil {
		return "", nil, err
	}
	path, err := Save(pm, dir, Filename(now))
	if err != nil {
		return "", report, fmt.Errorf("backdrop: save image: %w", err)
	}
	return path, report, nil
}
