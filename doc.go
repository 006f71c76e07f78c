// Package backdrop procedurally generates decorative raster backgrounds.
//
// # Overview
//
// An image is produced by a fixed pipeline of pixel-buffer stages:
//
//  1. RandomColor picks the two gradient colors.
//  2. RadialGradient fills the canvas from the center color to the edge color.
//  3. StampShapes composites translucent circles and hexagons.
//  4. DrawGrid composites faint 1-pixel grid lines.
//  5. BlendNoise mixes in grayscale Gaussian noise.
//  6. Save encodes the result as an RGB PNG.
//
// Generate runs stages 1-5 and Run adds stage 6. Every stage is exported
// and can be used on its own.
//
// # Quick Start
//
//	rng := rand.New(rand.NewPCG(1, 2))
//	path, _, err := backdrop.Run(dir, time.Now(), rng,
//	    backdrop.WithSize(1920, 1080))
//
// # Pixels
//
// A Pixmap stores premultiplied RGBA bytes in image.RGBA layout. Every
// overlay is composited with source-over alpha blending, and the alpha
// channel is dropped only when the PNG is written. Channels never leave
// [0, 255].
//
// # Randomness
//
// Nothing reads global random state. Each stage takes a *rand.Rand, so a
// seeded generator yields byte-identical output.
//
// # Memory
//
// The default canvas is 10920×8080, about 353 MB per pixmap. Noise is
// generated row by row, so a run peaks at two pixmaps.
package backdrop
