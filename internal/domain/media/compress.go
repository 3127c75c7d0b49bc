package media

import (
	"bytes"
	"fmt"
	"image"
	"log"
	"math"
	"net/http"

	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// Options bound the output of Compress. Quality is in (0, 1].
type Options struct {
	MaxWidth  int
	MaxHeight int
	Quality   float64
}

func DefaultOptions() Options {
	return Options{MaxWidth: 1920, MaxHeight: 1080, Quality: 0.8}
}

func (o Options) validate() error {
	if o.MaxWidth <= 0 || o.MaxHeight <= 0 {
		return fmt.Errorf("media: bounds must be positive, got %dx%d", o.MaxWidth, o.MaxHeight)
	}
	if o.Quality <= 0 || o.Quality > 1 {
		return fmt.Errorf("media: quality must be in (0, 1], got %g", o.Quality)
	}
	return nil
}

// Compress decodes src, downscales it to fit the bounds while preserving
// aspect ratio, and re-encodes it as lossy WebP at the given quality.
// WebP rather than JPEG so an alpha channel survives re-encoding.
//
// Only the dominant axis is clamped: a landscape (or square) image is
// bounded by MaxWidth, a portrait one by MaxHeight. The minor axis can
// exceed its own bound for images far from square; existing stored content
// depends on these output sizes, so the formula stays as is.
func Compress(src EncodedImage, opts Options) (EncodedImage, error) {
	if err := opts.validate(); err != nil {
		return "", err
	}

	_, data, err := src.Decode()
	if err != nil {
		return "", err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("media: decode image: %w", err)
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	tw, th := w, h
	if w > h {
		if w > opts.MaxWidth {
			scale := float64(opts.MaxWidth) / float64(w)
			tw = opts.MaxWidth
			th = int(math.Round(float64(h) * scale))
		}
	} else {
		if h > opts.MaxHeight {
			scale := float64(opts.MaxHeight) / float64(h)
			th = opts.MaxHeight
			tw = int(math.Round(float64(w) * scale))
		}
	}
	if th < 1 {
		th = 1
	}
	if tw < 1 {
		tw = 1
	}

	out := image.NewRGBA(image.Rect(0, 0, tw, th))
	if tw == w && th == h {
		draw.Copy(out, image.Point{}, img, b, draw.Src, nil)
	} else {
		draw.CatmullRom.Scale(out, out.Bounds(), img, b, draw.Src, nil)
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, out, &webp.Options{Quality: float32(opts.Quality * 100)}); err != nil {
		return "", fmt.Errorf("media: encode webp: %w", err)
	}
	return Encode("image/webp", buf.Bytes()), nil
}

// Advisory threshold for large uploads. Not an error condition; processing
// is unaffected.
const oversizeBytes = 5 << 20

// Result of ingesting an uploaded file. Image is always usable: the
// compressed WebP when optimization succeeded, the untouched original
// otherwise.
type Result struct {
	Image     EncodedImage `json:"image"`
	Optimized bool         `json:"optimized"`
	Notice    string       `json:"notice,omitempty"`
}

// Ingest wraps uploaded bytes into an Encoded Image and compresses it with
// the default bounds. Compression failure falls back to the unprocessed
// original: a content edit is never blocked on an optimization step.
func Ingest(name string, data []byte) Result {
	mime := http.DetectContentType(data)
	res := Result{Image: Encode(mime, data)}
	if len(data) > oversizeBytes {
		res.Notice = fmt.Sprintf("%s is larger than 5 MB and will be optimized", name)
	}

	compressed, err := Compress(res.Image, DefaultOptions())
	if err != nil {
		log.Printf("image optimization failed for %s, keeping original: %v", name, err)
		return res
	}
	res.Image = compressed
	res.Optimized = true
	return res
}
