package thumbnail

import (
	"bytes"
	"log/slog"

	"github.com/disintegration/imaging"

	// register the WebP decoder behind image.Decode
	_ "golang.org/x/image/webp"

	"github.com/joseph-ayodele/image-inventory/internal/common"
)

// Asset is one encoded thumbnail held in memory until it is embedded into
// the workbook. PNG keeps alpha from sources that have it.
type Asset struct {
	PNG    []byte
	Width  int
	Height int
}

// Renderer turns source images into bounded PNG thumbnails.
type Renderer struct {
	maxSize int
	logger  *slog.Logger
}

// NewRenderer creates a renderer whose thumbnails fit inside a
// maxSize x maxSize bounding box.
func NewRenderer(maxSize int, logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{maxSize: maxSize, logger: logger}
}

// Render decodes the image at path, fits it into the bounding box
// preserving aspect ratio (never upscaling), and re-encodes it as PNG.
// Errors are per-file: the caller converts them into placeholder rows.
func (r *Renderer) Render(path string) (*Asset, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, common.WrapError(err, "decode image")
	}

	// Fit clones into NRGBA even when the source is already inside the
	// box, so every thumbnail goes out in the same alpha-capable mode.
	thumb := imaging.Fit(img, r.maxSize, r.maxSize, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, imaging.PNG); err != nil {
		return nil, common.WrapError(err, "encode thumbnail")
	}

	b := thumb.Bounds()
	return &Asset{
		PNG:    buf.Bytes(),
		Width:  b.Dx(),
		Height: b.Dy(),
	}, nil
}
