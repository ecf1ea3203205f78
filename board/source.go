package board

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/url"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"image-board/canvas"
)

var (
	ErrNotImage   = errors.New("board: data is not a supported image")
	ErrBadDataURI = errors.New("board: malformed data URI")
)

// EncodeDataURI wraps raw image bytes in a base64 data URI. The MIME type is
// taken from the decoded image format.
func EncodeDataURI(data []byte) (string, error) {
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNotImage, err)
	}
	return "data:image/" + format + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// DecodeDataURI splits a data URI into its media type and payload.
func DecodeDataURI(uri string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return "", nil, ErrBadDataURI
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, ErrBadDataURI
	}

	mediaType, isBase64 := strings.CutSuffix(meta, ";base64")
	if i := strings.IndexByte(mediaType, ';'); i >= 0 {
		mediaType = mediaType[:i]
	}
	if mediaType == "" {
		mediaType = "text/plain"
	}

	if isBase64 {
		data, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return "", nil, fmt.Errorf("%w: %v", ErrBadDataURI, err)
		}
		return mediaType, data, nil
	}
	text, err := url.PathUnescape(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBadDataURI, err)
	}
	return mediaType, []byte(text), nil
}

// DecodeImage decodes the picture held in a data URI.
func DecodeImage(uri string) (image.Image, error) {
	_, data, err := DecodeDataURI(uri)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotImage, err)
	}
	return img, nil
}

// ImageSize returns the pixel dimensions of the picture in a data URI without
// decoding the pixels.
func ImageSize(uri string) (int, int, error) {
	_, data, err := DecodeDataURI(uri)
	if err != nil {
		return 0, 0, err
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrNotImage, err)
	}
	return cfg.Width, cfg.Height, nil
}

// CenteredPlacement returns the world position for the top-left corner of a
// w×h image so that it appears centred in a screenW×screenH view.
func CenteredPlacement(v *canvas.Viewport, screenW, screenH int, w, h float64) (float64, float64) {
	cx, cy := v.ScreenToWorld(float64(screenW)/2, float64(screenH)/2)
	return cx - w/2, cy - h/2
}
