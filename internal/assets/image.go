package assets

import (
	"bytes"
	"encoding/base64"
	"errors"
	"html/template"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// Image is a decoded asset ready to be inlined into the page.
type Image struct {
	MIME   string
	Width  int
	Height int
	Data   []byte
}

// DataURI renders the image as a base64 data URI usable in an img src.
func (img Image) DataURI() template.URL {
	return template.URL("data:" + img.MIME + ";base64," + base64.StdEncoding.EncodeToString(img.Data))
}

// DecodeImage sniffs b and checks that it decodes as an image. SVG is accepted
// without dimensions since the image package cannot rasterize it.
func DecodeImage(b []byte) (Image, error) {
	if len(b) == 0 {
		return Image{}, &DecodeError{What: "image", Err: errors.New("empty body")}
	}

	mt := mimetype.Detect(b)
	mime := mt.String()
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = mime[:i]
	}

	if mt.Is("image/svg+xml") {
		return Image{MIME: mime, Data: b}, nil
	}
	if !strings.HasPrefix(mime, "image/") {
		return Image{}, &DecodeError{What: "image", Err: errors.New("content is " + mime)}
	}

	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return Image{}, &DecodeError{What: "image", Err: err}
	}
	size := img.Bounds().Size()
	return Image{MIME: mime, Width: size.X, Height: size.Y, Data: b}, nil
}
