// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package load

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"

	"cogentcore.org/blade/base/errors"
	"github.com/h2non/filetype"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"
)

// ImageFormats are the texture image formats.
type ImageFormats int32 //enums:enum

const (
	UnknownImage ImageFormats = iota
	PNG
	JPEG
	GIF
	TIFF
	BMP
	WebP
)

var imageFormatNames = [...]string{"Unknown", "PNG", "JPEG", "GIF", "TIFF", "BMP", "WebP"}

func (f ImageFormats) String() string {
	if f < 0 || int(f) >= len(imageFormatNames) {
		return fmt.Sprintf("ImageFormats(%d)", int32(f))
	}
	return imageFormatNames[f]
}

// errImageFormat means the data is not in a supported image format.
var errImageFormat = errors.New("unsupported image format")

// ImageFormat returns the image format of the given data,
// sniffed from its contents.
func ImageFormat(data []byte) ImageFormats {
	kind, err := filetype.Image(data)
	if err != nil {
		return UnknownImage
	}
	switch kind.Extension {
	case "png":
		return PNG
	case "jpg":
		return JPEG
	case "gif":
		return GIF
	case "tif":
		return TIFF
	case "bmp":
		return BMP
	case "webp":
		return WebP
	}
	return UnknownImage
}

// DecodeImage decodes the given image data, in any of the [ImageFormats].
func DecodeImage(data []byte) (image.Image, ImageFormats, error) {
	format := ImageFormat(data)
	r := bytes.NewReader(data)
	var img image.Image
	var err error
	switch format {
	case PNG:
		img, err = png.Decode(r)
	case JPEG:
		img, err = jpeg.Decode(r)
	case GIF:
		img, err = gif.Decode(r)
	case TIFF:
		img, err = tiff.Decode(r)
	case BMP:
		img, err = bmp.Decode(r)
	case WebP:
		img, err = webp.Decode(r)
	default:
		return nil, UnknownImage, errImageFormat
	}
	if err != nil {
		return nil, format, fmt.Errorf("decoding %v: %w", format, err)
	}
	return img, format, nil
}
