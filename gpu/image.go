// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image"

	"golang.org/x/image/draw"
)

// ImageToRGBA returns the given image as an *image.RGBA with a
// zero origin, converting it if it is not one already.
func ImageToRGBA(img image.Image) *image.RGBA {
	if rimg, ok := img.(*image.RGBA); ok && rimg.Rect.Min == (image.Point{}) {
		return rimg
	}
	b := img.Bounds()
	rimg := image.NewRGBA(image.Rectangle{Max: b.Size()})
	draw.Draw(rimg, rimg.Rect, img, b.Min, draw.Src)
	return rimg
}
