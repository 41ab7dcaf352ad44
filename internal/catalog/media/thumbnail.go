// Copyright (c) 2026 Digital Mary Project. All rights reserved.
// Author: curation@digitalmary.org

package media

import (
	"image"

	"golang.org/x/image/draw"
)

// Thumbnail scales src to fit inside maxWidth x maxHeight, preserving the
// aspect ratio. Images already inside the box are returned unscaled.
//
// Catmull-Rom is the slowest kernel in x/image but thumbnails are generated
// once per upload, so quality wins over speed here.
func Thumbnail(src image.Image, maxWidth, maxHeight int) image.Image {
	bounds := src.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if width <= maxWidth && height <= maxHeight {
		return src
	}

	targetWidth, targetHeight := fitBox(width, height, maxWidth, maxHeight)

	dst := image.NewRGBA(image.Rect(0, 0, targetWidth, targetHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
	return dst
}

// fitBox scales (width, height) down to fit (maxWidth, maxHeight) while
// keeping the aspect ratio. At least one dimension ends up exactly at its
// bound; neither collapses to zero.
func fitBox(width, height, maxWidth, maxHeight int) (int, int) {
	scaleW := float64(maxWidth) / float64(width)
	scaleH := float64(maxHeight) / float64(height)

	scale := scaleW
	if scaleH < scale {
		scale = scaleH
	}

	targetWidth := int(float64(width) * scale)
	targetHeight := int(float64(height) * scale)
	if targetWidth < 1 {
		targetWidth = 1
	}
	if targetHeight < 1 {
		targetHeight = 1
	}
	return targetWidth, targetHeight
}
