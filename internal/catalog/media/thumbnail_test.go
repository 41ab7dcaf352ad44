// Copyright (c) 2026 Digital Mary Project. All rights reserved.
// Author: curation@digitalmary.org

package media

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThumbnail_ScalesDownPreservingAspect(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 900, 700))

	dst := Thumbnail(src, 450, 350)
	bounds := dst.Bounds()

	assert.Equal(t, 450, bounds.Dx())
	assert.Equal(t, 350, bounds.Dy())
}

func TestThumbnail_NoUpscaling(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 100, 80))

	dst := Thumbnail(src, 450, 350)

	// Small images pass through untouched.
	assert.Equal(t, src.Bounds(), dst.Bounds())
}

func TestFitBox(t *testing.T) {
	tests := []struct {
		name                  string
		width, height         int
		maxWidth, maxHeight   int
		wantWidth, wantHeight int
	}{
		{"wide_image_bound_by_width", 2000, 500, 450, 350, 450, 112},
		{"tall_image_bound_by_height", 500, 2000, 450, 350, 87, 350},
		{"proportional", 900, 700, 450, 350, 450, 350},
		{"square_into_square", 1000, 1000, 150, 150, 150, 150},
		{"extreme_ratio_never_zero", 10000, 10, 150, 150, 150, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotWidth, gotHeight := fitBox(tt.width, tt.height, tt.maxWidth, tt.maxHeight)
			assert.Equal(t, tt.wantWidth, gotWidth)
			assert.Equal(t, tt.wantHeight, gotHeight)
		})
	}
}
