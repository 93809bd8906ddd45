package entity

import "image"

// Blob is a connected region detected in one snapshot. It lives only for
// the duration of that image's processing and is never persisted.
type Blob struct {
	X      int         // top-left corner X
	Y      int         // top-left corner Y
	Width  int         // bounding box width in pixels
	Height int         // bounding box height in pixels
	Area   int         // number of foreground pixels
	Mask   *image.Gray // binary mask cropped to the bounding box, 255 = inside
}

// Bounds returns the blob's bounding rectangle in image coordinates.
func (b Blob) Bounds() image.Rectangle {
	return image.Rect(b.X, b.Y, b.X+b.Width, b.Y+b.Height)
}

// Center returns the coordinates of the bounding box center.
func (b Blob) Center() (x, y int) {
	return b.X + b.Width/2, b.Y + b.Height/2
}
