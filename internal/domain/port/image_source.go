package port

import (
	"context"
	"image"
)

// ImageSource lists and loads dataset images from some backing store.
type ImageSource interface {
	// List returns the image names available under the given subset
	// (for example "Train/good"), in stable order.
	List(ctx context.Context, subset string) ([]string, error)

	// Load decodes one image by subset and name.
	Load(ctx context.Context, subset, name string) (image.Image, error)
}
