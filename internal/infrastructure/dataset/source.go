// Package dataset loads train and test images from the resources
// directory layout (resources/Train/..., resources/Test/...).
package dataset

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/disintegration/imaging"

	"cookie-inspector/internal/domain/port"
)

// imageExtensions lists the decodable dataset file types.
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
}

// FileSource reads dataset images from a directory tree.
type FileSource struct {
	root string
}

// NewFileSource creates a source rooted at the given directory.
func NewFileSource(root string) *FileSource {
	return &FileSource{root: root}
}

// List returns the image file names under root/subset in sorted order.
func (s *FileSource) List(ctx context.Context, subset string) ([]string, error) {
	_ = ctx

	entries, err := os.ReadDir(filepath.Join(s.root, subset))
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", subset, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if imageExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Load decodes one image. EXIF orientation is applied for camera shots.
func (s *FileSource) Load(ctx context.Context, subset, name string) (image.Image, error) {
	_ = ctx

	img, err := imaging.Open(filepath.Join(s.root, subset, name), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("open %s/%s: %w", subset, name, err)
	}
	return img, nil
}

var _ port.ImageSource = (*FileSource)(nil)
