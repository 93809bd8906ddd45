package dataset

import (
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, image.NewGray(image.Rect(0, 0, w, h))))
}

func TestFileSource_ListSortedImagesOnly(t *testing.T) {
	root := t.TempDir()
	writePNG(t, filepath.Join(root, "Train", "good", "b.png"), 8, 8)
	writePNG(t, filepath.Join(root, "Train", "good", "a.png"), 8, 8)
	require.NoError(t, os.WriteFile(filepath.Join(root, "Train", "good", "notes.txt"), []byte("x"), 0644))

	src := NewFileSource(root)
	names, err := src.List(context.Background(), filepath.Join("Train", "good"))
	require.NoError(t, err)
	require.Equal(t, []string{"a.png", "b.png"}, names)
}

func TestFileSource_Load(t *testing.T) {
	root := t.TempDir()
	writePNG(t, filepath.Join(root, "Test", "t1.png"), 32, 16)

	src := NewFileSource(root)
	img, err := src.Load(context.Background(), "Test", "t1.png")
	require.NoError(t, err)
	require.Equal(t, 32, img.Bounds().Dx())
	require.Equal(t, 16, img.Bounds().Dy())
}

func TestFileSource_MissingDir(t *testing.T) {
	src := NewFileSource(t.TempDir())
	_, err := src.List(context.Background(), "Train/none")
	require.Error(t, err)
}
