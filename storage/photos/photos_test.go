package photos_test

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"storages.dev/storages/storage"
	"storages.dev/storages/storage/photos"
)

func testImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 16, 8))
	for x := range 16 {
		for y := range 8 {
			img.Set(x, y, color.RGBA{R: uint8(x * 16), G: uint8(y * 32), B: 128, A: 255})
		}
	}
	return img
}

func TestSave(t *testing.T) {
	svc := storage.NewService(storage.HostDirectories{InternalRoot: t.TempDir()})
	saver := photos.NewSaver(svc, photos.KSUIDName)
	config := storage.StorageConfig{Persistent: true, Internal: true}

	result := saver.Save(config, testImage())
	require.True(t, result.Success, result.ErrorMessage())
	assert.True(t, strings.HasSuffix(result.URI, ".jpg"))

	loc, err := svc.Resolver.Resolve(config, filepath.Base(result.URI))
	require.NoError(t, err)

	saved := svc.Store.ReadBinary(loc)
	require.True(t, saved.Success, saved.ErrorMessage())

	decoded, err := jpeg.Decode(bytes.NewReader(saved.Data))
	require.NoError(t, err, "saved photo should be a valid JPEG")
	assert.Equal(t, image.Rect(0, 0, 16, 8), decoded.Bounds())
}

func TestSave_DistinctNames(t *testing.T) {
	svc := storage.NewService(storage.HostDirectories{InternalRoot: t.TempDir()})
	saver := photos.NewSaver(svc, photos.UUIDName)
	config := storage.StorageConfig{Persistent: false, Internal: true}

	first := saver.Save(config, testImage())
	second := saver.Save(config, testImage())
	require.True(t, first.Success)
	require.True(t, second.Success)
	assert.NotEqual(t, first.URI, second.URI, "every photo gets its own file")
}

func TestSave_NilImage(t *testing.T) {
	svc := storage.NewService(storage.HostDirectories{InternalRoot: t.TempDir()})
	result := photos.NewSaver(svc, nil).Save(storage.StorageConfig{Internal: true}, nil)

	assert.False(t, result.Success)
	var ioErr *storage.IOError
	require.ErrorAs(t, result.Err, &ioErr)
	assert.Equal(t, "encode", ioErr.Op)
}

func TestSave_ExternalUnavailable(t *testing.T) {
	svc := storage.NewService(storage.HostDirectories{InternalRoot: t.TempDir()})
	result := photos.NewSaver(svc, nil).Save(storage.StorageConfig{Persistent: true}, testImage())

	assert.False(t, result.Success)
	assert.ErrorIs(t, result.Err, storage.ErrUnavailable)
}

func TestNamers(t *testing.T) {
	first, second := photos.KSUIDName(), photos.KSUIDName()
	assert.Len(t, first, 27+len(".jpg"))
	assert.NotEqual(t, first, second)

	assert.Len(t, photos.UUIDName(), 36+len(".jpg"))

	namer, err := photos.NamerFor("uuid")
	require.NoError(t, err)
	assert.Len(t, namer(), 36+len(".jpg"))

	_, err = photos.NamerFor("sequential")
	assert.Error(t, err)
}
