// Package photos saves captured images as JPEG files in a storage location.
package photos

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"log/slog"

	"github.com/google/uuid"
	"github.com/segmentio/ksuid"

	"storages.dev/storages/storage"
)

// Quality is the JPEG quality photos are saved with.
const Quality = 95

const extension = ".jpg"

var errNoImage = errors.New("no image")

// Namer returns a new file name for each saved photo.
type Namer func() string

// KSUIDName names photos with a KSUID so names sort by capture time.
func KSUIDName() string {
	return ksuid.New().String() + extension
}

// UUIDName names photos with a random UUID.
func UUIDName() string {
	return uuid.NewString() + extension
}

// NamerFor returns the Namer for a naming policy, "ksuid" or "uuid".
func NamerFor(policy string) (Namer, error) {
	switch policy {
	case "", "ksuid":
		return KSUIDName, nil
	case "uuid":
		return UUIDName, nil
	default:
		return nil, fmt.Errorf("unknown photo naming policy %q", policy)
	}
}

type Saver struct {
	svc  *storage.Service
	name Namer
	log  *slog.Logger
}

func NewSaver(svc *storage.Service, name Namer) *Saver {
	if name == nil {
		name = KSUIDName
	}
	return &Saver{
		svc:  svc,
		name: name,
		log:  slog.With("instanceID", "photos"),
	}
}

// Save encodes img as JPEG and writes it under a fresh name in the location
// selected by config. The result's URI holds the photo's full path.
func (s *Saver) Save(config storage.StorageConfig, img image.Image) storage.OperationResult {
	name := s.name()
	data, err := Encode(img)
	if err != nil {
		return storage.Failed("encode", name, err)
	}

	result := s.svc.WriteBinary(config, name, data)
	if result.Success {
		s.log.Info("photo saved", "path", result.URI, "bytes", len(data))
	} else {
		s.log.Warn("failed to save photo", "name", name, "error", result.Err)
	}
	return result
}

// Encode returns img as JPEG bytes.
func Encode(img image.Image) ([]byte, error) {
	if img == nil {
		return nil, errNoImage
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: Quality}); err != nil {
		return nil, fmt.Errorf("encoding jpeg: %w", err)
	}
	return buf.Bytes(), nil
}
