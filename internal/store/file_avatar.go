package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"

	"github.com/MKhiriev/go-test-prep/internal/logger"
)

const (
	// AvatarFileName is the fixed name of the avatar inside the data dir.
	AvatarFileName = "avatar.jpg"
	// AvatarMaxSide bounds both dimensions of the stored image.
	AvatarMaxSide = 512
	// AvatarJPEGQuality is the encoder quality of the stored image.
	AvatarJPEGQuality = 90
)

type avatarFileStorage struct {
	path   string
	logger *logger.Logger
}

// NewAvatarFileStorage returns an [AvatarStorage] keeping avatar.jpg in dataDir.
func NewAvatarFileStorage(dataDir string, logger *logger.Logger) AvatarStorage {
	return &avatarFileStorage{
		path:   filepath.Join(dataDir, AvatarFileName),
		logger: logger,
	}
}

// Save decodes raw, scales it down to fit into AvatarMaxSide keeping the
// aspect ratio and writes it as JPEG. The previous avatar is replaced
// atomically.
func (s *avatarFileStorage) Save(ctx context.Context, raw []byte) (string, error) {
	log := logger.FromContextOr(ctx, s.logger)

	src, format, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		log.Err(err).Str("func", "avatarFileStorage.Save").Msg("failed to decode avatar")
		return "", fmt.Errorf("%w: %w", ErrInvalidImage, err)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, fitInto(src, AvatarMaxSide), &jpeg.Options{Quality: AvatarJPEGQuality}); err != nil {
		log.Err(err).Str("func", "avatarFileStorage.Save").Msg("failed to encode avatar")
		return "", fmt.Errorf("encode avatar: %w", err)
	}

	if err := writeFileAtomic(s.path, buf.Bytes(), 0o600); err != nil {
		log.Err(err).Str("func", "avatarFileStorage.Save").Str("path", s.path).Msg("failed to write avatar")
		return "", fmt.Errorf("write avatar: %w", err)
	}

	log.Debug().
		Str("func", "avatarFileStorage.Save").
		Str("source_format", format).
		Int("bytes", buf.Len()).
		Msg("avatar saved")

	return s.path, nil
}

func (s *avatarFileStorage) Path() (string, bool) {
	if _, err := os.Stat(s.path); err != nil {
		return "", false
	}
	return s.path, true
}

func (s *avatarFileStorage) Remove(ctx context.Context) error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.FromContextOr(ctx, s.logger).Err(err).Str("func", "avatarFileStorage.Remove").Msg("failed to remove avatar")
		return fmt.Errorf("remove avatar: %w", err)
	}
	return nil
}

// fitInto scales src down so neither side exceeds maxSide. Smaller images
// are returned unchanged.
func fitInto(src image.Image, maxSide int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxSide && h <= maxSide {
		return src
	}

	if w >= h {
		h = max(1, h*maxSide/w)
		w = maxSide
	} else {
		w = max(1, w*maxSide/h)
		h = maxSide
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}
