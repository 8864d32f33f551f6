package session

import (
	"context"

	"github.com/MKhiriev/go-test-prep/internal/logger"
	"github.com/MKhiriev/go-test-prep/internal/state"
	"github.com/MKhiriev/go-test-prep/internal/store"
)

// FileAvatarManager keeps the avatar file and publishes its path.
type FileAvatarManager struct {
	files  store.AvatarStorage
	path   *state.Cell[*string]
	logger *logger.Logger
}

func NewFileAvatarManager(files store.AvatarStorage, log *logger.Logger) *FileAvatarManager {
	var current *string
	if p, ok := files.Path(); ok {
		current = &p
	}

	return &FileAvatarManager{
		files:  files,
		path:   state.NewCell(current),
		logger: log,
	}
}

// SaveAvatar stores raw and reports the new path. On failure the previous
// avatar stays in place.
func (m *FileAvatarManager) SaveAvatar(ctx context.Context, raw []byte) (string, bool) {
	p, err := m.files.Save(ctx, raw)
	if err != nil {
		logger.FromContextOr(ctx, m.logger).Debug().Err(err).
			Str("func", "FileAvatarManager.SaveAvatar").
			Msg("failed to save avatar")
		return "", false
	}

	m.path.Set(&p)
	return p, true
}

func (m *FileAvatarManager) AvatarPath() (string, bool) {
	return m.files.Path()
}

func (m *FileAvatarManager) ObserveAvatarPath() (<-chan *string, func()) {
	return m.path.Subscribe()
}

func (m *FileAvatarManager) ClearAvatar(ctx context.Context) {
	if err := m.files.Remove(ctx); err != nil {
		logger.FromContextOr(ctx, m.logger).Debug().Err(err).
			Str("func", "FileAvatarManager.ClearAvatar").
			Msg("failed to remove avatar")
	}
	m.path.Set(nil)
}
