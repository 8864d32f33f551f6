package adapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-test-prep/internal/config"
	"github.com/MKhiriev/go-test-prep/internal/logger"
	"github.com/MKhiriev/go-test-prep/internal/utils"
)

// maxAvatarBytes bounds the size of a downloaded avatar.
const maxAvatarBytes = 10 << 20

type httpMediaAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPMediaAdapter constructs the resty implementation of [MediaAdapter].
func NewHTTPMediaAdapter(adapterCfg config.ClientAdapter, log *logger.Logger) MediaAdapter {
	client := utils.NewHTTPClient(adapterCfg.MediaBaseURL, adapterCfg.RequestTimeout)
	client.SetResponseBodyLimit(maxAvatarBytes)

	return &httpMediaAdapter{client: client, logger: log}
}

func (h *httpMediaAdapter) DownloadAvatar(ctx context.Context, avatarURL string) ([]byte, error) {
	avatarURL = strings.TrimSpace(avatarURL)
	if avatarURL == "" {
		return nil, ErrEmptyAvatarURL
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "image/*").
		Get(avatarURL)
	if err != nil {
		return nil, fmt.Errorf("%w: download avatar: %w", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	logger.FromContextOr(ctx, h.logger).Debug().
		Str("func", "httpMediaAdapter.DownloadAvatar").
		Int("bytes", len(resp.Body())).
		Msg("avatar downloaded")

	return resp.Body(), nil
}
