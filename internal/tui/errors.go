// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
)

var ErrUserQuit = errors.New("user quit the program")

// errorMapper turns service errors into text for the user.
type errorMapper interface {
	Map(ctx context.Context, err error) string
}

func errorText(ctx context.Context, errs errorMapper, err error) string {
	if err == nil {
		return ""
	}
	return errs.Map(ctx, err)
}
