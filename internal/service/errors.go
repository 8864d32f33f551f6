package service

import "errors"

var (
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrInvalidAccessToken = errors.New("invalid access token")
	ErrEmptySessionID     = errors.New("empty session id")
	ErrAvatarNotSaved     = errors.New("avatar was not saved")
)
