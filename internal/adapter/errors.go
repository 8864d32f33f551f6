package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrUnavailable         = errors.New("server unavailable")
	ErrInternalServerError = errors.New("internal server error")
	ErrInvalidAddress      = errors.New("invalid adapter address")
	ErrEmptyAvatarURL      = errors.New("empty avatar url")
)
