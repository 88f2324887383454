// Package apperr defines the error taxonomy shared by qcd components.
package apperr

import "errors"

var (
	ErrStoreOpen    = errors.New("store open failed")
	ErrQuery        = errors.New("store query failed")
	ErrTerminalInit = errors.New("terminal init failed")
	ErrUsage        = errors.New("usage")
)
