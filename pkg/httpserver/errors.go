package httpserver

import "errors"

var (
	ErrListen         = errors.New("http server: listen failed")
	ErrAlreadyRunning = errors.New("http server: already running")
	ErrShutdown       = errors.New("http server: graceful shutdown failed")
)
