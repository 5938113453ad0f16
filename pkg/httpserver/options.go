package httpserver

import "log/slog"

// Option adjusts a Server after its Config is applied.
type Option func(*Server)

// WithAddr overrides Config.Addr, e.g. from a command line flag.
// Empty values are ignored.
func WithAddr(addr string) Option {
	return func(s *Server) {
		if addr != "" {
			s.cfg.Addr = addr
		}
	}
}

// WithLogger sets the logger for start and stop messages.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}
