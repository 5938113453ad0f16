// Package httpserver runs an http.Handler with configured timeouts and a
// graceful shutdown on context cancellation or SIGINT/SIGTERM.
//
//	srv := httpserver.New(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    return err
//	}
package httpserver
