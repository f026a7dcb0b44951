package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"notifyd/internal/bus"
	"notifyd/internal/config"
	"notifyd/internal/httpapi"
	"notifyd/internal/sink"
)

const shutdownTimeout = 5 * time.Second

// Serve runs the daemon until ctx is done. Logs go to logOut. ready, if
// non-nil, is called with the bound address once the listener is open.
func Serve(ctx context.Context, cfg config.Config, logOut io.Writer, ready func(net.Addr)) error {
	if ctx == nil {
		ctx = context.Background()
	}
	log := newLogger(cfg, logOut)

	n := bus.New(bus.WithLogger(log))
	defer n.Close()

	topics := make([]bus.Topic, 0, len(cfg.LogTopics))
	for _, t := range cfg.LogTopics {
		topics = append(topics, bus.Topic(t))
	}
	sink.AttachLogger(n, log.With().Str("component", "sink").Logger(), topics...)

	httpapi.SetLogger(log.With().Str("component", "httpapi").Logger())
	httpapi.SetRequestLogLevel(cfg.LogLevel)
	httpapi.SetMaxBodyBytes(cfg.MaxBodyBytes)
	httpapi.SetCORSOptions(cfg.CORSEnabled, cfg.CORSOrigins, cfg.CORSMethods, cfg.CORSHeaders)

	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.Addr, err)
	}
	srv := &http.Server{
		Handler:           httpapi.NewMux(n),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	log.Info().Str("addr", ln.Addr().String()).Strs("log_topics", cfg.LogTopics).Msg("notifyd listening")
	n.Publish(bus.TopicSuccessNotification, bus.Payload{"mensaje": "notifyd listening", "addr": ln.Addr().String()})
	if ready != nil {
		ready(ln.Addr())
	}

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown error")
		return err
	}
	log.Info().Msg("notifyd stopped")
	return nil
}
