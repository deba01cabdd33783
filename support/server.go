package support

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/avast/retry-go"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/weegigs/wee-webapp-go/we"
)

const listenRetryDelay = 200 * time.Millisecond

type Server struct {
	cfg     Config
	log     *zerolog.Logger
	handler http.Handler
}

func NewServer(cfg Config, log *zerolog.Logger, handler http.Handler) *Server {
	return &Server{cfg: cfg, log: log, handler: handler}
}

func (s *Server) Addr() string {
	return fmt.Sprintf(":%d", s.cfg.Port)
}

// Listen binds the configured port, retrying up to ListenAttempts times. Failure to bind
// is a startup error.
func (s *Server) Listen() (net.Listener, error) {
	var listener net.Listener

	err := retry.Do(
		func() error {
			l, err := net.Listen("tcp", s.Addr())
			if err != nil {
				return err
			}
			listener = l
			return nil
		},
		retry.Attempts(s.cfg.ListenAttempts),
		retry.Delay(listenRetryDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			s.log.Warn().Err(err).Uint("attempt", n+1).Str("addr", s.Addr()).Msg("listen failed, retrying")
		}),
	)
	if err != nil {
		return nil, we.Startup("listen", errors.Wrapf(err, "failed to listen on %s", s.Addr()))
	}

	return listener, nil
}

// Serve blocks until ctx is cancelled or the server fails.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	server := &http.Server{
		Handler:      s.handler,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.log.Info().Str("addr", listener.Addr().String()).Msg("listening")
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		shutdown, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()

		s.log.Info().Msg("shutting down")
		return server.Shutdown(shutdown)
	})

	return g.Wait()
}

func (s *Server) Run(ctx context.Context) error {
	listener, err := s.Listen()
	if err != nil {
		return err
	}

	return s.Serve(ctx, listener)
}
