package kit

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

const (
	// The source design leaves request timeouts unspecified; these are
	// the chosen defaults, documented here rather than in config.
	readHeaderTimeout = 5 * time.Second
	readTimeout       = 10 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// RunHTTPServer serves h on addr until SIGINT/SIGTERM, then drains
// in-flight requests before returning. A listener error, or a fault
// reported on faults (see FaultRecoverer), stops the server and is
// returned so the caller can exit non-zero. A nil faults channel is
// fine for servers without a fault path.
func RunHTTPServer(addr string, h http.Handler, log *zap.Logger, faults <-chan error) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server starting", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stop:
		log.Info("shutdown signal", zap.String("signal", sig.String()))
	case err := <-errCh:
		return err
	case err := <-faults:
		log.Error("uncaught fault, closing listener", zap.Error(err))
		if shErr := shutdown(srv); shErr != nil {
			log.Error("shutdown after fault failed", zap.Error(shErr))
		}
		return err
	}

	if err := shutdown(srv); err != nil {
		return err
	}
	log.Info("http server stopped cleanly")
	return nil
}

func shutdown(srv *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(ctx)
}
