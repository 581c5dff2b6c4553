package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	httpadapter "campaign-roi/internal/adapter/http"
	"campaign-roi/internal/adapter/usecase"
)

var servePort uint16

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Load the dataset and serve the ROI API",
	Long: `Load both ledgers once, then serve the summary, ROI and chart
endpoints over HTTP until SIGINT or SIGTERM is received.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Uint16Var(&servePort, "port", 0,
		"HTTP port (default from HTTP_PORT)")
}

func runServe(cmd *cobra.Command, args []string) error {
	if servePort != 0 {
		cfg.HTTP.Port = servePort
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	src, closeSrc, err := openSource(ctx)
	if err != nil {
		return err
	}
	ds, err := src.Load(ctx)
	closeSrc()
	if err != nil {
		return err
	}
	logDataset("dataset loaded", ds)

	handler := httpadapter.NewHandler(usecase.NewROIUseCase(ds), logger)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err = <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		return err
	}
	logger.Info("server gracefully stopped")
	return nil
}
