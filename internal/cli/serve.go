package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SeamusWaldron/twisty/internal/api"
	"github.com/SeamusWaldron/twisty/internal/storage"
)

var (
	serveAddr        string
	serveMaxSize     int
	serveMaxScramble int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve cube sessions over HTTP",
	Long: `Start the JSON API used by the browser renderer.

Sessions and solve statistics live in memory and are lost when the server
stops. The allowed CORS origin comes from the config file or
TWISTY_CLIENT_ORIGIN.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config)")
	serveCmd.Flags().IntVar(&serveMaxSize, "max-size", 0, "Largest cube size to accept (default 4)")
	serveCmd.Flags().IntVar(&serveMaxScramble, "max-scramble", api.DefaultMaxScramble, "Longest scramble a request may ask for")
}

func runServe(cmd *cobra.Command, args []string) error {
	addr := serveAddr
	if addr == "" {
		addr = cfg.Addr
	}

	db, err := storage.Open()
	if err != nil {
		return err
	}
	defer db.Close()

	srv := api.New(api.Options{
		ClientOrigin:   cfg.ClientOrigin,
		DefaultSize:    cfg.DefaultSize,
		ScrambleLength: cfg.ScrambleLength,
		MaxScramble:    serveMaxScramble,
		MaxSize:        serveMaxSize,
		DB:             db,
		Logger:         log,
	})

	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", zap.String("addr", addr), zap.String("origin", cfg.ClientOrigin))
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return httpSrv.Shutdown(shutdownCtx)
}
