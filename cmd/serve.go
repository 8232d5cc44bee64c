package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/qalab/employee-directory/internal/api"
	"github.com/qalab/employee-directory/internal/core/domain"
	"github.com/qalab/employee-directory/internal/core/service"
	"github.com/qalab/employee-directory/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server serving the API, the static frontend and the operational endpoints.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func runServe(parent context.Context) error {
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, log, err := bootstrap(ctx)
	if err != nil {
		return err
	}

	b := &backends{}
	defer b.Close(context.Background(), log)

	if err := openEmployeeStore(ctx, cfg, b, log); err != nil {
		return err
	}
	if err := openSessionStore(ctx, cfg, b, log); err != nil {
		return err
	}

	seeded, err := b.employees.Bootstrap(ctx, domain.SeedEmployees())
	if err != nil {
		return fmt.Errorf("seed employees: %w", err)
	}
	if seeded {
		log.Info().Int("employees", len(domain.SeedEmployees())).Msg("employee store seeded")
	}

	router := api.NewRouter(api.Dependencies{
		Auth:      service.NewAuthService(domain.DefaultUsers(), b.sessions, logger.Component("auth")),
		Employees: service.NewEmployeeService(b.employees, logger.Component("employees")),
		Checkers:  b.checkers,
		Logger:    logger.Component("http"),
		PublicDir: cfg.PublicDir,
		BodyLimit: cfg.BodyLimit,
		QAFaults:  cfg.QAFaultsEnabled,
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.ListenAndServe()
	}()
	log.Info().Str("addr", server.Addr).Bool("qa_faults", cfg.QAFaultsEnabled).Msgf("Running: http://localhost:%s", cfg.Port)

	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen %s: %w", server.Addr, err)
		}
	}

	log.Info().Msg("server stopped")
	return nil
}

