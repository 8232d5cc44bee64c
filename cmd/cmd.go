package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/sethvargo/go-envconfig"
	"github.com/spf13/cobra"

	"github.com/qalab/employee-directory/internal/pkg/config"
	"github.com/qalab/employee-directory/pkg/logger"
)

const serviceName = "employee-directory"

var resetData bool

var rootCmd = &cobra.Command{
	Use:          serviceName,
	Short:        "Employee Directory",
	Long:         `Session-authenticated employee directory API with QA fault injection.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// bootstrap loads configuration from the environment and initialises the
// process logger.
func bootstrap(ctx context.Context) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadFrom(ctx, envconfig.OsLookuper())
	if err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("load config: %w", err)
	}
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: serviceName,
	})
	return cfg, log, nil
}

func init() {
	seedCmd.Flags().BoolVar(&resetData, "reset", false, "Overwrite existing employees with the seed set")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
}
