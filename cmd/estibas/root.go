package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/jhoicas/estibas-api/internal/application/palletstock"
	"github.com/jhoicas/estibas-api/internal/infrastructure/postgres"
	"github.com/jhoicas/estibas-api/pkg/config"
	"github.com/jhoicas/estibas-api/pkg/logger"
)

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "estibas",
		Short:         "Libro de estibas de producción",
		Long:          "CLI administrativa del libro de stock de estibas: días, cierres, resúmenes mensuales y configuración.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.AddCommand(newMigrateCommand())
	rootCmd.AddCommand(newDayCommand())
	rootCmd.AddCommand(newMonthCommand())
	rootCmd.AddCommand(newAlertsCommand())
	rootCmd.AddCommand(newAnchorCommand())
	return rootCmd
}

// app agrupa las dependencias ya cableadas de un comando.
type app struct {
	cfg  *config.Config
	log  *logger.Logger
	pool *pgxpool.Pool
	uc   *palletstock.UseCase
}

// newApp carga configuración, logger y pool, y cablea el caso de uso.
func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("cargar configuración: %w", err)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
	}

	uc := palletstock.NewUseCase(
		postgres.NewTxRunner(pool),
		postgres.NewPalletDayRepository(pool),
		postgres.NewAnchorStockRepository(pool),
		postgres.NewAlertConfigRepository(pool),
		log,
	)
	return &app{cfg: cfg, log: log, pool: pool, uc: uc}, nil
}

func (a *app) Close() {
	a.pool.Close()
}

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Aplica las migraciones de base de datos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("cargar configuración: %w", err)
			}
			if err := postgres.RunMigrations(cfg.DB.ConnectionString()); err != nil {
				return err
			}
			cmd.Println("migraciones aplicadas")
			return nil
		},
	}
}
