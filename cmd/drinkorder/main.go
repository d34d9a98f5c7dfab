package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmynk/drinkorder/internal/config"
	"github.com/mmynk/drinkorder/internal/docstore"
	"github.com/mmynk/drinkorder/internal/models"
	"github.com/mmynk/drinkorder/internal/seed"
	"github.com/mmynk/drinkorder/internal/storage"
	"github.com/mmynk/drinkorder/internal/storage/postgres"
	"github.com/mmynk/drinkorder/internal/storage/sqlite"
	"github.com/mmynk/drinkorder/pkg/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// cobra already printed the error
		os.Exit(1)
	}
}

// app carries state shared by every subcommand.
type app struct {
	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "drinkorder",
		Short:        "Group drink ordering server",
		Long:         "drinkorder runs a small server where a group collects drink orders from one shop before a deadline.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logging.Configure(cfg.Log.Level, cfg.Log.Format)
			a.cfg = cfg
			return nil
		},
	}

	root.AddCommand(a.serveCmd(), a.seedCmd(), a.catalogCmd())
	return root
}

func (a *app) serveCmd() *cobra.Command {
	var withSeed bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runServe(cmd.Context(), withSeed)
		},
	}
	cmd.Flags().BoolVar(&withSeed, "seed", false, "Insert demo shops when the database has none")
	return cmd
}

func (a *app) seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert demo shops and menus into an empty database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(cmd.Context(), a.cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			result, err := seed.Run(cmd.Context(), store)
			if err != nil {
				return err
			}
			if result.Skipped {
				fmt.Fprintln(cmd.OutOrStdout(), "database already has shops, nothing seeded")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d shops, %d menu items\n", result.Shops, result.MenuItems)
			return nil
		},
	}
}

func (a *app) catalogCmd() *cobra.Command {
	catalog := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect or reset the drink option catalog",
	}

	catalog.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the current drink options as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withCatalog(cmd.Context(), func(ctx context.Context, s *docstore.Store[models.Catalog]) error {
				c, err := s.Load(ctx)
				if err != nil {
					return err
				}
				return printJSON(cmd, c)
			})
		},
	})

	catalog.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Replace the drink options with the built-in defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withCatalog(cmd.Context(), func(ctx context.Context, s *docstore.Store[models.Catalog]) error {
				c, err := s.Reset(ctx)
				if err != nil {
					return err
				}
				slog.Info("Drink options reset to defaults", "toppings", len(c.Toppings))
				return printJSON(cmd, c)
			})
		},
	})

	return catalog
}

func (a *app) withCatalog(ctx context.Context, fn func(context.Context, *docstore.Store[models.Catalog]) error) error {
	store, err := openStore(ctx, a.cfg)
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(ctx, docstore.New(store, docstore.KeyDrinkOptions, models.DefaultCatalog))
}

// openStore opens the storage backend selected by DB_DRIVER.
func openStore(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	switch cfg.DB.Driver {
	case config.DriverPostgres:
		store, err := postgres.New(ctx, cfg.DB.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres store: %w", err)
		}
		slog.Info("Storage initialized", "driver", cfg.DB.Driver)
		return store, nil
	default:
		store, err := sqlite.New(cfg.DB.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		slog.Info("Storage initialized", "driver", cfg.DB.Driver, "database", cfg.DB.Path)
		return store, nil
	}
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
