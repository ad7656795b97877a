package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"civic/config"
	"civic/internal/errors"
	"civic/internal/usecase"

	"github.com/spf13/cobra"
)

type seedFlags struct {
	configDir  string
	users      int
	calls      int
	emails     int
	events     int
	randomSeed uint64
	reset      bool
}

func newRootCmd() *cobra.Command {
	flags := &seedFlags{}

	rootCmd := &cobra.Command{
		Use:   "seed",
		Short: "Fill a development database with fixture users and actions",
		Long: `Seed creates fake users and call, email and event actions for local development.

Records are committed one at a time. If a record fails, seeding stops and
everything stored before it stays in the database.

Usage:
  seed                         # 100 of each kind, counts from config
  seed --users 20 --calls 5    # override counts
  seed --reset                 # wipe fixture tables first
  seed --random-seed 42        # reproducible values
  seed reset                   # wipe only

Configuration is read from config/config.yaml and the environment
(SEED_USERS, DATABASE_DRIVER, POSTGRES_MASTER_HOST, ...).`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSeed(cmd, flags)
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "Directory holding config.yaml and .env")
	rootCmd.Flags().IntVar(&flags.users, "users", 0, "Number of users to create (default from config)")
	rootCmd.Flags().IntVar(&flags.calls, "calls", 0, "Number of call actions to create (default from config)")
	rootCmd.Flags().IntVar(&flags.emails, "emails", 0, "Number of email actions to create (default from config)")
	rootCmd.Flags().IntVar(&flags.events, "events", 0, "Number of event actions to create (default from config)")
	rootCmd.Flags().Uint64Var(&flags.randomSeed, "random-seed", 0, "Seed of the random source, 0 picks one from the clock")
	rootCmd.Flags().BoolVar(&flags.reset, "reset", false, "Delete existing users and actions before seeding")

	resetCmd := &cobra.Command{
		Use:          "reset",
		Short:        "Delete every fixture user and action",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReset(cmd, flags)
		},
	}
	rootCmd.AddCommand(resetCmd)

	return rootCmd
}

func runSeed(cmd *cobra.Command, flags *seedFlags) error {
	cfg, err := loadConfig(cmd, flags)
	if err != nil {
		return err
	}

	return withSeeder(cmd.Context(), cfg, func(ctx context.Context, s *seeder) error {
		if flags.reset {
			if _, err := s.usecase.Reset(ctx); err != nil {
				return err
			}
		}

		plan := usecase.SeedPlan{
			Users:        cfg.Seed.Users,
			CallActions:  cfg.Seed.CallActions,
			EmailActions: cfg.Seed.EmailActions,
			EventActions: cfg.Seed.EventActions,
		}

		summary, seedErr := s.usecase.SeedAll(ctx, plan)
		if summary != nil {
			printSummary(cmd, summary)
		}

		// Push even after a failure so partial runs are visible.
		if err := s.metrics.Push(context.WithoutCancel(ctx)); err != nil {
			s.logger.WarnContext(ctx, "Failed to push seed metrics", "error", err)
		}

		return seedErr
	})
}

func runReset(cmd *cobra.Command, flags *seedFlags) error {
	cfg, err := loadConfig(cmd, flags)
	if err != nil {
		return err
	}

	return withSeeder(cmd.Context(), cfg, func(ctx context.Context, s *seeder) error {
		result, err := s.usecase.Reset(ctx)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d users and %d actions\n", result.Users, result.Actions)

		return nil
	})
}

// interruptContext is canceled on SIGINT or SIGTERM.
func interruptContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

// loadConfig reads the configuration and applies the flags the user set explicitly.
func loadConfig(cmd *cobra.Command, flags *seedFlags) (*config.Config, error) {
	cfg, err := config.Load(flags.configDir)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}

	applyFlags(cmd, flags, cfg)

	return cfg, nil
}

func applyFlags(cmd *cobra.Command, flags *seedFlags, cfg *config.Config) {
	set := cmd.Flags().Changed

	if set("users") {
		cfg.Seed.Users = flags.users
	}
	if set("calls") {
		cfg.Seed.CallActions = flags.calls
	}
	if set("emails") {
		cfg.Seed.EmailActions = flags.emails
	}
	if set("events") {
		cfg.Seed.EventActions = flags.events
	}
	if set("random-seed") {
		cfg.Seed.RandomSeed = flags.randomSeed
	}
}

func printSummary(cmd *cobra.Command, summary *usecase.SeedSummary) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Users:         %d\n", summary.Users)
	fmt.Fprintf(out, "Call actions:  %d\n", summary.CallActions)
	fmt.Fprintf(out, "Email actions: %d\n", summary.EmailActions)
	fmt.Fprintf(out, "Event actions: %d\n", summary.EventActions)
	fmt.Fprintf(out, "Total:         %d in %s\n", summary.Total(), summary.Duration.Round(time.Millisecond))
}
