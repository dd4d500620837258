package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ManuelReschke/RazorSync/app/repository"
	"github.com/ManuelReschke/RazorSync/internal/pkg/cache"
	"github.com/ManuelReschke/RazorSync/internal/pkg/razorpay"
	"github.com/ManuelReschke/RazorSync/internal/pkg/syncer"
)

func newSyncCmd(rt *app) *cobra.Command {
	var useLock bool

	cmd := &cobra.Command{
		Use:   "sync [api-key] [api-secret]",
		Short: "Sync plans, customers and subscriptions from Razorpay",
		Long: `Fetch plans, customers and subscriptions from Razorpay and upsert them
locally, in that order. The first failure stops the run.

Credentials are taken from the arguments, falling back to
RAZORPAY_API_KEY and RAZORPAY_SECRET_KEY. Exported variables take
precedence over values in a .env file.

Examples:
  razorsync sync rzp_test_key secret
  razorsync sync --lock`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.sync(cmd.Context(), cmd.OutOrStdout(), args, useLock)
		},
	}
	cmd.Flags().BoolVar(&useLock, "lock", false, "hold a redis lock so concurrent runs do not overlap")

	return cmd
}

func (rt *app) sync(ctx context.Context, out io.Writer, args []string, useLock bool) error {
	creds, err := rt.cfg.ResolveCredentials(args)
	if err != nil {
		return err
	}

	if useLock {
		release, err := rt.acquireLock(ctx)
		if err != nil {
			return err
		}
		defer release()
	}

	db, closeDB, err := rt.openDatabase()
	if err != nil {
		return err
	}
	defer closeDB()

	repos := repository.NewFactory(db).GetRepositories()
	client := razorpay.NewClient(creds, rt.cfg.Razorpay)

	res, err := syncer.NewService(client, repos, rt.log).Run(ctx)
	if err != nil {
		if razorpay.IsAuthError(err) {
			return fmt.Errorf("%w: check the Razorpay API key and secret", err)
		}
		return err
	}

	fmt.Fprintf(out, "Synced %d plans, %d customers and %d subscriptions (run %s)\n",
		res.Plans, res.Customers, res.Subscriptions, res.RunID)
	return nil
}

func (rt *app) acquireLock(ctx context.Context) (func(), error) {
	client, err := cache.NewClient(ctx, rt.cfg.Cache, rt.log)
	if err != nil {
		return nil, err
	}

	lock := cache.NewLock(client, cache.SyncLockKey, rt.cfg.SyncLockTTL)
	if err := lock.Acquire(ctx); err != nil {
		_ = client.Close()
		if errors.Is(err, cache.ErrLocked) {
			return nil, errors.New("another sync is already running")
		}
		return nil, err
	}

	return func() {
		if err := lock.Release(context.WithoutCancel(ctx)); err != nil {
			rt.log.Warn("failed to release sync lock", zap.Error(err))
		}
		_ = client.Close()
	}, nil
}
