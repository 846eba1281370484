package cliapp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/urfave/cli/v2"
)

// Lifecycle is a service that runs until it is stopped.
type Lifecycle interface {
	// Start starts the service. It must not block on the service running.
	Start(ctx context.Context) error
	// Stop stops the service. Once ctx is done, remaining resources are
	// force-closed.
	Stop(ctx context.Context) error
	Stopped() bool
}

// LifecycleAction builds a Lifecycle from the CLI context. The close
// function may be called by the service to shut itself down with a cause.
type LifecycleAction func(ctx *cli.Context, close context.CancelCauseFunc) (Lifecycle, error)

const defaultStopTimeout = 10 * time.Second

// LifecycleCmd turns a LifecycleAction into a command action that starts the
// service and stops it again once the command context is done.
func LifecycleCmd(fn LifecycleAction) cli.ActionFunc {
	return lifecycleCmd(fn, defaultStopTimeout)
}

func lifecycleCmd(fn LifecycleAction, stopTimeout time.Duration) cli.ActionFunc {
	return func(ctx *cli.Context) error {
		hostCtx := ctx.Context
		appCtx, appCancel := context.WithCancelCause(hostCtx)
		defer appCancel(nil)
		ctx.Context = appCtx

		appLifecycle, err := fn(ctx, appCancel)
		if err != nil {
			return errors.Join(fmt.Errorf("failed to setup: %w", err), context.Cause(appCtx))
		}

		if err := appLifecycle.Start(appCtx); err != nil {
			stopCtx, stopCancel := context.WithTimeout(context.Background(), stopTimeout)
			defer stopCancel()
			return errors.Join(fmt.Errorf("failed to start: %w", err), appLifecycle.Stop(stopCtx))
		}

		<-appCtx.Done()

		stopCtx, stopCancel := context.WithTimeout(context.Background(), stopTimeout)
		defer stopCancel()
		if err := appLifecycle.Stop(stopCtx); err != nil {
			return fmt.Errorf("failed to stop: %w", err)
		}
		if cause := context.Cause(appCtx); !errors.Is(cause, context.Canceled) {
			return cause
		}
		return nil
	}
}
