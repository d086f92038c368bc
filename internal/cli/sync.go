package cli

import (
	"context"
	"fmt"
)

type SyncCmd struct {
	Pull SyncPullCmd `cmd:"" help:"Replace the local dataset with the remote document."`
	Push SyncPushCmd `cmd:"" help:"Overwrite the remote document with the local dataset."`
}

type SyncPullCmd struct{}

func (c *SyncPullCmd) Run(ctx *Context) error {
	if err := ctx.Config.CheckSync(); err != nil {
		return err
	}

	// Load hydrates the registry even on failure (empty dataset), but a
	// failed pull should not clobber the local working copy.
	if err := ctx.Syncer.Load(context.Background()); err != nil {
		return fmt.Errorf("pull failed: %w", err)
	}

	if err := ctx.Persist(); err != nil {
		return err
	}

	fmt.Printf("Pulled %d habits and %d entries.\n", len(ctx.Registry.Habits()), len(ctx.Registry.Entries()))
	return nil
}

type SyncPushCmd struct{}

func (c *SyncPushCmd) Run(ctx *Context) error {
	if err := ctx.Config.CheckSync(); err != nil {
		return err
	}

	if err := ctx.Hydrate(); err != nil {
		return err
	}

	if err := ctx.Syncer.Save(context.Background()); err != nil {
		return fmt.Errorf("push failed: %w", err)
	}

	fmt.Printf("Pushed %d habits and %d entries.\n", len(ctx.Registry.Habits()), len(ctx.Registry.Entries()))
	return nil
}
