package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"habitly/internal/config"
	"habitly/internal/logger"
	"habitly/internal/models"
	"habitly/internal/registry"
	"habitly/internal/store"
	"habitly/internal/syncer"
)

// Context carries the wired-up application state into every command.
// Syncer is nil when no sync credentials are configured; local commands
// still work.
type Context struct {
	Config     *config.Config
	ConfigPath string
	Store      *store.FileStore
	Registry   *registry.Registry
	Syncer     *syncer.Pipeline
}

// Hydrate loads the local working copy into the registry.
func (c *Context) Hydrate() error {
	data, err := c.Store.Load()
	if err != nil {
		return err
	}
	c.Registry.SetAll(data)
	return nil
}

// Persist writes the registry back to the local working copy.
func (c *Context) Persist() error {
	return c.Store.Save(c.Registry.Snapshot())
}

// Commit persists locally and then attempts a remote push. The local write
// always happens first; a failed push is reported but never fails the
// command, so the next successful sync carries the edits.
func (c *Context) Commit() error {
	if err := c.Persist(); err != nil {
		return err
	}
	if c.Syncer == nil {
		return nil
	}
	if err := c.Syncer.Save(context.Background()); err != nil {
		logger.Warn("Remote sync failed, local changes kept", "error", err)
		fmt.Fprintln(os.Stderr, "Warning: remote sync failed; changes were saved locally.")
	}
	return nil
}

// findHabit resolves a habit by id or name.
func (c *Context) findHabit(ref string) (models.Habit, error) {
	h, ok := c.Registry.Find(ref)
	if !ok {
		return models.Habit{}, fmt.Errorf("habit %q not found", ref)
	}
	return h, nil
}

// resolveDate turns an optional YYYY-MM-DD flag into a date, defaulting to
// today.
func resolveDate(s string) (time.Time, error) {
	if s == "" {
		return models.Day(time.Now()), nil
	}
	d, err := models.ParseDay(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", s)
	}
	return d, nil
}
