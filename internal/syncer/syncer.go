// Package syncer orchestrates the round trip between the in-memory registry
// and the single remote document: load is fetch -> migrate -> hydrate, save
// is snapshot -> stamp -> upload. Saves are unconditional overwrites with no
// version token; across concurrent sessions the last writer wins.
package syncer

import (
	"context"
	"encoding/json"
	"time"

	"habitly/internal/auth"
	"habitly/internal/drive"
	apperrors "habitly/internal/errors"
	"habitly/internal/logger"
	"habitly/internal/migrate"
	"habitly/internal/models"
	"habitly/internal/registry"
)

type Pipeline struct {
	tokens auth.TokenProvider
	docs   drive.DocumentStore
	reg    *registry.Registry
	name   string
	now    func() time.Time
}

func New(tokens auth.TokenProvider, docs drive.DocumentStore, reg *registry.Registry, name string) *Pipeline {
	return &Pipeline{
		tokens: tokens,
		docs:   docs,
		reg:    reg,
		name:   name,
		now:    time.Now,
	}
}

// Load locates the remote document, migrates its content and hydrates the
// registry. A missing document is not an error: the registry gets the
// default empty dataset and no remote document is created. Any failure also
// hydrates the empty dataset, so the registry is never left in an unknown
// state, and the error is returned for reporting.
func (p *Pipeline) Load(ctx context.Context) error {
	data, err := p.fetch(ctx)
	if err != nil {
		logger.Warn("Remote load failed, starting from empty dataset", "error", err)
		p.reg.SetAll(models.DefaultData(p.now()))
		return err
	}
	p.reg.SetAll(data)
	return nil
}

func (p *Pipeline) fetch(ctx context.Context) (models.HabitData, error) {
	token, err := p.tokens.Token(ctx)
	if err != nil {
		return models.HabitData{}, err
	}

	id, err := p.docs.FindByName(ctx, token, p.name)
	if err != nil {
		return models.HabitData{}, err
	}
	if id == "" {
		logger.Debug("No remote document found", "name", p.name)
		return models.DefaultData(p.now()), nil
	}

	raw, err := p.docs.ReadContent(ctx, token, id)
	if err != nil {
		return models.HabitData{}, err
	}

	data, err := migrate.Document(raw)
	if err != nil {
		return models.HabitData{}, err
	}

	logger.Debug("Loaded remote document", "habits", len(data.Habits), "entries", len(data.Entries))
	return data, nil
}

// Save snapshots the registry, stamps lastSyncedAt and uploads the result
// as the full document body, updating in place when the document exists and
// creating it otherwise. A failed save leaves the registry untouched; the
// caller decides whether the failure is fatal.
func (p *Pipeline) Save(ctx context.Context) error {
	token, err := p.tokens.Token(ctx)
	if err != nil {
		return err
	}

	data := p.reg.Snapshot()
	data.LastSyncedAt = models.Timestamp(p.now())

	body, err := json.Marshal(data)
	if err != nil {
		return &apperrors.DataError{Err: err}
	}

	id, err := p.docs.FindByName(ctx, token, p.name)
	if err != nil {
		return err
	}

	id, err = p.docs.WriteContent(ctx, token, id, body)
	if err != nil {
		return err
	}

	logger.Debug("Saved remote document", "id", id, "habits", len(data.Habits), "entries", len(data.Entries))
	return nil
}
