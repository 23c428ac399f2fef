// Package services is the data-access layer: one service per entity type
// translating between the UI field convention and the backend's stored
// fields, plus the dashboard stats aggregator.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"projectflow/internal/models"
	"projectflow/internal/notify"
	"projectflow/internal/record"
)

// Deps are the collaborators shared by every entity service.
type Deps struct {
	Store    record.Store
	Notifier notify.Notifier
	Logger   *zap.Logger
	// Delay is the fixed artificial latency applied to every call,
	// mirroring the original service behavior. Zero in tests.
	Delay time.Duration
}

type base struct {
	store    record.Store
	notifier notify.Notifier
	log      *zap.Logger
	delay    time.Duration
}

func newBase(d Deps) base {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Notifier == nil {
		d.Notifier = notify.NewLog(d.Logger)
	}
	return base{store: d.Store, notifier: d.Notifier, log: d.Logger, delay: d.Delay}
}

func (b base) pause(ctx context.Context) error {
	if b.delay <= 0 {
		return ctx.Err()
	}
	select {
	case <-time.After(b.delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// fail normalizes a store error: not-found passes through, backend validation
// errors are surfaced one notification per failing field, and everything is
// logged before being re-raised to the caller. Never retries, never swallows.
func (b base) fail(op, entity string, err error) error {
	if errors.Is(err, record.ErrNotFound) {
		return fmt.Errorf("%s not found: %w", entity, record.ErrNotFound)
	}
	var be *record.BackendError
	if errors.As(err, &be) {
		for _, msg := range be.Messages() {
			b.notifier.Error(msg)
		}
		b.log.Error("backend call failed",
			zap.String("op", op),
			zap.String("entity", entity),
			zap.String("message", be.Message),
			zap.Int("field_errors", len(be.FieldErrors)),
		)
		return be
	}
	b.log.Error("backend call failed",
		zap.String("op", op),
		zap.String("entity", entity),
		zap.Error(err),
	)
	return &record.BackendError{Op: op, Table: entity, Message: err.Error()}
}

// Field-setting helpers for partial updates: only non-nil inputs make it into
// the payload, so absent fields stay untouched by the backend merge.
func setString(r record.Raw, key string, v *string) {
	if v != nil {
		r[key] = *v
	}
}

func setFloat(r record.Raw, key string, v *float64) {
	if v != nil {
		r[key] = *v
	}
}

func setInt(r record.Raw, key string, v *int) {
	if v != nil {
		r[key] = *v
	}
}

func setDate(r record.Raw, key string, v *models.Date) {
	if v != nil {
		r[key] = string(*v)
	}
}
