package services

import (
	"context"
	"testing"

	"projectflow/internal/notify"
	"projectflow/internal/record"
)

// fixtureDeps builds the standard test double: a zero-delay fixture store and
// a capturing notifier.
func fixtureDeps(t *testing.T) (Deps, *record.FixtureStore, *notify.Capture) {
	t.Helper()
	store := record.NewFixtureStore(0)
	capture := &notify.Capture{}
	return Deps{Store: store, Notifier: capture}, store, capture
}

// failingStore rejects every call with a fixed error.
type failingStore struct {
	err error
}

func (f *failingStore) FetchRecords(ctx context.Context, table string, params record.QueryParams) ([]record.Raw, error) {
	return nil, f.err
}

func (f *failingStore) GetRecordByID(ctx context.Context, table string, id int, params record.QueryParams) (record.Raw, error) {
	return nil, f.err
}

func (f *failingStore) CreateRecord(ctx context.Context, table string, fields record.Raw) (record.Raw, error) {
	return nil, f.err
}

func (f *failingStore) UpdateRecord(ctx context.Context, table string, id int, fields record.Raw) (record.Raw, error) {
	return nil, f.err
}

func (f *failingStore) DeleteRecord(ctx context.Context, table string, id int) error {
	return f.err
}
