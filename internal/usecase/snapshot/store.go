package snapshot

import (
	"context"
	"encoding/json"
	"time"

	snapshotv1 "github.com/dainhan2k4/HDC-Mobile-sub005/internal/domain/snapshot/v1"
	"github.com/dainhan2k4/HDC-Mobile-sub005/pkg/errors"
	"github.com/dainhan2k4/HDC-Mobile-sub005/pkg/redis"
)

// Config holds the snapshot store settings.
type Config struct {
	TTL time.Duration `env:"SNAPSHOT_TTL" envDefault:"5m"`
}

// Store keeps the latest book snapshot per fund in Redis so read-side
// consumers never touch the matching path. Entries expire on their own
// when a fund's book goes quiet.
type Store struct {
	client redis.Client
	ttl    time.Duration
}

var _ snapshotv1.Store = (*Store)(nil)

// NewStore creates a Redis-backed snapshot store.
func NewStore(client redis.Client, config Config) *Store {
	return &Store{
		client: client,
		ttl:    config.TTL,
	}
}

func snapshotKey(fundID string) string {
	return "book_snapshot:" + fundID
}

// Save overwrites the fund's snapshot.
func (s *Store) Save(ctx context.Context, snapshot *snapshotv1.BookSnapshot) error {
	value, err := json.Marshal(snapshot)
	if err != nil {
		return errors.TracerFromError(err)
	}

	return s.client.Set(ctx, snapshotKey(snapshot.FundID), value, s.ttl)
}

// Get returns the fund's latest snapshot, or nil when none is stored.
func (s *Store) Get(ctx context.Context, fundID string) (*snapshotv1.BookSnapshot, error) {
	value, err := s.client.Get(ctx, snapshotKey(fundID))
	if err != nil {
		return nil, err
	}
	if value == "" {
		return nil, nil
	}

	snapshot := &snapshotv1.BookSnapshot{}
	if err := json.Unmarshal([]byte(value), snapshot); err != nil {
		return nil, errors.TracerFromError(err)
	}
	return snapshot, nil
}
