package snapshotv1

import "context"

// Store persists book snapshots for read-side consumers. Writes are
// best-effort; a failed save never fails the matching pass.
//
//go:generate mockgen -source=interface.go -destination=mock/interface_mock.go -package=snapshotv1_mock
type Store interface {
	Save(ctx context.Context, snapshot *BookSnapshot) error
	Get(ctx context.Context, fundID string) (*BookSnapshot, error)
}
