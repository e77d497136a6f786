package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/lightbnb/lightbnb-api/internal/core/domain"
	"github.com/lightbnb/lightbnb-api/internal/core/ports"
	"github.com/lightbnb/lightbnb-api/internal/infrastructure/config"
	"github.com/lightbnb/lightbnb-api/internal/infrastructure/db/memory"
	"github.com/lightbnb/lightbnb-api/internal/infrastructure/db/postgres"
)

type seedResult struct {
	Users              int
	Existing           int
	Properties         int
	ExistingProperties int
}

// seedPropertyStore is the property side of the seed target.
type seedPropertyStore interface {
	ports.PropertyWriter
	Exists(ctx context.Context, ownerID int64, title string) (bool, error)
}

func seed(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	snap, err := memory.LoadSnapshot(cfg.SnapshotDir)
	if err != nil {
		return err
	}

	db, err := connectPostgres(ctx, cfg.Postgres)
	if err != nil {
		return err
	}
	defer db.Close()

	res, err := seedDatabase(ctx, snap,
		postgres.NewUserRepository(db, cfg.Postgres.QueryTimeout),
		postgres.NewPropertyRepository(db, cfg.Postgres.QueryTimeout),
	)
	if err != nil {
		return err
	}

	log.Info().
		Int("users", res.Users).
		Int("existing_users", res.Existing).
		Int("properties", res.Properties).
		Int("existing_properties", res.ExistingProperties).
		Msg("snapshot seeded")
	return nil
}

// seedDatabase inserts the snapshot users, then their properties. Database
// ids are assigned by the store, so owner ids are remapped on the way in.
// Users whose email is already present are reused, and properties the owner
// already has under the same title are skipped, so the seed can be re-run.
func seedDatabase(ctx context.Context, snap *memory.Snapshot, users ports.UserRepository, properties seedPropertyStore) (seedResult, error) {
	var res seedResult
	ids := make(map[int64]int64, len(snap.Users))

	for _, oldID := range snap.UserIDs() {
		u := snap.Users[oldID]
		created, err := users.Create(ctx, &u)
		if errors.Is(err, domain.ErrUserExists) {
			created, err = users.FindByEmail(ctx, u.Email)
			if err != nil {
				return res, fmt.Errorf("seed user %d: %w", oldID, err)
			}
			res.Existing++
		} else if err != nil {
			return res, fmt.Errorf("seed user %d: %w", oldID, err)
		} else {
			res.Users++
		}
		ids[oldID] = created.ID
	}

	for _, oldID := range snap.PropertyIDs() {
		p := snap.Properties[oldID]
		if p.OwnerID != 0 {
			newOwner, ok := ids[p.OwnerID]
			if !ok {
				return res, fmt.Errorf("seed property %d: %w: owner %d not in snapshot", oldID, domain.ErrInvalidInput, p.OwnerID)
			}
			p.OwnerID = newOwner
		}
		exists, err := properties.Exists(ctx, p.OwnerID, p.Title)
		if err != nil {
			return res, fmt.Errorf("seed property %d: %w", oldID, err)
		}
		if exists {
			res.ExistingProperties++
			continue
		}
		p.ID = 0
		if _, err := properties.Create(ctx, &p); err != nil {
			return res, fmt.Errorf("seed property %d: %w", oldID, err)
		}
		res.Properties++
	}
	return res, nil
}
