package store

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// sampleStores is the starter data inserted into an empty database.
var sampleStores = []Store{
	{
		Name:      "Loja A",
		CEP:       "01001-000",
		Street:    "Praça da Sé",
		District:  "Sé",
		City:      "São Paulo",
		State:     "SP",
		Latitude:  -23.5475,
		Longitude: -46.6361,
	},
}

// Seed inserts the sample stores when the table is empty. It is a no-op
// on a populated database.
func (r *Repository) Seed(ctx context.Context) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&Store{}).Count(&count).Error; err != nil {
		return fmt.Errorf("counting stores: %w", err)
	}

	if count > 0 {
		r.logger.Info("Database already seeded", zap.Int64("stores", count))
		return nil
	}

	rows := make([]Store, len(sampleStores))
	copy(rows, sampleStores)
	if err := r.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return fmt.Errorf("seeding stores: %w", err)
	}

	r.logger.Info("Sample stores inserted", zap.Int("stores", len(rows)))
	return nil
}
