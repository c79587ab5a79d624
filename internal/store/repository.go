// Package store persists store locations in an embedded sqlite database.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// ErrStoreNotFound indicates the requested store does not exist.
	ErrStoreNotFound = errors.New("store not found")

	// ErrNoFields indicates a partial update carried no fields.
	ErrNoFields = errors.New("no fields to update")
)

// haversineSQL computes the great-circle distance in kilometers between
// a reference point and each row, using the spherical law of cosines.
const haversineSQL = `
SELECT * FROM (
	SELECT *,
		(6371 * acos(
			cos(radians(?)) * cos(radians(latitude)) *
			cos(radians(longitude) - radians(?)) +
			sin(radians(?)) * sin(radians(latitude))
		)) AS distance
	FROM lojas
) WHERE distance <= ?
ORDER BY distance ASC`

// Repository provides CRUD and proximity queries over store rows.
type Repository struct {
	db     *gorm.DB
	logger *otelzap.Logger
}

// NewRepository creates a repository backed by the given database handle.
func NewRepository(db *gorm.DB, logger *otelzap.Logger) *Repository {
	return &Repository{db: db, logger: logger}
}

// Create inserts a new store and fills in its generated ID.
func (r *Repository) Create(ctx context.Context, s *Store) error {
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		return fmt.Errorf("creating store: %w", err)
	}

	r.logger.Info("Store created",
		zap.Uint("id", s.ID),
		zap.String("nome", s.Name),
	)
	return nil
}

// FindAll returns every store ordered by ID.
func (r *Repository) FindAll(ctx context.Context) ([]Store, error) {
	var stores []Store
	if err := r.db.WithContext(ctx).Order("id").Find(&stores).Error; err != nil {
		return nil, fmt.Errorf("listing stores: %w", err)
	}
	return stores, nil
}

// FindByID returns a single store by its primary key.
func (r *Repository) FindByID(ctx context.Context, id uint) (*Store, error) {
	var s Store
	err := r.db.WithContext(ctx).First(&s, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrStoreNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("finding store %d: %w", id, err)
	}
	return &s, nil
}

// FindByState returns a page of stores in the given UF plus the total count.
func (r *Repository) FindByState(ctx context.Context, state string, limit, offset int) ([]Store, int64, error) {
	var total int64
	query := r.db.WithContext(ctx).Model(&Store{}).Where("uf = ?", state)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("counting stores in %s: %w", state, err)
	}

	var stores []Store
	err := query.Order("id").Limit(limit).Offset(offset).Find(&stores).Error
	if err != nil {
		return nil, 0, fmt.Errorf("listing stores in %s: %w", state, err)
	}
	return stores, total, nil
}

// ListAll returns a page of all stores plus the total count.
func (r *Repository) ListAll(ctx context.Context, limit, offset int) ([]Store, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&Store{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("counting stores: %w", err)
	}

	var stores []Store
	err := r.db.WithContext(ctx).Order("id").Limit(limit).Offset(offset).Find(&stores).Error
	if err != nil {
		return nil, 0, fmt.Errorf("listing stores: %w", err)
	}
	return stores, total, nil
}

// Update applies a partial update and returns the refreshed row.
func (r *Repository) Update(ctx context.Context, id uint, fields UpdateFields) (*Store, error) {
	updates := fields.toMap()
	if len(updates) == 0 {
		return nil, ErrNoFields
	}

	tx := r.db.WithContext(ctx).Model(&Store{}).Where("id = ?", id).Updates(updates)
	if tx.Error != nil {
		return nil, fmt.Errorf("updating store %d: %w", id, tx.Error)
	}
	if tx.RowsAffected == 0 {
		return nil, ErrStoreNotFound
	}

	r.logger.Info("Store updated",
		zap.Uint("id", id),
		zap.Int("fields", len(updates)),
	)
	return r.FindByID(ctx, id)
}

// Delete removes a store by ID.
func (r *Repository) Delete(ctx context.Context, id uint) error {
	tx := r.db.WithContext(ctx).Delete(&Store{}, id)
	if tx.Error != nil {
		return fmt.Errorf("deleting store %d: %w", id, tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrStoreNotFound
	}

	r.logger.Info("Store deleted", zap.Uint("id", id))
	return nil
}

// FindNearby returns the stores within radiusKm of a point, closest first.
func (r *Repository) FindNearby(ctx context.Context, lat, lon, radiusKm float64) ([]NearbyStore, error) {
	var stores []NearbyStore
	err := r.db.WithContext(ctx).Raw(haversineSQL, lat, lon, lat, radiusKm).Scan(&stores).Error
	if err != nil {
		return nil, fmt.Errorf("querying nearby stores: %w", err)
	}
	return stores, nil
}

func (f UpdateFields) toMap() map[string]interface{} {
	updates := map[string]interface{}{}
	if f.Name != nil {
		updates["nome"] = *f.Name
	}
	if f.CEP != nil {
		updates["cep"] = *f.CEP
	}
	if f.Street != nil {
		updates["logradouro"] = *f.Street
	}
	if f.District != nil {
		updates["bairro"] = *f.District
	}
	if f.City != nil {
		updates["localidade"] = *f.City
	}
	if f.State != nil {
		updates["uf"] = *f.State
	}
	if f.Latitude != nil {
		updates["latitude"] = *f.Latitude
	}
	if f.Longitude != nil {
		updates["longitude"] = *f.Longitude
	}
	return updates
}
