package tablerepo

import (
	"context"
	"errors"
	"fmt"

	"resto/internal/core/domain/model/dinnertable"
	"resto/internal/core/domain/model/kernel"
	"resto/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormTableRepository implements TableRepository using GORM.
// Every read pulls a fresh status view of the table's orders, so occupancy
// is always derived from current rows, never from a cached aggregate.
type GormTableRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTableRepository creates a new GORM table repository.
func NewGormTableRepository(db *gorm.DB, tracker aggregateTracker) *GormTableRepository {
	return &GormTableRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new table to the database.
func (r *GormTableRepository) Add(ctx context.Context, aggregate *dinnertable.Table) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves a table's own fields. Orders are owned by the order
// repository and are not written here.
func (r *GormTableRepository) Update(ctx context.Context, aggregate *dinnertable.Table) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&TableDTO{}).
		Where("id = ?", dto.ID).
		Select("number", "capacity").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Delete removes a table by ID.
func (r *GormTableRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&TableDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("table", id.String())
	}

	return nil
}

// Get retrieves a table by ID with a status view of all its orders.
func (r *GormTableRepository) Get(ctx context.Context, id kernel.UUID) (*dinnertable.Table, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TableDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("table", id.String())
		}
		return nil, err
	}

	views, err := r.orderViews(ctx, dto.ID)
	if err != nil {
		return nil, err
	}

	return toDomain(dto, views)
}

// GetByNumber retrieves a table by its unique table number.
func (r *GormTableRepository) GetByNumber(ctx context.Context, number int) (*dinnertable.Table, error) {
	var dto TableDTO
	if err := r.db.WithContext(ctx).First(&dto, "number = ?", number).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("table", fmt.Sprintf("number %d", number))
		}
		return nil, err
	}

	views, err := r.orderViews(ctx, dto.ID)
	if err != nil {
		return nil, err
	}

	return toDomain(dto, views)
}

// GetAll retrieves all tables with status views of their orders, ordered by number.
func (r *GormTableRepository) GetAll(ctx context.Context) ([]*dinnertable.Table, error) {
	var dtos []TableDTO
	if err := r.db.WithContext(ctx).Order("number").Find(&dtos).Error; err != nil {
		return nil, err
	}

	if len(dtos) == 0 {
		return []*dinnertable.Table{}, nil
	}

	ids := make([]uuid.UUID, 0, len(dtos))
	for _, dto := range dtos {
		ids = append(ids, dto.ID)
	}

	var views []orderViewDTO
	err := r.db.WithContext(ctx).
		Where("table_id IN ?", ids).
		Order("created_at").
		Find(&views).Error
	if err != nil {
		return nil, err
	}

	viewsByTable := make(map[uuid.UUID][]orderViewDTO)
	for _, view := range views {
		viewsByTable[view.TableID] = append(viewsByTable[view.TableID], view)
	}

	tables := make([]*dinnertable.Table, 0, len(dtos))
	for _, dto := range dtos {
		table, err := toDomain(dto, viewsByTable[dto.ID])
		if err != nil {
			return nil, err
		}
		tables = append(tables, table)
	}

	return tables, nil
}

func (r *GormTableRepository) orderViews(ctx context.Context, tableID uuid.UUID) ([]orderViewDTO, error) {
	var views []orderViewDTO
	err := r.db.WithContext(ctx).
		Where("table_id = ?", tableID).
		Order("created_at").
		Find(&views).Error
	if err != nil {
		return nil, err
	}
	return views, nil
}
