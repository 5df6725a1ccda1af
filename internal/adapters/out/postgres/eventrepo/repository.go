package eventrepo

import (
	"context"
	"errors"
	"fmt"

	"tripflow/internal/core/domain/model/audit"
	"tripflow/internal/core/domain/model/kernel"
	"tripflow/internal/core/ports"
	"tripflow/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// uniqueViolation is the PostgreSQL SQLSTATE for duplicate keys.
const uniqueViolation = "23505"

var _ ports.EventLog = (*GormEventRepository)(nil)

// GormEventRepository is the durable event log. Append writes the entries and
// activities of one unit of work in a single transaction.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    return err
//	}
//	if err = eventrepo.Migrate(db); err != nil {
//	    return err
//	}
//	events := eventrepo.NewGormEventRepository(db)
type GormEventRepository struct {
	db *gorm.DB
}

func NewGormEventRepository(db *gorm.DB) *GormEventRepository {
	return &GormEventRepository{db: db}
}

// Migrate creates or updates the audit_entries and activities tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&AuditEntryDTO{}, &ActivityDTO{})
}

func (r *GormEventRepository) Append(ctx context.Context, entries []audit.Entry, activities []audit.Activity) error {
	if len(entries) == 0 && len(activities) == 0 {
		return nil
	}

	entryRows := make([]AuditEntryDTO, 0, len(entries))
	for _, e := range entries {
		entryRows = append(entryRows, entryFromDomain(e))
	}
	activityRows := make([]ActivityDTO, 0, len(activities))
	for _, a := range activities {
		activityRows = append(activityRows, activityFromDomain(a))
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(entryRows) > 0 {
			if err := tx.Create(&entryRows).Error; err != nil {
				return err
			}
		}
		if len(activityRows) > 0 {
			if err := tx.Create(&activityRows).Error; err != nil {
				return err
			}
		}
		return nil
	})

	return translate(err)
}

func (r *GormEventRepository) ListAudit(
	ctx context.Context,
	kind audit.EntityKind,
	id kernel.UUID,
) ([]audit.Entry, error) {
	var rows []AuditEntryDTO
	if err := r.db.WithContext(ctx).
		Where("entity_kind = ? AND entity_id = ?", string(kind), id.Bytes()).
		Order("seq").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]audit.Entry, 0, len(rows))
	for _, row := range rows {
		e, err := entryToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("audit entry %d: %w", row.Seq, err)
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *GormEventRepository) ListActivity(ctx context.Context, limit int) ([]audit.Activity, error) {
	query := r.db.WithContext(ctx).Order("seq DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var rows []ActivityDTO
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]audit.Activity, 0, len(rows))
	for _, row := range rows {
		a, err := activityToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("activity %d: %w", row.Seq, err)
		}
		out = append(out, a)
	}
	return out, nil
}

// translate maps duplicate ids to a validation error and passes other errors through.
func translate(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return errs.NewValueIsInvalidErrorWithCause("event id already recorded", err)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.NewValueIsInvalidErrorWithCause("event id already recorded", err)
	}
	return err
}
