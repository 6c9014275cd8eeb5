package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrDuplicate is returned when an insert hits a unique constraint
var ErrDuplicate = errors.New("duplicate key")

// ErrNotFound aliases gorm's not-found error so callers need not import gorm
var ErrNotFound = gorm.ErrRecordNotFound

// Repositories holds all repository instances
type Repositories struct {
	db *gorm.DB

	Config        ConfigRepository
	Employee      EmployeeRepository
	BillingPeriod BillingPeriodRepository
	Computation   ComputationRepository
	Override      OverrideRepository
	Audit         AuditRepository
}

// NewRepositories creates all repository instances
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		db:            db,
		Config:        NewConfigRepository(db),
		Employee:      NewEmployeeRepository(db),
		BillingPeriod: NewBillingPeriodRepository(db),
		Computation:   NewComputationRepository(db),
		Override:      NewOverrideRepository(db),
		Audit:         NewAuditRepository(db),
	}
}

// Transaction runs fn with repositories bound to one database transaction.
// Any error returned by fn rolls the transaction back.
func (r *Repositories) Transaction(ctx context.Context, fn func(tx *Repositories) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}

// translateError maps driver-specific unique violations to ErrDuplicate
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicateKeyError(err) {
		return errors.Join(ErrDuplicate, err)
	}
	return err
}

func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

// clampPage normalizes pagination parameters
func clampPage(limit, offset int) (int, int) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
