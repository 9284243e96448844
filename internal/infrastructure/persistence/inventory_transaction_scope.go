package persistence

import (
	"context"

	appinv "github.com/erp/usability/internal/application/inventory"
	"github.com/erp/usability/internal/domain/catalog"
	"github.com/erp/usability/internal/domain/inventory"
	"gorm.io/gorm"
)

// GormTransactionScope implements TransactionScope using GORM transactions.
// It provides atomic execution of multiple repository operations.
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope.
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos appinv.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTransactionalRepositories{tx: tx})
	})
}

// gormTransactionalRepositories provides access to all repositories within a transaction.
type gormTransactionalRepositories struct {
	tx *gorm.DB
}

func (r *gormTransactionalRepositories) LocationRepo() inventory.LocationRepository {
	return NewGormLocationRepository(r.tx)
}

func (r *gormTransactionalRepositories) QuantRepo() inventory.QuantRepository {
	return NewGormQuantRepository(r.tx)
}

func (r *gormTransactionalRepositories) PackageRepo() inventory.PackageRepository {
	return NewGormPackageRepository(r.tx)
}

func (r *gormTransactionalRepositories) PickingRepo() inventory.PickingRepository {
	return NewGormPickingRepository(r.tx)
}

func (r *gormTransactionalRepositories) MoveRepo() inventory.StockMoveRepository {
	return NewGormStockMoveRepository(r.tx)
}

func (r *gormTransactionalRepositories) MessageRepo() inventory.MessageRepository {
	return NewGormMessageRepository(r.tx)
}

func (r *gormTransactionalRepositories) ProductRepo() catalog.ProductRepository {
	return NewGormProductRepository(r.tx)
}

// Ensure GormTransactionScope implements TransactionScope
var _ appinv.TransactionScope = (*GormTransactionScope)(nil)

// Ensure gormTransactionalRepositories implements TransactionalRepositories
var _ appinv.TransactionalRepositories = (*gormTransactionalRepositories)(nil)
