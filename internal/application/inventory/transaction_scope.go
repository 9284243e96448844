package inventory

import (
	"context"

	"github.com/erp/usability/internal/domain/catalog"
	"github.com/erp/usability/internal/domain/inventory"
)

// TransactionScope provides transactional access to stock repositories.
// When a function is executed within a transaction scope, all repository operations
// will be part of the same database transaction and will be committed or rolled back atomically.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// If the function succeeds, the transaction is committed.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the stock repositories within a transaction.
// All repositories returned share the same underlying database transaction.
type TransactionalRepositories interface {
	LocationRepo() inventory.LocationRepository
	QuantRepo() inventory.QuantRepository
	PackageRepo() inventory.PackageRepository
	PickingRepo() inventory.PickingRepository
	MoveRepo() inventory.StockMoveRepository
	// MessageRepo returns the repository of messages posted on pickings
	MessageRepo() inventory.MessageRepository
	ProductRepo() catalog.ProductRepository
}

// Repositories is a plain bundle of repositories, used to build a NoOpTransactionScope.
type Repositories struct {
	Locations inventory.LocationRepository
	Quants    inventory.QuantRepository
	Packages  inventory.PackageRepository
	Pickings  inventory.PickingRepository
	Moves     inventory.StockMoveRepository
	Messages  inventory.MessageRepository
	Products  catalog.ProductRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use transactions.
// This is useful for testing or when transaction support is not required.
type NoOpTransactionScope struct {
	repos Repositories
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(repos Repositories) *NoOpTransactionScope {
	return &NoOpTransactionScope{repos: repos}
}

// Execute runs the function without a real transaction (for testing/compatibility).
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

func (s *NoOpTransactionScope) LocationRepo() inventory.LocationRepository { return s.repos.Locations }
func (s *NoOpTransactionScope) QuantRepo() inventory.QuantRepository { return s.repos.Quants }
func (s *NoOpTransactionScope) PackageRepo() inventory.PackageRepository { return s.repos.Packages }
func (s *NoOpTransactionScope) PickingRepo() inventory.PickingRepository { return s.repos.Pickings }
func (s *NoOpTransactionScope) MoveRepo() inventory.StockMoveRepository { return s.repos.Moves }
func (s *NoOpTransactionScope) MessageRepo() inventory.MessageRepository { return s.repos.Messages }
func (s *NoOpTransactionScope) ProductRepo() catalog.ProductRepository { return s.repos.Products }

// Ensure NoOpTransactionScope implements both interfaces
var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
