package inventory

import (
	"context"

	"github.com/erp/usability/internal/domain/catalog"
	"github.com/erp/usability/internal/domain/inventory"
	"github.com/erp/usability/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockLocationRepository struct {
	mock.Mock
}

func (m *MockLocationRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Location, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Location), args.Error(1)
}

func (m *MockLocationRepository) FindByUsage(ctx context.Context, usage inventory.LocationUsage) ([]inventory.Location, error) {
	args := m.Called(ctx, usage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inventory.Location), args.Error(1)
}

func (m *MockLocationRepository) FindEmptyInternal(ctx context.Context) ([]inventory.Location, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inventory.Location), args.Error(1)
}

func (m *MockLocationRepository) Save(ctx context.Context, location *inventory.Location) error {
	return m.Called(ctx, location).Error(0)
}

type MockQuantRepository struct {
	mock.Mock
}

func (m *MockQuantRepository) FindByLocation(ctx context.Context, locationID uuid.UUID) ([]inventory.Quant, error) {
	args := m.Called(ctx, locationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inventory.Quant), args.Error(1)
}

func (m *MockQuantRepository) FindPackagedInLocations(ctx context.Context, locationIDs []uuid.UUID) ([]inventory.Quant, error) {
	args := m.Called(ctx, locationIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inventory.Quant), args.Error(1)
}

func (m *MockQuantRepository) FindByPackage(ctx context.Context, packageID uuid.UUID) ([]inventory.Quant, error) {
	args := m.Called(ctx, packageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inventory.Quant), args.Error(1)
}

func (m *MockQuantRepository) Save(ctx context.Context, quant *inventory.Quant) error {
	return m.Called(ctx, quant).Error(0)
}

type MockPackageRepository struct {
	mock.Mock
}

func (m *MockPackageRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]inventory.Package, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inventory.Package), args.Error(1)
}

func (m *MockPackageRepository) Save(ctx context.Context, pkg *inventory.Package) error {
	return m.Called(ctx, pkg).Error(0)
}

type MockPickingRepository struct {
	mock.Mock
}

func (m *MockPickingRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Picking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Picking), args.Error(1)
}

func (m *MockPickingRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.Picking, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]inventory.Picking), args.Get(1).(int64), args.Error(2)
}

func (m *MockPickingRepository) FindByGroup(ctx context.Context, groupID uuid.UUID) ([]inventory.Picking, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inventory.Picking), args.Error(1)
}

func (m *MockPickingRepository) Save(ctx context.Context, picking *inventory.Picking) error {
	return m.Called(ctx, picking).Error(0)
}

type MockStockMoveRepository struct {
	mock.Mock
}

func (m *MockStockMoveRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.StockMove, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.StockMove), args.Error(1)
}

func (m *MockStockMoveRepository) FindByPicking(ctx context.Context, pickingID uuid.UUID) ([]*inventory.StockMove, error) {
	args := m.Called(ctx, pickingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*inventory.StockMove), args.Error(1)
}

func (m *MockStockMoveRepository) LoadNameRefs(ctx context.Context, id uuid.UUID) (*inventory.MoveNameRefs, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.MoveNameRefs), args.Error(1)
}

func (m *MockStockMoveRepository) DeletePackOperations(ctx context.Context, moveID uuid.UUID) (int64, error) {
	args := m.Called(ctx, moveID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStockMoveRepository) Save(ctx context.Context, move *inventory.StockMove) error {
	return m.Called(ctx, move).Error(0)
}

type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) Save(ctx context.Context, message *inventory.Message) error {
	return m.Called(ctx, message).Error(0)
}

func (m *MockMessageRepository) FindByResource(ctx context.Context, resModel string, resID uuid.UUID) ([]inventory.Message, error) {
	args := m.Called(ctx, resModel, resID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inventory.Message), args.Error(1)
}

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindVariantByID(ctx context.Context, id uuid.UUID) (*catalog.ProductVariant, *catalog.ProductTemplate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*catalog.ProductVariant), args.Get(1).(*catalog.ProductTemplate), args.Error(2)
}

type MockOrderpointRepository struct {
	mock.Mock
}

func (m *MockOrderpointRepository) ExistsByKey(ctx context.Context, companyID, warehouseID, locationID, productID uuid.UUID) (bool, error) {
	args := m.Called(ctx, companyID, warehouseID, locationID, productID)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderpointRepository) Save(ctx context.Context, orderpoint *inventory.Orderpoint) error {
	return m.Called(ctx, orderpoint).Error(0)
}

type MockInventoryRepository struct {
	mock.Mock
}

func (m *MockInventoryRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.Inventory, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]inventory.Inventory), args.Get(1).(int64), args.Error(2)
}

func (m *MockInventoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Inventory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Inventory), args.Error(1)
}

func (m *MockInventoryRepository) FindLineByID(ctx context.Context, id uuid.UUID) (*inventory.InventoryLine, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.InventoryLine), args.Error(1)
}

func (m *MockInventoryRepository) SaveLine(ctx context.Context, line *inventory.InventoryLine) error {
	return m.Called(ctx, line).Error(0)
}

type mockRepos struct {
	locations *MockLocationRepository
	quants    *MockQuantRepository
	packages  *MockPackageRepository
	pickings  *MockPickingRepository
	moves     *MockStockMoveRepository
	messages  *MockMessageRepository
	products  *MockProductRepository
}

func newMockRepos() *mockRepos {
	return &mockRepos{
		locations: new(MockLocationRepository),
		quants:    new(MockQuantRepository),
		packages:  new(MockPackageRepository),
		pickings:  new(MockPickingRepository),
		moves:     new(MockStockMoveRepository),
		messages:  new(MockMessageRepository),
		products:  new(MockProductRepository),
	}
}

func (r *mockRepos) scope() *NoOpTransactionScope {
	return NewNoOpTransactionScope(Repositories{
		Locations: r.locations,
		Quants:    r.quants,
		Packages:  r.packages,
		Pickings:  r.pickings,
		Moves:     r.moves,
		Messages:  r.messages,
		Products:  r.products,
	})
}

func (r *mockRepos) assertExpectations(t mock.TestingT) {
	r.locations.AssertExpectations(t)
	r.quants.AssertExpectations(t)
	r.packages.AssertExpectations(t)
	r.pickings.AssertExpectations(t)
	r.moves.AssertExpectations(t)
	r.messages.AssertExpectations(t)
	r.products.AssertExpectations(t)
}
