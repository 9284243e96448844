package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	inventoryapp "github.com/erp/usability/internal/application/inventory"
	"github.com/erp/usability/internal/domain/inventory"
	"github.com/erp/usability/internal/domain/shared"
	"github.com/erp/usability/internal/infrastructure/persistence"
	"github.com/erp/usability/internal/infrastructure/scheduler"
	"github.com/erp/usability/internal/interfaces/http/dto"
	"github.com/erp/usability/internal/interfaces/http/middleware"
	"github.com/erp/usability/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
}

// newTestEngine mounts registrars under /api/v1 the way the server does
func newTestEngine(registrars ...router.RouteRegistrar) *gin.Engine {
	engine := gin.New()
	engine.Use(middleware.RequestID())
	r := router.NewRouter(engine)
	for _, reg := range registrars {
		r.Register(reg)
	}
	r.Setup()
	return engine
}

func doRequest(engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *dto.ErrorInfo  `json:"error"`
	Meta    *dto.Meta       `json:"meta"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

type MockDatabaseProbe struct {
	mock.Mock
}

func (m *MockDatabaseProbe) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockDatabaseProbe) Stats() (persistence.ConnectionStats, error) {
	args := m.Called()
	return args.Get(0).(persistence.ConnectionStats), args.Error(1)
}

type MockJobRunner struct {
	mock.Mock
}

func (m *MockJobRunner) RunNow(ctx context.Context, name string) (string, error) {
	args := m.Called(ctx, name)
	return args.String(0), args.Error(1)
}

func (m *MockJobRunner) Status() []scheduler.JobState {
	return m.Called().Get(0).([]scheduler.JobState)
}

type MockPickingUseCase struct {
	mock.Mock
}

func (m *MockPickingUseCase) result(args mock.Arguments) (*inventoryapp.PickingResponse, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventoryapp.PickingResponse), args.Error(1)
}

func (m *MockPickingUseCase) ForceAssign(ctx context.Context, id uuid.UUID) (*inventoryapp.PickingResponse, error) {
	return m.result(m.Called(ctx, id))
}

func (m *MockPickingUseCase) Unreserve(ctx context.Context, id uuid.UUID) (*inventoryapp.PickingResponse, error) {
	return m.result(m.Called(ctx, id))
}

func (m *MockPickingUseCase) Update(ctx context.Context, id uuid.UUID, req inventoryapp.UpdatePickingRequest) (*inventoryapp.PickingResponse, error) {
	return m.result(m.Called(ctx, id, req))
}

type MockStockMoveUseCase struct {
	mock.Mock
}

func (m *MockStockMoveUseCase) DisplayName(ctx context.Context, id uuid.UUID) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *MockStockMoveUseCase) Unreserve(ctx context.Context, id uuid.UUID) (*inventoryapp.StockMoveResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventoryapp.StockMoveResponse), args.Error(1)
}

type MockLocationUseCase struct {
	mock.Mock
}

func (m *MockLocationUseCase) Quants(ctx context.Context, locationID uuid.UUID) ([]inventoryapp.QuantResponse, error) {
	args := m.Called(ctx, locationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inventoryapp.QuantResponse), args.Error(1)
}

func (m *MockLocationUseCase) EmptyInternal(ctx context.Context) ([]inventoryapp.LocationResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inventoryapp.LocationResponse), args.Error(1)
}

type MockReferenceUseCase struct {
	mock.Mock
}

func (m *MockReferenceUseCase) Incoterms(ctx context.Context) ([]inventoryapp.IncotermResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inventoryapp.IncotermResponse), args.Error(1)
}

func (m *MockReferenceUseCase) GroupPickings(ctx context.Context, groupID uuid.UUID) ([]inventoryapp.PickingResponse, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inventoryapp.PickingResponse), args.Error(1)
}

type MockOrderpointUseCase struct {
	mock.Mock
}

func (m *MockOrderpointUseCase) Defaults(ctx context.Context, locationID uuid.UUID) (inventory.OrderpointDefaults, error) {
	args := m.Called(ctx, locationID)
	return args.Get(0).(inventory.OrderpointDefaults), args.Error(1)
}

func (m *MockOrderpointUseCase) Create(ctx context.Context, req inventoryapp.CreateOrderpointRequest) (*inventoryapp.OrderpointResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventoryapp.OrderpointResponse), args.Error(1)
}

type MockInventoryUseCase struct {
	mock.Mock
}

func (m *MockInventoryUseCase) List(ctx context.Context, filter shared.Filter) ([]inventoryapp.InventoryResponse, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]inventoryapp.InventoryResponse), args.Get(1).(int64), args.Error(2)
}

func (m *MockInventoryUseCase) UpdateLine(ctx context.Context, id uuid.UUID, req inventoryapp.UpdateInventoryLineRequest) (*inventoryapp.InventoryLineResponse, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventoryapp.InventoryLineResponse), args.Error(1)
}
