package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	inventoryapp "github.com/erp/usability/internal/application/inventory"
	"github.com/erp/usability/internal/domain/inventory"
	"github.com/erp/usability/internal/interfaces/http/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderpointHandler_Defaults(t *testing.T) {
	t.Run("returns warehouse and location", func(t *testing.T) {
		orderpoints := new(MockOrderpointUseCase)
		locationID := uuid.New()
		warehouseID := uuid.New()
		orderpoints.On("Defaults", mock.Anything, locationID).
			Return(inventory.OrderpointDefaults{WarehouseID: &warehouseID, LocationID: &locationID}, nil)

		w := doRequest(newTestEngine(NewOrderpointHandler(orderpoints)), http.MethodGet, "/api/v1/orderpoints/defaults?location_id="+locationID.String(), "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp inventoryapp.OrderpointDefaultsResponse
		require.NoError(t, json.Unmarshal(decode(t, w).Data, &resp))
		require.NotNil(t, resp.WarehouseID)
		assert.Equal(t, warehouseID, *resp.WarehouseID)
		assert.Equal(t, locationID, *resp.LocationID)
	})

	t.Run("returns nulls outside a warehouse", func(t *testing.T) {
		orderpoints := new(MockOrderpointUseCase)
		locationID := uuid.New()
		orderpoints.On("Defaults", mock.Anything, locationID).Return(inventory.OrderpointDefaults{}, nil)

		w := doRequest(newTestEngine(NewOrderpointHandler(orderpoints)), http.MethodGet, "/api/v1/orderpoints/defaults?location_id="+locationID.String(), "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"warehouse_id":null,"location_id":null}`, string(decode(t, w).Data))
	})

	t.Run("requires location_id", func(t *testing.T) {
		orderpoints := new(MockOrderpointUseCase)

		w := doRequest(newTestEngine(NewOrderpointHandler(orderpoints)), http.MethodGet, "/api/v1/orderpoints/defaults", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decode(t, w)
		require.NotNil(t, env.Error)
		require.Len(t, env.Error.Details, 1)
		assert.Equal(t, "location_id", env.Error.Details[0].Field)
		assert.Equal(t, "This field is required", env.Error.Details[0].Message)
		orderpoints.AssertNotCalled(t, "Defaults", mock.Anything, mock.Anything)
	})
}

func TestOrderpointHandler_Create(t *testing.T) {
	companyID, warehouseID, locationID, productID := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	body := `{"company_id":"` + companyID.String() +
		`","warehouse_id":"` + warehouseID.String() +
		`","location_id":"` + locationID.String() +
		`","product_id":"` + productID.String() +
		`","product_min_qty":"5","product_max_qty":"20"}`

	t.Run("creates a rule", func(t *testing.T) {
		orderpoints := new(MockOrderpointUseCase)
		orderpoints.On("Create", mock.Anything, mock.MatchedBy(func(req inventoryapp.CreateOrderpointRequest) bool {
			return req.ProductID == productID && req.ProductMaxQty.Equal(decimal.NewFromInt(20))
		})).Return(&inventoryapp.OrderpointResponse{ID: uuid.New(), ProductID: productID}, nil)

		w := doRequest(newTestEngine(NewOrderpointHandler(orderpoints)), http.MethodPost, "/api/v1/orderpoints", body)
		assert.Equal(t, http.StatusCreated, w.Code)
		orderpoints.AssertExpectations(t)
	})

	t.Run("maps a duplicate rule to 409", func(t *testing.T) {
		orderpoints := new(MockOrderpointUseCase)
		orderpoints.On("Create", mock.Anything, mock.Anything).Return(nil, inventory.ErrDuplicateOrderpoint)

		w := doRequest(newTestEngine(NewOrderpointHandler(orderpoints)), http.MethodPost, "/api/v1/orderpoints", body)
		assert.Equal(t, http.StatusConflict, w.Code)
		env := decode(t, w)
		assert.Equal(t, dto.ErrCodeAlreadyExists, env.Error.Code)
		assert.Contains(t, env.Error.Message, "An orderpoint already exists")
	})

	t.Run("requires the key fields", func(t *testing.T) {
		orderpoints := new(MockOrderpointUseCase)

		w := doRequest(newTestEngine(NewOrderpointHandler(orderpoints)), http.MethodPost, "/api/v1/orderpoints", `{"product_min_qty":"1"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		orderpoints.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}
