package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"shop-admin/internal/core/backend"
	"shop-admin/internal/core/ids"
	"shop-admin/internal/features/orders/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOrderService is a mock implementation of ports.OrderService
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderService) GetOrder(ctx context.Context, id ids.ID) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderService) DeleteOrder(ctx context.Context, id ids.ID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockOrderService) ListOrderItems(ctx context.Context) ([]domain.OrderItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OrderItem), args.Error(1)
}

func (m *MockOrderService) CreateOrderItem(ctx context.Context, in domain.OrderItemInput) (*domain.OrderItem, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrderItem), args.Error(1)
}

func (m *MockOrderService) UpdateOrderItem(ctx context.Context, id ids.ID, patch domain.OrderItemPatch) (*domain.OrderItem, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrderItem), args.Error(1)
}

func (m *MockOrderService) DeleteOrderItem(ctx context.Context, id ids.ID) error {
	return m.Called(ctx, id).Error(0)
}

func setupOrderApp(service *MockOrderService) *fiber.App {
	app := fiber.New()
	NewOrderHandler(service).Register(app)
	return app
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestOrderHandler_ListOrders(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockOrderService)
		svc.On("ListOrders", mock.Anything).Return([]domain.Order{{ID: "o1", Status: domain.OrderStatusPending}}, nil).Once()

		resp, err := setupOrderApp(svc).Test(httptest.NewRequest(http.MethodGet, "/orders", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var orders []domain.Order
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&orders))
		require.Len(t, orders, 1)
		assert.Equal(t, domain.OrderStatusPending, orders[0].Status)
	})

	t.Run("Unauthorized Backend", func(t *testing.T) {
		svc := new(MockOrderService)
		svc.On("ListOrders", mock.Anything).Return(nil, &backend.APIError{StatusCode: 401, Message: "Unauthenticated."}).Once()

		resp, err := setupOrderApp(svc).Test(httptest.NewRequest(http.MethodGet, "/orders", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestOrderHandler_GetOrder(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockOrderService)
		svc.On("GetOrder", mock.Anything, ids.ID("o1")).Return(&domain.Order{ID: "o1"}, nil).Once()

		resp, err := setupOrderApp(svc).Test(httptest.NewRequest(http.MethodGet, "/orders/o1", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		svc.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		svc := new(MockOrderService)
		svc.On("GetOrder", mock.Anything, ids.ID("o404")).Return(nil, &backend.APIError{StatusCode: 404, Message: "Order not found"}).Once()

		resp, err := setupOrderApp(svc).Test(httptest.NewRequest(http.MethodGet, "/orders/o404", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestOrderHandler_DeleteOrder(t *testing.T) {
	svc := new(MockOrderService)
	svc.On("DeleteOrder", mock.Anything, ids.ID("o1")).Return(nil).Once()

	resp, err := setupOrderApp(svc).Test(httptest.NewRequest(http.MethodDelete, "/orders/o1", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	svc.AssertExpectations(t)
}

func TestOrderHandler_OrderItems(t *testing.T) {
	t.Run("Create", func(t *testing.T) {
		svc := new(MockOrderService)
		in := domain.OrderItemInput{OrderID: "o1", ProductID: "p1", Quantity: 2}
		svc.On("CreateOrderItem", mock.Anything, in).Return(&domain.OrderItem{ID: "i1"}, nil).Once()

		resp, err := setupOrderApp(svc).Test(jsonRequest(http.MethodPost, "/order-items", `{"order_id":"o1","product_id":"p1","quantity":2}`))
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		svc.AssertExpectations(t)
	})

	t.Run("Create Invalid", func(t *testing.T) {
		svc := new(MockOrderService)
		svc.On("CreateOrderItem", mock.Anything, mock.Anything).Return(nil, domain.ErrNonPositiveQuantity).Once()

		resp, err := setupOrderApp(svc).Test(jsonRequest(http.MethodPost, "/order-items", `{"order_id":"o1","product_id":"p1"}`))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Update Without Token", func(t *testing.T) {
		svc := new(MockOrderService)
		svc.On("UpdateOrderItem", mock.Anything, ids.ID("i1"), mock.Anything).Return(nil, backend.ErrMissingToken).Once()

		resp, err := setupOrderApp(svc).Test(jsonRequest(http.MethodPatch, "/order-items/i1", `{"quantity":3}`))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("List And Delete", func(t *testing.T) {
		svc := new(MockOrderService)
		svc.On("ListOrderItems", mock.Anything).Return([]domain.OrderItem{{ID: "i1"}}, nil).Once()
		svc.On("DeleteOrderItem", mock.Anything, ids.ID("i1")).Return(nil).Once()
		app := setupOrderApp(svc)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/order-items", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		resp, err = app.Test(httptest.NewRequest(http.MethodDelete, "/order-items/i1", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		svc.AssertExpectations(t)
	})
}
