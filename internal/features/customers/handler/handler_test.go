package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"shop-admin/internal/core/ids"
	"shop-admin/internal/features/customers/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCustomerService struct {
	mock.Mock
}

func (m *MockCustomerService) List(ctx context.Context) ([]domain.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *MockCustomerService) Create(ctx context.Context, in domain.CustomerInput) (*domain.Customer, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerService) Update(ctx context.Context, id ids.ID, patch domain.CustomerPatch) (*domain.Customer, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerService) Delete(ctx context.Context, id ids.ID) error {
	return m.Called(ctx, id).Error(0)
}

func setupApp(service *MockCustomerService) *fiber.App {
	app := fiber.New()
	NewCustomerHandler(service).Register(app)
	return app
}

func TestCustomerHandler(t *testing.T) {
	svc := new(MockCustomerService)
	app := setupApp(svc)

	svc.On("List", mock.Anything).Return([]domain.Customer{{ID: "c1", Name: "Budi"}}, nil).Once()
	svc.On("Create", mock.Anything, mock.Anything).Return(nil, domain.ErrInvalidEmail).Once()
	svc.On("Update", mock.Anything, ids.ID("c1"), mock.Anything).Return(&domain.Customer{ID: "c1"}, nil).Once()
	svc.On("Delete", mock.Anything, ids.ID("c1")).Return(nil).Once()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/customers", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	req := httptest.NewRequest(http.MethodPost, "/customers", bytes.NewBufferString(`{"name":"Budi","email":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	req = httptest.NewRequest(http.MethodPatch, "/customers/c1", bytes.NewBufferString(`{"phone":"0812"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodDelete, "/customers/c1", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	svc.AssertExpectations(t)
}
