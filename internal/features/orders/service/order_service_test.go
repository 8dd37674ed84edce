package service

import (
	"context"
	"errors"
	"testing"

	"shop-admin/internal/core/ids"
	"shop-admin/internal/features/orders/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestOrderService_Reads(t *testing.T) {
	ctx := context.Background()
	repo := new(MockOrderRepository)
	orders := []domain.Order{{ID: "o1"}, {ID: "o2"}}
	repo.On("ListOrders", ctx).Return(orders, nil)
	repo.On("GetOrder", ctx, ids.ID("o1")).Return(&orders[0], nil)
	repo.On("DeleteOrder", ctx, ids.ID("o2")).Return(nil)

	svc := NewOrderService(repo, repo)

	got, err := svc.ListOrders(ctx)
	assert.NoError(t, err)
	assert.Len(t, got, 2)

	one, err := svc.GetOrder(ctx, "o1")
	assert.NoError(t, err)
	assert.Equal(t, "o1", one.ID.String())

	assert.NoError(t, svc.DeleteOrder(ctx, "o2"))
	repo.AssertExpectations(t)
}

func TestOrderService_CreateOrderItem(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockOrderRepository)
		in := domain.OrderItemInput{OrderID: "o1", ProductID: "p1", Quantity: 2}
		repo.On("CreateOrderItem", ctx, in).Return(&domain.OrderItem{ID: "i1", Quantity: 2}, nil)

		item, err := NewOrderService(repo, repo).CreateOrderItem(ctx, in)

		assert.NoError(t, err)
		assert.Equal(t, "i1", item.ID.String())
		repo.AssertExpectations(t)
	})

	t.Run("Validation Error", func(t *testing.T) {
		repo := new(MockOrderRepository)

		_, err := NewOrderService(repo, repo).CreateOrderItem(ctx, domain.OrderItemInput{OrderID: "o1", ProductID: "p1"})

		assert.ErrorIs(t, err, domain.ErrNonPositiveQuantity)
		repo.AssertNotCalled(t, "CreateOrderItem", mock.Anything, mock.Anything)
	})
}

func TestOrderService_UpdateOrderItem(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockOrderRepository)
		qty := 3
		patch := domain.OrderItemPatch{Quantity: &qty}
		repo.On("UpdateOrderItem", ctx, ids.ID("i1"), patch).Return(&domain.OrderItem{ID: "i1", Quantity: 3}, nil)

		item, err := NewOrderService(repo, repo).UpdateOrderItem(ctx, "i1", patch)

		assert.NoError(t, err)
		assert.Equal(t, 3, item.Quantity)
	})

	t.Run("Empty Patch", func(t *testing.T) {
		repo := new(MockOrderRepository)

		_, err := NewOrderService(repo, repo).UpdateOrderItem(ctx, "i1", domain.OrderItemPatch{})

		assert.ErrorIs(t, err, domain.ErrEmptyPatch)
		repo.AssertNotCalled(t, "UpdateOrderItem", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Backend Error", func(t *testing.T) {
		repo := new(MockOrderRepository)
		qty := 1
		boom := errors.New("backend down")
		repo.On("UpdateOrderItem", ctx, ids.ID("i1"), mock.Anything).Return(nil, boom)

		_, err := NewOrderService(repo, repo).UpdateOrderItem(ctx, "i1", domain.OrderItemPatch{Quantity: &qty})

		assert.ErrorIs(t, err, boom)
	})
}

func TestOrderService_OrderItemReadsAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := new(MockOrderRepository)
	repo.On("ListOrderItems", ctx).Return([]domain.OrderItem{{ID: "i1"}}, nil)
	repo.On("DeleteOrderItem", ctx, ids.ID("i1")).Return(nil)

	svc := NewOrderService(repo, repo)

	items, err := svc.ListOrderItems(ctx)
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.NoError(t, svc.DeleteOrderItem(ctx, "i1"))
	repo.AssertExpectations(t)
}
