package service

import (
	"context"
	"fmt"

	"shop-admin/internal/core/ids"
	"shop-admin/internal/core/logger"
	"shop-admin/internal/features/orders/domain"
	"shop-admin/internal/features/orders/ports"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type customerSetter interface {
	SetCustomer(id ids.ID) error
}

type catalogInvalidator interface {
	Invalidate(ctx context.Context) error
}

// FormServiceImpl implements ports.FormService. Each call loads the session,
// applies one operation to the restored form and saves it back. A failed
// operation leaves the stored session untouched.
type FormServiceImpl struct {
	orders  ports.OrderRepository
	catalog ports.CatalogProvider
	store   ports.FormStore
}

// NewFormService creates a new FormServiceImpl.
func NewFormService(orders ports.OrderRepository, catalog ports.CatalogProvider, store ports.FormStore) *FormServiceImpl {
	return &FormServiceImpl{orders: orders, catalog: catalog, store: store}
}

// Open starts a new session. Create forms capture the catalog once; edit
// forms load the order.
func (s *FormServiceImpl) Open(ctx context.Context, req ports.OpenRequest) (*domain.FormSession, error) {
	var form domain.Form

	switch req.Mode {
	case domain.ModeCreate:
		products, err := s.catalog.ListProducts(ctx)
		if err != nil {
			return nil, err
		}
		form = domain.NewCreateForm(domain.Catalog(products))
	case domain.ModeEdit:
		if req.OrderID.IsZero() {
			return nil, domain.ErrOrderRequired
		}
		order, err := s.orders.GetOrder(ctx, req.OrderID)
		if err != nil {
			return nil, err
		}
		form = domain.NewEditForm(*order)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownMode, req.Mode)
	}

	session := form.Snapshot()
	session.ID = uuid.NewString()
	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("Opened order form",
		zap.String("form_id", session.ID),
		zap.String("mode", string(session.Mode)),
		zap.String("order_id", req.OrderID.String()),
	)
	return &session, nil
}

// Get returns the current session.
func (s *FormServiceImpl) Get(ctx context.Context, id string) (*domain.FormSession, error) {
	return s.store.Get(ctx, id)
}

// UpdateFields changes the customer (create) or status (edit).
func (s *FormServiceImpl) UpdateFields(ctx context.Context, id string, change ports.FieldsChange) (*domain.FormSession, error) {
	if change.CustomerID == nil && change.Status == nil {
		return nil, domain.ErrEmptyPatch
	}
	return s.mutate(ctx, id, func(form domain.Form) error {
		if change.CustomerID != nil {
			setter, ok := form.(customerSetter)
			if !ok {
				return domain.ErrCustomerLocked
			}
			if err := setter.SetCustomer(*change.CustomerID); err != nil {
				return err
			}
		}
		if change.Status != nil {
			edit, ok := form.(*domain.EditForm)
			if !ok {
				return domain.ErrStatusLocked
			}
			if err := edit.SetStatus(*change.Status); err != nil {
				return err
			}
		}
		return nil
	})
}

// AddItem appends a blank row to a create form.
func (s *FormServiceImpl) AddItem(ctx context.Context, id string) (*domain.FormSession, error) {
	return s.mutateCreate(ctx, id, func(form *domain.CreateForm) error {
		_, err := form.AddItem()
		return err
	})
}

// UpdateItem selects a product and/or sets a quantity on row index.
func (s *FormServiceImpl) UpdateItem(ctx context.Context, id string, index int, change ports.ItemChange) (*domain.FormSession, error) {
	if change.ProductID == nil && change.Quantity == nil {
		return nil, domain.ErrEmptyPatch
	}
	return s.mutateCreate(ctx, id, func(form *domain.CreateForm) error {
		if change.ProductID != nil {
			if err := form.SelectProduct(index, *change.ProductID); err != nil {
				return err
			}
		}
		if change.Quantity != nil {
			if err := form.SetQuantity(index, *change.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
}

// RemoveItem drops row index from a create form.
func (s *FormServiceImpl) RemoveItem(ctx context.Context, id string, index int) (*domain.FormSession, error) {
	return s.mutateCreate(ctx, id, func(form *domain.CreateForm) error {
		return form.RemoveItem(index)
	})
}

// Cancel discards the session.
func (s *FormServiceImpl) Cancel(ctx context.Context, id string) error {
	if _, err := s.store.Get(ctx, id); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	logger.FromContext(ctx).Info("Cancelled order form", zap.String("form_id", id))
	return nil
}

// Submit persists the form. On success the session is closed and the order
// list is reloaded in full.
func (s *FormServiceImpl) Submit(ctx context.Context, id string) (*ports.SubmitResult, error) {
	log := logger.FromContext(ctx).With(zap.String("form_id", id))

	form, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	order, err := form.Submit(ctx, s.orders)
	if err != nil {
		if _, ok := domain.AsValidationError(err); ok {
			log.Info("Order form failed validation", zap.Error(err))
		} else {
			log.Error("Failed to submit order form", zap.Error(err))
		}
		return nil, err
	}

	log.Info("Submitted order form",
		zap.String("mode", string(form.Mode())),
		zap.String("order_id", order.ID.String()),
	)

	if err := s.store.Delete(ctx, id); err != nil {
		log.Warn("Failed to delete submitted form session", zap.Error(err))
	}

	if form.Mode() == domain.ModeCreate {
		if inv, ok := s.catalog.(catalogInvalidator); ok {
			if err := inv.Invalidate(ctx); err != nil {
				log.Warn("Failed to invalidate catalog snapshot", zap.Error(err))
			}
		}
	}

	result := &ports.SubmitResult{Order: order}
	orders, err := s.orders.ListOrders(ctx)
	if err != nil {
		log.Warn("Failed to reload orders after submit", zap.Error(err))
		return result, nil
	}
	result.Orders = orders
	return result, nil
}

func (s *FormServiceImpl) load(ctx context.Context, id string) (domain.Form, error) {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return domain.RestoreForm(*session)
}

func (s *FormServiceImpl) mutate(ctx context.Context, id string, apply func(domain.Form) error) (*domain.FormSession, error) {
	form, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := apply(form); err != nil {
		return nil, err
	}

	session := form.Snapshot()
	session.ID = id
	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *FormServiceImpl) mutateCreate(ctx context.Context, id string, apply func(*domain.CreateForm) error) (*domain.FormSession, error) {
	return s.mutate(ctx, id, func(form domain.Form) error {
		create, ok := form.(*domain.CreateForm)
		if !ok {
			return domain.ErrItemsLocked
		}
		return apply(create)
	})
}
