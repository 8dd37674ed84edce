package domain

import (
	"context"
	"fmt"

	"shop-admin/internal/core/ids"
	"shop-admin/internal/core/money"
)

// Mode selects which form variant a session runs.
type Mode string

const (
	// ModeCreate builds a new order from a draft.
	ModeCreate Mode = "create"
	// ModeEdit changes the status of an existing order.
	ModeEdit Mode = "edit"
)

// FormState is the lifecycle state of a form.
type FormState string

const (
	StateEmptyDraft FormState = "empty-draft"
	StateComposing  FormState = "composing"
	StateValidating FormState = "validating"
	StateSubmitting FormState = "submitting"
	StateLoaded     FormState = "loaded"
	StateClosed     FormState = "closed"
)

// OrderWriter persists orders on behalf of a form.
type OrderWriter interface {
	CreateOrder(ctx context.Context, payload CreateOrderPayload) (*Order, error)
	UpdateOrder(ctx context.Context, id ids.ID, payload UpdateOrderPayload) (*Order, error)
}

// Form is the behaviour shared by the create and edit variants.
type Form interface {
	Mode() Mode
	State() FormState
	// Submit persists the form through w. On success the form is closed; on
	// any failure it returns to the state it had before the call.
	Submit(ctx context.Context, w OrderWriter) (*Order, error)
	Close()
	Snapshot() FormSession
}

// FormSession is the persisted shape of a form.
type FormSession struct {
	ID             string       `json:"id"`
	Mode           Mode         `json:"mode"`
	State          FormState    `json:"state"`
	CustomerID     ids.ID       `json:"customer_id"`
	Status         OrderStatus  `json:"status,omitempty"`
	Items          []LineItem   `json:"items"`
	EstimatedTotal money.Amount `json:"estimated_total"`
	Catalog        Catalog      `json:"catalog,omitempty"`
	Original       *Order       `json:"original,omitempty"`
}

// RestoreForm rebuilds a form from its persisted shape.
func RestoreForm(s FormSession) (Form, error) {
	switch s.Mode {
	case ModeCreate:
		items := s.Items
		if items == nil {
			items = []LineItem{}
		}
		return &CreateForm{
			state:   s.State,
			catalog: s.Catalog,
			draft:   Draft{CustomerID: s.CustomerID, Items: items},
		}, nil
	case ModeEdit:
		if s.Original == nil {
			return nil, fmt.Errorf("edit session %s has no original order", s.ID)
		}
		return &EditForm{
			state:    s.State,
			original: *s.Original,
			status:   s.Status,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, s.Mode)
	}
}

// CreateForm composes a new order against a catalog captured at open time.
type CreateForm struct {
	state   FormState
	catalog Catalog
	draft   Draft
}

// NewCreateForm opens a create form with an empty draft.
func NewCreateForm(catalog Catalog) *CreateForm {
	return &CreateForm{
		state:   StateEmptyDraft,
		catalog: catalog,
		draft:   NewDraft(),
	}
}

func (f *CreateForm) Mode() Mode       { return ModeCreate }
func (f *CreateForm) State() FormState { return f.state }
func (f *CreateForm) Catalog() Catalog { return f.catalog }

// Draft returns a copy of the current draft.
func (f *CreateForm) Draft() Draft {
	items := make([]LineItem, len(f.draft.Items))
	copy(items, f.draft.Items)
	return Draft{CustomerID: f.draft.CustomerID, Items: items}
}

// SetCustomer sets the customer the order is for.
func (f *CreateForm) SetCustomer(id ids.ID) error {
	return f.edit(func(d *Draft) error {
		d.CustomerID = id
		return nil
	})
}

// AddItem appends a blank row and returns its index.
func (f *CreateForm) AddItem() (int, error) {
	var idx int
	err := f.edit(func(d *Draft) error {
		idx = d.AddItem()
		return nil
	})
	return idx, err
}

// SelectProduct selects a catalog product on row i.
func (f *CreateForm) SelectProduct(i int, id ids.ID) error {
	return f.edit(func(d *Draft) error {
		return d.SelectProduct(i, id, f.catalog)
	})
}

// SetQuantity stores a quantity on row i.
func (f *CreateForm) SetQuantity(i, q int) error {
	return f.edit(func(d *Draft) error {
		return d.SetQuantity(i, q)
	})
}

// RemoveItem drops row i.
func (f *CreateForm) RemoveItem(i int) error {
	return f.edit(func(d *Draft) error {
		return d.RemoveItem(i)
	})
}

// Submit validates the draft and creates the order.
func (f *CreateForm) Submit(ctx context.Context, w OrderWriter) (*Order, error) {
	if f.state == StateClosed {
		return nil, ErrFormClosed
	}
	prev := f.state

	f.state = StateValidating
	payload, err := f.draft.Payload()
	if err != nil {
		f.state = prev
		return nil, err
	}

	f.state = StateSubmitting
	order, err := w.CreateOrder(ctx, *payload)
	if err != nil {
		f.state = prev
		return nil, err
	}

	f.Close()
	return order, nil
}

// Close discards the draft.
func (f *CreateForm) Close() {
	f.state = StateClosed
	f.draft = NewDraft()
}

// Snapshot returns the persisted shape of the form.
func (f *CreateForm) Snapshot() FormSession {
	d := f.Draft()
	return FormSession{
		Mode:           ModeCreate,
		State:          f.state,
		CustomerID:     d.CustomerID,
		Items:          d.Items,
		EstimatedTotal: d.EstimatedTotal(),
		Catalog:        f.catalog,
	}
}

func (f *CreateForm) edit(apply func(d *Draft) error) error {
	if f.state == StateClosed {
		return ErrFormClosed
	}
	if err := apply(&f.draft); err != nil {
		return err
	}
	f.state = StateComposing
	return nil
}

// EditForm changes the status of an existing order. The customer and items
// are fixed; only the status is editable.
type EditForm struct {
	state    FormState
	original Order
	status   OrderStatus
}

// NewEditForm opens an edit form for order. A missing status reads as pending.
func NewEditForm(order Order) *EditForm {
	status := order.Status
	if status == "" {
		status = OrderStatusPending
	}
	return &EditForm{
		state:    StateLoaded,
		original: order,
		status:   status,
	}
}

func (f *EditForm) Mode() Mode          { return ModeEdit }
func (f *EditForm) State() FormState    { return f.state }
func (f *EditForm) Status() OrderStatus { return f.status }
func (f *EditForm) Original() Order     { return f.original }

// CustomerID returns the locked customer of the order.
func (f *EditForm) CustomerID() ids.ID { return f.original.CustomerID }

// Items is always empty: existing items are not loaded into the edit form.
func (f *EditForm) Items() []LineItem { return []LineItem{} }

// SetStatus changes the status that will be submitted.
func (f *EditForm) SetStatus(s OrderStatus) error {
	if f.state == StateClosed {
		return ErrFormClosed
	}
	if !s.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	f.status = s
	return nil
}

// SetCustomer always fails unless id is the current customer.
func (f *EditForm) SetCustomer(id ids.ID) error {
	if f.state == StateClosed {
		return ErrFormClosed
	}
	if id != f.original.CustomerID {
		return ErrCustomerLocked
	}
	return nil
}

// Payload builds the update body from the loaded order and the edited status.
func (f *EditForm) Payload() UpdateOrderPayload {
	return UpdateOrderPayload{
		ID:          f.original.ID,
		CustomerID:  f.original.CustomerID,
		OrderDate:   f.original.OrderDate,
		TotalAmount: f.original.TotalAmount,
		Status:      f.status,
	}
}

// Submit sends the update.
func (f *EditForm) Submit(ctx context.Context, w OrderWriter) (*Order, error) {
	if f.state == StateClosed {
		return nil, ErrFormClosed
	}
	prev := f.state

	f.state = StateSubmitting
	order, err := w.UpdateOrder(ctx, f.original.ID, f.Payload())
	if err != nil {
		f.state = prev
		return nil, err
	}

	f.Close()
	return order, nil
}

// Close ends the form.
func (f *EditForm) Close() {
	f.state = StateClosed
}

// Snapshot returns the persisted shape of the form.
func (f *EditForm) Snapshot() FormSession {
	original := f.original
	return FormSession{
		Mode:           ModeEdit,
		State:          f.state,
		CustomerID:     f.original.CustomerID,
		Status:         f.status,
		Items:          f.Items(),
		EstimatedTotal: f.original.TotalAmount,
		Original:       &original,
	}
}
