package domain

import (
	"fmt"
	"slices"

	"shop-admin/internal/core/ids"
	"shop-admin/internal/core/money"
	catalogdomain "shop-admin/internal/features/catalog/domain"
)

// Catalog is the product list fetched when a create form opens.
type Catalog []catalogdomain.Product

// Find looks up a product by id. An empty id never matches.
func (c Catalog) Find(id ids.ID) (catalogdomain.Product, bool) {
	if id.IsZero() {
		return catalogdomain.Product{}, false
	}
	for _, p := range c {
		if p.ID == id {
			return p, true
		}
	}
	return catalogdomain.Product{}, false
}

// ProductSnapshot holds the product values captured when the product was
// selected. Later catalog changes do not touch it.
type ProductSnapshot struct {
	Name  string       `json:"product_name"`
	Stock int          `json:"product_stock"`
	Price money.Amount `json:"product_price"`
}

// LineItem is one draft row. The snapshot is nil until a product is selected.
type LineItem struct {
	ProductID ids.ID `json:"product_id"`
	Quantity  int    `json:"quantity"`
	*ProductSnapshot
}

// CapturedStock returns the stock captured at selection time, 0 when none.
func (li LineItem) CapturedStock() int {
	if li.ProductSnapshot == nil {
		return 0
	}
	return li.Stock
}

// Subtotal is the captured price times the quantity. Display only.
func (li LineItem) Subtotal() money.Amount {
	if li.ProductSnapshot == nil {
		return 0
	}
	return li.Price.Times(li.Quantity)
}

// Draft is an in-progress order. Quantities are stored as entered; nothing is
// checked until Validate.
type Draft struct {
	CustomerID ids.ID     `json:"customer_id"`
	Items      []LineItem `json:"items"`
}

// NewDraft returns an empty draft.
func NewDraft() Draft {
	return Draft{Items: []LineItem{}}
}

// AddItem appends an unselected row with quantity 1 and returns its index.
func (d *Draft) AddItem() int {
	d.Items = append(d.Items, LineItem{Quantity: 1})
	return len(d.Items) - 1
}

// SelectProduct points row i at a catalog product and captures its name,
// stock and price. An id missing from the catalog resets the row.
func (d *Draft) SelectProduct(i int, id ids.ID, catalog Catalog) error {
	if err := d.checkIndex(i); err != nil {
		return err
	}
	p, ok := catalog.Find(id)
	if !ok {
		d.Items[i].ProductID = ""
		d.Items[i].ProductSnapshot = nil
		return nil
	}
	d.Items[i].ProductID = p.ID
	d.Items[i].ProductSnapshot = &ProductSnapshot{
		Name:  p.Name,
		Stock: p.Stock,
		Price: p.Price,
	}
	return nil
}

// SetQuantity stores q on row i verbatim.
func (d *Draft) SetQuantity(i, q int) error {
	if err := d.checkIndex(i); err != nil {
		return err
	}
	d.Items[i].Quantity = q
	return nil
}

// RemoveItem drops row i, keeping the order of the remaining rows.
func (d *Draft) RemoveItem(i int) error {
	if err := d.checkIndex(i); err != nil {
		return err
	}
	d.Items = slices.Delete(d.Items, i, i+1)
	return nil
}

// EstimatedTotal sums the row subtotals. The backend computes the real total.
func (d Draft) EstimatedTotal() money.Amount {
	var total money.Amount
	for _, li := range d.Items {
		total += li.Subtotal()
	}
	return total
}

// Validate returns a *ValidationError when the draft is empty or any row has
// no product, a non-positive quantity, or a quantity above its captured stock.
func (d Draft) Validate() error {
	if len(d.Items) == 0 {
		return &ValidationError{Kind: ErrEmptyDraft, Message: msgEmptyDraft}
	}

	var problems []ItemProblem
	for i, li := range d.Items {
		var reason error
		switch {
		case li.ProductID.IsZero():
			reason = ErrProductNotSelected
		case li.Quantity <= 0:
			reason = ErrNonPositiveQuantity
		case li.Quantity > li.CapturedStock():
			reason = ErrInsufficientStock
		default:
			continue
		}
		problems = append(problems, ItemProblem{
			Index:     i,
			ProductID: li.ProductID,
			Message:   fmt.Sprintf("item %d: %s", i+1, reason),
			Reason:    reason,
		})
	}
	if len(problems) > 0 {
		return &ValidationError{Kind: ErrInvalidItems, Message: msgInvalidItems, Problems: problems}
	}
	return nil
}

// OrderLine is one row of the create payload.
type OrderLine struct {
	ProductID ids.ID `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CreateOrderPayload is the POST /order body. Snapshot fields are not sent.
type CreateOrderPayload struct {
	CustomerID ids.ID      `json:"customer_id"`
	Items      []OrderLine `json:"items"`
}

// Payload validates the draft and builds the create payload.
func (d Draft) Payload() (*CreateOrderPayload, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	lines := make([]OrderLine, 0, len(d.Items))
	for _, li := range d.Items {
		lines = append(lines, OrderLine{ProductID: li.ProductID, Quantity: li.Quantity})
	}
	return &CreateOrderPayload{CustomerID: d.CustomerID, Items: lines}, nil
}

func (d *Draft) checkIndex(i int) error {
	if i < 0 || i >= len(d.Items) {
		return fmt.Errorf("%w: %d", ErrItemIndex, i)
	}
	return nil
}
