package order

import (
	"errors"
	"math"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// TaxRate is the tax fraction applied to every order line at creation time.
const TaxRate = 0.18

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// TaxFor returns the tax amount for a monetary value, rounded to two decimals.
func TaxFor(amount float64) float64 {
	return math.Round(amount*TaxRate*100) / 100
}

// Order is the aggregate root of the buying side of the pipeline. It owns the
// order status, the independent payment status, and the immutable line item
// snapshots taken when the order was created from the buyer's cart.
//
// Invariants:
//   - at least one line item, every line snapshotted at creation
//   - monetary totals are computed once at construction and never recomputed
//   - status only moves along the edges of the transition table
//   - notes are append-only
//
// Inventory side effects of status changes (commit on Confirmed, release on
// Cancelled) are owned by the application layer, which executes them in the
// same transaction as the status write.
type Order struct {
	id                kernel.UUID
	orderNumber       string
	buyerID           kernel.UUID
	deliveryAddressID kernel.UUID
	items             []Item
	status            Status
	paymentStatus     PaymentStatus
	subtotal          float64
	taxAmount         float64
	total             float64
	notes             []string
	createdAt         time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates a Pending order from snapshotted line items.
// Totals are computed here, at the instant of creation, and are immutable
// afterwards. Payment status starts as Pending.
func NewOrder(
	id kernel.UUID,
	orderNumber string,
	buyerID kernel.UUID,
	deliveryAddressID kernel.UUID,
	items []Item,
	createdAt time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		buyerID.Validate(),
		deliveryAddressID.Validate(),
	); err != nil {
		return nil, err
	}
	if strings.TrimSpace(orderNumber) == "" {
		return nil, errs.NewValueIsRequiredError("orderNumber")
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	var subtotal, taxAmount float64
	for _, item := range items {
		subtotal += item.LineSubtotal()
		taxAmount += item.LineTax()
	}

	return &Order{
		id:                id,
		orderNumber:       orderNumber,
		buyerID:           buyerID,
		deliveryAddressID: deliveryAddressID,
		items:             items,
		status:            StatusPending,
		paymentStatus:     PaymentStatusPending,
		subtotal:          math.Round(subtotal*100) / 100,
		taxAmount:         math.Round(taxAmount*100) / 100,
		total:             math.Round((subtotal+taxAmount)*100) / 100,
		notes:             nil,
		createdAt:         createdAt,
		guard:             guard.NewConstructorGuard(),
	}, nil
}

// RestoreOrder reconstructs an order from persistence. Unlike NewOrder it
// accepts any valid status pair and the stored totals verbatim.
func RestoreOrder(
	id kernel.UUID,
	orderNumber string,
	buyerID kernel.UUID,
	deliveryAddressID kernel.UUID,
	items []Item,
	status Status,
	paymentStatus PaymentStatus,
	subtotal, taxAmount, total float64,
	notes []string,
	createdAt time.Time,
) (*Order, error) {
	order, err := NewOrder(id, orderNumber, buyerID, deliveryAddressID, items, createdAt)
	if err != nil {
		return nil, err
	}
	if err = errors.Join(status.Validate(), paymentStatus.Validate()); err != nil {
		return nil, err
	}

	order.status = status
	order.paymentStatus = paymentStatus
	order.subtotal = subtotal
	order.taxAmount = taxAmount
	order.total = total
	order.notes = notes
	return order, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's internal identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the human-readable identifier ("ORD" + date + sequence).
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// BuyerID returns the identifier of the buyer who placed the order.
func (o *Order) BuyerID() kernel.UUID {
	return o.buyerID
}

// DeliveryAddressID returns the delivery address reference.
func (o *Order) DeliveryAddressID() kernel.UUID {
	return o.deliveryAddressID
}

// Items returns the snapshotted order lines.
func (o *Order) Items() []Item {
	return o.items
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// PaymentStatus returns the payment status reported by the payments collaborator.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// Subtotal returns the pre-tax total snapshotted at creation.
func (o *Order) Subtotal() float64 {
	return o.subtotal
}

// TaxAmount returns the total tax snapshotted at creation.
func (o *Order) TaxAmount() float64 {
	return o.taxAmount
}

// Total returns subtotal plus tax.
func (o *Order) Total() float64 {
	return o.total
}

// Notes returns the append-only note log.
func (o *Order) Notes() []string {
	return o.notes
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// TransitionTo moves the order along one edge of the state machine.
// Returns InvalidStatusTransitionError, with both statuses, for any edge
// outside the table; the status is left unchanged in that case.
func (o *Order) TransitionTo(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// SetPaymentStatus records the payment status reported by the payments
// collaborator. It never touches the order status.
func (o *Order) SetPaymentStatus(status PaymentStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.paymentStatus = status
	return nil
}

// AppendNote appends to the order's note log. Notes are never edited or
// removed, and a single note is always one line.
func (o *Order) AppendNote(note string) error {
	if strings.TrimSpace(note) == "" {
		return errs.NewValueIsRequiredError("note")
	}
	if strings.ContainsAny(note, "\n\r") {
		return errs.NewValueIsInvalidError("note")
	}
	o.notes = append(o.notes, note)
	return nil
}

// WarehouseIDs returns the distinct warehouses this order draws from, in
// first-appearance order. An order spanning N warehouses yields N consignments.
func (o *Order) WarehouseIDs() []kernel.UUID {
	seen := make(map[kernel.UUID]bool, len(o.items))
	ids := make([]kernel.UUID, 0, len(o.items))
	for _, item := range o.items {
		if !seen[item.WarehouseID()] {
			seen[item.WarehouseID()] = true
			ids = append(ids, item.WarehouseID())
		}
	}
	return ids
}

// ItemsForWarehouse returns the order lines fulfilled from one warehouse.
func (o *Order) ItemsForWarehouse(warehouseID kernel.UUID) []Item {
	var items []Item
	for _, item := range o.items {
		if item.WarehouseID().IsEqual(warehouseID) {
			items = append(items, item)
		}
	}
	return items
}

// TouchesWarehouse reports whether any order line draws from the warehouse.
func (o *Order) TouchesWarehouse(warehouseID kernel.UUID) bool {
	return len(o.ItemsForWarehouse(warehouseID)) > 0
}
