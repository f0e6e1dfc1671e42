package queries

import (
	"errors"
	"time"

	"baleconnect/internal/pkg/guard"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
)

// OrdersFilter narrows an order listing. A nil field means the dimension is
// not filtered. Role dashboards pass their own participant ID; a status
// filter selects one lifecycle stage.
type OrdersFilter struct {
	CustomerID *string
	FarmerID   *string
	BalerID    *string
	Status     *string
}

// GetOrdersQuery retrieves orders joined with participant contact details.
//
// Example:
//
//	status := "pending"
//	query := NewGetOrdersQuery(OrdersFilter{Status: &status})
//	handler := NewGetOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
type GetOrdersQuery struct {
	filter OrdersFilter

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates an order listing query. All filter dimensions
// are optional.
func NewGetOrdersQuery(filter OrdersFilter) GetOrdersQuery {
	return GetOrdersQuery{
		filter: filter,
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Filter returns the requested narrowing.
func (q GetOrdersQuery) Filter() OrdersFilter {
	return q.filter
}

// GetOrdersQueryResponse is one order row with the contact details of its
// participants. Customer fields fall back to "N/A" and farmer/baler fields
// to "-" when the referenced user is missing, so dashboards can render the
// row without nil checks.
type GetOrdersQueryResponse struct {
	OrderID         string
	CustomerID      string
	FarmerID        *string
	BalerID         *string
	BaleType        string
	Quantity        int
	DeliveryAddress string
	PickupDate      string
	Status          string
	CreatedAt       time.Time
	DeliveredAt     *time.Time
	Notes           string

	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	FarmerName      string
	FarmerPhone     string
	BalerName       string
	BalerPhone      string
}
