package http

import (
	"time"

	"baleconnect/internal/core/application/usecases/queries"
	"baleconnect/internal/core/domain/model/order"
	"baleconnect/internal/core/domain/model/user"
)

// timeLayout renders timestamps with padded microseconds so that string
// ordering matches chronological ordering.
const timeLayout = "2006-01-02T15:04:05.000000"

// ErrorResponse is the failure envelope shared by all endpoints.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// HealthResponse reports service liveness.
type HealthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// AuthResponse carries the profile of an authenticated user.
type AuthResponse struct {
	Success bool        `json:"success"`
	User    UserProfile `json:"user"`
}

// UserProfile is the full profile returned on login.
type UserProfile struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// RegisterResponse confirms a new account with its generated identifier.
type RegisterResponse struct {
	Success bool           `json:"success"`
	User    RegisteredUser `json:"user"`
}

// RegisteredUser is the abbreviated profile returned on registration.
type RegisteredUser struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Name string `json:"name"`
}

// CreateOrderResponse confirms a new order with its generated identifier.
type CreateOrderResponse struct {
	Success bool         `json:"success"`
	Order   CreatedOrder `json:"order"`
}

// CreatedOrder echoes the stored order. Farmer and baler are null until the
// order progresses through its lifecycle.
type CreatedOrder struct {
	OrderID         string  `json:"order_id"`
	CustomerID      string  `json:"customer_id"`
	FarmerID        *string `json:"farmer_id"`
	BalerID         *string `json:"baler_id"`
	BaleType        string  `json:"bale_type"`
	Quantity        int     `json:"quantity"`
	DeliveryAddress string  `json:"delivery_address"`
	PickupDate      string  `json:"pickup_date"`
	Status          string  `json:"status"`
	CreatedAt       string  `json:"created_at"`
	Notes           string  `json:"notes"`
}

// OrdersResponse lists orders with participant contact details.
type OrdersResponse struct {
	Success bool       `json:"success"`
	Orders  []OrderRow `json:"orders"`
}

// OrderRow is one order in a listing, denormalized with the names and
// phones of its participants.
type OrderRow struct {
	OrderID         string  `json:"order_id"`
	CustomerID      string  `json:"customer_id"`
	FarmerID        *string `json:"farmer_id"`
	BalerID         *string `json:"baler_id"`
	BaleType        string  `json:"bale_type"`
	Quantity        int     `json:"quantity"`
	DeliveryAddress string  `json:"delivery_address"`
	PickupDate      string  `json:"pickup_date"`
	Status          string  `json:"status"`
	CreatedAt       string  `json:"created_at"`
	DeliveredAt     *string `json:"delivered_at"`
	Notes           string  `json:"notes"`
	CustomerName    string  `json:"customer_name"`
	CustomerPhone   string  `json:"customer_phone"`
	CustomerAddress string  `json:"customer_address"`
	FarmerName      string  `json:"farmer_name"`
	FarmerPhone     string  `json:"farmer_phone"`
	BalerName       string  `json:"baler_name"`
	BalerPhone      string  `json:"baler_phone"`
}

// AcceptOrderResponse confirms a farmer acceptance.
type AcceptOrderResponse struct {
	Success bool          `json:"success"`
	Order   AcceptedOrder `json:"order"`
}

type AcceptedOrder struct {
	OrderID  string `json:"order_id"`
	FarmerID string `json:"farmer_id"`
	Status   string `json:"status"`
}

// AssignBalerResponse confirms a baler assignment.
type AssignBalerResponse struct {
	Success bool          `json:"success"`
	Order   AssignedOrder `json:"order"`
}

type AssignedOrder struct {
	OrderID string `json:"order_id"`
	BalerID string `json:"baler_id"`
	Status  string `json:"status"`
}

// UpdateStatusResponse confirms a status change.
type UpdateStatusResponse struct {
	Success bool         `json:"success"`
	Order   UpdatedOrder `json:"order"`
}

type UpdatedOrder struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

// UsersResponse lists directory entries.
type UsersResponse struct {
	Success bool       `json:"success"`
	Users   []UserItem `json:"users"`
}

// UserItem is one user directory entry.
type UserItem struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
	Type  string `json:"type"`
}

func formatTime(t time.Time) string {
	return t.Format(timeLayout)
}

func newUserProfile(profile queries.AuthenticateUserQueryResponse) UserProfile {
	return UserProfile{
		ID:      profile.ID,
		Type:    profile.UserType,
		Name:    profile.FullName,
		Email:   profile.Email,
		Phone:   profile.Phone,
		Address: profile.Address,
	}
}

func newRegisteredUser(u *user.User) RegisteredUser {
	return RegisteredUser{
		ID:   u.ID().String(),
		Type: u.UserType(),
		Name: u.FullName(),
	}
}

func newCreatedOrder(o *order.Order) CreatedOrder {
	return CreatedOrder{
		OrderID:         o.ID().String(),
		CustomerID:      o.CustomerID().String(),
		BaleType:        o.BaleType(),
		Quantity:        o.Quantity(),
		DeliveryAddress: o.DeliveryAddress(),
		PickupDate:      o.PickupDate(),
		Status:          o.Status().String(),
		CreatedAt:       formatTime(o.CreatedAt()),
		Notes:           o.Notes(),
	}
}

func newOrderRow(r queries.GetOrdersQueryResponse) OrderRow {
	row := OrderRow{
		OrderID:         r.OrderID,
		CustomerID:      r.CustomerID,
		FarmerID:        r.FarmerID,
		BalerID:         r.BalerID,
		BaleType:        r.BaleType,
		Quantity:        r.Quantity,
		DeliveryAddress: r.DeliveryAddress,
		PickupDate:      r.PickupDate,
		Status:          r.Status,
		CreatedAt:       formatTime(r.CreatedAt),
		Notes:           r.Notes,
		CustomerName:    r.CustomerName,
		CustomerPhone:   r.CustomerPhone,
		CustomerAddress: r.CustomerAddress,
		FarmerName:      r.FarmerName,
		FarmerPhone:     r.FarmerPhone,
		BalerName:       r.BalerName,
		BalerPhone:      r.BalerPhone,
	}

	if r.DeliveredAt != nil {
		deliveredAt := formatTime(*r.DeliveredAt)
		row.DeliveredAt = &deliveredAt
	}

	return row
}

func newUserItem(r queries.GetUsersQueryResponse) UserItem {
	return UserItem{
		ID:    r.ID,
		Name:  r.FullName,
		Phone: r.Phone,
		Email: r.Email,
		Type:  r.UserType,
	}
}
