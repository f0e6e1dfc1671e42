package http

// Request bodies for the BaleConnect API. All operations are POST with JSON
// payloads; pointer fields distinguish an absent filter from an empty one.

// AuthRequest is the login payload.
type AuthRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	UserType string `json:"user_type"`
}

// RegisterRequest wraps the new account under a "user" key.
type RegisterRequest struct {
	User RegisterUserPayload `json:"user"`
}

// RegisterUserPayload carries the new account fields. Address is optional.
type RegisterUserPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	UserType string `json:"user_type"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// CreateOrderRequest wraps the new order under an "order" key.
type CreateOrderRequest struct {
	Order CreateOrderPayload `json:"order"`
}

// CreateOrderPayload carries the new order fields. Notes are optional.
type CreateOrderPayload struct {
	CustomerID      string `json:"customer_id"`
	BaleType        string `json:"bale_type"`
	Quantity        int    `json:"quantity"`
	DeliveryAddress string `json:"delivery_address"`
	PickupDate      string `json:"pickup_date"`
	Notes           string `json:"notes"`
}

// GetOrdersRequest lists optional filter dimensions. A nil field leaves
// that dimension unfiltered.
type GetOrdersRequest struct {
	CustomerID *string `json:"customer_id"`
	FarmerID   *string `json:"farmer_id"`
	BalerID    *string `json:"baler_id"`
	Status     *string `json:"status"`
}

// AcceptOrderRequest records a farmer taking an order.
type AcceptOrderRequest struct {
	OrderID  string `json:"order_id"`
	FarmerID string `json:"farmer_id"`
}

// AssignBalerRequest records a baler being assigned to an order.
type AssignBalerRequest struct {
	OrderID string `json:"order_id"`
	BalerID string `json:"baler_id"`
}

// UpdateStatusRequest moves an order to a new status.
type UpdateStatusRequest struct {
	OrderID   string `json:"order_id"`
	NewStatus string `json:"new_status"`
}

// GetUsersRequest optionally narrows the directory listing to one role.
type GetUsersRequest struct {
	UserType string `json:"user_type"`
}
