package queries

import (
	"context"
	"database/sql"
	"strings"

	"gorm.io/gorm"
)

// GetOrdersQueryHandler lists orders from the database, joining each row
// with the contact details of its customer, farmer, and baler.
//
// Example:
//
//	handler := NewGetOrdersQueryHandler(db)
//	orders, err := handler.Handle(ctx, NewGetOrdersQuery(OrdersFilter{}))
//	if err != nil {
//	    log.Printf("Failed to list orders: %v", err)
//	    return err
//	}
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the listing. Filters are applied conjunctively; results
// are ordered newest first.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var sb strings.Builder
	sb.WriteString(`
		SELECT
			o.order_id,
			o.customer_id,
			o.farmer_id,
			o.baler_id,
			o.bale_type,
			o.quantity,
			o.delivery_address,
			o.pickup_date,
			o.status,
			o.created_at,
			o.delivered_at,
			o.notes,
			COALESCE(NULLIF(c.full_name, ''), 'N/A'),
			COALESCE(NULLIF(c.phone, ''), 'N/A'),
			COALESCE(NULLIF(c.address, ''), 'N/A'),
			COALESCE(NULLIF(f.full_name, ''), '-'),
			COALESCE(NULLIF(f.phone, ''), '-'),
			COALESCE(NULLIF(b.full_name, ''), '-'),
			COALESCE(NULLIF(b.phone, ''), '-')
		FROM orders o
		LEFT JOIN users c ON o.customer_id = c.user_id
		LEFT JOIN users f ON o.farmer_id = f.user_id
		LEFT JOIN users b ON o.baler_id = b.user_id
		WHERE 1=1
	`)

	args := make([]any, 0, 4)
	filter := query.Filter()

	if filter.CustomerID != nil {
		sb.WriteString(" AND o.customer_id = ?")
		args = append(args, *filter.CustomerID)
	}
	if filter.FarmerID != nil {
		sb.WriteString(" AND o.farmer_id = ?")
		args = append(args, *filter.FarmerID)
	}
	if filter.BalerID != nil {
		sb.WriteString(" AND o.baler_id = ?")
		args = append(args, *filter.BalerID)
	}
	if filter.Status != nil {
		sb.WriteString(" AND o.status = ?")
		args = append(args, *filter.Status)
	}

	sb.WriteString(" ORDER BY o.created_at DESC")

	rows, err := h.db.WithContext(ctx).Raw(sb.String(), args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetOrdersQueryResponse, 0)

	for rows.Next() {
		var resp GetOrdersQueryResponse
		var farmerID, balerID sql.NullString
		var deliveredAt sql.NullTime

		err = rows.Scan(
			&resp.OrderID,
			&resp.CustomerID,
			&farmerID,
			&balerID,
			&resp.BaleType,
			&resp.Quantity,
			&resp.DeliveryAddress,
			&resp.PickupDate,
			&resp.Status,
			&resp.CreatedAt,
			&deliveredAt,
			&resp.Notes,
			&resp.CustomerName,
			&resp.CustomerPhone,
			&resp.CustomerAddress,
			&resp.FarmerName,
			&resp.FarmerPhone,
			&resp.BalerName,
			&resp.BalerPhone,
		)
		if err != nil {
			return nil, err
		}

		if farmerID.Valid {
			resp.FarmerID = &farmerID.String
		}
		if balerID.Valid {
			resp.BalerID = &balerID.String
		}
		if deliveredAt.Valid {
			resp.DeliveredAt = &deliveredAt.Time
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
