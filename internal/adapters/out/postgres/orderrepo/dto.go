// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"baleconnect/internal/core/domain/model/kernel"
	"baleconnect/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The participant columns are soft references to users.user_id: existence is
// not checked at write time, matching the permissive lifecycle contract.
// Indexes cover the GetOrders filter columns and the created_at sort.
type OrderDTO struct {
	OrderID         string     `gorm:"column:order_id;primaryKey"`
	CustomerID      string     `gorm:"column:customer_id;not null;index"`
	FarmerID        *string    `gorm:"column:farmer_id;index"`
	BalerID         *string    `gorm:"column:baler_id;index"`
	BaleType        string     `gorm:"column:bale_type;not null"`
	Quantity        int        `gorm:"not null"`
	DeliveryAddress string     `gorm:"column:delivery_address;not null"`
	PickupDate      string     `gorm:"column:pickup_date;not null"`
	Status          string     `gorm:"not null;index"`
	CreatedAt       time.Time  `gorm:"not null;index"`
	DeliveredAt     *time.Time `gorm:"column:delivered_at"`
	Notes           string
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var farmerID *string
	if id := aggregate.FarmerID(); id != nil {
		raw := id.String()
		farmerID = &raw
	}

	var balerID *string
	if id := aggregate.BalerID(); id != nil {
		raw := id.String()
		balerID = &raw
	}

	return OrderDTO{
		OrderID:         aggregate.ID().String(),
		CustomerID:      aggregate.CustomerID().String(),
		FarmerID:        farmerID,
		BalerID:         balerID,
		BaleType:        aggregate.BaleType(),
		Quantity:        aggregate.Quantity(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		PickupDate:      aggregate.PickupDate(),
		Status:          aggregate.Status().String(),
		CreatedAt:       aggregate.CreatedAt(),
		DeliveredAt:     aggregate.DeliveredAt(),
		Notes:           aggregate.Notes(),
	}
}

// toDomain converts a database DTO back to an order domain aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.EntityIDFromString(dto.OrderID)
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.EntityIDFromString(dto.CustomerID)
	if err != nil {
		return nil, err
	}

	var farmerID *kernel.EntityID
	if dto.FarmerID != nil {
		fID, farmerErr := kernel.EntityIDFromString(*dto.FarmerID)
		if farmerErr != nil {
			return nil, farmerErr
		}
		farmerID = &fID
	}

	var balerID *kernel.EntityID
	if dto.BalerID != nil {
		bID, balerErr := kernel.EntityIDFromString(*dto.BalerID)
		if balerErr != nil {
			return nil, balerErr
		}
		balerID = &bID
	}

	return order.RestoreOrder(
		id,
		customerID,
		farmerID,
		balerID,
		dto.BaleType,
		dto.Quantity,
		dto.DeliveryAddress,
		dto.PickupDate,
		order.Status(dto.Status),
		dto.CreatedAt,
		dto.DeliveredAt,
		dto.Notes,
	)
}
