// Package orderrepo provides read-only access to the order-side tables a
// return is validated against: orders, line items, swaps, and claim orders.
// These tables are owned by the order service; this package only maps their
// rows into the sales read models.
package orderrepo

import (
	"time"

	"returns/internal/core/domain/model/kernel"
	"returns/internal/core/domain/model/sales"

	"github.com/google/uuid"
)

// OrderDTO maps the orders table.
type OrderDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Total            int64      `gorm:"type:bigint;not null"`
	RefundedTotal    int64      `gorm:"type:bigint;not null"`
	RefundableAmount int64      `gorm:"type:bigint;not null"`
	TaxRate          float64    `gorm:"type:numeric;not null"`
	CanceledAt       *time.Time `gorm:"type:timestamptz"`

	Items []LineItemDTO `gorm:"foreignKey:OrderID"`
	Swaps []SwapDTO     `gorm:"foreignKey:OrderID"`
}

// TableName specifies the database table name for orders.
func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO maps the line_items table. A line belongs to exactly one of
// an order, a swap, or a claim order.
type LineItemDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID          *uuid.UUID `gorm:"type:uuid;index"`
	SwapID           *uuid.UUID `gorm:"type:uuid;index"`
	ClaimOrderID     *uuid.UUID `gorm:"type:uuid;index"`
	VariantID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	Quantity         int        `gorm:"type:int;not null"`
	ReturnedQuantity int        `gorm:"type:int;not null"`
	UnitPrice        int64      `gorm:"type:bigint;not null"`
}

// TableName specifies the database table name for line items.
func (LineItemDTO) TableName() string {
	return "line_items"
}

// SwapDTO maps the swaps table.
type SwapDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	CanceledAt *time.Time `gorm:"type:timestamptz"`

	AdditionalItems []LineItemDTO `gorm:"foreignKey:SwapID"`
}

// TableName specifies the database table name for swaps.
func (SwapDTO) TableName() string {
	return "swaps"
}

// ClaimOrderDTO maps the claim_orders table.
type ClaimOrderDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	CanceledAt *time.Time `gorm:"type:timestamptz"`
}

// TableName specifies the database table name for claim orders.
func (ClaimOrderDTO) TableName() string {
	return "claim_orders"
}

func orderToDomain(dto OrderDTO) (sales.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return sales.Order{}, err
	}

	items := make([]sales.LineItem, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		item, itemErr := lineItemToDomain(itemDto)
		if itemErr != nil {
			return sales.Order{}, itemErr
		}
		items = append(items, item)
	}

	swaps := make([]sales.Swap, 0, len(dto.Swaps))
	for _, swapDto := range dto.Swaps {
		swap, swapErr := swapToDomain(swapDto)
		if swapErr != nil {
			return sales.Order{}, swapErr
		}
		swaps = append(swaps, swap)
	}

	return sales.Order{
		ID:               id,
		Total:            dto.Total,
		RefundedTotal:    dto.RefundedTotal,
		RefundableAmount: dto.RefundableAmount,
		TaxRate:          dto.TaxRate,
		CanceledAt:       dto.CanceledAt,
		Items:            items,
		Swaps:            swaps,
	}, nil
}

func swapToDomain(dto SwapDTO) (sales.Swap, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return sales.Swap{}, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return sales.Swap{}, err
	}

	items := make([]sales.LineItem, 0, len(dto.AdditionalItems))
	for _, itemDto := range dto.AdditionalItems {
		item, itemErr := lineItemToDomain(itemDto)
		if itemErr != nil {
			return sales.Swap{}, itemErr
		}
		items = append(items, item)
	}

	return sales.Swap{
		ID:              id,
		OrderID:         orderID,
		CanceledAt:      dto.CanceledAt,
		AdditionalItems: items,
	}, nil
}

func lineItemToDomain(dto LineItemDTO) (sales.LineItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return sales.LineItem{}, err
	}
	variantID, err := kernel.UUIDFromBytes(dto.VariantID[:])
	if err != nil {
		return sales.LineItem{}, err
	}

	item := sales.LineItem{
		ID:               id,
		VariantID:        variantID,
		Quantity:         dto.Quantity,
		ReturnedQuantity: dto.ReturnedQuantity,
		UnitPrice:        dto.UnitPrice,
	}

	if item.OrderID, err = optionalDomain(dto.OrderID); err != nil {
		return sales.LineItem{}, err
	}
	if item.SwapID, err = optionalDomain(dto.SwapID); err != nil {
		return sales.LineItem{}, err
	}
	if item.ClaimOrderID, err = optionalDomain(dto.ClaimOrderID); err != nil {
		return sales.LineItem{}, err
	}

	return item, nil
}

func optionalDomain(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil //nolint:nilnil //absent optional reference
	}

	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
