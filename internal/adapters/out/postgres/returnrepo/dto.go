// Package returnrepo provides data transfer objects and mapping functions for return persistence.
// This package implements the repository pattern for the return aggregate, handling
// the conversion between domain entities and database representations.
package returnrepo

import (
	"time"

	"returns/internal/adapters/out/postgres/jsonmap"
	"returns/internal/core/domain/model/kernel"
	"returns/internal/core/domain/model/orderreturn"

	"github.com/google/uuid"
)

// ReturnDTO represents the database structure for persisting return aggregates.
// The item collection cascades with the return: deleting a return removes its items.
type ReturnDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID        *uuid.UUID      `gorm:"type:uuid;index"`
	SwapID         *uuid.UUID      `gorm:"type:uuid;uniqueIndex"`
	Status         string          `gorm:"type:varchar(32);not null;index"`
	RefundAmount   int64           `gorm:"type:bigint;not null"`
	ShippingData   jsonmap.JSONMap `gorm:"type:jsonb"`
	ReceivedAt     *time.Time      `gorm:"type:timestamptz"`
	NoNotification bool            `gorm:"not null"`
	Metadata       jsonmap.JSONMap `gorm:"type:jsonb"`
	CreatedAt      time.Time       `gorm:"type:timestamptz;not null;index"`
	Items          []ReturnItemDTO `gorm:"foreignKey:ReturnID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for return aggregates.
func (ReturnDTO) TableName() string {
	return "returns"
}

// ReturnItemDTO represents the database structure for persisting return lines.
// A line item appears at most once per return, hence the composite key.
type ReturnItemDTO struct {
	ReturnID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ItemID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Quantity          int             `gorm:"type:int;not null"`
	RequestedQuantity int             `gorm:"type:int;not null"`
	ReceivedQuantity  int             `gorm:"type:int;not null"`
	IsRequested       bool            `gorm:"not null"`
	ReasonID          *uuid.UUID      `gorm:"type:uuid"`
	Note              string          `gorm:"type:text"`
	NoNotification    bool            `gorm:"not null"`
	Metadata          jsonmap.JSONMap `gorm:"type:jsonb"`
}

// TableName specifies the database table name for return lines.
func (ReturnItemDTO) TableName() string {
	return "return_items"
}

// fromDomain converts a return aggregate to its database representation.
func fromDomain(ret *orderreturn.Return) ReturnDTO {
	returnID := ret.ID().Bytes()

	items := make([]ReturnItemDTO, 0, len(ret.Items()))
	for _, item := range ret.Items() {
		items = append(items, ReturnItemDTO{
			ReturnID:          returnID,
			ItemID:            item.ItemID().Bytes(),
			Quantity:          item.Quantity(),
			RequestedQuantity: item.RequestedQuantity(),
			ReceivedQuantity:  item.ReceivedQuantity(),
			IsRequested:       item.IsRequested(),
			ReasonID:          optionalRaw(item.ReasonID()),
			Note:              item.Note(),
			NoNotification:    item.NoNotification(),
			Metadata:          jsonmap.JSONMap(item.Metadata()),
		})
	}

	return ReturnDTO{
		ID:             returnID,
		OrderID:        optionalRaw(ret.OrderID()),
		SwapID:         optionalRaw(ret.SwapID()),
		Status:         ret.Status().String(),
		RefundAmount:   ret.RefundAmount().Amount(),
		ShippingData:   jsonmap.JSONMap(ret.ShippingData()),
		ReceivedAt:     ret.ReceivedAt(),
		NoNotification: ret.NoNotification(),
		Metadata:       jsonmap.JSONMap(ret.Metadata()),
		CreatedAt:      ret.CreatedAt(),
		Items:          items,
	}
}

// toDomain converts a database DTO back into a return aggregate.
func toDomain(dto ReturnDTO) (*orderreturn.Return, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := orderreturn.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	refund, err := kernel.NewMoney(dto.RefundAmount)
	if err != nil {
		return nil, err
	}

	orderID, err := optionalDomain(dto.OrderID)
	if err != nil {
		return nil, err
	}
	swapID, err := optionalDomain(dto.SwapID)
	if err != nil {
		return nil, err
	}

	items := make([]*orderreturn.ReturnItem, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		item, itemErr := itemToDomain(itemDto)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return orderreturn.RestoreReturn(
		id,
		orderID,
		swapID,
		status,
		refund,
		dto.ShippingData,
		dto.ReceivedAt,
		dto.NoNotification,
		dto.Metadata,
		items,
		dto.CreatedAt,
	)
}

func itemToDomain(dto ReturnItemDTO) (*orderreturn.ReturnItem, error) {
	itemID, err := kernel.UUIDFromBytes(dto.ItemID[:])
	if err != nil {
		return nil, err
	}

	reasonID, err := optionalDomain(dto.ReasonID)
	if err != nil {
		return nil, err
	}

	return orderreturn.RestoreReturnItem(
		itemID,
		dto.Quantity,
		dto.RequestedQuantity,
		dto.ReceivedQuantity,
		dto.IsRequested,
		reasonID,
		dto.Note,
		dto.NoNotification,
		dto.Metadata,
	)
}

func optionalRaw(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
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
