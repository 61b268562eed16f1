package http

import (
	"time"

	"returns/internal/core/application/usecases/queries"
	"returns/internal/core/domain/model/kernel"
	"returns/internal/core/domain/model/orderreturn"
)

// Error is the JSON body of every error response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateReturnRequest is the request body for opening a return.
type CreateReturnRequest struct {
	OrderID        *string             `json:"order_id"`
	SwapID         *string             `json:"swap_id"`
	Items          []RequestedItem     `json:"items"`
	ReturnShipping ReturnShippingInput `json:"return_shipping"`
	RefundAmount   *int64              `json:"refund_amount"`
	NoNotification bool                `json:"no_notification"`
	Metadata       map[string]any      `json:"metadata"`
}

// RequestedItem is one line of a create request.
type RequestedItem struct {
	ItemID   string  `json:"item_id"`
	Quantity int     `json:"quantity"`
	ReasonID *string `json:"reason_id"`
	Note     string  `json:"note"`
}

// ReturnShippingInput selects the shipping option for the return and
// optionally overrides its configured price.
type ReturnShippingInput struct {
	OptionID *string `json:"option_id"`
	Price    *int64  `json:"price"`
}

// UpdateReturnRequest is the request body for updating a return.
type UpdateReturnRequest struct {
	Metadata       map[string]any `json:"metadata"`
	NoNotification *bool          `json:"no_notification"`
	RefundAmount   *int64         `json:"refund_amount"`
}

// ReceiveReturnRequest is the request body for receiving a return.
type ReceiveReturnRequest struct {
	Items         []ReceivedItem `json:"items"`
	RefundAmount  *int64         `json:"refund_amount"`
	AllowMismatch bool           `json:"allow_mismatch"`
}

// ReceivedItem is one line of a receive request.
type ReceivedItem struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// ReturnResponse is the JSON representation of a return.
type ReturnResponse struct {
	ID             string             `json:"id"`
	OrderID        *string            `json:"order_id"`
	SwapID         *string            `json:"swap_id"`
	Status         string             `json:"status"`
	RefundAmount   int64              `json:"refund_amount"`
	ShippingData   map[string]any     `json:"shipping_data,omitempty"`
	ReceivedAt     *time.Time         `json:"received_at"`
	NoNotification bool               `json:"no_notification"`
	Metadata       map[string]any     `json:"metadata,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
	Items          []ReturnItemOutput `json:"items"`
}

// ReturnItemOutput is the JSON representation of one return line.
type ReturnItemOutput struct {
	ItemID            string  `json:"item_id"`
	Quantity          int     `json:"quantity"`
	RequestedQuantity int     `json:"requested_quantity"`
	ReceivedQuantity  int     `json:"received_quantity"`
	IsRequested       bool    `json:"is_requested"`
	ReasonID          *string `json:"reason_id"`
	Note              string  `json:"note,omitempty"`
}

// ListReturnsResponse is the JSON body of a listing response.
type ListReturnsResponse struct {
	Returns  []ReturnResponse `json:"returns"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// fromAggregate maps a return aggregate to its JSON representation.
func fromAggregate(ret *orderreturn.Return) ReturnResponse {
	items := make([]ReturnItemOutput, 0, len(ret.Items()))
	for _, item := range ret.Items() {
		items = append(items, ReturnItemOutput{
			ItemID:            item.ItemID().String(),
			Quantity:          item.Quantity(),
			RequestedQuantity: item.RequestedQuantity(),
			ReceivedQuantity:  item.ReceivedQuantity(),
			IsRequested:       item.IsRequested(),
			ReasonID:          optionalString(item.ReasonID()),
			Note:              item.Note(),
		})
	}

	return ReturnResponse{
		ID:             ret.ID().String(),
		OrderID:        optionalString(ret.OrderID()),
		SwapID:         optionalString(ret.SwapID()),
		Status:         ret.Status().String(),
		RefundAmount:   ret.RefundAmount().Amount(),
		ShippingData:   ret.ShippingData(),
		ReceivedAt:     ret.ReceivedAt(),
		NoNotification: ret.NoNotification(),
		Metadata:       ret.Metadata(),
		CreatedAt:      ret.CreatedAt(),
		Items:          items,
	}
}

// fromReadModel maps a query read model to its JSON representation.
func fromReadModel(ret queries.ReturnResponse) ReturnResponse {
	items := make([]ReturnItemOutput, 0, len(ret.Items))
	for _, item := range ret.Items {
		items = append(items, ReturnItemOutput{
			ItemID:            item.ItemID.String(),
			Quantity:          item.Quantity,
			RequestedQuantity: item.RequestedQuantity,
			ReceivedQuantity:  item.ReceivedQuantity,
			IsRequested:       item.IsRequested,
			ReasonID:          optionalString(item.ReasonID),
			Note:              item.Note,
		})
	}

	return ReturnResponse{
		ID:             ret.ID.String(),
		OrderID:        optionalString(ret.OrderID),
		SwapID:         optionalString(ret.SwapID),
		Status:         ret.Status,
		RefundAmount:   ret.RefundAmount,
		ShippingData:   ret.ShippingData,
		ReceivedAt:     ret.ReceivedAt,
		NoNotification: ret.NoNotification,
		Metadata:       ret.Metadata,
		CreatedAt:      ret.CreatedAt,
		Items:          items,
	}
}

func optionalString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
