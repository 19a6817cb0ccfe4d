package models

import "encoding/json"

// OrderItem is a single line of an order-creation request.
type OrderItem struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

// CreateOrderRequest is the body sent to POST /orders on the backend.
type CreateOrderRequest struct {
	Items []OrderItem `json:"items"`
}

// OrderID is the opaque identifier the backend assigns to a new order.
// The backend has been observed returning both numbers and strings for
// the id field, so it is decoded leniently.
type OrderID string

func (id *OrderID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = OrderID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = OrderID(n.String())
	return nil
}

// CreateOrderResponse is the success body of POST /orders.
type CreateOrderResponse struct {
	ID OrderID `json:"id"`
}
