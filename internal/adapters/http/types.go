package http

// MessageResponse is a simple message payload
type MessageResponse struct {
	Message string `json:"message"`
}

// QuantityResponse reports the stored quantity for an item. Quantity is 0
// when the item is absent.
type QuantityResponse struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// LowStockResponse lists item names below the applied threshold.
type LowStockResponse struct {
	Threshold int      `json:"threshold"`
	Items     []string `json:"items"`
}
