package models

// Order represents a customer order captured from a WhatsApp conversation.
// TotalAmount stays a string because the upstream stores it as text; the
// engine parses it defensively.
type Order struct {
	ID              int    `json:"order_id"`
	CustomerID      FlexID `json:"customer_id,omitempty"`
	AltCustomerID   FlexID `json:"CustomerId,omitempty"`
	CustomerName    string `json:"customer_name,omitempty"`
	OrderNumber     string `json:"order_number,omitempty"`
	Item            string `json:"item"`
	Quantity        int    `json:"quantity"`
	Unit            string `json:"unit,omitempty"`
	Notes           string `json:"notes,omitempty"`
	Status          string `json:"order_status"`
	TotalAmount     string `json:"total_amount"`
	DeliveryAddress string `json:"delivery_address,omitempty"`
	DeliveryTime    string `json:"delivery_time,omitempty"`
	DeliveryMethod  string `json:"delivery_method,omitempty"`
	DeliveryDate    string `json:"delivery_date,omitempty"`
	AltDeliveryDate string `json:"DeliveryDate,omitempty"`
	CreatedAt       string `json:"created_at,omitempty"`
	UpdatedAt       string `json:"updated_at,omitempty"`
}

// CustomerKey resolves the customer identifier, preferring the canonical
// snake_case field over the PascalCase variant some senders use.
func (o Order) CustomerKey() string {
	if o.CustomerID != "" {
		return o.CustomerID.String()
	}
	return o.AltCustomerID.String()
}

// FilterDate resolves the raw date used for day filtering: delivery date
// first, then creation and update timestamps.
func (o Order) FilterDate() string {
	return firstNonEmpty(o.DeliveryDate, o.AltDeliveryDate, o.CreatedAt, o.UpdatedAt)
}

func firstNonEmpty(candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return ""
}
