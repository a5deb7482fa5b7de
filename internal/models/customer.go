package models

// Customer is a WhatsApp contact known to the business.
type Customer struct {
	CustomerID    FlexID `json:"customer_id,omitempty"`
	AltCustomerID FlexID `json:"CustomerId,omitempty"`
	Name          string `json:"customer_name,omitempty"`
	Email         string `json:"email,omitempty"`
	DeliveryDate  string `json:"delivery_date,omitempty"`
	CreatedAt     string `json:"created_at,omitempty"`
	UpdatedAt     string `json:"updated_at,omitempty"`
}

func (c Customer) CustomerKey() string {
	if c.CustomerID != "" {
		return c.CustomerID.String()
	}
	return c.AltCustomerID.String()
}

func (c Customer) FilterDate() string {
	return firstNonEmpty(c.DeliveryDate, c.CreatedAt, c.UpdatedAt)
}
