package models

// Enquiry is a pre-sale question routed from a WhatsApp conversation.
type Enquiry struct {
	ID            int    `json:"enquiry_id"`
	CustomerID    FlexID `json:"customer_id,omitempty"`
	AltCustomerID FlexID `json:"CustomerId,omitempty"`
	Description   string `json:"description,omitempty"`
	Category      string `json:"category,omitempty"`
	Priority      string `json:"priority,omitempty"`
	Status        string `json:"status,omitempty"`
	FollowUpDate  string `json:"follow_up_date,omitempty"`
	CreatedAt     string `json:"created_at,omitempty"`
	UpdatedAt     string `json:"updated_at,omitempty"`
}

func (e Enquiry) CustomerKey() string {
	if e.CustomerID != "" {
		return e.CustomerID.String()
	}
	return e.AltCustomerID.String()
}

func (e Enquiry) FilterDate() string {
	return firstNonEmpty(e.FollowUpDate, e.CreatedAt, e.UpdatedAt)
}
