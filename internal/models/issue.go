package models

// Issue is a post-sale complaint or problem report tied to a customer.
type Issue struct {
	ID              int    `json:"issue_id"`
	CustomerID      FlexID `json:"customer_id,omitempty"`
	AltCustomerID   FlexID `json:"CustomerId,omitempty"`
	OrderID         int    `json:"order_id,omitempty"`
	IssueType       string `json:"issue_type,omitempty"`
	Description     string `json:"description,omitempty"`
	Priority        string `json:"priority,omitempty"`
	Status          string `json:"status,omitempty"`
	ResolutionNotes string `json:"resolution_notes,omitempty"`
	CreatedAt       string `json:"created_at,omitempty"`
	UpdatedAt       string `json:"updated_at,omitempty"`
}

func (i Issue) CustomerKey() string {
	if i.CustomerID != "" {
		return i.CustomerID.String()
	}
	return i.AltCustomerID.String()
}

func (i Issue) FilterDate() string {
	return firstNonEmpty(i.CreatedAt, i.UpdatedAt)
}
