package models

import "time"

type Lease struct {
	ID              int64     `json:"id"`
	StartDate       time.Time `json:"startDate"`
	EndDate         time.Time `json:"endDate"`
	Rent            float64   `json:"rent"`
	Deposit         float64   `json:"deposit"`
	PropertyID      int64     `json:"propertyId"`
	TenantCognitoID string    `json:"tenantCognitoId"`
}

type Payment struct {
	ID            int64         `json:"id"`
	AmountDue     float64       `json:"amountDue"`
	AmountPaid    float64       `json:"amountPaid"`
	DueDate       time.Time     `json:"dueDate"`
	PaymentDate   time.Time     `json:"paymentDate"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	LeaseID       int64         `json:"leaseId"`
}
