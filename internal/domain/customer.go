package domain

type CustomerType string

const (
	CustomerIndividual CustomerType = "Individual"
	CustomerCompany    CustomerType = "Company"
)

type CustomerStatus string

const (
	CustomerActive    CustomerStatus = "Active"
	CustomerInactive  CustomerStatus = "Inactive"
	CustomerSuspended CustomerStatus = "Suspended"
)

type Customer struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	CompanyName string         `gorm:"size:200;index" json:"companyName"`
	FirstName   string         `gorm:"size:100" json:"firstName"`
	LastName    string         `gorm:"size:100" json:"lastName"`
	Email       string         `gorm:"size:255;index" json:"email"`
	Phone       string         `gorm:"size:50" json:"phone"`
	Address     string         `gorm:"size:500" json:"address"`
	City        string         `gorm:"size:100" json:"city"`
	State       string         `gorm:"size:100" json:"state"`
	PostalCode  string         `gorm:"size:20" json:"postalCode"`
	Country     string         `gorm:"size:100" json:"country"`
	Website     string         `gorm:"size:255" json:"website"`
	Industry    string         `gorm:"size:100" json:"industry"`
	Type        CustomerType   `gorm:"size:20;not null" json:"type"`
	Status      CustomerStatus `gorm:"size:20;not null;index" json:"status"`
	Notes       string         `gorm:"size:2000" json:"notes"`
	Audit
}

type ContactRole string

const (
	ContactPrimary       ContactRole = "Primary"
	ContactBilling       ContactRole = "Billing"
	ContactTechnical     ContactRole = "Technical"
	ContactDecisionMaker ContactRole = "DecisionMaker"
	ContactInfluencer    ContactRole = "Influencer"
	ContactOther         ContactRole = "Other"
)

// Contact belongs to exactly one customer. The contact service keeps at most
// one primary contact per customer.
type Contact struct {
	ID         uint        `gorm:"primaryKey" json:"id"`
	CustomerID uint        `gorm:"not null;index" json:"customerId"`
	FirstName  string      `gorm:"size:100;not null" json:"firstName"`
	LastName   string      `gorm:"size:100;not null" json:"lastName"`
	Email      string      `gorm:"size:255;index" json:"email"`
	Phone      string      `gorm:"size:50" json:"phone"`
	Mobile     string      `gorm:"size:50" json:"mobile"`
	JobTitle   string      `gorm:"size:100" json:"jobTitle"`
	Department string      `gorm:"size:100" json:"department"`
	Role       ContactRole `gorm:"size:20;not null" json:"role"`
	IsPrimary  bool        `gorm:"not null" json:"isPrimary"`
	Notes      string      `gorm:"size:2000" json:"notes"`
	Audit
}
