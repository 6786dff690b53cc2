package rent

import (
	"github.com/go-playground/validator/v10"

	"github.com/pgkhata/pgkhata/core"
)

// Record statuses
const (
	StatusPending = "pending"
	StatusPartial = "partial"
	StatusPaid    = "paid"
)

var Statuses = []string{StatusPending, StatusPartial, StatusPaid}

// Record is the rent a tenant owes for one month.
type Record struct {
	ID          int        `json:"id"`
	TenantID    int        `json:"tenant_id"`
	PGID        int        `json:"pg_id"`
	Month       core.Date  `json:"month"` // first day of the month
	AmountDue   float64    `json:"amount_due"`
	AmountPaid  float64    `json:"amount_paid"`
	Status      string     `json:"status"`
	PaymentDate *core.Date `json:"payment_date"`

	// read-only, joined
	TenantName  string `json:"tenant_name"`
	TenantEmail string `json:"-"`
	PGName      string `json:"pg_name"`
}

// Balance is what is still owed on the record, never negative.
func (rec Record) Balance() float64 {
	if bal := core.RoundMoney(rec.AmountDue - rec.AmountPaid); bal > 0 {
		return bal
	}
	return 0
}

func (rec Record) IsSettled() bool {
	return rec.Status == StatusPaid
}

// UpdateRecord records a payment. Omitted fields are derived, see ApplyPayment.
type UpdateRecord struct {
	Status      string     `json:"status" validate:"omitempty,rent_status"`
	AmountPaid  *float64   `json:"amount_paid" validate:"omitempty,gte=0"`
	PaymentDate *core.Date `json:"payment_date"`
}

func (ur *UpdateRecord) Validate(validate *validator.Validate) error {
	ur.Status = core.CleanString(ur.Status, true /* lower */)
	return validate.Struct(ur)
}

// QueryFilter narrows a rent records listing. OwnerID is mandatory; zero values match everything.
type QueryFilter struct {
	OwnerID  int
	Month    core.Date
	Statuses []string
	PGID     int
	TenantID int
	// OnlyWithEmail keeps the records of tenants having an email address.
	OnlyWithEmail bool
}

// Billable is an active tenant without a record for the month being generated.
type Billable struct {
	TenantID     int
	PGID         int
	MonthlyPrice float64
}

// GenerateResult is the outcome of a monthly generation run.
type GenerateResult struct {
	Generated int    `json:"generated"`
	Month     string `json:"month"`
	Message   string `json:"message"`
}
