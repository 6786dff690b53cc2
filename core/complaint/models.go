package complaint

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/pgkhata/pgkhata/core"
)

// Complaint statuses
const (
	StatusOpen     = "open"
	StatusResolved = "resolved"
)

var Statuses = []string{StatusOpen, StatusResolved}

type Complaint struct {
	ID          int        `json:"id"`
	TenantID    int        `json:"tenant_id"`
	PGID        int        `json:"pg_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	ResolvedAt  *time.Time `json:"resolved_at"`

	// read-only, joined
	TenantName string `json:"tenant_name"`
}

func (cpl Complaint) IsResolved() bool {
	return cpl.Status == StatusResolved
}

type NewComplaint struct {
	TenantID    int    `json:"tenant_id" query:"tenant_id" validate:"required"`
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
}

func (nc *NewComplaint) Validate(validate *validator.Validate) error {
	nc.Title = core.CleanString(nc.Title)
	nc.Description = core.CleanString(nc.Description)
	return validate.Struct(nc)
}

// QueryFilter narrows a complaint listing. OwnerID is mandatory.
type QueryFilter struct {
	OwnerID  int
	Status   string `json:"status" query:"status" validate:"omitempty,complaint_status"`
	PGID     int    `json:"pg_id" query:"pg_id"`
	TenantID int    `json:"tenant_id" query:"tenant_id"`
}

func (f *QueryFilter) Validate(validate *validator.Validate) error {
	f.Status = core.CleanString(f.Status, true /* lower */)
	return validate.Struct(f)
}
