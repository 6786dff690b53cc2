package complaint

import (
	"context"

	"github.com/pkg/errors"

	"github.com/pgkhata/pgkhata/core"
	"github.com/pgkhata/pgkhata/core/tenant"
)

var (
	// errors
	ErrNotFound        = core.NewNotFoundError("complaint")
	ErrAlreadyResolved = errors.New("complaint already resolved")
)

type (
	Repository interface {
		QueryComplaints(ctx context.Context, filter QueryFilter, page core.Page, exec ...core.DBExecutor) ([]Complaint, error)
		GetComplaint(ctx context.Context, ownerID, id int, exec ...core.DBExecutor) (Complaint, error)
		CreateComplaint(ctx context.Context, cpl Complaint, exec ...core.DBExecutor) (Complaint, error)
		UpdateComplaint(ctx context.Context, cpl Complaint, exec ...core.DBExecutor) (Complaint, error)
	}

	Service interface {
		Query(ctx context.Context, filter QueryFilter, page core.Page) ([]Complaint, error)
		Get(ctx context.Context, ownerID, id int) (Complaint, error)
		Create(ctx context.Context, ownerID int, nc NewComplaint) (Complaint, error)
		Resolve(ctx context.Context, cpl Complaint) (Complaint, error)
	}

	service struct {
		repo       Repository
		tenantRepo tenant.Repository
	}
)

var _ Service = (*service)(nil)

func NewService(repo Repository, tenantRepo tenant.Repository) Service {
	return &service{repo: repo, tenantRepo: tenantRepo}
}

func (svc *service) Query(ctx context.Context, filter QueryFilter, page core.Page) ([]Complaint, error) {
	cpls, err := svc.repo.QueryComplaints(ctx, filter, page)
	if err != nil {
		return nil, errors.Wrap(err, "querying complaints")
	}
	return cpls, nil
}

func (svc *service) Get(ctx context.Context, ownerID, id int) (Complaint, error) {
	return svc.repo.GetComplaint(ctx, ownerID, id)
}

// Create opens a complaint on behalf of a tenant of ownerID, filed under the tenant's PG.
func (svc *service) Create(ctx context.Context, ownerID int, nc NewComplaint) (Complaint, error) {
	tnt, err := svc.tenantRepo.GetTenant(ctx, ownerID, nc.TenantID)
	if err != nil {
		return Complaint{}, err
	}

	cpl, err := svc.repo.CreateComplaint(ctx, Complaint{
		TenantID:    tnt.ID,
		PGID:        tnt.PGID,
		Title:       nc.Title,
		Description: nc.Description,
		Status:      StatusOpen,
		CreatedAt:   core.NowFunc().UTC(),
	})
	if err != nil {
		return Complaint{}, errors.Wrap(err, "creating complaint")
	}
	cpl.TenantName = tnt.Name
	return cpl, nil
}

func (svc *service) Resolve(ctx context.Context, cpl Complaint) (Complaint, error) {
	if cpl.IsResolved() {
		return Complaint{}, core.NewValidationError(ErrAlreadyResolved)
	}
	now := core.NowFunc().UTC()
	cpl.Status = StatusResolved
	cpl.ResolvedAt = &now

	cpl, err := svc.repo.UpdateComplaint(ctx, cpl)
	if err != nil {
		return Complaint{}, errors.Wrap(err, "resolving complaint")
	}
	return cpl, nil
}
