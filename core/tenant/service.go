package tenant

import (
	"context"

	"github.com/pkg/errors"

	"github.com/pgkhata/pgkhata/core"
	"github.com/pgkhata/pgkhata/core/property"
	"github.com/pgkhata/pgkhata/core/rent"
)

var (
	// errors
	ErrNotFound          = core.NewNotFoundError("tenant")
	ErrBedOccupied       = errors.New("bed is already occupied")
	ErrBedNotInPG        = errors.New("bed does not belong to this PG")
	ErrAlreadyCheckedOut = errors.New("tenant already checked out")
)

type (
	Repository interface {
		QueryTenants(ctx context.Context, filter QueryFilter, page core.Page, exec ...core.DBExecutor) ([]Tenant, error)
		GetTenant(ctx context.Context, ownerID, id int, exec ...core.DBExecutor) (Tenant, error)
		// CreateTenant returns ErrBedOccupied when the bed already has an active tenant.
		CreateTenant(ctx context.Context, tnt Tenant, exec ...core.DBExecutor) (Tenant, error)
		UpdateTenant(ctx context.Context, tnt Tenant, exec ...core.DBExecutor) (Tenant, error)
		DeleteTenant(ctx context.Context, id int, exec ...core.DBExecutor) error
	}

	Service interface {
		Query(ctx context.Context, filter QueryFilter, page core.Page) ([]Tenant, error)
		Get(ctx context.Context, ownerID, id int) (Tenant, error)
		CheckIn(ctx context.Context, ownerID int, nt NewTenant) (Tenant, error)
		Update(ctx context.Context, tnt Tenant, ut UpdateTenant) (Tenant, error)
		Checkout(ctx context.Context, tnt Tenant) (Tenant, error)
		Delete(ctx context.Context, tnt Tenant) error
	}

	service struct {
		tx       core.Transactor
		repo     Repository
		propRepo property.Repository
		rentRepo rent.Repository
	}
)

var _ Service = (*service)(nil)

func NewService(tx core.Transactor, repo Repository, propRepo property.Repository, rentRepo rent.Repository) Service {
	return &service{tx: tx, repo: repo, propRepo: propRepo, rentRepo: rentRepo}
}

func (svc *service) Query(ctx context.Context, filter QueryFilter, page core.Page) ([]Tenant, error) {
	tnts, err := svc.repo.QueryTenants(ctx, filter, page)
	if err != nil {
		return nil, errors.Wrap(err, "querying tenants")
	}
	return tnts, nil
}

func (svc *service) Get(ctx context.Context, ownerID, id int) (Tenant, error) {
	return svc.repo.GetTenant(ctx, ownerID, id)
}

// CheckIn moves a new tenant into a vacant bed of ownerID. In a single transaction the tenant
// is created, the bed is marked occupied and the prorated rent of the check-in month is recorded.
func (svc *service) CheckIn(ctx context.Context, ownerID int, nt NewTenant) (Tenant, error) {
	var id int

	err := svc.tx.WithinTx(ctx, func(exec core.DBExecutor) error {
		bed, err := svc.propRepo.GetBed(ctx, property.GetBedFilter{ID: nt.BedID, OwnerID: ownerID, ForUpdate: true}, exec)
		if err != nil {
			return err
		}
		if nt.PGID != 0 && nt.PGID != bed.PGID {
			return core.NewValidationError(ErrBedNotInPG, core.FieldError{Field: "bed_id", Error: ErrBedNotInPG.Error()})
		}
		if bed.IsOccupied {
			return core.NewValidationError(ErrBedOccupied)
		}

		tnt, err := svc.repo.CreateTenant(ctx, Tenant{
			PGID:            bed.PGID,
			BedID:           bed.ID,
			Name:            nt.Name,
			Phone:           nt.Phone,
			Email:           nt.Email,
			IDProof:         nt.IDProof,
			CheckInDate:     *nt.CheckInDate,
			Status:          StatusActive,
			SecurityDeposit: core.RoundMoney(nt.SecurityDeposit),
			CreatedAt:       core.NowFunc().UTC(),
		}, exec)
		if err != nil {
			if errors.Cause(err) == ErrBedOccupied {
				return core.NewValidationError(ErrBedOccupied)
			}
			return errors.Wrap(err, "creating tenant")
		}
		if err = svc.propRepo.SetBedOccupied(ctx, bed.ID, true, exec); err != nil {
			return errors.Wrap(err, "occupying bed")
		}

		first := rent.FirstRecord(tnt.ID, tnt.PGID, tnt.CheckInDate, bed.MonthlyPrice)
		if _, err = svc.rentRepo.CreateRecord(ctx, first, exec); err != nil {
			return errors.Wrap(err, "creating first rent record")
		}
		id = tnt.ID
		return nil
	})
	if err != nil {
		return Tenant{}, err
	}
	return svc.repo.GetTenant(ctx, ownerID, id)
}

func (svc *service) Update(ctx context.Context, tnt Tenant, ut UpdateTenant) (Tenant, error) {
	updated, err := svc.repo.UpdateTenant(ctx, ut.apply(tnt))
	if err != nil {
		return Tenant{}, errors.Wrap(err, "updating tenant")
	}
	return updated, nil
}

// Checkout ends the stay of an active tenant today and frees their bed.
func (svc *service) Checkout(ctx context.Context, tnt Tenant) (Tenant, error) {
	if !tnt.IsActive() {
		return Tenant{}, core.NewValidationError(ErrAlreadyCheckedOut)
	}

	err := svc.tx.WithinTx(ctx, func(exec core.DBExecutor) error {
		current, err := svc.repo.GetTenant(ctx, 0, tnt.ID, exec)
		if err != nil {
			return err
		}
		if !current.IsActive() {
			return core.NewValidationError(ErrAlreadyCheckedOut)
		}

		current.Status = StatusCheckedOut
		current.CheckOutDate = core.DatePtr(core.Today())
		if _, err = svc.repo.UpdateTenant(ctx, current, exec); err != nil {
			return errors.Wrap(err, "checking tenant out")
		}
		if current.BedID != 0 {
			if err = svc.propRepo.SetBedOccupied(ctx, current.BedID, false, exec); err != nil {
				return errors.Wrap(err, "freeing bed")
			}
		}
		return nil
	})
	if err != nil {
		return Tenant{}, err
	}
	return svc.repo.GetTenant(ctx, 0, tnt.ID)
}

// Delete removes tnt along with their rent records & complaints, freeing their bed if they are active.
func (svc *service) Delete(ctx context.Context, tnt Tenant) error {
	return svc.tx.WithinTx(ctx, func(exec core.DBExecutor) error {
		current, err := svc.repo.GetTenant(ctx, 0, tnt.ID, exec)
		if err != nil {
			return err
		}
		if current.IsActive() && current.BedID != 0 {
			if err = svc.propRepo.SetBedOccupied(ctx, current.BedID, false, exec); err != nil {
				return errors.Wrap(err, "freeing bed")
			}
		}
		return errors.Wrap(svc.repo.DeleteTenant(ctx, current.ID, exec), "deleting tenant")
	})
}
