package rent

import (
	"context"
	"fmt"
	"net/mail"

	"github.com/pkg/errors"

	"github.com/pgkhata/pgkhata/core"
)

var (
	// errors
	ErrNotFound     = core.NewNotFoundError("rent record")
	ErrRecordExists = errors.New("rent record already exists for this month")
)

type (
	Repository interface {
		QueryRecords(ctx context.Context, filter QueryFilter, page core.Page, exec ...core.DBExecutor) ([]Record, error)
		GetRecord(ctx context.Context, ownerID, id int, exec ...core.DBExecutor) (Record, error)
		CreateRecord(ctx context.Context, rec Record, exec ...core.DBExecutor) (Record, error)
		UpdateRecord(ctx context.Context, rec Record, exec ...core.DBExecutor) (Record, error)
		// QueryBillable returns the active tenants of ownerID who checked in by the end of month
		// and have no record for it yet.
		QueryBillable(ctx context.Context, ownerID int, month core.Date, exec ...core.DBExecutor) ([]Billable, error)
	}

	Service interface {
		Query(ctx context.Context, filter QueryFilter, page core.Page) ([]Record, error)
		Get(ctx context.Context, ownerID, id int) (Record, error)
		Generate(ctx context.Context, ownerID int, month core.Date) (GenerateResult, error)
		RecordPayment(ctx context.Context, rec Record, ur UpdateRecord) (Record, error)
		SendReminders(ctx context.Context, ownerID int, month core.Date) (int, error)
	}

	service struct {
		tx      core.Transactor
		repo    Repository
		mailSvc core.EmailService
		logger  core.Logger
	}
)

var _ Service = (*service)(nil)

func NewService(tx core.Transactor, repo Repository, mailSvc core.EmailService, logger core.Logger) Service {
	return &service{tx: tx, repo: repo, mailSvc: mailSvc, logger: logger}
}

func (svc *service) Query(ctx context.Context, filter QueryFilter, page core.Page) ([]Record, error) {
	recs, err := svc.repo.QueryRecords(ctx, filter, page)
	if err != nil {
		return nil, errors.Wrap(err, "querying rent records")
	}
	return recs, nil
}

func (svc *service) Get(ctx context.Context, ownerID, id int) (Record, error) {
	return svc.repo.GetRecord(ctx, ownerID, id)
}

// Generate creates a pending record, at the full bed price, for every billable tenant of the month.
// Running it twice for the same month creates nothing the second time.
func (svc *service) Generate(ctx context.Context, ownerID int, month core.Date) (GenerateResult, error) {
	month = month.MonthStart()
	var created int

	err := svc.tx.WithinTx(ctx, func(exec core.DBExecutor) error {
		billables, err := svc.repo.QueryBillable(ctx, ownerID, month, exec)
		if err != nil {
			return errors.Wrap(err, "querying billable tenants")
		}
		for _, b := range billables {
			_, err = svc.repo.CreateRecord(ctx, Record{
				TenantID:  b.TenantID,
				PGID:      b.PGID,
				Month:     month,
				AmountDue: core.RoundMoney(b.MonthlyPrice),
				Status:    StatusPending,
			}, exec)
			if err != nil {
				return errors.Wrapf(err, "creating rent record for tenant %d", b.TenantID)
			}
			created++
		}
		return nil
	})
	if err != nil {
		return GenerateResult{}, err
	}

	return GenerateResult{
		Generated: created,
		Month:     month.MonthString(),
		Message:   fmt.Sprintf("Generated %d rent records for %s", created, month.Format("January 2006")),
	}, nil
}

// RecordPayment applies ur to rec and emails a receipt to the tenant, if they have an email.
func (svc *service) RecordPayment(ctx context.Context, rec Record, ur UpdateRecord) (Record, error) {
	updated, err := svc.repo.UpdateRecord(ctx, ApplyPayment(rec, ur, core.Today()))
	if err != nil {
		return Record{}, errors.Wrap(err, "updating rent record")
	}
	if updated.AmountPaid > 0 && updated.TenantEmail != "" {
		svc.mailSvc.SendMessages(receiptMessage(updated))
	}
	return updated, nil
}

// SendReminders emails every tenant having an unpaid or partially paid record for month.
// It returns the number of reminders sent.
func (svc *service) SendReminders(ctx context.Context, ownerID int, month core.Date) (int, error) {
	recs, err := svc.repo.QueryRecords(ctx, QueryFilter{
		OwnerID:       ownerID,
		Month:         month.MonthStart(),
		Statuses:      []string{StatusPending, StatusPartial},
		OnlyWithEmail: true,
	}, core.Page{})
	if err != nil {
		return 0, errors.Wrap(err, "querying unpaid rent records")
	}

	msgs := make([]*core.EmailMessage, 0, len(recs))
	for _, rec := range recs {
		if rec.TenantEmail == "" {
			continue
		}
		msgs = append(msgs, reminderMessage(rec))
	}
	if len(msgs) > 0 {
		svc.mailSvc.SendMessages(msgs...)
	}
	svc.logger.Info(fmt.Sprintf("sent %d rent reminders for %s", len(msgs), month.MonthString()))
	return len(msgs), nil
}

func reminderMessage(rec Record) *core.EmailMessage {
	return &core.EmailMessage{
		To:           []mail.Address{{Name: rec.TenantName, Address: rec.TenantEmail}},
		Subject:      fmt.Sprintf("Rent reminder for %s", rec.Month.Format("January 2006")),
		TemplateName: "rent_reminder",
		TemplateData: map[string]interface{}{
			"TenantName": rec.TenantName,
			"Month":      rec.Month.Format("January 2006"),
			"PGName":     rec.PGName,
			"AmountDue":  rec.AmountDue,
			"AmountPaid": rec.AmountPaid,
			"Balance":    rec.Balance(),
		},
	}
}

func receiptMessage(rec Record) *core.EmailMessage {
	var paidOn string
	if rec.PaymentDate != nil {
		paidOn = rec.PaymentDate.String()
	}
	return &core.EmailMessage{
		To:           []mail.Address{{Name: rec.TenantName, Address: rec.TenantEmail}},
		Subject:      fmt.Sprintf("Rent receipt for %s", rec.Month.Format("January 2006")),
		TemplateName: "rent_receipt",
		TemplateData: map[string]interface{}{
			"TenantName":  rec.TenantName,
			"Month":       rec.Month.Format("January 2006"),
			"PGName":      rec.PGName,
			"AmountPaid":  rec.AmountPaid,
			"PaymentDate": paidOn,
			"Status":      rec.Status,
			"Balance":     rec.Balance(),
		},
	}
}
