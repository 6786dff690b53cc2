package rent

import "github.com/pgkhata/pgkhata/core"

// Prorate returns the share of a monthly price owed when moving in on `from`,
// counting the move-in day: price * (daysInMonth - day + 1) / daysInMonth.
func Prorate(price float64, from core.Date) float64 {
	days := from.DaysInMonth()
	remaining := days - from.Day() + 1
	return core.RoundMoney(price * float64(remaining) / float64(days))
}

// FirstRecord is the pending, prorated record created when a tenant checks in.
func FirstRecord(tenantID, pgID int, checkIn core.Date, monthlyPrice float64) Record {
	return Record{
		TenantID:  tenantID,
		PGID:      pgID,
		Month:     checkIn.MonthStart(),
		AmountDue: Prorate(monthlyPrice, checkIn),
		Status:    StatusPending,
	}
}

// StatusFor derives a record status from the amounts.
func StatusFor(due, paid float64) string {
	switch {
	case paid <= 0:
		return StatusPending
	case paid < due:
		return StatusPartial
	default:
		return StatusPaid
	}
}

// ApplyPayment returns rec updated with upd:
//   - an explicit status wins; "paid" without an amount settles the full amount due;
//   - an amount without a status derives the status from the amounts;
//   - the payment date defaults to `today` whenever money is recorded.
func ApplyPayment(rec Record, upd UpdateRecord, today core.Date) Record {
	if upd.AmountPaid != nil {
		rec.AmountPaid = core.RoundMoney(*upd.AmountPaid)
	}

	switch {
	case upd.Status != "":
		rec.Status = upd.Status
		if upd.Status == StatusPaid && upd.AmountPaid == nil {
			rec.AmountPaid = rec.AmountDue
		}
	case upd.AmountPaid != nil:
		rec.Status = StatusFor(rec.AmountDue, rec.AmountPaid)
	}

	paying := upd.AmountPaid != nil || upd.Status == StatusPaid
	switch {
	case upd.PaymentDate != nil && !upd.PaymentDate.IsZero():
		rec.PaymentDate = core.DatePtr(*upd.PaymentDate)
	case paying && rec.AmountPaid > 0:
		rec.PaymentDate = &today
	}
	return rec
}

// Summary aggregates the records of a month.
type Summary struct {
	Expected  float64 `json:"total_expected_rent" db:"expected"`
	Collected float64 `json:"total_collected_rent" db:"collected"`
	Pending   float64 `json:"total_pending_rent" db:"pending"`
}

// Summarize sums the amounts of records: expected = due, collected = paid,
// pending = what is still owed per record (overpayments do not offset other records).
func Summarize(records []Record) Summary {
	var sum Summary
	for _, rec := range records {
		sum.Expected += rec.AmountDue
		sum.Collected += rec.AmountPaid
		sum.Pending += rec.Balance()
	}
	return sum.Round()
}

func (s Summary) Round() Summary {
	return Summary{
		Expected:  core.RoundMoney(s.Expected),
		Collected: core.RoundMoney(s.Collected),
		Pending:   core.RoundMoney(s.Pending),
	}
}
