package leave

import (
	"github.com/cmlabs-hris/hris-timesheet-go/internal/domain/leave"
	"github.com/shopspring/decimal"
)

type Reconciler struct {
}

func NewReconciler() *Reconciler {
	return &Reconciler{}
}

// Reconcile derives the display figures of each leave type from the classified
// records and the remaining balance. Pending requests count nowhere and
// records of other categories are ignored.
func (r *Reconciler) Reconcile(records []leave.Record, snapshot leave.BalanceSnapshot) leave.Summary {
	var sick, casual, annual tally

	for _, rec := range records {
		var t *tally
		switch rec.Category {
		case leave.CategorySick:
			t = &sick
		case leave.CategoryCasual:
			t = &casual
		case leave.CategoryAnnual:
			t = &annual
		default:
			continue
		}
		t.add(rec)
	}

	return leave.Summary{
		Sick:   sick.figures(snapshot.SickLeaves),
		Casual: casual.figures(snapshot.CasualLeaves),
		Annual: annual.figures(snapshot.PaidLeaves),
	}
}

type tally struct {
	approved decimal.Decimal
	rejected decimal.Decimal
}

func (t *tally) add(rec leave.Record) {
	switch rec.DecisionStatus {
	case leave.StatusApproved:
		t.approved = t.approved.Add(rec.Days)
	case leave.StatusRejected:
		t.rejected = t.rejected.Add(rec.Days)
	}
}

func (t tally) figures(available decimal.Decimal) leave.Figures {
	return leave.Figures{
		Available: available,
		Applied:   t.approved.Add(t.rejected),
		Allocated: available.Add(t.approved),
	}
}
