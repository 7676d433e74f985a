package category

import "time"

// NextDate returns the next processing time after from for the given
// frequency. Calendar arithmetic follows time.AddDate, so month and year
// steps that land on a missing day normalize forward into the next month
// (Jan 31 + 1 month = Mar 2 in a leap year, Mar 3 otherwise).
func NextDate(from time.Time, f Frequency) time.Time {
	switch f {
	case Daily:
		return from.AddDate(0, 0, 1)
	case Weekly:
		return from.AddDate(0, 0, 7)
	case Monthly:
		return from.AddDate(0, 1, 0)
	case Quarterly:
		return from.AddDate(0, 3, 0)
	case Yearly:
		return from.AddDate(1, 0, 0)
	}

	return from
}

// applyRecurrence enforces the recurring/one-time invariant on c and must run
// after every merge of incoming data, on create and update alike.
//
// Recurring categories need a frequency and a positive default amount. The
// schedule cursor is initialized only on the first transition into recurring;
// later edits leave it alone so unrelated changes never reset the schedule.
// Switching to one-time clears every recurrence field. Either way IsRecurring
// ends up matching TransactionType.
func applyRecurrence(c *Category, now time.Time) error {
	if c.TransactionType == Recurring {
		if c.Frequency == nil {
			return &ValidationError{Field: "frequency", Reason: "required for recurring categories"}
		}

		if !c.Frequency.Valid() {
			return &ValidationError{Field: "frequency", Reason: "must be one of daily, weekly, monthly, quarterly, yearly"}
		}

		if c.DefaultAmount == nil || *c.DefaultAmount <= 0 {
			return &ValidationError{Field: "defaultAmount", Reason: "must be positive for recurring categories"}
		}

		if c.LastProcessedDate == nil {
			last := now
			next := NextDate(now, *c.Frequency)
			c.LastProcessedDate = &last
			c.NextProcessedDate = &next
		}
	} else {
		c.Frequency = nil
		c.DefaultAmount = nil
		c.LastProcessedDate = nil
		c.NextProcessedDate = nil
	}

	c.IsRecurring = c.TransactionType == Recurring

	return nil
}
