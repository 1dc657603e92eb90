// Package output provides utilities for formatting and displaying
// amortization schedules.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/credwise/credwise/pkg/format"
	"github.com/credwise/credwise/pkg/loans"
)

// PrettySchedule writes a human-readable amortization table.
func PrettySchedule(w io.Writer, result loans.AmortizationResult) {
	fmt.Fprintf(w, "Monthly payment: %s\n", format.Currency(result.MonthlyPayment))
	fmt.Fprintf(w, "Total payment:   %s\n", format.Currency(result.TotalPayment))
	fmt.Fprintf(w, "Total interest:  %s\n", format.Currency(result.TotalInterest))
	fmt.Fprintf(w, "Period | Payment       | Principal     | Interest      | Balance\n")
	fmt.Fprintf(w, "______ | _____________ | _____________ | _____________ | _____________\n")
	for _, point := range result.Schedule {
		fmt.Fprintf(w, "%6d | %13s | %13s | %13s | %13s\n",
			point.Period,
			format.Currency(point.Payment),
			format.Currency(point.Principal),
			format.Currency(point.Interest),
			format.Currency(point.Balance),
		)
	}
}

// ScheduleCSV renders the per-period schedule in comma-separated value
// format, one row per period.
func ScheduleCSV(result loans.AmortizationResult) string {
	var b strings.Builder
	b.WriteString(`"period","payment","principal","interest","balance"` + "\n")
	for _, point := range result.Schedule {
		fmt.Fprintf(&b, `"%d","%.2f","%.2f","%.2f","%.2f"`+"\n",
			point.Period, point.Payment, point.Principal, point.Interest, point.Balance)
	}
	return b.String()
}

// PayoffCSV renders the payoff series in comma-separated value format.
func PayoffCSV(result loans.PayoffResult) string {
	var b strings.Builder
	b.WriteString(`"month","balance","interest","principal"` + "\n")
	for _, point := range result.Series {
		fmt.Fprintf(&b, `"%d","%.2f","%.2f","%.2f"`+"\n",
			point.Month, point.Balance, point.Interest, point.Principal)
	}
	return b.String()
}
