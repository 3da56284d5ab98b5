package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"navkar-inquiry/internal/core/domain"
	"navkar-inquiry/internal/core/services"
)

// renderCustomerTable prints the customer's inquiry list with every
// column of the record.
func renderCustomerTable(w io.Writer, records []domain.InquiryRecord) {
	fmt.Fprintf(w, "\nLoan Inquiries (%s)\n", time.Now().Format("15:04:05"))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tMOBILE\tEMAIL\tADDRESS\tWORK\tLOAN\tINCOME\tPAST LOAN\tPAN\tSTATUS")
	for _, rec := range records {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t[%s]\n",
			rec.ID,
			rec.Name,
			rec.MobileNumber,
			rec.Email,
			rec.Address,
			rec.WorkType,
			rec.LoanType,
			strconv.FormatFloat(rec.AnnualIncome, 'f', -1, 64),
			yesNo(rec.PastLoan),
			rec.PanCard,
			rec.Status.Label(),
		)
	}
	tw.Flush()

	if len(records) == 0 {
		fmt.Fprintln(w, "(no inquiries yet)")
	}
}

// renderAdminView prints the status breakdown followed by the compact
// admin table.
func renderAdminView(w io.Writer, records []domain.InquiryRecord) {
	fmt.Fprintf(w, "\nAdmin Dashboard - Approvals (%s)\n", time.Now().Format("15:04:05"))

	breakdown := services.BreakdownOf(records)
	if breakdown.Total() == 0 {
		fmt.Fprintln(w, "No data to display chart.")
	} else {
		fmt.Fprintf(w, "Status breakdown: %d approved / %d rejected / %d pending\n",
			breakdown.Approved, breakdown.Rejected, breakdown.Pending)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tINCOME\tPAST LOAN\tPAN\tSTATUS")
	for _, rec := range records {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t[%s]\n",
			rec.ID,
			rec.Name,
			rec.Email,
			strconv.FormatFloat(rec.AnnualIncome, 'f', -1, 64),
			yesNo(rec.PastLoan),
			rec.PanCard,
			rec.Status.Label(),
		)
	}
	tw.Flush()
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
