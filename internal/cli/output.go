package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/rajatvats23/swizzleFENg19-sub001/internal/application/service"
	"github.com/rajatvats23/swizzleFENg19-sub001/internal/domain/entity"
	"github.com/rajatvats23/swizzleFENg19-sub001/internal/domain/enum"
	"github.com/rajatvats23/swizzleFENg19-sub001/pkg/format"
	"github.com/rajatvats23/swizzleFENg19-sub001/pkg/utils"
)

// writerNotifier shows notifications on the terminal
type writerNotifier struct {
	out io.Writer
}

func (n writerNotifier) Success(message string) {
	fmt.Fprintln(n.out, message)
}

func (n writerNotifier) Error(message string) {
	fmt.Fprintln(n.out, "Error:", message)
}

func newTable(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
}

func printPayments(out io.Writer, payments []entity.Payment) error {
	if len(payments) == 0 {
		_, err := fmt.Fprintln(out, "No payments found")
		return err
	}

	tw := newTable(out)
	fmt.Fprintln(tw, "ID\tAMOUNT\tMETHOD\tSTATUS\tCREATED\tRECEIPT")
	for _, p := range payments {
		receipt := "-"
		if p.HasReceipt() {
			receipt = p.ReceiptURL
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s (%s)\t%s\t%s\n",
			utils.ShortID(p.ID),
			format.Currency(p.Amount, p.Currency),
			p.PaymentMethod.PaymentLabel(),
			p.Status,
			displayColor(service.StatusColor(string(p.Status))),
			format.DateTime(p.CreatedAt),
			receipt,
		)
	}
	return tw.Flush()
}

func printPayment(out io.Writer, p *entity.Payment) error {
	tw := newTable(out)
	fmt.Fprintf(tw, "ID\t%s\n", p.ID)
	fmt.Fprintf(tw, "Order\t%s\n", p.Order.ID)
	fmt.Fprintf(tw, "Amount\t%s\n", format.Currency(p.Amount, p.Currency))
	fmt.Fprintf(tw, "Method\t%s\n", p.PaymentMethod.PaymentLabel())
	fmt.Fprintf(tw, "Status\t%s (%s)\n", p.Status, displayColor(p.Status.Color()))
	if p.PaymentIntentID != "" {
		fmt.Fprintf(tw, "Payment intent\t%s\n", p.PaymentIntentID)
	}
	if p.HasReceipt() {
		fmt.Fprintf(tw, "Receipt\t%s\n", p.ReceiptURL)
	}
	fmt.Fprintf(tw, "Created\t%s\n", format.DateTime(p.CreatedAt))
	fmt.Fprintf(tw, "Updated\t%s\n", format.DateTime(p.UpdatedAt))
	return tw.Flush()
}

func printReport(out io.Writer, g *service.ReportGenerator) error {
	r := g.Report
	fmt.Fprintf(out, "Payments %s to %s (%s)\n\n",
		service.FormatReportDate(g.StartDate), service.FormatReportDate(g.EndDate), g.PaymentMethod.Label())

	tw := newTable(out)
	fmt.Fprintf(tw, "Total amount\t%s\n", r.Summary.TotalAmount.StringFixed(2))
	fmt.Fprintf(tw, "Total payments\t%d\n", r.Summary.TotalCount)
	fmt.Fprintf(tw, "Cash\t%s\n", r.Summary.MethodBreakdown.Cash.StringFixed(2))
	fmt.Fprintf(tw, "Card\t%s\n", r.Summary.MethodBreakdown.Card.StringFixed(2))
	fmt.Fprintf(tw, "UPI\t%s\n", r.Summary.MethodBreakdown.UPI.StringFixed(2))
	fmt.Fprintf(tw, "Wallet\t%s\n", r.Summary.MethodBreakdown.Wallet.StringFixed(2))
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(r.DailyTotals) == 0 {
		return nil
	}

	fmt.Fprintln(out)
	tw = newTable(out)
	fmt.Fprintln(tw, "DATE\tAMOUNT\tPAYMENTS")
	for _, day := range r.DailyTotals {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", day.Date, day.Amount.StringFixed(2), day.Count)
	}
	return tw.Flush()
}

func displayColor(c enum.StatusColor) string {
	if c == enum.StatusColorDefault {
		return "default"
	}
	return string(c)
}
