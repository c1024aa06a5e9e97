package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rajatvats23/swizzleFENg19-sub001/internal/application/service"
	"github.com/rajatvats23/swizzleFENg19-sub001/internal/domain/enum"
	"github.com/rajatvats23/swizzleFENg19-sub001/pkg/apperror"
	"github.com/rajatvats23/swizzleFENg19-sub001/pkg/format"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newRecordCashCommand(a *app) *cobra.Command {
	var (
		yes      bool
		amount   string
		currency string
	)

	cmd := &cobra.Command{
		Use:   "record-cash <orderId>",
		Short: "Record a cash payment for an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			req := service.CashPaymentRequest{OrderID: args[0], Currency: currency}
			if amount != "" {
				d, err := decimal.NewFromString(amount)
				if err != nil {
					return fmt.Errorf("invalid --amount %q: %w", amount, err)
				}
				req.Amount = d
			}

			dialog := service.OpenCashPaymentDialog(a.paymentsClient(), writerNotifier{out: out}, req)

			if !yes && !confirm(cmd.InOrStdin(), out, cashPrompt(req)) {
				dialog.Cancel()
				fmt.Fprintln(out, "Cancelled")
				return nil
			}

			payment, err := dialog.Confirm(cmd.Context())
			if err != nil {
				return errReported
			}
			return printPayment(out, payment)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	cmd.Flags().StringVar(&amount, "amount", "", "amount due, shown in the confirmation prompt")
	cmd.Flags().StringVar(&currency, "currency", "INR", "currency of --amount")

	return cmd
}

func cashPrompt(req service.CashPaymentRequest) string {
	if req.Amount.IsZero() {
		return fmt.Sprintf("Record cash payment for order %s?", req.OrderID)
	}
	return fmt.Sprintf("Record cash payment of %s for order %s?",
		format.Currency(req.Amount, req.Currency), req.OrderID)
}

// confirm asks a yes/no question; anything but y or yes is a no
func confirm(in io.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", question)
	answer, _ := bufio.NewReader(in).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

func newListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list <orderId>",
		Short: "List the payments of an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			lister := service.NewPaymentLister(a.paymentsClient(), writerNotifier{out: out})

			if err := lister.Init(cmd.Context(), service.Params{service.OrderIDParam: args[0]}); err != nil {
				return errReported
			}
			return printPayments(out, lister.Payments)
		},
	}
}

const msgPaymentLoadFailed = "Failed to load payment"

func newGetCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <paymentId>",
		Short: "Show a single payment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			payment, err := a.paymentsClient().GetPayment(cmd.Context(), args[0])
			if err != nil {
				writerNotifier{out: out}.Error(apperror.UserMessage(err, msgPaymentLoadFailed))
				return errReported
			}
			return printPayment(out, payment)
		},
	}
}

func newReportCommand(a *app) *cobra.Command {
	var (
		start  string
		end    string
		method string
		export string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate the payment report of a date window",
		Long: "Generate the payment report of a date window. The window defaults to the\n" +
			"last 30 days and every payment method.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			now := time.Now()
			g := service.NewReportGenerator(a.paymentsClient(), writerNotifier{out: out}, a.log, now)

			if start != "" {
				t, err := service.ParseReportDate(start, now.Location())
				if err != nil {
					return fmt.Errorf("invalid --start %q, want YYYY-MM-DD", start)
				}
				g.StartDate = t
			}
			if end != "" {
				t, err := service.ParseReportDate(end, now.Location())
				if err != nil {
					return fmt.Errorf("invalid --end %q, want YYYY-MM-DD", end)
				}
				g.EndDate = t
			}
			m, err := enum.ParsePaymentMethod(method)
			if err != nil {
				return err
			}
			g.PaymentMethod = m

			if err := g.Generate(cmd.Context()); err != nil {
				return errReported
			}

			if export != "" {
				return exportReport(g, export, out)
			}
			return printReport(out, g)
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "first day of the window (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "last day of the window (YYYY-MM-DD)")
	cmd.Flags().StringVar(&method, "method", "", "only payments made with cash, card, upi or wallet")
	cmd.Flags().StringVar(&export, "export", "", "write the report to this .xlsx file instead of printing it")

	return cmd
}

func exportReport(g *service.ReportGenerator, path string, out io.Writer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := g.Export(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	_, err = fmt.Fprintf(out, "Report written to %s\n", path)
	return err
}
