package service

import (
	"context"
	"time"

	"github.com/rajatvats23/swizzleFENg19-sub001/internal/domain/entity"
	"github.com/rajatvats23/swizzleFENg19-sub001/internal/domain/enum"
	"github.com/rajatvats23/swizzleFENg19-sub001/internal/domain/repository"
	"github.com/rajatvats23/swizzleFENg19-sub001/pkg/apperror"
	"github.com/sirupsen/logrus"
)

const (
	// ReportDateLayout is the wire format of report window dates
	ReportDateLayout = "2006-01-02"
	// DefaultReportWindowDays is how far back the default window starts
	DefaultReportWindowDays = 30

	MsgReportFailed = "Failed to generate report"
)

// ReportGenerator holds the report form and the last generated report
type ReportGenerator struct {
	payments repository.PaymentRepository
	notifier Notifier
	log      *logrus.Entry

	StartDate     time.Time
	EndDate       time.Time
	PaymentMethod enum.PaymentMethod
	Report        *entity.PaymentReport
	Loading       bool
}

// NewReportGenerator creates a generator whose window ends on the day of now
// and starts DefaultReportWindowDays before it
func NewReportGenerator(payments repository.PaymentRepository, notifier Notifier, log *logrus.Entry, now time.Time) *ReportGenerator {
	end := truncateToDay(now)
	return &ReportGenerator{
		payments:  payments,
		notifier:  notifier,
		log:       log.WithField("component", "report_generator"),
		StartDate: end.AddDate(0, 0, -DefaultReportWindowDays),
		EndDate:   end,
	}
}

// FormatReportDate renders a date the way the reports endpoint expects
func FormatReportDate(t time.Time) string {
	return t.Format(ReportDateLayout)
}

// ParseReportDate parses a YYYY-MM-DD date in loc
func ParseReportDate(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(ReportDateLayout, s, loc)
}

// Generate fetches the report of the current window and filter. On failure
// the previous report is kept and the user is notified.
func (g *ReportGenerator) Generate(ctx context.Context) error {
	g.Loading = true
	defer func() { g.Loading = false }()

	start := FormatReportDate(g.StartDate)
	end := FormatReportDate(g.EndDate)

	report, err := g.payments.GetPaymentReports(ctx, start, end, g.PaymentMethod.String())
	if err != nil {
		g.notifier.Error(apperror.UserMessage(err, MsgReportFailed))
		return err
	}

	if !report.Reconciles() {
		g.log.WithFields(logrus.Fields{
			"start_date":   start,
			"end_date":     end,
			"total_amount": report.Summary.TotalAmount.String(),
			"daily_amount": report.DailyAmount().String(),
		}).Warn("report daily totals do not add up to the summary")
	}

	g.Report = report
	return nil
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
