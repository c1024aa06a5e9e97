package handler

import (
	"bytes"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rajatvats23/swizzleFENg19-sub001/internal/application/service"
	"github.com/rajatvats23/swizzleFENg19-sub001/internal/domain/enum"
	"github.com/rajatvats23/swizzleFENg19-sub001/internal/domain/repository"
	"github.com/rajatvats23/swizzleFENg19-sub001/internal/presentation/http/dto/request"
	"github.com/rajatvats23/swizzleFENg19-sub001/internal/presentation/http/dto/response"
	"github.com/sirupsen/logrus"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler serves the payment report generator
type ReportHandler struct {
	payments repository.PaymentRepository
	notifier service.Notifier
	log      *logrus.Entry
	now      func() time.Time
}

// NewReportHandler creates a new report handler. now supplies "today" for
// the default report window.
func NewReportHandler(payments repository.PaymentRepository, log *logrus.Entry, now func() time.Time) *ReportHandler {
	if now == nil {
		now = time.Now
	}
	log = log.WithField("handler", "report")
	return &ReportHandler{
		payments: payments,
		notifier: service.NewLogNotifier(log),
		log:      log,
		now:      now,
	}
}

// GetReport generates the report of the requested window
func (h *ReportHandler) GetReport(c *gin.Context) {
	g, ok := h.generate(c)
	if !ok {
		return
	}

	response.OK(c, "Payment report generated successfully", response.ReportView{
		StartDate:     service.FormatReportDate(g.StartDate),
		EndDate:       service.FormatReportDate(g.EndDate),
		PaymentMethod: g.PaymentMethod,
		Report:        g.Report,
		Reconciles:    g.Report.Reconciles(),
	})
}

// ExportReport generates the report of the requested window as xlsx
func (h *ReportHandler) ExportReport(c *gin.Context) {
	g, ok := h.generate(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := g.Export(&buf); err != nil {
		h.log.WithError(err).Error("failed to export report")
		response.Error(c, err)
		return
	}

	filename := fmt.Sprintf("payments-report-%s-%s.xlsx",
		service.FormatReportDate(g.StartDate), service.FormatReportDate(g.EndDate))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(200, xlsxContentType, buf.Bytes())
}

// generate binds the report form and runs the generator. It writes the error
// response itself and reports false when the request cannot be served.
func (h *ReportHandler) generate(c *gin.Context) (*service.ReportGenerator, bool) {
	var query request.ReportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return nil, false
	}
	if errs := validateStruct(query); errs != nil {
		response.ValidationError(c, errs)
		return nil, false
	}

	notes := &service.NotificationBuffer{}
	notifier := service.MultiNotifier{notes, h.notifier}
	now := h.now()
	g := service.NewReportGenerator(h.payments, notifier, h.log, now)

	if query.StartDate != "" {
		start, err := service.ParseReportDate(query.StartDate, now.Location())
		if err != nil {
			response.BadRequest(c, "Invalid startDate")
			return nil, false
		}
		g.StartDate = start
	}
	if query.EndDate != "" {
		end, err := service.ParseReportDate(query.EndDate, now.Location())
		if err != nil {
			response.BadRequest(c, "Invalid endDate")
			return nil, false
		}
		g.EndDate = end
	}
	method, err := enum.ParsePaymentMethod(query.PaymentMethod)
	if err != nil {
		response.BadRequest(c, err.Error())
		return nil, false
	}
	g.PaymentMethod = method

	if err := g.Generate(backendContext(c)); err != nil {
		note, _ := notes.Last()
		response.ErrorWithCode(c, errorCode(err), note.Message)
		return nil, false
	}
	return g, true
}
