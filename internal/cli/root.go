// Package cli is the terminal surface of the payments console. Each command
// drives one payment controller against the payments API.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rajatvats23/swizzleFENg19-sub001/internal/config"
	"github.com/rajatvats23/swizzleFENg19-sub001/internal/infrastructure/paymentapi"
	"github.com/rajatvats23/swizzleFENg19-sub001/pkg/logger"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// errReported marks a failure the controller already showed to the user
var errReported = errors.New("command failed")

// app carries what every command needs once flags are parsed
type app struct {
	cfg *config.Config
	log *logrus.Entry

	apiURL   string
	token    string
	logLevel string
}

// NewRootCommand builds the payments command tree
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "payments",
		Short:         "Record, list and report order payments",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd.ErrOrStderr())
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.apiURL, "api-url", "", "payments API base URL (overrides API_URL)")
	flags.StringVar(&a.token, "token", "", "bearer token sent to the payments API (overrides API_TOKEN)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level (overrides LOG_LEVEL)")

	root.AddCommand(
		newServeCommand(a),
		newRecordCashCommand(a),
		newListCommand(a),
		newReportCommand(a),
		newGetCommand(a),
		newTokenCommand(a),
	)

	return root
}

// Execute runs the command tree until it finishes or the process is
// interrupted
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		stop()
		os.Exit(1)
	}
}

func (a *app) init(logOut io.Writer) error {
	a.cfg = config.Load()
	if a.apiURL != "" {
		a.cfg.PaymentsAPI.BaseURL = a.apiURL
	}
	if a.token != "" {
		a.cfg.PaymentsAPI.Token = a.token
	}
	if a.logLevel != "" {
		a.cfg.Log.Level = a.logLevel
	}

	a.log = logger.NewWithWriter(a.cfg.App.Name, logger.Config{
		Level:  a.cfg.Log.Level,
		Format: a.cfg.Log.Format,
	}, logOut)
	return nil
}

func (a *app) paymentsClient() *paymentapi.Client {
	return paymentapi.NewClient(paymentapi.Config{
		BaseURL: a.cfg.PaymentsAPI.BaseURL,
		Token:   a.cfg.PaymentsAPI.Token,
	}, a.log)
}
