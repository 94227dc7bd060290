package commands

import (
	"fmt"

	"github.com/de-tools/commerce-atlas/pkg/adapters"
	"github.com/de-tools/commerce-atlas/pkg/models/domain"
	"github.com/de-tools/commerce-atlas/pkg/services/revenue"
	"github.com/de-tools/commerce-atlas/pkg/services/sales"
	"github.com/spf13/cobra"
)

type Handler interface {
	Handle(report *domain.Report) error
}

// Reports resolves the services and output a report command needs once
// flags have been parsed.
type Reports interface {
	Revenue() (revenue.Reporter, error)
	Sales() (sales.Service, error)
	Currency() string
	Handler() Handler
}

func NewReportCmd(reports Reports) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print revenue and sales reports",
	}

	cmd.AddCommand(newRevenueReportCmd(reports))
	cmd.AddCommand(newSalesReportCmd(reports))
	return cmd
}

type revenueReportCmd struct {
	reports     Reports
	granularity string
	periods     int
}

func newRevenueReportCmd(reports Reports) *cobra.Command {
	rc := &revenueReportCmd{reports: reports}
	cmd := &cobra.Command{
		Use:   "revenue",
		Short: "Revenue folded into calendar periods",
		RunE:  rc.run,
	}

	cmd.Flags().StringVar(&rc.granularity, "granularity", string(domain.GranularityMonthly),
		"Calendar period: daily, weekly, monthly or annual")
	cmd.Flags().IntVar(&rc.periods, "periods", revenue.DefaultMonths, "Number of periods back from today")

	return cmd
}

func (rc *revenueReportCmd) run(cmd *cobra.Command, _ []string) error {
	reporter, err := rc.reports.Revenue()
	if err != nil {
		return err
	}

	report, err := reporter.BuildRevenueReport(cmd.Context(),
		domain.Granularity(rc.granularity), rc.periods, rc.reports.Currency())
	if err != nil {
		return fmt.Errorf("failed to build revenue report: %w", err)
	}
	return rc.reports.Handler().Handle(report)
}

func newSalesReportCmd(reports Reports) *cobra.Command {
	return &cobra.Command{
		Use:   "sales",
		Short: "Sales analysis snapshot",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := reports.Sales()
			if err != nil {
				return err
			}

			analysis, err := svc.Analyze(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to analyze sales: %w", err)
			}
			return reports.Handler().Handle(adapters.MapSalesAnalysisToReport(analysis))
		},
	}
}
