package usecase

import (
	"fmt"
	"strconv"
	"strings"
)

type ReportUsecase interface {
	BuildRevenueReport() (string, error)
}

type DefaultReportUsecase struct {
	Attribution AttributionUsecase
}

func NewDefaultReportUsecase(attributionUsecase AttributionUsecase) *DefaultReportUsecase {
	return &DefaultReportUsecase{Attribution: attributionUsecase}
}

// BuildRevenueReport renders the tabular revenue export, one row per
// non-operator tenant. This is the only place monetary values are
// rounded: four decimal places, presentation only.
func (uc *DefaultReportUsecase) BuildRevenueReport() (string, error) {
	totals, err := uc.Attribution.GetRevenueTotals()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("Tenant,Ratio,TotalViews,GrossRevenue,PlatformFee,NetRevenue\n")
	for _, t := range totals {
		ratio := strconv.FormatFloat(t.SplitRatio, 'f', -1, 64)
		fmt.Fprintf(&b, "%s,%s%%,%d,%.4f,%.4f,%.4f\n",
			t.DisplayName, ratio, t.TotalViews, t.Gross, t.Gross-t.Net, t.Net)
	}
	return b.String(), nil
}
