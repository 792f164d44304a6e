package admin

import (
	"net/http"
	"petshop_server/handling"

	"github.com/MonkyMars/gecho"
)

func (adm *AdminRoutesManager) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	window, err := handling.ParseWindow(r)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Unknown analytics window; use 30d, 183d or all"), gecho.Send())
		return
	}

	overview, err := adm.analyticsService.Overview(r.Context(), window)
	if err != nil {
		handling.RespondError(err, "Failed to load the dashboard", adm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(overview),
		gecho.Send(),
	)
}

func (adm *AdminRoutesManager) GetRevenueReport(w http.ResponseWriter, r *http.Request) {
	from, to, err := handling.ParseDateRange(r)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Provide start_date and end_date as YYYY-MM-DD"), gecho.Send())
		return
	}

	report, err := adm.analyticsService.Report(r.Context(), from, to)
	if err != nil {
		handling.RespondError(err, "Failed to build the report", adm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(report),
		gecho.Send(),
	)
}
