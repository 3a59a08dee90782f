package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"financeflow/internal/services"
)

// DashboardHandler serves the aggregated views and insights.
type DashboardHandler struct {
	dashboardService services.DashboardServicer
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService services.DashboardServicer) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetSummary returns the monthly overview
// @Summary     Dashboard summary
// @Description Realized and monthly totals, the month's expense chart and the savings goal
// @Tags        dashboard
// @Produce     json
// @Security    BearerAuth
// @Param       year  query int true "Year"
// @Param       month query int true "Month (1-12)"
// @Success     200 {object} services.Summary "Summary"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	year, month, err := parseYearMonth(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.dashboardService.GetSummary(c.Request.Context(), userID, year, month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetInsights returns the advisory messages
// @Summary     Financial insights
// @Description Insights for the selected month, or for realized lifetime figures with scope=lifetime
// @Tags        dashboard
// @Produce     json
// @Security    BearerAuth
// @Param       year  query int    true  "Year"
// @Param       month query int    true  "Month (1-12)"
// @Param       scope query string false "month (default) or lifetime"
// @Success     200 {object} object{insights=[]insights.Insight} "Insights"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard/insights [get]
func (h *DashboardHandler) GetInsights(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	year, month, err := parseYearMonth(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	scope := services.InsightScope(c.DefaultQuery("scope", string(services.ScopeMonth)))
	items, err := h.dashboardService.GetInsights(c.Request.Context(), userID, year, month, scope)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"insights": items})
}

// GetBankBalances returns realized balances per bank
// @Summary     Bank balances
// @Description Realized income, expense and balance for every bank with activity
// @Tags        dashboard
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} aggregate.BankReport "Bank balances"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard/banks [get]
func (h *DashboardHandler) GetBankBalances(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	report, err := h.dashboardService.GetBankBalances(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetAnnualSeries returns the twelve-month series
// @Summary     Annual series
// @Description Income and expense totals for each month of the year
// @Tags        dashboard
// @Produce     json
// @Security    BearerAuth
// @Param       year query int true "Year"
// @Success     200 {object} object{year=int,months=[]aggregate.MonthPoint} "Monthly points"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard/annual [get]
func (h *DashboardHandler) GetAnnualSeries(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	year, err := parseYear(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	points, err := h.dashboardService.GetAnnualSeries(c.Request.Context(), userID, year)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"year": year, "months": points})
}
