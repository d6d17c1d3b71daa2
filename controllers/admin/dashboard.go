package admin

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"fitchef-backend/logger"
	leadModel "fitchef-backend/models/lead"
	orderModel "fitchef-backend/models/order"
	paymentModel "fitchef-backend/models/payment"
	userModel "fitchef-backend/models/user"
	"fitchef-backend/services/orderstore"
	"fitchef-backend/types"
	adminTypes "fitchef-backend/types/admin"
)

// dashboardStats is the back-office landing page snapshot.
type dashboardStats struct {
	TotalOrders    int64 `json:"total_orders"`
	OpenOrders     int64 `json:"open_orders"`
	ActiveOrders   int64 `json:"active_orders"`
	DeliveredToday int64 `json:"delivered_today"`
	Customers      int64 `json:"customers"`
	PendingSignups int64 `json:"pending_signups"`
	NewLeads       int64 `json:"new_leads"`

	RevenueToday decimal.Decimal `json:"revenue_today"`
	RevenueWeek  decimal.Decimal `json:"revenue_week"`
	RevenueMonth decimal.Decimal `json:"revenue_month"`
}

// revenuePoint is one day of the revenue chart.
type revenuePoint struct {
	Day     time.Time       `json:"day"`
	Revenue decimal.Decimal `json:"revenue"`
	Orders  int64           `json:"orders"`
}

// Dashboard returns the KPI counters for the back-office landing page.
func (ac *AdminController) Dashboard(c *fiber.Ctx) error {
	stats := dashboardStats{}

	counts := []struct {
		query *gorm.DB
		dest  *int64
	}{
		{ac.DB.Model(&orderModel.Order{}), &stats.TotalOrders},
		{ac.DB.Model(&orderModel.Order{}).Where("status = ?", orderModel.StatusOpen), &stats.OpenOrders},
		{ac.DB.Model(&orderModel.Order{}).Where("status IN ?", []orderModel.Status{
			orderModel.StatusConfirmed, orderModel.StatusReadyForDispatch, orderModel.StatusOutForDelivery,
		}), &stats.ActiveOrders},
		{ac.DB.Model(&orderModel.Order{}).Where("status = ? AND delivered_time >= ?",
			orderModel.StatusDelivered, now.BeginningOfDay()), &stats.DeliveredToday},
		{ac.DB.Model(&userModel.User{}).Where("status = ? AND deleted_at IS NULL",
			userModel.StatusApproved), &stats.Customers},
		{ac.DB.Model(&userModel.User{}).Where("status = ?", userModel.StatusPending), &stats.PendingSignups},
		{ac.DB.Model(&leadModel.Lead{}).Where("status = ?", leadModel.StatusNew), &stats.NewLeads},
	}
	for _, count := range counts {
		if err := count.query.Count(count.dest).Error; err != nil {
			logger.Error("Failed to compute dashboard counters", err)
			return ac.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
				Status:  fiber.StatusInternalServerError,
				Message: "Failed to compute dashboard",
				Data:    nil,
			})
		}
	}

	windows := []struct {
		window orderstore.Window
		dest   *decimal.Decimal
	}{
		{orderstore.WindowToday, &stats.RevenueToday},
		{orderstore.WindowWeek, &stats.RevenueWeek},
		{orderstore.WindowMonth, &stats.RevenueMonth},
	}
	for _, w := range windows {
		revenue, err := ac.deliveredRevenueSince(w.window)
		if err != nil {
			logger.Error("Failed to compute revenue window", err)
			return ac.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
				Status:  fiber.StatusInternalServerError,
				Message: "Failed to compute dashboard",
				Data:    nil,
			})
		}
		*w.dest = revenue
	}

	return ac.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Dashboard computed successfully",
		Data:    stats,
	})
}

func (ac *AdminController) deliveredRevenueSince(w orderstore.Window) (decimal.Decimal, error) {
	q := ac.DB.Model(&orderModel.Order{}).Where("status = ?", orderModel.StatusDelivered)
	if since, ok := w.Since(time.Now()); ok {
		q = q.Where("delivered_time >= ?", since)
	}

	var total decimal.NullDecimal
	if err := q.Select("SUM(total_amount)").Scan(&total).Error; err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

// RevenueChart returns per-day delivered revenue over the trailing 30 days.
func (ac *AdminController) RevenueChart(c *fiber.Ctx) error {
	since := now.BeginningOfDay().AddDate(0, 0, -30)

	var points []revenuePoint
	err := ac.DB.Model(&orderModel.Order{}).
		Select("DATE_TRUNC('day', delivered_time) AS day, SUM(total_amount) AS revenue, COUNT(*) AS orders").
		Where("status = ? AND delivered_time >= ?", orderModel.StatusDelivered, since).
		Group("DATE_TRUNC('day', delivered_time)").
		Order("day").
		Scan(&points).Error
	if err != nil {
		logger.Error("Failed to compute revenue chart", err)
		return ac.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to compute revenue chart",
			Data:    nil,
		})
	}

	return ac.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Revenue chart computed successfully",
		Data:    points,
	})
}

// financeReport aggregates delivered revenue and recorded payments.
type financeReport struct {
	DeliveredOrders   int64           `json:"delivered_orders"`
	DeliveredRevenue  decimal.Decimal `json:"delivered_revenue"`
	AverageOrderValue decimal.Decimal `json:"average_order_value"`
	RecordedPayments  int64           `json:"recorded_payments"`
	PaymentsTotal     decimal.Decimal `json:"payments_total"`
}

// Finance returns the simple revenue aggregates. Payment processing stays
// out of scope; payments here are bookkeeping rows.
func (ac *AdminController) Finance(c *fiber.Ctx) error {
	w := orderstore.ParseWindow(c.Query("filter"))
	report := financeReport{}
	since, windowed := w.Since(time.Now())

	orderQuery := func() *gorm.DB {
		q := ac.DB.Model(&orderModel.Order{}).Where("status = ?", orderModel.StatusDelivered)
		if windowed {
			q = q.Where("delivered_time >= ?", since)
		}
		return q
	}
	paymentQuery := func() *gorm.DB {
		q := ac.DB.Model(&paymentModel.Payment{}).Where("status = ?", paymentModel.StatusCompleted)
		if windowed {
			q = q.Where("paid_at >= ?", since)
		}
		return q
	}

	if err := orderQuery().Count(&report.DeliveredOrders).Error; err != nil {
		logger.Error("Failed to count delivered orders", err)
		return ac.financeError(c)
	}

	var revenue decimal.NullDecimal
	if err := orderQuery().Select("SUM(total_amount)").Scan(&revenue).Error; err != nil {
		logger.Error("Failed to sum delivered revenue", err)
		return ac.financeError(c)
	}
	if revenue.Valid {
		report.DeliveredRevenue = revenue.Decimal
	}
	if report.DeliveredOrders > 0 {
		report.AverageOrderValue = report.DeliveredRevenue.
			Div(decimal.NewFromInt(report.DeliveredOrders)).
			Round(2)
	}

	if err := paymentQuery().Count(&report.RecordedPayments).Error; err != nil {
		logger.Error("Failed to count payments", err)
		return ac.financeError(c)
	}

	var paid decimal.NullDecimal
	if err := paymentQuery().Select("SUM(amount)").Scan(&paid).Error; err != nil {
		logger.Error("Failed to sum payments", err)
		return ac.financeError(c)
	}
	if paid.Valid {
		report.PaymentsTotal = paid.Decimal
	}

	return ac.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Finance report computed successfully",
		Data:    report,
	})
}

func (ac *AdminController) financeError(c *fiber.Ctx) error {
	return ac.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
		Status:  fiber.StatusInternalServerError,
		Message: "Failed to compute finance report",
		Data:    nil,
	})
}

// ListPayments returns recorded payments, newest first.
func (ac *AdminController) ListPayments(c *fiber.Ctx) error {
	var payments []paymentModel.Payment
	if err := ac.DB.Order("paid_at DESC").Find(&payments).Error; err != nil {
		logger.Error("Failed to list payments", err)
		return ac.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to fetch payments",
			Data:    nil,
		})
	}

	return ac.sendResponseWithLog(c, fiber.StatusOK, types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Payments fetched successfully",
		Data:    payments,
	})
}

// CreatePayment records a bookkeeping payment row.
func (ac *AdminController) CreatePayment(c *fiber.Ctx) error {
	var req adminTypes.PaymentCreateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return ac.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}

	if err := req.Validate(); err != nil {
		return ac.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
			Data:    nil,
		})
	}

	amount, _ := decimal.NewFromString(req.Amount)
	p := paymentModel.Payment{
		CustomerID: req.CustomerID,
		OrderID:    req.OrderID,
		Amount:     amount,
		Method:     req.Method,
		Status:     paymentModel.StatusCompleted,
		PaidAt:     time.Now(),
		Notes:      req.Notes,
	}
	if req.Status != "" {
		p.Status = req.Status
	}
	if req.PaidAt != "" {
		paidAt, err := time.Parse("2006-01-02", req.PaidAt)
		if err != nil {
			return ac.sendResponseWithLog(c, fiber.StatusBadRequest, types.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "paid_at must be YYYY-MM-DD",
				Data:    nil,
			})
		}
		p.PaidAt = paidAt
	}

	if err := ac.DB.Create(&p).Error; err != nil {
		logger.Error("Failed to record payment", err)
		return ac.sendResponseWithLog(c, fiber.StatusInternalServerError, types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to record payment",
			Data:    nil,
		})
	}

	return ac.sendResponseWithLog(c, fiber.StatusCreated, types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Payment recorded successfully",
		Data:    p,
	})
}
