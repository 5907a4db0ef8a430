package dto

import "github.com/shopspring/decimal"

// DashboardResponse tarjetas del dashboard: conteos y sumas del negocio.
type DashboardResponse struct {
	TotalCustomers int64           `json:"total_customers"`
	TotalProducts  int64           `json:"total_products"`
	StockOnHand    decimal.Decimal `json:"stock_on_hand"`
	MonthSales     decimal.Decimal `json:"month_sales"`
	OpenSales      int64           `json:"open_sales"`
}
