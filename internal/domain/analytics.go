package domain

// Analytics results are computed server-side (forecasting model, SQL
// aggregation) and rendered here without reinterpretation.

// ForecastPoint is one day of predicted demand for a product.
type ForecastPoint struct {
	Date              string  `json:"date"`
	PredictedQuantity float64 `json:"predicted_quantity"`
}

// RestockRecommendation flags a product expected to cross its low-stock
// threshold, with the order quantity the model suggests.
type RestockRecommendation struct {
	ProductID                int64   `json:"product_id"`
	ProductName              string  `json:"product_name"`
	CurrentQuantity          int     `json:"current_quantity"`
	MinThreshold             int     `json:"min_threshold"`
	DaysUntilThreshold       float64 `json:"days_until_threshold"`
	RecommendedOrderQuantity int     `json:"recommended_order_quantity"`
}

// SalesTrendPoint is one day of aggregated sales.
type SalesTrendPoint struct {
	Date       string  `json:"date"`
	TotalSales float64 `json:"total_sales"`
	OrderCount int     `json:"order_count"`
}

// CategoryShare is one slice of the catalog's category distribution.
type CategoryShare struct {
	Category   string  `json:"category"`
	Value      int     `json:"value"`
	Percentage float64 `json:"percentage"`
}

// TopProduct is one row of the best-sellers ranking.
type TopProduct struct {
	ProductID    int64   `json:"product_id"`
	ProductName  string  `json:"product_name"`
	QuantitySold int     `json:"quantity_sold"`
	Revenue      float64 `json:"revenue"`
}

// DashboardStats is the headline figures block of the analytics dashboard.
type DashboardStats struct {
	SalesToday       float64 `json:"sales_today"`
	SalesYesterday   float64 `json:"sales_yesterday"`
	SalesMonth       float64 `json:"sales_month"`
	SalesPrevMonth   float64 `json:"sales_prev_month"`
	OrdersToday      int     `json:"orders_today"`
	OrdersMonth      int     `json:"orders_month"`
	LowStockCount    int     `json:"low_stock_count"`
	TotalProducts    int     `json:"total_products"`
	PendingOrders    int     `json:"pending_orders"`
	ActiveSuppliers  int     `json:"active_suppliers"`
	RevenueGrowthPct float64 `json:"revenue_growth_pct"`
}

// Dashboard bundles the analytics fetched together for the landing view.
type Dashboard struct {
	Stats        DashboardStats
	Trends       []SalesTrendPoint
	TopProducts  []TopProduct
	Distribution []CategoryShare
}

// AddressSuggestion is one hit from the address-lookup integration.
type AddressSuggestion struct {
	Value             string `json:"value"`
	UnrestrictedValue string `json:"unrestricted_value"`
}

// CompanySuggestion is one hit from the company-lookup integration.
type CompanySuggestion struct {
	Value string `json:"value"`
	INN   string `json:"inn,omitempty"`
	KPP   string `json:"kpp,omitempty"`
}
