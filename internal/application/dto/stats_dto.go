package dto

// PopularProductResponse producto más vendido (lectura sobre product_orders).
type PopularProductResponse struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Article   string  `json:"article"`
	Price     int64   `json:"price"`
	Rating    float64 `json:"rating"`
	TotalSold int     `json:"total_sold"`
}

// TopIncomeProductResponse producto por ingresos acumulados.
type TopIncomeProductResponse struct {
	ProductID   string `json:"product_id"`
	Name        string `json:"name"`
	TotalIncome int64  `json:"total_income"`
	TotalSold   int    `json:"total_sold"`
}
