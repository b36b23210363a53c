package dto

// ExtinguisherTotalsResponse conteo de extintores por tipo para un cliente.
// Los tipos sin compras no aparecen en el mapa.
type ExtinguisherTotalsResponse struct {
	CustomerID string         `json:"customer_id"`
	Totals     map[string]int `json:"totals"`
}

// ProjectedSalesResponse proyección de ventas de reposición para un año:
// unidades vendidas de los extintores que vencen dentro de ese año.
type ProjectedSalesResponse struct {
	Year           int `json:"year"`
	ProjectedSales int `json:"projected_sales"`
}
