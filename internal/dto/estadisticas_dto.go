package dto

// EstadisticasResponse feeds the dashboard. The per-category fields duplicate
// CategoryCounts under the names the dashboard already reads.
type EstadisticasResponse struct {
	UsersCount         int64          `json:"users_count"`
	DeliveriesCount    int64          `json:"deliveries_count"`
	LaundryTotalCount  int            `json:"laundry_total_count"`
	LaundryActiveCount int            `json:"laundry_active_count"`
	CategoryCounts     map[string]int `json:"category_counts"`
	PolosCount         int            `json:"laundry_polos_count"`
	PantalonesCount    int            `json:"laundry_pantalones_count"`
	ChaquetasCount     int            `json:"laundry_chaquetas_count"`
}
