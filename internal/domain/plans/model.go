package plans

// Product is a package/subscription offering an access can be granted for.
type Product struct {
	ProductID   string `json:"product_id"`
	Name        string `json:"name"`
	Price       int64  `json:"price"`    // rupiah
	Duration    int    `json:"duration"` // months
	ProductType string `json:"product_type"`
}
