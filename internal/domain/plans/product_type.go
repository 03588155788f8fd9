package plans

import (
	"fmt"
	"strings"
)

// Product type constants (single source of truth)
const (
	TypeVideoCourse   = "videocourse"
	TypeApotekerClass = "apotekerclass"
)

// NormalizeType lowercases and validates a product type; empty means videocourse.
func NormalizeType(raw string) (string, error) {
	t := strings.ToLower(strings.TrimSpace(raw))
	switch t {
	case "":
		return TypeVideoCourse, nil
	case TypeVideoCourse, TypeApotekerClass:
		return t, nil
	}
	return "", fmt.Errorf("unknown product type %q", raw)
}

// Find returns the product with the given id.
func Find(products []Product, productID string) (Product, bool) {
	for _, p := range products {
		if p.ProductID == productID {
			return p, true
		}
	}
	return Product{}, false
}
