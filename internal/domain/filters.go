package domain

import (
	"net/url"
	"strconv"
)

// ProductFilter is the list-scoped query state for the product catalog.
// The zero value means "no filtering"; DefaultProductFilter matches the
// server's default ordering.
type ProductFilter struct {
	Search     string
	CategoryID int64
	SupplierID int64
	LowStock   bool
	SortBy     string
	SortOrder  string
}

// DefaultProductFilter returns the initial catalog filter: newest first.
func DefaultProductFilter() ProductFilter {
	return ProductFilter{SortBy: "created_at", SortOrder: "desc"}
}

// Values encodes the filter as request query parameters, omitting zero
// fields.
func (f ProductFilter) Values() url.Values {
	v := url.Values{}
	if f.Search != "" {
		v.Set("search", f.Search)
	}
	if f.CategoryID != 0 {
		v.Set("category_id", strconv.FormatInt(f.CategoryID, 10))
	}
	if f.SupplierID != 0 {
		v.Set("supplier_id", strconv.FormatInt(f.SupplierID, 10))
	}
	if f.LowStock {
		v.Set("low_stock", "true")
	}
	if f.SortBy != "" {
		v.Set("sort_by", f.SortBy)
	}
	if f.SortOrder != "" {
		v.Set("sort_order", f.SortOrder)
	}
	return v
}

// OrderFilter is the list-scoped query state for orders.
type OrderFilter struct {
	Status     OrderStatus
	SupplierID int64
	StartDate  string
	EndDate    string
}

// Values encodes the filter as request query parameters.
func (f OrderFilter) Values() url.Values {
	v := url.Values{}
	if f.Status != "" {
		v.Set("status", string(f.Status))
	}
	if f.SupplierID != 0 {
		v.Set("supplier_id", strconv.FormatInt(f.SupplierID, 10))
	}
	if f.StartDate != "" {
		v.Set("start_date", f.StartDate)
	}
	if f.EndDate != "" {
		v.Set("end_date", f.EndDate)
	}
	return v
}
