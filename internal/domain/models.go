// Package domain defines the entity records exchanged with the inventory
// backend. Records mirror server resources as-is: the server owns every
// invariant (totals, low-stock flags, timestamps) and the client trusts
// what it returns.
package domain

// Role identifies a user's permission tier.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleOwner    Role = "owner"
	RoleEmployee Role = "employee"
)

// User is an account record. Timestamps stay as the server's strings.
type User struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Role      Role   `json:"role"`
	IsActive  bool   `json:"is_active"`
	Phone     string `json:"phone,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// Category groups products.
type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

// Supplier is a vendor record.
type Supplier struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Address       string `json:"address,omitempty"`
	ContactPerson string `json:"contact_person,omitempty"`
	CreatedAt     string `json:"created_at,omitempty"`
	UpdatedAt     string `json:"updated_at,omitempty"`
}

// Product is a catalog item. IsLowStock and MinStock are computed and
// supplied server-side; the client only displays them.
type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	SKU         string    `json:"sku"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
	MinStock    int       `json:"min_stock"`
	CategoryID  int64     `json:"category_id,omitempty"`
	SupplierID  int64     `json:"supplier_id,omitempty"`
	Category    *Category `json:"category,omitempty"`
	Supplier    *Supplier `json:"supplier,omitempty"`
	IsLowStock  bool      `json:"is_low_stock,omitempty"`
	CreatedAt   string    `json:"created_at,omitempty"`
	UpdatedAt   string    `json:"updated_at,omitempty"`
}

// InventoryLog is one stock movement for a product.
type InventoryLog struct {
	ID             int64    `json:"id"`
	ProductID      int64    `json:"product_id"`
	UserID         int64    `json:"user_id"`
	QuantityChange int      `json:"quantity_change"`
	Comment        string   `json:"comment,omitempty"`
	Product        *Product `json:"product,omitempty"`
	User           *User    `json:"user,omitempty"`
	CreatedAt      string   `json:"created_at,omitempty"`
}
