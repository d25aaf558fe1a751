package domain

// OrderStatus is the server-side order lifecycle state.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// OrderItem is one line of an order. TotalPrice is computed server-side.
type OrderItem struct {
	ID         int64    `json:"id"`
	OrderID    int64    `json:"order_id"`
	ProductID  int64    `json:"product_id"`
	Quantity   int      `json:"quantity"`
	UnitPrice  float64  `json:"unit_price"`
	TotalPrice float64  `json:"total_price,omitempty"`
	Product    *Product `json:"product,omitempty"`
}

// OrderFile is an attachment uploaded against an order.
type OrderFile struct {
	ID         int64  `json:"id"`
	OrderID    int64  `json:"order_id"`
	Filename   string `json:"filename"`
	FilePath   string `json:"file_path"`
	FileType   string `json:"file_type,omitempty"`
	UploadDate string `json:"upload_date,omitempty"`
}

// Order aggregates items and attachments. TotalAmount is server-computed
// and trusted as-is.
type Order struct {
	ID                   int64       `json:"id"`
	OrderNumber          string      `json:"order_number"`
	UserID               int64       `json:"user_id"`
	SupplierID           int64       `json:"supplier_id"`
	Status               OrderStatus `json:"status"`
	TotalAmount          float64     `json:"total_amount"`
	ShippingAddress      string      `json:"shipping_address,omitempty"`
	Notes                string      `json:"notes,omitempty"`
	ExpectedDeliveryDate string      `json:"expected_delivery_date,omitempty"`
	User                 *User       `json:"user,omitempty"`
	Supplier             *Supplier   `json:"supplier,omitempty"`
	Items                []OrderItem `json:"items,omitempty"`
	Files                []OrderFile `json:"files,omitempty"`
	CreatedAt            string      `json:"created_at,omitempty"`
	UpdatedAt            string      `json:"updated_at,omitempty"`
}

// OrderItemDraft is one line of an order being created.
type OrderItemDraft struct {
	ProductID int64   `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// OrderDraft is the payload for creating an order.
type OrderDraft struct {
	SupplierID           int64            `json:"supplier_id"`
	ShippingAddress      string           `json:"shipping_address,omitempty"`
	Notes                string           `json:"notes,omitempty"`
	ExpectedDeliveryDate string           `json:"expected_delivery_date,omitempty"`
	Items                []OrderItemDraft `json:"items"`
}
