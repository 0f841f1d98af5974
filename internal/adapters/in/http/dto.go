package http

// Request and response bodies of the REST surface. IDs travel as UUID strings;
// server-generated IDs are returned in the Created responses.

// Error is the uniform error body.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Created reports the identifier of a newly created resource.
type Created struct {
	ID string `json:"id"`
}

// NewTable is the body for creating or updating a table.
type NewTable struct {
	Number   int `json:"number"`
	Capacity int `json:"capacity"`
}

// NewLineItem is the body for adding a menu item to an order.
type NewLineItem struct {
	MenuItemID string `json:"menuItemId"`
	Quantity   int    `json:"quantity"`
}

// LineItemQuantity is the body for replacing a line's quantity.
type LineItemQuantity struct {
	Quantity int `json:"quantity"`
}

// Discount is the body for applying an order discount.
type Discount struct {
	Amount float64 `json:"amount"`
}

// StatusChange is the body for a lifecycle transition.
type StatusChange struct {
	Target string `json:"target"`
}

// NewPayment is the body for recording a payment.
type NewPayment struct {
	Amount float64 `json:"amount"`
	Method string  `json:"method"`
}

// NewCategory is the body for creating a menu category.
type NewCategory struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// NewMenuItem is the body for creating a menu item.
type NewMenuItem struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	CategoryID  string  `json:"categoryId"`
}

// ItemPrice is the body for changing a menu item's card price.
type ItemPrice struct {
	Price float64 `json:"price"`
}

// TableBoardEntry is one table on the dining room board.
type TableBoardEntry struct {
	ID            string  `json:"id"`
	Number        int     `json:"number"`
	Capacity      int     `json:"capacity"`
	DisplayStatus string  `json:"displayStatus"`
	ActiveOrderID *string `json:"activeOrderId,omitempty"`
}

// OrderLine is one line of an order view.
type OrderLine struct {
	ID        string  `json:"id"`
	ItemName  string  `json:"itemName"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

// Order is the read model returned by order listings.
type Order struct {
	ID          string      `json:"id"`
	TableNumber int         `json:"tableNumber"`
	Status      string      `json:"status"`
	Discount    float64     `json:"discount"`
	Total       float64     `json:"total"`
	CreatedAt   string      `json:"createdAt"`
	ServedAt    *string     `json:"servedAt,omitempty"`
	Lines       []OrderLine `json:"lines"`
}

// MethodRevenue is the revenue taken through one payment method.
type MethodRevenue struct {
	Method  string  `json:"method"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

// HourRevenue is the revenue taken during one hour of the day.
type HourRevenue struct {
	Hour    int     `json:"hour"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

// ItemSales is the sold quantity and revenue of one dish.
type ItemSales struct {
	ItemName string  `json:"itemName"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

// SalesReport aggregates one day of trading.
type SalesReport struct {
	Day             string          `json:"day"`
	TotalRevenue    float64         `json:"totalRevenue"`
	AverageTicket   float64         `json:"averageTicket"`
	PaymentCount    int             `json:"paymentCount"`
	OrdersOpened    int             `json:"ordersOpened"`
	OrdersCancelled int             `json:"ordersCancelled"`
	ByMethod        []MethodRevenue `json:"byMethod"`
	ByHour          []HourRevenue   `json:"byHour"`
	TopItems        []ItemSales     `json:"topItems"`
}

// MenuItem is one dish on the card.
type MenuItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
}

// MenuCategory is one category of the card with its items.
type MenuCategory struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Items       []MenuItem `json:"items"`
}
