package skirmish

// Orders carries an agent's standing orders. Foreground orders are ranked
// by priority then insertion; at most one runs at a time. Background orders
// all run on every step their trigger holds.
type Orders struct {
	orders     []*Order
	background []*BackgroundOrder
	current    *Order
}

func NewOrders(orders []*Order, background []*BackgroundOrder) *Orders {
	return &Orders{
		orders:     orders,
		background: background,
	}
}

func (o Orders) Current() *Order { return o.current }

func (o *Orders) SetCurrent(order *Order) { o.current = order }

func (o Orders) Pending() []*Order { return o.orders }

func (o Orders) Background() []*BackgroundOrder { return o.background }

func (o *Orders) Append(order *Order) { o.orders = append(o.orders, order) }
