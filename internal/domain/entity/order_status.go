package entity

// OrderStatus represents the position of an order in its state machine.
type OrderStatus string

const (
	// OrderStatusPending is the initial status of every new order.
	OrderStatusPending OrderStatus = "PENDING"
	// OrderStatusConfirmed indicates the farmer accepted the order.
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	// OrderStatusShipped indicates the order left the farm.
	OrderStatusShipped OrderStatus = "SHIPPED"
	// OrderStatusDelivered is a terminal status; only delivered orders can be reviewed.
	OrderStatusDelivered OrderStatus = "DELIVERED"
	// OrderStatusCancelled is a terminal status; entering it restores crop stock.
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// orderTransitions is the explicit state-transition table for orders.
// Cancellation policy (only PENDING orders may be cancelled) is enforced by the
// API-facing layer, so CANCELLED is reachable from every non-terminal status here.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:   {OrderStatusDelivered, OrderStatusCancelled},
	OrderStatusDelivered: {},
	OrderStatusCancelled: {},
}

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	_, ok := orderTransitions[s]

	return ok
}

// IsTerminal reports whether no further transitions are possible.
func (s OrderStatus) IsTerminal() bool {
	return len(orderTransitions[s]) == 0 && s.IsValid()
}

// CanTransitionTo reports whether the state machine permits moving to next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}
