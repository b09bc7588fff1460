package domain

type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleSeller   Role = "SELLER"
	RoleAdmin    Role = "ADMIN"
)

// Actor identifies the caller of a workflow operation. StoreID is resolved at
// the workflow boundary for sellers and is empty otherwise.
type Actor struct {
	ID      string
	Role    Role
	StoreID string
}

// CanTransitionOrder is the single capability check for order status updates:
// platform admins always may, sellers only for their own store's orders,
// customers never.
func CanTransitionOrder(actor Actor, order *Order) bool {
	switch actor.Role {
	case RoleAdmin:
		return true
	case RoleSeller:
		return actor.StoreID != "" && actor.StoreID == order.StoreID
	default:
		return false
	}
}

// CanViewOrder mirrors the ownership rules for reads: customers see their own
// orders, sellers their store's, admins everything.
func CanViewOrder(actor Actor, order *Order) bool {
	switch actor.Role {
	case RoleAdmin:
		return true
	case RoleSeller:
		return actor.StoreID != "" && actor.StoreID == order.StoreID
	case RoleCustomer:
		return actor.ID == order.CustomerID
	default:
		return false
	}
}
