package entities

type Role string

const (
	RoleCustomer   Role = "customer"
	RoleRestaurant Role = "restaurant"
	RoleCourier    Role = "courier"

	// RoleService is used by trusted backends, e.g. the payment processor callback.
	RoleService Role = "service"
)

func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleRestaurant, RoleCourier, RoleService:
		return true
	}
	return false
}

// Actor is the authenticated caller of a mutating operation.
type Actor struct {
	ID   string
	Role Role
}

// SystemActor is used for events that arrive without a bearer token (kafka payment events).
var SystemActor = Actor{ID: "system", Role: RoleService}

func (a Actor) Is(role Role) bool {
	return a.Role == role
}
