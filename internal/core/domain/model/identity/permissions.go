package identity

// Operation names a gated API operation. The permission table below is the
// single place role requirements are declared; handlers and middleware
// consult it before any business logic runs.
type Operation string

const (
	OpOrderCreate     Operation = "order.create"
	OpOrderListAll    Operation = "order.list_all"
	OpOrderHistory    Operation = "order.history"
	OpOrderGetByID    Operation = "order.get_by_id"
	OpOrderGetByToken Operation = "order.get_by_token"
	OpOrderGetStatus  Operation = "order.get_status"
	OpOrderSetStatus  Operation = "order.set_status"
	OpOrderCancel     Operation = "order.cancel"
	OpOrderDelete     Operation = "order.delete"

	OpDeliveryCreate       Operation = "delivery.create"
	OpDeliveryListAll      Operation = "delivery.list_all"
	OpDeliveryGet          Operation = "delivery.get"
	OpDeliveryGetByOrder   Operation = "delivery.get_by_order"
	OpDeliveryUpdateStatus Operation = "delivery.update_status"
	OpDeliveryAssign       Operation = "delivery.assign"
	OpDeliveryDelete       Operation = "delivery.delete"
)

// anyAuthenticated marks operations open to every valid role.
var anyAuthenticated = []Role{RoleCustomer, RoleAdmin, RoleStaff, RoleDelivery}

func getPermissionTable() map[Operation][]Role {
	return map[Operation][]Role{
		OpOrderCreate:     anyAuthenticated,
		OpOrderListAll:    {RoleAdmin},
		OpOrderHistory:    anyAuthenticated,
		OpOrderGetByID:    {RoleAdmin, RoleStaff},
		OpOrderGetByToken: anyAuthenticated,
		OpOrderGetStatus:  {RoleAdmin, RoleStaff, RoleCustomer},
		OpOrderSetStatus:  {RoleStaff, RoleDelivery},
		OpOrderCancel:     {RoleCustomer, RoleStaff},
		OpOrderDelete:     {RoleAdmin},

		OpDeliveryCreate:       {RoleAdmin, RoleStaff},
		OpDeliveryListAll:      {RoleAdmin},
		OpDeliveryGet:          anyAuthenticated,
		OpDeliveryGetByOrder:   anyAuthenticated,
		OpDeliveryUpdateStatus: {RoleDelivery},
		OpDeliveryAssign:       {RoleAdmin, RoleStaff},
		OpDeliveryDelete:       {RoleAdmin},
	}
}

// Allowed reports whether the role may perform the operation. Unknown
// operations are denied.
func Allowed(op Operation, role Role) bool {
	roles, ok := getPermissionTable()[op]
	if !ok {
		return false
	}
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
