package queries

import (
	"errors"

	"pressing/internal/core/domain/model/kernel"
	"pressing/internal/core/domain/model/order"
	"pressing/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order together with the actions the caller's
// role may trigger on it.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID, kernel.RoleManager)
//	if err != nil {
//	    return err
//	}
//	response, err := handler.Handle(ctx, query)
//	for _, action := range response.Actions {
//	    fmt.Println(action.ActionName)
//	}
type GetOrderQuery struct {
	orderID kernel.UUID
	role    kernel.Role

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.UUID, role kernel.Role) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		role:    role,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q GetOrderQuery) Role() kernel.Role {
	return q.role
}

// GetOrderQueryResponse is the order as stored plus the outgoing actions for
// the caller. Actions is empty for roles that may not act on the order.
type GetOrderQueryResponse struct {
	Order   order.Snapshot
	Actions []order.Action
}
