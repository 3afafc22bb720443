package order

import (
	"slices"

	"pressing/internal/core/domain/model/kernel"
)

// stateDefinition is the static metadata attached to each status.
type stateDefinition struct {
	label       string
	next        []Status
	permissions []kernel.Role
	actions     []string
}

var staffRoles = []kernel.Role{kernel.RoleManager, kernel.RoleAdmin}

func definitions() map[Status]stateDefinition {
	return map[Status]stateDefinition{
		Pending: {
			label:       "En attente",
			next:        []Status{InProgress, Cancelled},
			permissions: staffRoles,
			actions:     []string{"start", "cancel", "edit"},
		},
		InProgress: {
			label:       "En cours",
			next:        []Status{Ready, Pending, Cancelled},
			permissions: staffRoles,
			actions:     []string{"complete_service", "mark_ready", "put_on_hold", "cancel"},
		},
		Ready: {
			label:       "Prêt",
			next:        []Status{Delivered, InProgress},
			permissions: staffRoles,
			actions:     []string{"notify_customer", "deliver", "reopen"},
		},
		Delivered: {
			label:       "Livré",
			next:        nil,
			permissions: staffRoles,
			actions:     []string{"view"},
		},
		Cancelled: {
			label:       "Annulé",
			next:        []Status{Pending},
			permissions: staffRoles,
			actions:     []string{"reactivate"},
		},
	}
}

// edge is a directed pair of statuses.
type edge struct {
	from Status
	to   Status
}

func getActionNames() map[edge]string {
	return map[edge]string{
		{Pending, InProgress}:   "Commencer",
		{Pending, Cancelled}:    "Annuler",
		{InProgress, Ready}:     "Marquer comme prêt",
		{InProgress, Pending}:   "Remettre en attente",
		{InProgress, Cancelled}: "Annuler",
		{Ready, Delivered}:      "Livrer",
		{Ready, InProgress}:     "Reprendre",
		{Cancelled, Pending}:    "Réactiver",
	}
}

// Next returns the statuses reachable from s in one transition.
func (s Status) Next() []Status {
	return slices.Clone(definitions()[s].next)
}

// CanTransitionTo reports whether the graph has an edge s -> target.
func (s Status) CanTransitionTo(target Status) bool {
	return slices.Contains(definitions()[s].next, target)
}

// Permits reports whether role may act on orders in status s.
func (s Status) Permits(role kernel.Role) bool {
	return slices.Contains(definitions()[s].permissions, role)
}

// Actions lists the UI actions offered for s. Informational only.
func (s Status) Actions() []string {
	return slices.Clone(definitions()[s].actions)
}

// CanTransition is the pure guard of the lifecycle: the current status must be
// known, the edge must exist and role must be permitted on the current status.
func CanTransition(current, target Status, role kernel.Role) bool {
	if current.Validate() != nil {
		return false
	}
	return current.CanTransitionTo(target) && current.Permits(role)
}

// ActionName is the button caption for from -> to, falling back to
// "Passer à <label>" for edges without a dedicated caption.
func ActionName(from, to Status) string {
	if name, ok := getActionNames()[edge{from, to}]; ok {
		return name
	}
	return "Passer à " + to.Label()
}

// Action is an outgoing edge offered to a user.
type Action struct {
	Target     Status
	Label      string
	ActionName string
}

// AvailableActions lists the transitions role may trigger from current.
// It is empty when role lacks permission or current is terminal or invalid.
func AvailableActions(current Status, role kernel.Role) []Action {
	if current.Validate() != nil || !current.Permits(role) {
		return []Action{}
	}
	next := current.Next()
	actions := make([]Action, 0, len(next))
	for _, target := range next {
		actions = append(actions, Action{
			Target:     target,
			Label:      target.Label(),
			ActionName: ActionName(current, target),
		})
	}
	return actions
}
