package order_test

import (
	"fmt"
	"testing"

	"pressing/internal/core/domain/model/kernel"
	"pressing/internal/core/domain/model/order"
	"pressing/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have stable enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Pending))
		assert.Equal(t, 2, int(order.InProgress))
		assert.Equal(t, 3, int(order.Ready))
		assert.Equal(t, 4, int(order.Delivered))
		assert.Equal(t, 5, int(order.Cancelled))
	})

	t.Run("should list valid statuses in lifecycle order", func(t *testing.T) {
		assert.Equal(t,
			[]order.Status{order.Pending, order.InProgress, order.Ready, order.Delivered, order.Cancelled},
			order.AllStatuses())
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should accept every lifecycle status", func(t *testing.T) {
		for _, s := range order.AllStatuses() {
			require.NoError(t, s.Validate(), s.String())
		}
	})

	t.Run("should reject unknown values", func(t *testing.T) {
		for _, s := range []order.Status{order.Unknown, order.Status(-1), order.Status(6), order.Status(99)} {
			t.Run(fmt.Sprintf("value %d", int(s)), func(t *testing.T) {
				err := s.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid status", int(s)))
			})
		}
	})
}

func TestStatus_StringAndLabel(t *testing.T) {
	testCases := []struct {
		status order.Status
		code   string
		label  string
	}{
		{order.Pending, "pending", "En attente"},
		{order.InProgress, "in_progress", "En cours"},
		{order.Ready, "ready", "Prêt"},
		{order.Delivered, "delivered", "Livré"},
		{order.Cancelled, "cancelled", "Annulé"},
		{order.Unknown, "unknown", "Inconnu"},
		{order.Status(42), "unknown", "Inconnu"},
	}

	for _, tc := range testCases {
		t.Run("should describe "+tc.code, func(t *testing.T) {
			assert.Equal(t, tc.code, tc.status.String())
			assert.Equal(t, tc.label, tc.status.Label())
		})
	}
}

func TestParseStatus(t *testing.T) {
	t.Run("should parse every wire code", func(t *testing.T) {
		for _, s := range order.AllStatuses() {
			parsed, err := order.ParseStatus(s.String())

			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("should default empty code to pending", func(t *testing.T) {
		parsed, err := order.ParseStatus("  ")

		require.NoError(t, err)
		assert.Equal(t, order.Pending, parsed)
	})

	t.Run("should reject unknown codes", func(t *testing.T) {
		_, err := order.ParseStatus("washing")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), `"washing" is not a valid status`)
	})

	t.Run("should not parse the unknown code", func(t *testing.T) {
		_, err := order.ParseStatus("unknown")

		require.Error(t, err)
	})
}

func TestStatus_TextMarshalling(t *testing.T) {
	t.Run("should encode valid statuses", func(t *testing.T) {
		text, err := order.Ready.MarshalText()

		require.NoError(t, err)
		assert.Equal(t, "ready", string(text))
	})

	t.Run("should refuse to encode unknown", func(t *testing.T) {
		_, err := order.Unknown.MarshalText()

		require.Error(t, err)
	})

	t.Run("should decode into the receiver", func(t *testing.T) {
		var s order.Status

		require.NoError(t, s.UnmarshalText([]byte("cancelled")))
		assert.Equal(t, order.Cancelled, s)
	})
}

func TestStatus_Graph(t *testing.T) {
	expected := map[order.Status][]order.Status{
		order.Pending:    {order.InProgress, order.Cancelled},
		order.InProgress: {order.Ready, order.Pending, order.Cancelled},
		order.Ready:      {order.Delivered, order.InProgress},
		order.Delivered:  {},
		order.Cancelled:  {order.Pending},
	}

	t.Run("should expose the outgoing edges", func(t *testing.T) {
		for from, next := range expected {
			assert.ElementsMatch(t, next, from.Next(), from.String())
		}
	})

	t.Run("should refuse every pair outside the graph", func(t *testing.T) {
		candidates := append(order.AllStatuses(), order.Unknown)
		for _, from := range candidates {
			for _, to := range candidates {
				allowed := false
				for _, n := range expected[from] {
					if n == to {
						allowed = true
					}
				}
				for _, role := range []kernel.Role{kernel.RoleManager, kernel.RoleAdmin} {
					assert.Equal(t, allowed, order.CanTransition(from, to, role),
						"%s -> %s as %s", from, to, role)
				}
			}
		}
	})

	t.Run("should mark only delivered as terminal", func(t *testing.T) {
		for _, s := range order.AllStatuses() {
			assert.Equal(t, s == order.Delivered, s.IsTerminal(), s.String())
		}
	})

	t.Run("should not leak the internal slice", func(t *testing.T) {
		next := order.Pending.Next()
		next[0] = order.Delivered

		assert.Equal(t, order.InProgress, order.Pending.Next()[0])
	})
}

func TestCanTransition_Roles(t *testing.T) {
	t.Run("should allow staff roles", func(t *testing.T) {
		assert.True(t, order.CanTransition(order.Pending, order.InProgress, kernel.RoleManager))
		assert.True(t, order.CanTransition(order.Pending, order.InProgress, kernel.RoleAdmin))
	})

	t.Run("should refuse clients and unknown roles", func(t *testing.T) {
		for _, role := range []kernel.Role{kernel.RoleClient, kernel.Role("courier"), kernel.Role("")} {
			for _, from := range order.AllStatuses() {
				for _, to := range from.Next() {
					assert.False(t, order.CanTransition(from, to, role), "%s -> %s as %q", from, to, role)
				}
			}
		}
	})
}

func TestAvailableActions(t *testing.T) {
	t.Run("should list one action per outgoing edge", func(t *testing.T) {
		actions := order.AvailableActions(order.Pending, kernel.RoleManager)

		require.Len(t, actions, 2)
		assert.Equal(t, order.Action{Target: order.InProgress, Label: "En cours", ActionName: "Commencer"}, actions[0])
		assert.Equal(t, order.Action{Target: order.Cancelled, Label: "Annulé", ActionName: "Annuler"}, actions[1])
	})

	t.Run("should be empty for delivered orders whatever the role", func(t *testing.T) {
		for _, role := range []kernel.Role{kernel.RoleAdmin, kernel.RoleManager, kernel.RoleClient, kernel.Role("x")} {
			assert.Empty(t, order.AvailableActions(order.Delivered, role))
		}
	})

	t.Run("should be empty without permission", func(t *testing.T) {
		assert.Empty(t, order.AvailableActions(order.InProgress, kernel.RoleClient))
	})

	t.Run("should be empty for invalid statuses", func(t *testing.T) {
		actions := order.AvailableActions(order.Unknown, kernel.RoleAdmin)

		assert.NotNil(t, actions)
		assert.Empty(t, actions)
	})
}

func TestActionName(t *testing.T) {
	t.Run("should use the dedicated caption", func(t *testing.T) {
		assert.Equal(t, "Livrer", order.ActionName(order.Ready, order.Delivered))
		assert.Equal(t, "Réactiver", order.ActionName(order.Cancelled, order.Pending))
	})

	t.Run("should fall back to the target label", func(t *testing.T) {
		assert.Equal(t, "Passer à Prêt", order.ActionName(order.Pending, order.Ready))
	})
}

func TestStatus_Actions(t *testing.T) {
	assert.Contains(t, order.Ready.Actions(), "notify_customer")
	assert.Equal(t, []string{"view"}, order.Delivered.Actions())
	assert.Empty(t, order.Unknown.Actions())
}
