package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateAssertions_Failures(t *testing.T) {
	s := &Scenario{
		Name:        "mismatches",
		Description: "every assertion is wrong",
		Flow: []Step{
			{Op: OpRegister, Args: map[string]any{"name": "A", "email": "a@x.com", "password": "p1"}},
			{Op: OpAddMenu, Args: map[string]any{"id": "2"}},
		},
		Assertions: []Assertion{
			{Type: AssertCartLines, Count: 3},
			{Type: AssertCartItem, Name: "Мокко", Quantity: 1},
			{Type: AssertCartItem, Name: "Латте", Quantity: 5},
			{Type: AssertItemCount, Count: 9},
			{Type: AssertCartTotal, Total: 1},
			{Type: AssertOrderCount, Count: 2},
			{Type: AssertLastOrder, Status: "processing"},
			{Type: AssertUserCount, Count: 0},
			{Type: AssertCurrentUser, Email: "b@x.com"},
		},
	}

	result, err := Run(s)
	require.NoError(t, err)
	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 9)

	assert.Contains(t, result.Errors[0], "expected 3 cart lines, got 1")
	assert.Contains(t, result.Errors[1], `no cart line named "Мокко"`)
	assert.Contains(t, result.Errors[2], `expected "Латте" quantity 5, got 1`)
	assert.Contains(t, result.Errors[3], "expected 9 items, got 1")
	assert.Contains(t, result.Errors[4], "expected total 1, got 220")
	assert.Contains(t, result.Errors[5], "expected 2 orders, got 0")
	assert.Contains(t, result.Errors[6], "no orders")
	assert.Contains(t, result.Errors[7], "expected 0 users, got 1")
	assert.Contains(t, result.Errors[8], `expected current user "b@x.com", got "a@x.com"`)
}

func TestEvaluateAssertions_LastOrderAcrossUsers(t *testing.T) {
	s := &Scenario{
		Name:        "two_users",
		Description: "last_order without email picks the newest order overall",
		Flow: []Step{
			{Op: OpRegister, Args: map[string]any{"name": "A", "email": "a@x.com", "password": "p1"}},
			{Op: OpAddMenu, Args: map[string]any{"id": "1"}},
			{Op: OpPlaceOrder, Args: map[string]any{"pickup_time": "10:00"}},
			{Op: OpLogout},
			{Op: OpRegister, Args: map[string]any{"name": "B", "email": "b@x.com", "password": "p2"}},
			{Op: OpAddMenu, Args: map[string]any{"id": "4"}},
			{Op: OpPlaceOrder, Args: map[string]any{"pickup_time": "11:00"}},
		},
		Assertions: []Assertion{
			{Type: AssertOrderCount, Count: 2},
			{Type: AssertOrderCount, Email: "a@x.com", Count: 1},
			{Type: AssertLastOrder, Status: "processing", Total: 160},
			{Type: AssertLastOrder, Email: "a@x.com", Status: "processing", Total: 200},
			{Type: AssertUserCount, Count: 2},
		},
	}

	result, err := Run(s)
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
}
