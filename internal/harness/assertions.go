package harness

import (
	"fmt"

	"github.com/roach88/ontaste/internal/state"
	"github.com/roach88/ontaste/internal/storefront"
)

// EvaluateAssertions checks every assertion against the storefront and
// returns one message per failure.
func EvaluateAssertions(f *storefront.Storefront, assertions []Assertion) []string {
	var errs []string
	for i, a := range assertions {
		if err := evaluateAssertion(f, a); err != nil {
			errs = append(errs, fmt.Sprintf("assertions[%d] %s: %v", i, a.Type, err))
		}
	}
	return errs
}

func evaluateAssertion(f *storefront.Storefront, a Assertion) error {
	snap := f.Snapshot()
	sum := f.CartSummary()

	switch a.Type {
	case AssertCartLines:
		if len(sum.Items) != a.Count {
			return fmt.Errorf("expected %d cart lines, got %d", a.Count, len(sum.Items))
		}

	case AssertCartItem:
		i := snap.CartIndexByName(a.Name)
		if i < 0 {
			return fmt.Errorf("no cart line named %q", a.Name)
		}
		if got := snap.Cart[i].Quantity; got != a.Quantity {
			return fmt.Errorf("expected %q quantity %d, got %d", a.Name, a.Quantity, got)
		}

	case AssertItemCount:
		if sum.Count != a.Count {
			return fmt.Errorf("expected %d items, got %d", a.Count, sum.Count)
		}

	case AssertCartTotal:
		if sum.Total != a.Total {
			return fmt.Errorf("expected total %v, got %v", a.Total, sum.Total)
		}

	case AssertOrderCount:
		if got := len(ordersFor(f, a.Email)); got != a.Count {
			return fmt.Errorf("expected %d orders, got %d", a.Count, got)
		}

	case AssertLastOrder:
		orders := ordersFor(f, a.Email)
		if len(orders) == 0 {
			return fmt.Errorf("no orders")
		}
		last := orders[0]
		if string(last.Status) != a.Status {
			return fmt.Errorf("expected status %s, got %s", a.Status, last.Status)
		}
		if a.Total != 0 && last.Total != a.Total {
			return fmt.Errorf("expected total %v, got %v", a.Total, last.Total)
		}

	case AssertUserCount:
		if len(snap.Users) != a.Count {
			return fmt.Errorf("expected %d users, got %d", a.Count, len(snap.Users))
		}

	case AssertCurrentUser:
		var got string
		if snap.CurrentUser != nil {
			got = snap.CurrentUser.Email
		}
		if got != a.Email {
			return fmt.Errorf("expected current user %q, got %q", a.Email, got)
		}

	default:
		return fmt.Errorf("unknown assertion type %q", a.Type)
	}
	return nil
}

// ordersFor returns the orders of email, most recent first, or every order
// newest first when email is empty.
func ordersFor(f *storefront.Storefront, email string) []state.Order {
	if email != "" {
		return f.Orders.ForUser(email)
	}
	all := f.Orders.All()
	out := make([]state.Order, len(all))
	for i, o := range all {
		out[len(all)-1-i] = o
	}
	return out
}
