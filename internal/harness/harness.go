package harness

import (
	"context"
	"fmt"
	"strconv"

	"github.com/roach88/ontaste/internal/catalog"
	"github.com/roach88/ontaste/internal/ids"
	"github.com/roach88/ontaste/internal/store"
	"github.com/roach88/ontaste/internal/storefront"
	"github.com/roach88/ontaste/internal/testutil"
)

// Harness executes scenario steps against one storefront.
type Harness struct {
	front *storefront.Storefront
}

// Run executes a test scenario and returns the result.
//
// Each scenario runs against fresh in-memory slots and the default menu.
// Deterministic helpers ensure reproducible results: ids are "id-1",
// "id-2", ... and the clock starts at testutil.DefaultEpoch.
//
// Run returns an error only when the scenario cannot be executed at all
// (the menu fails to load or a setup step fails). Step and assertion
// mismatches are reported in the Result.
func Run(scenario *Scenario) (*Result, error) {
	cat, err := catalog.Default()
	if err != nil {
		return nil, fmt.Errorf("failed to load menu: %w", err)
	}
	return RunWithCatalog(scenario, cat)
}

// RunWithCatalog is Run with a custom menu.
func RunWithCatalog(scenario *Scenario, cat *catalog.Catalog) (*Result, error) {
	ctx := context.Background()
	logger := testutil.DiscardLogger()

	adapter := store.NewAdapter(store.NewMemory(), logger)
	h := &Harness{
		front: storefront.Open(ctx, adapter, cat, storefront.Options{
			Clock:  testutil.NewStepClock(testutil.DefaultEpoch, 0),
			IDs:    ids.NewSequenceGenerator("id"),
			Logger: logger,
		}),
	}

	result := NewResult(scenario.Name)

	for i, step := range scenario.Setup {
		err := h.execute(ctx, step)
		result.addTrace("setup", step, outcomeOf(err))
		if err != nil {
			return nil, fmt.Errorf("failed to execute setup[%d] %s: %w", i, step.Op, err)
		}
	}

	for i, step := range scenario.Flow {
		err := h.execute(ctx, step)
		outcome := outcomeOf(err)
		result.addTrace("flow", step, outcome)

		want := OutcomeOK
		if step.Expect != nil {
			want = step.Expect.Error
		}
		if outcome != want {
			msg := fmt.Sprintf("flow[%d] %s: expected %s, got %s", i, step.Op, want, outcome)
			if err != nil {
				msg += " (" + err.Error() + ")"
			}
			result.AddError(msg)
		}
	}

	for _, msg := range EvaluateAssertions(h.front, scenario.Assertions) {
		result.AddError(msg)
	}
	return result, nil
}

// outcomeOf maps a step error to its trace outcome. Untyped errors show
// as their message.
func outcomeOf(err error) string {
	if err == nil {
		return OutcomeOK
	}
	if code := storefront.ErrorCode(err); code != "" {
		return code
	}
	return err.Error()
}

func (h *Harness) execute(ctx context.Context, step Step) error {
	a := args(step.Args)
	f := h.front

	switch step.Op {
	case OpRegister:
		password := a.str("password")
		confirm := password
		if _, ok := a["confirm"]; ok {
			confirm = a.str("confirm")
		}
		_, err := f.Session.Register(ctx, a.str("name"), a.str("email"), password, confirm)
		return err

	case OpLogin:
		_, err := f.Session.Login(ctx, a.str("email"), a.str("password"))
		return err

	case OpLogout:
		return f.Session.Logout(ctx)

	case OpAdd:
		switch p := a["price"].(type) {
		case string:
			return f.Cart.AddItemString(ctx, a.str("name"), p, a.str("image"))
		default:
			price, err := a.float("price")
			if err != nil {
				return err
			}
			return f.Cart.AddItem(ctx, a.str("name"), price, a.str("image"))
		}

	case OpAddMenu:
		return f.AddMenuItem(ctx, a.str("id"))

	case OpRemove:
		return f.Cart.RemoveItem(ctx, h.lineID(a))

	case OpQuantity:
		delta, err := a.int("delta")
		if err != nil {
			return err
		}
		return f.Cart.ChangeQuantity(ctx, h.lineID(a), delta)

	case OpPlaceOrder:
		_, err := f.Orders.PlaceOrder(ctx, a.str("pickup_time"))
		return err

	case OpReload:
		f.Reload(ctx)
		return nil
	}
	return fmt.Errorf("unknown op %q", step.Op)
}

// lineID resolves the cart line a step refers to: an explicit id, or the
// id of the line with the given name. Unknown names resolve to "".
func (h *Harness) lineID(a args) string {
	if id := a.str("id"); id != "" {
		return id
	}
	name := a.str("name")
	for _, it := range h.front.Cart.Items() {
		if it.Name == name {
			return it.ID
		}
	}
	return ""
}

// args gives typed access to YAML step arguments.
type args map[string]any

func (a args) str(key string) string {
	switch v := a[key].(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

func (a args) float(key string) (float64, error) {
	switch v := a[key].(type) {
	case int:
		return float64(v), nil
	case float64:
		return v, nil
	case nil:
		return 0, nil
	default:
		return 0, fmt.Errorf("arg %s: expected a number, got %T", key, v)
	}
}

func (a args) int(key string) (int, error) {
	switch v := a[key].(type) {
	case int:
		return v, nil
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("arg %s: %w", key, err)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("arg %s: expected an integer, got %T", key, v)
	}
}
