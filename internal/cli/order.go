package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/ontaste/internal/state"
)

// NewOrderCommand creates the order command group.
func NewOrderCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Place and list orders",
	}

	cmd.AddCommand(newOrderPlaceCommand(rootOpts))
	cmd.AddCommand(newOrderListCommand(rootOpts))

	return cmd
}

func newOrderPlaceCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "place <HH:MM>",
		Short: "Order the cart for pickup",
		Long: `Order everything in the cart for pickup at the given time.

Pickup is possible from 08:00 up to, but not including, 20:00.
The cart is emptied once the order is placed.

Example:
  ontaste order place 12:30`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var pickup string
			if len(args) == 1 {
				pickup = args[0]
			}

			a, err := openApp(rootOpts, cmd)
			if err != nil {
				return err
			}
			defer a.close()

			o, err := a.front.Orders.PlaceOrder(a.ctx, pickup)
			if err != nil {
				return a.fail(err)
			}
			a.out.Notice("Заказ успешно оформлен!")
			return a.out.Success(orderView{o})
		},
	}
}

func newOrderListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Short:         "List your orders, newest first",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(rootOpts, cmd)
			if err != nil {
				return err
			}
			defer a.close()

			if _, ok := a.front.Session.Current(); !ok {
				return a.out.Success(ordersView{Orders: []state.Order{}})
			}
			return a.out.Success(ordersView{SignedIn: true, Orders: a.front.Orders.ForCurrentUser()})
		},
	}
}
