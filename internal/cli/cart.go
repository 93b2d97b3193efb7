package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// NewCartCommand creates the cart command group.
func NewCartCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Show and change the cart",
	}

	cmd.AddCommand(newCartShowCommand(rootOpts))
	cmd.AddCommand(newCartAddCommand(rootOpts))
	cmd.AddCommand(newCartRemoveCommand(rootOpts))
	cmd.AddCommand(newCartQtyCommand(rootOpts))

	return cmd
}

func newCartShowCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "show",
		Short:         "Show cart lines and total",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(rootOpts, cmd)
			if err != nil {
				return err
			}
			defer a.close()
			return a.out.Success(cartView{a.front.CartSummary()})
		},
	}
}

// CartAddOptions holds flags for the cart add command.
type CartAddOptions struct {
	*RootOptions
	Name  string
	Price string
	Image string
}

func newCartAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CartAddOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "add [menu-id]",
		Short: "Add one unit of an item",
		Long: `Add one unit of a menu item, or of a custom item given by flags.

Adding an item whose name is already in the cart increments that line.

Examples:
  ontaste cart add 2
  ontaste cart add --name "Раф" --price 250 --image images/raf.png`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCartAdd(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Name, "name", "", "custom item name")
	cmd.Flags().StringVar(&opts.Price, "price", "", "custom item price")
	cmd.Flags().StringVar(&opts.Image, "image", "", "custom item image")

	return cmd
}

func runCartAdd(opts *CartAddOptions, args []string, cmd *cobra.Command) error {
	if len(args) == 0 && opts.Name == "" {
		return NewExitError(ExitCommandError, "give a menu id or --name, --price and --image")
	}
	if len(args) == 1 && opts.Name != "" {
		return NewExitError(ExitCommandError, "give either a menu id or --name, not both")
	}

	a, err := openApp(opts.RootOptions, cmd)
	if err != nil {
		return err
	}
	defer a.close()

	name := opts.Name
	if len(args) == 1 {
		err = a.front.AddMenuItem(a.ctx, args[0])
		if m, ok := a.front.Catalog().Lookup(args[0]); ok {
			name = m.Name
		}
	} else {
		err = a.front.Cart.AddItemString(a.ctx, opts.Name, opts.Price, opts.Image)
	}
	if err != nil {
		return a.fail(err)
	}

	a.out.Notice("%s добавлен в корзину!", name)
	return a.out.Success(cartView{a.front.CartSummary()})
}

func newCartRemoveCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "remove <line-id>",
		Short:         "Remove a cart line",
		Long:          `Remove a cart line. Removing a line that is not in the cart does nothing.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(rootOpts, cmd)
			if err != nil {
				return err
			}
			defer a.close()

			if err := a.front.Cart.RemoveItem(a.ctx, args[0]); err != nil {
				return a.fail(err)
			}
			return a.out.Success(cartView{a.front.CartSummary()})
		},
	}
}

func newCartQtyCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "qty <line-id> <delta>",
		Short: "Change a line's quantity",
		Long: `Add delta to a cart line's quantity. A result below 1 removes the line.

Examples:
  ontaste cart qty 0190a6b2-7c3e-7d5f-9b1a-2c4d6e8f0a1b 2
  ontaste cart qty 0190a6b2-7c3e-7d5f-9b1a-2c4d6e8f0a1b -1`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			delta, err := strconv.Atoi(args[1])
			if err != nil {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid delta %q: must be an integer", args[1]))
			}

			a, err := openApp(rootOpts, cmd)
			if err != nil {
				return err
			}
			defer a.close()

			if err := a.front.Cart.ChangeQuantity(a.ctx, args[0], delta); err != nil {
				return a.fail(err)
			}
			return a.out.Success(cartView{a.front.CartSummary()})
		},
	}

	// Negative deltas must not be parsed as flags.
	cmd.Flags().SetInterspersed(false)

	return cmd
}
