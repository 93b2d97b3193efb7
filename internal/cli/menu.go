package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/ontaste/internal/catalog"
)

// NewMenuCommand creates the menu command.
func NewMenuCommand(rootOpts *RootOptions) *cobra.Command {
	var listCategories bool

	cmd := &cobra.Command{
		Use:   "menu [category]",
		Short: "List menu items",
		Long: `List menu items, optionally filtered by category.

The built-in menu has the categories all, coffee, food and desserts.
Item ids are what "ontaste cart add" takes.

Examples:
  ontaste menu
  ontaste menu coffee
  ontaste menu --categories
  ontaste menu --menu ./menu.yaml desserts`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if listCategories && len(args) == 1 {
				return NewExitError(ExitCommandError, "give either a category or --categories, not both")
			}
			category := catalog.CategoryAll
			if len(args) == 1 {
				category = strings.TrimSpace(args[0])
			}

			cat, err := loadCatalog(rootOpts.MenuPath)
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to load menu", err)
			}
			out := newPrinter(rootOpts, cmd)
			if listCategories {
				return out.Success(categoriesView{Categories: cat.Categories()})
			}
			return out.Success(menuView{Category: category, Items: cat.FilterByCategory(category)})
		},
	}

	cmd.Flags().BoolVar(&listCategories, "categories", false, "list the category keys instead of items")

	return cmd
}
