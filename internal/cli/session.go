package cli

import (
	"github.com/spf13/cobra"
)

// RegisterOptions holds flags for the register command.
type RegisterOptions struct {
	*RootOptions
	Name     string
	Email    string
	Password string
	Confirm  string
}

// NewRegisterCommand creates the register command.
func NewRegisterCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RegisterOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		Long: `Create an account and sign in with it.

The email must not be registered yet and --confirm must equal --password.

Example:
  ontaste register --name Анна --email anna@example.com --password secret --confirm secret`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRegister(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Name, "name", "", "display name (required)")
	cmd.Flags().StringVar(&opts.Email, "email", "", "email address (required)")
	cmd.Flags().StringVar(&opts.Password, "password", "", "password (required)")
	cmd.Flags().StringVar(&opts.Confirm, "confirm", "", "password confirmation (required)")
	for _, name := range []string{"name", "email", "password", "confirm"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func runRegister(opts *RegisterOptions, cmd *cobra.Command) error {
	a, err := openApp(opts.RootOptions, cmd)
	if err != nil {
		return err
	}
	defer a.close()

	u, err := a.front.Session.Register(a.ctx, opts.Name, opts.Email, opts.Password, opts.Confirm)
	if err != nil {
		return a.fail(err)
	}
	a.out.Notice("Регистрация прошла успешно!")
	return a.out.Success(newUserView(u))
}

// LoginOptions holds flags for the login command.
type LoginOptions struct {
	*RootOptions
	Email    string
	Password string
}

// NewLoginCommand creates the login command.
func NewLoginCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LoginOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in",
		Long: `Sign in with a registered email and password.

Example:
  ontaste login --email anna@example.com --password secret`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Email, "email", "", "email address (required)")
	cmd.Flags().StringVar(&opts.Password, "password", "", "password (required)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func runLogin(opts *LoginOptions, cmd *cobra.Command) error {
	a, err := openApp(opts.RootOptions, cmd)
	if err != nil {
		return err
	}
	defer a.close()

	u, err := a.front.Session.Login(a.ctx, opts.Email, opts.Password)
	if err != nil {
		return a.fail(err)
	}
	a.out.Notice("Добро пожаловать, %s!", u.Name)
	return a.out.Success(newUserView(u))
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and empty the cart",
		Long: `Sign out. The cart is emptied too and is not restored on the next login.

Example:
  ontaste logout`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(rootOpts, cmd)
			if err != nil {
				return err
			}
			defer a.close()

			if err := a.front.Session.Logout(a.ctx); err != nil {
				return a.fail(err)
			}
			a.out.Notice("Вы вышли из системы")
			return a.out.Success(nil)
		},
	}
}

// NewWhoamiCommand creates the whoami command.
func NewWhoamiCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "whoami",
		Short:         "Show the signed-in user",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(rootOpts, cmd)
			if err != nil {
				return err
			}
			defer a.close()

			u, ok := a.front.Session.Current()
			if !ok {
				return a.out.Success(whoamiView{})
			}
			v := newUserView(u)
			return a.out.Success(whoamiView{SignedIn: true, User: &v})
		},
	}
}
