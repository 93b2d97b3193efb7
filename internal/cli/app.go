package cli

import (
	"context"
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/ontaste/internal/cart"
	"github.com/roach88/ontaste/internal/catalog"
	"github.com/roach88/ontaste/internal/logging"
	"github.com/roach88/ontaste/internal/order"
	"github.com/roach88/ontaste/internal/session"
	"github.com/roach88/ontaste/internal/store"
	"github.com/roach88/ontaste/internal/storefront"
)

// app is one command invocation: an open state file, a storefront over it
// and the printer.
type app struct {
	ctx   context.Context
	out   *Printer
	log   *slog.Logger
	db    *store.SQLite
	front *storefront.Storefront
}

func newPrinter(opts *RootOptions, cmd *cobra.Command) *Printer {
	return &Printer{
		Format:  opts.Format,
		Out:     cmd.OutOrStdout(),
		Diag:    cmd.ErrOrStderr(),
		Verbose: opts.Verbose,
	}
}

func newLogger(opts *RootOptions, cmd *cobra.Command) *slog.Logger {
	level := opts.LogLevel
	if opts.Verbose {
		level = "debug"
	}
	return logging.New(logging.Options{
		Service:    "ontaste",
		Env:        opts.Env,
		Level:      level,
		Format:     opts.LogFormat,
		Writer:     cmd.ErrOrStderr(),
		AddSource:  opts.Verbose,
		SetDefault: true,
	})
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.Load(path)
}

// openApp opens the state file and the menu and builds the storefront.
func openApp(opts *RootOptions, cmd *cobra.Command) (*app, error) {
	log := newLogger(opts, cmd)

	cat, err := loadCatalog(opts.MenuPath)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to load menu", err)
	}

	log.Debug("opening state file", "path", opts.DBPath)
	db, err := store.Open(opts.DBPath)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to open state file", err)
	}

	ctx := commandContext(cmd)
	front := storefront.Open(ctx, store.NewAdapter(db, log), cat, storefront.Options{
		Clock:  opts.Clock,
		IDs:    opts.IDs,
		Logger: log,
	})

	return &app{
		ctx:   ctx,
		out:   newPrinter(opts, cmd),
		log:   log,
		db:    db,
		front: front,
	}, nil
}

func (a *app) close() {
	if err := a.db.Close(); err != nil {
		a.log.Error("error closing state file", "error", err)
	}
}

// fail renders a storefront error and converts it to an ExitError.
// Untyped errors are returned for the entrypoint to print.
func (a *app) fail(err error) error {
	code := storefront.ErrorCode(err)
	if code == "" {
		return WrapExitError(ExitCommandError, "command failed", err)
	}

	msg := customerMessage(err)
	if outErr := a.out.Error(code, msg, err.Error()); outErr != nil {
		return WrapExitError(ExitCommandError, "failed to write output", outErr)
	}
	if code == string(cart.ErrCodeNotAuthenticated) {
		a.out.Notice("Войдите: ontaste login --email <email> --password <password>")
	}

	exit := ExitFailure
	if code == string(store.ErrCodeWriteFailed) {
		exit = ExitCommandError
	}
	return &ExitError{Code: exit, Message: msg, Err: err, Reported: true}
}

// customerMessage returns the message the storefront shows for err.
func customerMessage(err error) string {
	var ae *session.AuthError
	if errors.As(err, &ae) {
		switch ae.Code {
		case session.ErrCodeDuplicateEmail:
			return "Пользователь с таким email уже существует!"
		case session.ErrCodePasswordMismatch:
			return "Пароли не совпадают!"
		case session.ErrCodeInvalidCredentials:
			return "Неверный email или пароль!"
		}
	}

	var ce *cart.CartError
	if errors.As(err, &ce) {
		switch ce.Code {
		case cart.ErrCodeNotAuthenticated:
			return "Для добавления в корзину войдите в аккаунт"
		case cart.ErrCodeInvalidPrice:
			return "Некорректная цена товара!"
		case cart.ErrCodeInvalidItem:
			return "Ошибка добавления товара!"
		case cart.ErrCodeInvalidQuantity:
			return "Некорректное количество товара!"
		}
	}

	var oe *order.OrderError
	if errors.As(err, &oe) {
		switch oe.Code {
		case order.ErrCodeNotAuthenticated:
			return "Пожалуйста, войдите в аккаунт, чтобы оформить заказ"
		case order.ErrCodeEmptyCart:
			return "Корзина пуста! Добавьте товары перед оформлением заказа."
		case order.ErrCodeMissingPickupTime:
			return "Пожалуйста, выберите время самовывоза!"
		case order.ErrCodeInvalidPickupTime:
			return "Некорректное время самовывоза! Укажите время в формате ЧЧ:ММ."
		case order.ErrCodePickupTimeOutOfRange:
			return "Время самовывоза должно быть с 8:00 до 20:00!"
		}
	}

	if errors.Is(err, store.ErrWriteFailed) {
		return "Ошибка сохранения данных. Попробуйте снова."
	}
	return err.Error()
}
