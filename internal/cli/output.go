package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Process exit codes.
const (
	ExitSuccess      = 0
	ExitFailure      = 1 // the storefront rejected the request, or a scenario failed
	ExitCommandError = 2 // bad flags, unreadable menu, unusable state file, failed flush
)

// ExitError carries the exit code a command wants the process to end with.
type ExitError struct {
	Code    int
	Message string
	Err     error

	// Reported is set once the error has been printed to the customer, so
	// main only sets the exit code.
	Reported bool
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError returns an ExitError without a cause.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError returns an ExitError with err as its cause.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode maps err to a process exit code. Errors that are not an
// ExitError count as ExitFailure.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// IsReported reports whether err was already printed by a Printer.
func IsReported(err error) bool {
	var exitErr *ExitError
	return errors.As(err, &exitErr) && exitErr.Reported
}

// Response is the single JSON document a command writes in json mode.
type Response struct {
	Status string         `json:"status"` // "ok" or "error"
	Data   any            `json:"data,omitempty"`
	Error  *ResponseError `json:"error,omitempty"`
}

// ResponseError describes a rejected request.
type ResponseError struct {
	Code    string `json:"code"`    // storefront code, e.g. EMPTY_CART
	Message string `json:"message"` // what the customer is shown
	Details string `json:"details,omitempty"`
}

// Printer writes command results either as text for a person at the
// terminal or as one Response document per command.
type Printer struct {
	Format  string
	Out     io.Writer
	Diag    io.Writer // error details in verbose text mode; Out when nil
	Verbose bool
}

func (p *Printer) json() bool {
	return p.Format == "json"
}

func (p *Printer) encode(r Response) error {
	return json.NewEncoder(p.Out).Encode(r)
}

// Success prints data. Views print through fmt, so they implement
// fmt.Stringer; a nil view prints nothing in text mode.
func (p *Printer) Success(data any) error {
	return p.Result(true, data)
}

// Result is Success for results that can fail as a whole, such as a
// scenario run: the JSON status is "error" when ok is false.
func (p *Printer) Result(ok bool, data any) error {
	if p.json() {
		status := "ok"
		if !ok {
			status = "error"
		}
		return p.encode(Response{Status: status, Data: data})
	}
	if data != nil {
		fmt.Fprintln(p.Out, data)
	}
	return nil
}

// Error prints a rejected request. In text mode details are only shown
// with --verbose.
func (p *Printer) Error(code, message, details string) error {
	if p.json() {
		return p.encode(Response{
			Status: "error",
			Error:  &ResponseError{Code: code, Message: message, Details: details},
		})
	}

	fmt.Fprintf(p.Out, "Error [%s]: %s\n", code, message)
	if p.Verbose && details != "" {
		fmt.Fprintf(p.diag(), "Details: %s\n", details)
	}
	return nil
}

// Notice prints a confirmation line such as a greeting. JSON output skips
// it.
func (p *Printer) Notice(format string, args ...any) {
	if p.json() {
		return
	}
	fmt.Fprintf(p.Out, format+"\n", args...)
}

func (p *Printer) diag() io.Writer {
	if p.Diag == nil {
		return p.Out
	}
	return p.Diag
}
