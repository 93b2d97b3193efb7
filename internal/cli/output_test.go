package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExitError(t *testing.T) {
	err := NewExitError(ExitCommandError, "bad path")
	assert.Equal(t, "bad path", err.Error())
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	cause := errors.New("no such file")
	wrapped := WrapExitError(ExitFailure, "open failed", cause)
	assert.Equal(t, "open failed: no such file", wrapped.Error())
	assert.ErrorIs(t, wrapped, cause)
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("plain")))
	assert.Equal(t, ExitCommandError, GetExitCode(NewExitError(ExitCommandError, "x")))
}

func TestIsReported(t *testing.T) {
	assert.False(t, IsReported(nil))
	assert.False(t, IsReported(NewExitError(ExitFailure, "x")))
	assert.True(t, IsReported(&ExitError{Code: ExitFailure, Message: "x", Reported: true}))
}

func TestPrinter_JSONSuccess(t *testing.T) {
	buf := &bytes.Buffer{}
	p := &Printer{Format: "json", Out: buf}

	require.NoError(t, p.Success(map[string]int{"count": 2}))

	var resp Response
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Nil(t, resp.Error)
	assert.Equal(t, map[string]any{"count": float64(2)}, resp.Data)
}

func TestPrinter_JSONError(t *testing.T) {
	buf := &bytes.Buffer{}
	p := &Printer{Format: "json", Out: buf}

	require.NoError(t, p.Error("EMPTY_CART", "Корзина пуста!", ""))
	assert.Equal(t, `{"status":"error","error":{"code":"EMPTY_CART","message":"Корзина пуста!"}}`+"\n", buf.String())
}

func TestPrinter_JSONFailedResult(t *testing.T) {
	buf := &bytes.Buffer{}
	p := &Printer{Format: "json", Out: buf}

	require.NoError(t, p.Result(false, map[string]int{"failed": 1}))
	assert.Equal(t, `{"status":"error","data":{"failed":1}}`+"\n", buf.String())
}

func TestPrinter_Text(t *testing.T) {
	buf := &bytes.Buffer{}
	diag := &bytes.Buffer{}
	p := &Printer{Format: "text", Out: buf, Diag: diag, Verbose: true}

	p.Notice("Добро пожаловать, %s!", "A")
	require.NoError(t, p.Success("done"))
	require.NoError(t, p.Success(nil))
	require.NoError(t, p.Error("EMPTY_CART", "Корзина пуста!", "EMPTY_CART: cart is empty"))

	assert.Equal(t, "Добро пожаловать, A!\ndone\nError [EMPTY_CART]: Корзина пуста!\n", buf.String())
	assert.Equal(t, "Details: EMPTY_CART: cart is empty\n", diag.String())
}

func TestPrinter_TextDetailsNeedVerbose(t *testing.T) {
	buf := &bytes.Buffer{}
	p := &Printer{Format: "text", Out: buf}

	require.NoError(t, p.Error("EMPTY_CART", "Корзина пуста!", "EMPTY_CART: cart is empty"))
	assert.Equal(t, "Error [EMPTY_CART]: Корзина пуста!\n", buf.String())

	p.Verbose = true
	buf.Reset()
	require.NoError(t, p.Error("EMPTY_CART", "Корзина пуста!", "EMPTY_CART: cart is empty"))
	assert.Equal(t, "Error [EMPTY_CART]: Корзина пуста!\nDetails: EMPTY_CART: cart is empty\n", buf.String())
}

func TestPrinter_NoticeSkippedInJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	p := &Printer{Format: "json", Out: buf}
	p.Notice("hello")
	assert.Empty(t, buf.String())
}
