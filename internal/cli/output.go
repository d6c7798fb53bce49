package cli

import (
	"encoding/json"
	"fmt"
	"io"
)

// Output handles formatting output based on the configured format
type Output struct {
	w      io.Writer
	errW   io.Writer
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(w, errW io.Writer, format string) *Output {
	return &Output{w: w, errW: errW, format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error using its user-facing message
func (o *Output) PrintError(err error) {
	msg := userMessage(err)
	if o.format == "json" {
		data, _ := json.Marshal(map[string]any{
			"error": map[string]string{"message": msg},
		})
		fmt.Fprintln(o.errW, string(data))
	} else {
		fmt.Fprintf(o.errW, "Error: %s\n", msg)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.w, string(data))
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case BalanceResult:
		o.printBalance(v)
	case TransactionResult:
		o.printTransaction(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// BalanceResult is the balance query output
type BalanceResult struct {
	Username string `json:"username"`
	Balance  string `json:"balance"`
}

// TransactionResult is the deposit/withdraw output
type TransactionResult struct {
	Username   string `json:"username"`
	Operation  string `json:"operation"`
	Amount     string `json:"amount"`
	NewBalance string `json:"new_balance"`
}

func (o *Output) printBalance(b BalanceResult) {
	fmt.Fprintf(o.w, "Balance for %s: $%s\n", b.Username, b.Balance)
}

func (o *Output) printTransaction(t TransactionResult) {
	fmt.Fprintf(o.w, "%s of $%s complete\n", t.Operation, t.Amount)
	fmt.Fprintf(o.w, "New balance: $%s\n", t.NewBalance)
}
