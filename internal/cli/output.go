package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Identifier is implemented by results that have an id to print in quiet mode
type Identifier interface {
	GetID() string
}

// HumanPrinter is implemented by results with their own human-readable form
type HumanPrinter interface {
	PrintHuman(w io.Writer) error
}

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	// Out and Err default to os.Stdout and os.Stderr
	Out io.Writer
	Err io.Writer
}

func (f *OutputFormatter) stdout() io.Writer {
	if f.Out == nil {
		return os.Stdout
	}
	return f.Out
}

func (f *OutputFormatter) stderr() io.Writer {
	if f.Err == nil {
		return os.Stderr
	}
	return f.Err
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data any) error {
	if f.Quiet {
		if idGetter, ok := data.(Identifier); ok {
			_, err := fmt.Fprintln(f.stdout(), idGetter.GetID())
			return err
		}
		return nil
	}

	if f.JSON {
		return json.NewEncoder(f.stdout()).Encode(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	return f.prettyPrint(data)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(f.stdout()).Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	fmt.Fprintf(f.stderr(), "Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(f.stderr(), "Suggestion: %s\n", suggestion)
	}
	return nil
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data any) error {
	if p, ok := data.(HumanPrinter); ok {
		return p.PrintHuman(f.stdout())
	}
	_, err := fmt.Fprintf(f.stdout(), "%+v\n", data)
	return err
}
