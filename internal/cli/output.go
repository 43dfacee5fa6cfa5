package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/todo/internal/models"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	Out    io.Writer
	ErrOut io.Writer
}

// NewFormatter reads the --json and --quiet flags of cmd and writes to
// the command's output streams
func NewFormatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	return &OutputFormatter{
		JSON:   jsonOutput,
		Quiet:  quietMode,
		Out:    cmd.OutOrStdout(),
		ErrOut: cmd.ErrOrStderr(),
	}
}

// AddOutputFlags registers the agent-friendly --json and --quiet flags
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")
}

func (f *OutputFormatter) out() io.Writer {
	if f.Out == nil {
		return os.Stdout
	}
	return f.Out
}

func (f *OutputFormatter) errOut() io.Writer {
	if f.ErrOut == nil {
		return os.Stderr
	}
	return f.ErrOut
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data any) error {
	if f.Quiet {
		switch v := data.(type) {
		case []*models.Todo:
			for _, t := range v {
				fmt.Fprintf(f.out(), "%d\n", t.ID)
			}
			return nil
		case interface{ GetID() int }:
			fmt.Fprintf(f.out(), "%d\n", v.GetID())
			return nil
		}
	}

	if f.JSON {
		return json.NewEncoder(f.out()).Encode(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	// Human-readable format
	return f.prettyPrint(data)
}

// Result outputs data in JSON or quiet mode, and the formatted message otherwise
func (f *OutputFormatter) Result(data any, format string, args ...any) error {
	if f.JSON || f.Quiet {
		return f.Success(data)
	}
	_, err := fmt.Fprintf(f.out(), format+"\n", args...)
	return err
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
		return json.NewEncoder(f.out()).Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	fmt.Fprintf(f.errOut(), "❌ Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(f.errOut(), "💡 Suggestion: %s\n", suggestion)
	}
	return nil
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data any) error {
	w := f.out()

	switch v := data.(type) {
	case []*models.Todo:
		if len(v) == 0 {
			fmt.Fprintln(w, "No tasks yet. Add one with 'todo add <title>'")
			return nil
		}
		fmt.Fprintf(w, "Found %d todos:\n\n", len(v))
		for _, t := range v {
			fmt.Fprintf(w, "  %s [%d] %s\n", checkbox(t.Completed), t.ID, t.Title)
		}
	case *models.Todo:
		fmt.Fprintf(w, "[%d] %s\n", v.ID, v.Title)
		fmt.Fprintf(w, "Status: %s\n", statusLabel(v.Completed))
		if desc := v.DescriptionText(); desc != "" {
			fmt.Fprintf(w, "\n%s\n", desc)
		}
	default:
		fmt.Fprintf(w, "%+v\n", data)
	}
	return nil
}

func checkbox(completed bool) string {
	if completed {
		return "[x]"
	}
	return "[ ]"
}

func statusLabel(completed bool) string {
	if completed {
		return "Done"
	}
	return "Pending"
}
