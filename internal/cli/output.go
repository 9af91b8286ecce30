package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	// Out and Err default to the process streams
	Out io.Writer
	Err io.Writer
}

// NewFormatter builds a formatter from the --json and --quiet flags of cmd,
// writing to the command's streams
func NewFormatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{
		JSON:  jsonOutput,
		Quiet: quietMode,
		Out:   cmd.OutOrStdout(),
		Err:   cmd.ErrOrStderr(),
	}
}

// AddOutputFlags registers the agent-friendly output flags
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")
}

func (f *OutputFormatter) out() io.Writer {
	if f.Out == nil {
		return os.Stdout
	}
	return f.Out
}

func (f *OutputFormatter) err() io.Writer {
	if f.Err == nil {
		return os.Stderr
	}
	return f.Err
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data interface{}) error {
	if f.Quiet {
		switch v := data.(type) {
		case interface{ GetID() int }:
			_, err := fmt.Fprintf(f.out(), "%d\n", v.GetID())
			return err
		case interface{ GetIDs() []int }:
			for _, id := range v.GetIDs() {
				if _, err := fmt.Fprintf(f.out(), "%d\n", id); err != nil {
					return err
				}
			}
			return nil
		}
		return nil
	}

	if f.JSON {
		return json.NewEncoder(f.out()).Encode(map[string]interface{}{
			"success": true,
			"data":    data,
		})
	}

	// Human-readable format
	return f.prettyPrint(data)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]interface{}{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(f.out()).Encode(map[string]interface{}{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	fmt.Fprintf(f.err(), "❌ Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(f.err(), "💡 Suggestion: %s\n", suggestion)
	}
	return nil
}

// Fail reports err in the selected mode and returns it tagged with its exit code
func (f *OutputFormatter) Fail(err error) error {
	_ = f.ErrorWithSuggestion(ErrorCode(err), err.Error(), suggestionFor(err))
	return &StatusError{Code: ExitCode(err), Err: err}
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data interface{}) error {
	if s, ok := data.(fmt.Stringer); ok {
		_, err := io.WriteString(f.out(), s.String())
		return err
	}
	_, err := fmt.Fprintf(f.out(), "%+v\n", data)
	return err
}

func suggestionFor(err error) string {
	switch ExitCode(err) {
	case ExitNotFound:
		return "List the available IDs with `huddle project list` or `huddle member list`"
	case ExitConflict:
		return "Use a different value or update the existing record instead"
	default:
		return ""
	}
}
