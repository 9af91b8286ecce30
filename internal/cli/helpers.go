package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/huddle/internal/types"
)

// ParseIDList splits a comma separated list of member IDs
func ParseIDList(raw string) ([]types.MemberID, error) {
	ids := []types.MemberID{}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := types.ParseMemberID(part)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid member id %q", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// StringFlagIfChanged returns a pointer to the flag value when the user set it,
// or nil so update requests leave the field alone
func StringFlagIfChanged(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)
	return &v
}

// Usage wraps a usage problem so it exits with ExitUsage
func Usage(format string, args ...any) error {
	return &StatusError{Code: ExitUsage, Err: fmt.Errorf(format, args...)}
}

// Confirm prints prompt and reads a yes/no answer from the command's input.
// Anything but y or yes counts as no.
func Confirm(cmd *cobra.Command, prompt string) bool {
	fmt.Fprint(cmd.OutOrStdout(), prompt)

	answer, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && answer == "" {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
