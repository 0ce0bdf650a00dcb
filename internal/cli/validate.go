package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ValidationResult describes a valid plan.
type ValidationResult struct {
	Valid   bool   `json:"valid"`
	Mode    string `json:"mode"`
	Size    int    `json:"size"`
	Sources int    `json:"sources"`
}

func (r ValidationResult) String() string {
	return fmt.Sprintf("ok: %s plan with %d source(s) and size %d", r.Mode, r.Sources, r.Size)
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "validate <plan.yaml|->",
		Short:         "Check a plan without building it",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}

			p, err := loadPlan(formatter, args[0], cmd)
			if err != nil {
				return err
			}

			return formatter.Success(ValidationResult{
				Valid:   true,
				Mode:    p.Mode(),
				Size:    p.Size,
				Sources: len(p.Sources),
			})
		},
	}
}
