package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tychoish/fixed"
	"github.com/tychoish/fixed/ers"
	"github.com/tychoish/fixed/internal/plan"
)

// BuildOptions holds flags for the build command.
type BuildOptions struct {
	*RootOptions
	// Size overrides the plan's size when non-negative.
	Size int
}

// BuildResult is the output of a successful build.
type BuildResult struct {
	Size   int    `json:"size"`
	Mode   string `json:"mode"`
	Values []int  `json:"values"`
}

func (r BuildResult) String() string {
	parts := make([]string, len(r.Values))
	for idx, v := range r.Values {
		parts[idx] = fmt.Sprint(v)
	}
	return strings.Join(parts, " ")
}

// ExhaustionDetails reports how far a failed build got.
type ExhaustionDetails struct {
	Filled int `json:"filled"`
	Size   int `json:"size"`
}

// NewBuildCommand creates the build command.
func NewBuildCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BuildOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "build <plan.yaml|->",
		Short: "Build the array a plan describes",
		Long: `Build the array described by a YAML plan and print its values.

Use "-" to read the plan from standard input. The build fails with
exit code 1 when a sequence in the plan runs out before every slot is
filled; no partial array is printed.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(opts, args[0], cmd)
		},
	}

	cmd.Flags().IntVarP(&opts.Size, "size", "n", -1, "override the plan's size")

	return cmd
}

func runBuild(opts *BuildOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}

	p, err := loadPlan(formatter, path, cmd)
	if err != nil {
		return err
	}

	if opts.Size >= 0 {
		p = p.WithSize(opts.Size)
	}

	out, err := p.Run(newLogger(cmd.ErrOrStderr(), opts.Verbose))
	if err != nil {
		var exh *fixed.ExhaustedError
		if errors.As(err, &exh) {
			if ferr := formatter.Error(CodeExhausted, err.Error(), ExhaustionDetails{Filled: exh.Filled, Size: exh.Size}); ferr != nil {
				return ferr
			}
			return WrapExitError(ExitFailure, "build failed", err)
		}
		return planError(formatter, err)
	}

	return formatter.Success(BuildResult{Size: p.Size, Mode: p.Mode(), Values: out})
}

// loadPlan reads the plan at path, or from the command's input when
// path is "-".
func loadPlan(formatter *OutputFormatter, path string, cmd *cobra.Command) (*plan.Plan, error) {
	var (
		p   *plan.Plan
		err error
	)

	if path == "-" {
		p, err = plan.LoadReader(cmd.InOrStdin())
	} else {
		p, err = plan.Load(path)
	}
	if err != nil {
		return nil, planError(formatter, err)
	}
	return p, nil
}

func planError(formatter *OutputFormatter, err error) error {
	code := CodeIO
	if ers.Is(err, ers.ErrMalformedConfiguration) {
		code = CodePlan
	}

	if ferr := formatter.Error(code, err.Error(), nil); ferr != nil {
		return ferr
	}
	return WrapExitError(ExitCommandError, "invalid plan", err)
}
