package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/roach88/hackathon/internal/hackathon"
)

// NewPlanCommand creates the plan command, which prints producer
// assignments without running anything.
func NewPlanCommand(rootOpts *RootOptions) *cobra.Command {
	profile := &ProfileOptions{}

	cmd := &cobra.Command{
		Use:           "plan [ideas [idea-gen [pkgs [pkg-gen [students]]]]]",
		Short:         "Show how work is partitioned across producers",
		Args:          cobra.MaximumNArgs(5),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := profile.resolve(cmd, args)
			if err != nil {
				return err
			}
			plan, err := cfg.Hackathon().Plan()
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid configuration", err)
			}

			out := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			if out.Format == "json" {
				return out.Success(plan)
			}
			return renderPlan(cmd.OutOrStdout(), plan)
		},
	}
	profile.register(cmd)
	return cmd
}

func renderPlan(w io.Writer, plan hackathon.Plan) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "WORKER\tSTART\tIDEAS\tPACKAGES\tTOKENS")
	for i, a := range plan.Ideas {
		fmt.Fprintf(tw, "idea-producer-%d\t%d\t%d\t%d\t%d\n", i, a.Start, a.Ideas, a.Packages, a.Students)
	}
	for i, a := range plan.Packages {
		fmt.Fprintf(tw, "package-producer-%d\t%d\t-\t%d\t-\n", i, a.Start, a.Packages)
	}
	return tw.Flush()
}
