package cli

import (
	"github.com/spf13/cobra"
)

func newCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report placeholders still present without modifying the file",
		Long:  `check scans the target and exits non-zero while any known mojibake heading remains. Useful as a CI gate.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer opts.closeLog()
			application, err := opts.newApplication(cmd)
			if err != nil {
				return err
			}
			_, err = application.Check(cmd.Context())
			return err
		},
	}
}
