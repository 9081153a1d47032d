package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// inspect -i <bundle>: show what a bundle records without any key.
func inspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print a bundle's ID and step tags",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := application.InspectFile(inPath)
			if err != nil {
				return err
			}
			fmt.Printf("bundle %s (%d bytes)\n", b.ID, len(b.Data))
			for i, rec := range b.Steps {
				fmt.Printf("  %d. %s\n", i+1, rec.Op)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&inPath, "in", "i", "", "bundle file")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}
