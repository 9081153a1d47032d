package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// dec -k <seed> -i <bundle> -o <plaintext>: replay a recorded bundle.
func decCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dec",
		Short: "Replay a bundle and recover the plaintext",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := application.DecryptFile(seedLiteral, inPath, outPath); err != nil {
				return err
			}
			fmt.Printf("recovered -> %s\n", outPath)
			return nil
		},
	}
	addSeedIOFlags(cmd)
	return cmd
}
