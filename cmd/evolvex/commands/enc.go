package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// enc -k <seed> -i <plaintext> -o <bundle>: run the forward walk.
func encCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "enc",
		Short: "Encrypt a file through the fixed pipeline",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := application.EncryptFile(seedLiteral, inPath, outPath)
			if err != nil {
				return err
			}
			fmt.Printf("bundle %s -> %s\n", b.ID, outPath)
			return nil
		},
	}
	addSeedIOFlags(cmd)
	return cmd
}
