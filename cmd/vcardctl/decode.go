package main

import (
	"encoding/json"

	"kama_card_server/internal/vcard"

	"github.com/spf13/cobra"
)

var decodeCmd = &cobra.Command{
	Use:   "decode [file]",
	Short: "Decode a .vcf file into JSON bundles",
	Long: `Decodes every VCARD component in order and prints the bundles as JSON.
A malformed component stops decoding; the bundles before it are still printed
and the command exits non-zero.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDecode,
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}

func runDecode(cmd *cobra.Command, args []string) error {
	data, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	bundles, decodeErr := vcard.Decode(string(data))
	out, err := json.MarshalIndent(bundles, "", "  ")
	if err != nil {
		return err
	}
	if err := writeOutput(cmd, append(out, '\n')); err != nil {
		return err
	}
	return decodeErr
}
