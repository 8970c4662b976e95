package main

import (
	"encoding/json"
	"fmt"

	"kama_card_server/internal/vcard"

	"github.com/spf13/cobra"
)

var encodeCmd = &cobra.Command{
	Use:   "encode [json-file]",
	Short: "Encode a JSON bundle (or a list of bundles) as vCard 4.0",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runEncode,
}

var encodeFold bool

func init() {
	encodeCmd.Flags().BoolVar(&encodeFold, "fold", false, "fold content lines at 75 octets")
	rootCmd.AddCommand(encodeCmd)
}

func runEncode(cmd *cobra.Command, args []string) error {
	data, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	bundles, err := parseBundles(data)
	if err != nil {
		return err
	}
	var opts []vcard.EncoderOption
	if encodeFold {
		opts = append(opts, vcard.WithLineFolding())
	}
	enc := vcard.NewEncoder(opts...)

	var out []byte
	for _, b := range bundles {
		out = append(out, enc.EncodeBundle(b)...)
	}
	return writeOutput(cmd, out)
}

// parseBundles 接受单个对象或数组，decode 的输出可以直接作为输入
func parseBundles(data []byte) ([]vcard.Bundle, error) {
	var list []vcard.Bundle
	if err := json.Unmarshal(data, &list); err == nil {
		return list, nil
	}
	var one vcard.Bundle
	if err := json.Unmarshal(data, &one); err != nil {
		return nil, fmt.Errorf("parse bundle json: %w", err)
	}
	return []vcard.Bundle{one}, nil
}
