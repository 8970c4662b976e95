package main

import (
	"errors"
	"fmt"

	"kama_card_server/internal/vcard"

	"github.com/spf13/cobra"
)

var qrCmd = &cobra.Command{
	Use:   "qr [file]",
	Short: "Render a .vcf file as a QR code PNG",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runQR,
}

var (
	qrSize   int
	qrVerify bool
)

func init() {
	qrCmd.Flags().IntVar(&qrSize, "size", vcard.DefaultQRSize, "image size in pixels")
	qrCmd.Flags().BoolVar(&qrVerify, "verify", false, "decode the generated image and compare with the input")
	rootCmd.AddCommand(qrCmd)
}

func runQR(cmd *cobra.Command, args []string) error {
	if outputPath == "" {
		return errors.New("qr: -o output.png is required")
	}
	data, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	text := string(data)
	png, err := vcard.ToQR(text, qrSize)
	if err != nil {
		return err
	}
	if qrVerify {
		decoded, err := vcard.FromQR(png)
		if err != nil {
			return err
		}
		if decoded != text {
			return fmt.Errorf("qr: verify mismatch, decoded %d bytes, want %d", len(decoded), len(text))
		}
		cmd.PrintErrln("qr: verified")
	}
	return writeOutput(cmd, png)
}
