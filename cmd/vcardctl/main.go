// vcardctl 命令行读写 vCard：decode / encode / qr / import
package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "vcardctl",
	Short:         "Decode, encode and share vCard 4.0 contacts",
	SilenceUsage:  true,
	SilenceErrors: false,
}

var (
	configPath string
	outputPath string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file path (import only)")
	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "output file (default stdout)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// readInput 未给出文件或为 "-" 时读取标准输入
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(args[0])
}

// writeOutput 写入 -o 指定的文件，未指定时写标准输出
func writeOutput(cmd *cobra.Command, data []byte) error {
	if outputPath == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	return os.WriteFile(outputPath, data, 0o644)
}
