// Command numgen writes the per-type methods of the primitive-backed leaves
// of package numeric.
//
// It is run through go generate from the numeric package directory:
//
//	//go:generate go run go.dw1.io/fhecore/cmd/numgen -o zz_generated.go
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	// outFile is set by the --out flag; "-" writes to stdout.
	outFile string

	// pkgName is set by the --package flag.
	pkgName string

	// verbose is set by the --verbose flag.
	verbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "numgen",
	Short: "Generate numeric leaf methods",
	Long: `numgen renders the Numeric, SignedInteger, UnsignedInteger and
FloatingPoint methods of every primitive-backed leaf type from a fixed
type table and writes them as a single gofmt-ed Go file.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(newLogger(verbose))
	},
}

func init() {
	rootCmd.Flags().StringVarP(&outFile, "out", "o", "zz_generated.go", "output file, - for stdout")
	rootCmd.Flags().StringVarP(&pkgName, "package", "p", "numeric", "package name of the generated file")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log every generated leaf")
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func run(logger *slog.Logger) error {
	for _, l := range leaves {
		logger.Debug("leaf", "name", l.Name, "prim", l.Prim, "kind", l.Kind)
	}

	src, err := generate(pkgName, leaves)
	if err != nil {
		return err
	}

	if outFile == "-" {
		_, err = os.Stdout.Write(src)
		return err
	}
	if err := os.WriteFile(outFile, src, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outFile, err)
	}

	logger.Info("generated", "file", outFile, "package", pkgName, "leaves", len(leaves), "bytes", len(src))
	return nil
}
