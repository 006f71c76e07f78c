// Command backdrop renders one decorative background image and saves it to
// the Desktop folder in the user's home directory.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/gogpu/backdrop"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "backdrop",
	Short:        "Generate an artistic background image on the Desktop",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runGenerate,
}

func init() {
	rootCmd.Flags().BoolP("verbose", "v", false, "Log pipeline stages to stderr")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	backdrop.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	dir, err := backdrop.DesktopDir()
	if err != nil {
		return err
	}

	now := time.Now()
	rng := rand.New(rand.NewPCG(uint64(now.UnixNano()), rand.Uint64()))
	path, _, err := backdrop.Run(dir, now, rng)
	if err != nil {
		return err
	}

	return reportSaved(cmd.OutOrStdout(), path)
}

// reportSaved prints the confirmation line for a written image.
func reportSaved(w io.Writer, path string) error {
	_, err := fmt.Fprintf(w, "Image saved to %s\n", path)
	return err
}
