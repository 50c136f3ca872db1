// ABOUTME: version command
// ABOUTME: Prints product, version and platform
package main

import (
	"fmt"
	"runtime"

	"github.com/Resonate-Protocol/resonate-pcm/internal/version"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of pcmconv",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s, %s/%s\n", version.String(), runtime.GOOS, runtime.GOARCH)
		},
	}
}
