// Command numtool inspects, converts and hashes numeric primitives.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/amp-labs/amp-numeric/cli"
	"github.com/amp-labs/amp-numeric/logger"
)

func main() {
	logger.ConfigureLogging("numtool")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := cli.NewRootCommand().ExecuteContext(ctx)

	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, "numtool:", err) //nolint:errcheck

		os.Exit(1)
	}
}
