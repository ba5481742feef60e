package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/thenoetrevino/trackview/cmd"
	"github.com/thenoetrevino/trackview/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cmd.Execute(ctx)
	stop()

	if err != nil && !cli.Reported(err) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	var usage *cli.UsageError
	if errors.As(err, &usage) {
		fmt.Fprintln(os.Stderr, "Run 'trackview --help' for usage.")
	}
	os.Exit(cli.ExitCode(err))
}
