package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/izouxv/hashira/cmd/reconstruct"
	"github.com/izouxv/hashira/cmd/split"
)

func main() {
	cmd := &cobra.Command{
		Use:           "hashira",
		Short:         "Threshold secret reconstruction over exact integers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(
		reconstruct.Command(),
		split.Command(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "hashira: %v\n", err)
		os.Exit(1)
	}
}
