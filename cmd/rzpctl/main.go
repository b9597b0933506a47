package main

import (
	"os"

	"github.com/angelmondragon/razorpay-go-client/cmd/rzpctl/commands"
)

func main() {
	if err := commands.NewRootCommand(nil).Execute(); err != nil {
		os.Exit(1)
	}
}
