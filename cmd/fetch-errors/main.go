// One-off: refresh errors.json from Twilio's published error-code reference.
// Usage: go run ./cmd/fetch-errors
package main

import (
	"context"
	"fmt"
	"os"

	"twerr/internal/catalog"
	"twerr/internal/client"
	"twerr/internal/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.Init(); err != nil {
		return err
	}

	c := client.NewErrorCodesClient(config.GetSourceURL(), config.GetHTTPTimeout())
	records, err := c.Fetch(context.Background())
	if err != nil {
		return err
	}

	mapping, err := catalog.Build(records)
	if err != nil {
		return err
	}

	if err := catalog.Write(config.GetOutputPath(), mapping); err != nil {
		return err
	}

	fmt.Printf("wrote %d error codes to %s\n", len(mapping), config.GetOutputPath())
	return nil
}
