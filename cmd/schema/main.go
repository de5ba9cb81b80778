// Command schema writes JSON schema of the gw2tracker configuration, or checks an existing file is up to date.
package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/umputun/gw2tracker/pkg/config"
)

type options struct {
	Output string `short:"o" long:"output" default:"pkg/config/schema.json" description:"schema file"`
	Check  bool   `long:"check" description:"fail if schema file differs from the generated one"`
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
	if err := run(opts); err != nil {
		log.Fatalf("[ERROR] %v", err)
	}
}

func run(opts options) error {
	data, err := json.MarshalIndent(config.GenerateSchema(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	data = append(data, '\n')

	if opts.Check {
		existing, err := os.ReadFile(opts.Output)
		if err != nil {
			return fmt.Errorf("read %s: %w", opts.Output, err)
		}
		if !bytes.Equal(bytes.TrimSpace(existing), bytes.TrimSpace(data)) {
			return fmt.Errorf("%s is out of date, run go generate ./pkg/config", opts.Output)
		}
		fmt.Printf("%s is up to date\n", opts.Output)
		return nil
	}

	if err := os.WriteFile(opts.Output, data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", opts.Output, err)
	}
	fmt.Printf("schema written to %s\n", opts.Output)
	return nil
}
