// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
)

func main() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, mainUsage)
	}
	flag.Parse()
	if err := mainErr(flag.Args(), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "hitroute: %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}

func mainErr(args []string, out io.Writer) error {
	if len(args) == 0 {
		return errors.New("specify a command (replay, render, help)")
	}
	switch cmd, args := args[0], args[1:]; cmd {
	case "replay":
		return replay(args, out)
	case "render":
		return render(args)
	case "help":
		_, err := fmt.Fprint(out, mainUsage)
		return err
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), mainUsage)
	}
	return fs
}
