package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/trezcool/gradebook/core"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	out io.Writer
	log core.Logger
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  checkroster -file FILE - validate a roster file and count its accounts")
	fmt.Fprintln(cli.out, "  report [-file FILE]    - print the grade statistics of a roster (built-in roster by default)")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	checkRosterCmd := flag.NewFlagSet("checkroster", flag.ContinueOnError)
	checkRosterCmd.SetOutput(cli.out)
	checkRosterFile := checkRosterCmd.String("file", "", "The roster file (yaml, json, toml..).")

	reportCmd := flag.NewFlagSet("report", flag.ContinueOnError)
	reportCmd.SetOutput(cli.out)
	reportFile := reportCmd.String("file", "", "The roster file. The built-in roster is used when empty.")

	switch args[1] {
	case "checkroster":
		if err := checkRosterCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		if *checkRosterFile == "" {
			checkRosterCmd.Usage()
			return errHelp
		}
		return cli.checkRoster(*checkRosterFile)
	case "report":
		if err := reportCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		return cli.report(*reportFile)
	default:
		cli.printUsage()
		return errHelp
	}
}
