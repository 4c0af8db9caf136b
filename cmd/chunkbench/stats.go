package main

import (
	"context"

	"github.com/urfave/cli/v2"
)

func statsCommand() *cli.Command {
	return &cli.Command{
		Name:   "stats",
		Usage:  "print the statistics of a running server",
		Action: stats,
		Flags:  clientFlags(),
	}
}

func stats(c *cli.Context) error {
	cl, err := newClient(c)
	if err != nil {
		return err
	}
	defer cl.Close()

	st, err := cl.Stats(context.Background())
	if err != nil {
		return err
	}
	return printJSON(st)
}
