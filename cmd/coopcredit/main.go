package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "coopcredit",
		Usage: "Loan application intake for the credit cooperative",
		Commands: []*cli.Command{
			serveCommand,
			ensureSchemaCommand,
			checkCommand,
			nanoidCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("application failed")
	}
}
