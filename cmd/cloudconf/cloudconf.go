package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/c2fo/cloudsuite"
	"github.com/c2fo/cloudsuite/config"
)

func main() {
	app := cli.NewApp()
	app.Name = "cloudconf"
	app.Usage = "Resolves the cloud integration test configuration exactly as the suites do and reports what would run"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "conf",
			Usage:  "path to the test configuration file",
			EnvVar: cloudsuite.ConfEnvVar,
		},
		cli.StringFlag{
			Name:   "committer",
			Usage:  "override the committer selection",
			EnvVar: cloudsuite.CommitterEnvVar,
		},
		cli.BoolFlag{
			Name:  "settings",
			Usage: "print every resolved option",
		},
	}
	app.Action = func(c *cli.Context) error {
		// the resolver reads the environment, so reflect flag values back into it
		if err := os.Setenv(cloudsuite.ConfEnvVar, c.String("conf")); err != nil {
			return err
		}
		if err := os.Setenv(cloudsuite.CommitterEnvVar, c.String("committer")); err != nil {
			return err
		}
		return report(c.Bool("settings"))
	}

	if err := app.Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}

func report(printSettings bool) error {
	conf, err := config.Resolve()
	if err != nil {
		color.Red("configuration error")
		return err
	}

	if conf == nil {
		color.Yellow("suites disabled: %s is unset or holds the %q token", cloudsuite.ConfEnvVar, cloudsuite.UnsetToken)
		return nil
	}

	color.Green("suites enabled: %d options resolved", conf.Len())

	committer := conf.Committer()
	if cloudsuite.ValidCommitter(committer) {
		fmt.Printf("committer: %s\n", committer)
	} else {
		color.Yellow("committer: %s (not a known strategy)", committer)
	}

	if printSettings {
		settings := conf.Settings()
		keys := make([]string, 0, len(settings))
		for k := range settings {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Printf("  %s = %s\n", k, settings[k])
		}
	}
	return nil
}
