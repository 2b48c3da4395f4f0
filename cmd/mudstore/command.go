package main

import "github.com/urfave/cli/v2"

func (s *srv) loadApp() {
	s.app = cli.NewApp()
	s.app.Action = cli.ShowAppHelp
	s.app.Name = "mudstore"
	s.app.Usage = "Administer the world store of a MUD"
	s.app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "path to a TOML config file",
			Value:   "config.toml",
			EnvVars: []string{"MUD_CONFIG"},
		},
	}
	s.app.Commands = []*cli.Command{
		{
			Action:    s.startLookup,
			Name:      "lookup",
			Usage:     "Print room tables",
			ArgsUsage: " ",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "area",
					Usage: "only print the rooms of this area",
				},
			},
			Category:    "Admin",
			Description: `Prints "<number>: <name>" for every room, grouped by area.`,
		},
		{
			Action:      s.startSeed,
			Name:        "seed",
			Usage:       "Load a world file into the store",
			ArgsUsage:   "<worldPath>",
			Category:    "Admin",
			Description: `Creates the areas, rooms, corridors, users and characters described in a TOML world file.`,
		},
	}
}
