package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "storages",
		Usage: "Read and write files in internal and external storage locations",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path or s3:// URI of a YAML config file",
				EnvVars: []string{"STORAGES_CONFIG"},
			},
			&cli.StringSliceFlag{
				Name:  "param",
				Usage: "set a config placeholder as name=value",
			},
			&cli.BoolFlag{
				Name:  "internal",
				Usage: "use app-private storage instead of external storage",
			},
			&cli.BoolFlag{
				Name:  "cache",
				Usage: "use the cache store instead of the persistent store",
			},
			&cli.StringFlag{
				Name:  "file",
				Usage: "file name to operate on",
			},
			&cli.StringFlag{
				Name:  "encoding",
				Usage: "IANA name of the text encoding",
			},
			&cli.BoolFlag{
				Name:  "metrics",
				Usage: "print operation metrics to stderr before exiting",
			},
		},
		Commands: []*cli.Command{{
			Name:   "paths",
			Usage:  "Print every storage directory and whether it is available",
			Action: withEnv(printPaths),
		}, {
			Name:   "ensure",
			Usage:  "Create the file if it does not exist",
			Action: withEnv(ensureFile),
		}, {
			Name:      "write",
			Usage:     "Replace the file content with TEXT",
			ArgsUsage: "<text>",
			Action:    withEnv(writeText),
		}, {
			Name:   "read",
			Usage:  "Print the file content",
			Action: withEnv(readText),
		}, {
			Name:      "photo",
			Usage:     "Save images as JPEG photos under generated names",
			ArgsUsage: "<image>...",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "workers",
					Value: 4,
					Usage: "number of photos saved at the same time",
				},
			},
			Action: withEnv(savePhotos),
		}, {
			Name:   "rm",
			Usage:  "Remove the file",
			Action: withEnv(removeFile),
		}},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
