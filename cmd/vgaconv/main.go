package main

import (
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/vgaconv"
	"github.com/bodgit/vgaconv/frame"
	"github.com/bodgit/vgaconv/text"
	"github.com/urfave/cli/v2"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newConverter(c *cli.Context) *vgaconv.Converter {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}

	return vgaconv.New(logger, os.Stderr)
}

// Flags win over the configuration file which wins over the defaults
func loadConfig(c *cli.Context) (vgaconv.Config, error) {
	cfg := vgaconv.DefaultConfig()
	if file := c.String("config"); file != "" {
		var err error
		if cfg, err = vgaconv.LoadConfig(file); err != nil {
			return vgaconv.Config{}, err
		}
	}

	if c.IsSet("output") {
		cfg.Output = c.String("output")
	}
	if c.IsSet("policy") {
		cfg.Policy = c.String("policy")
	}
	if c.IsSet("columns") {
		cfg.Columns = c.Int("columns")
	}

	return cfg, nil
}

func previewName(file string) string {
	return strings.TrimSuffix(file, filepath.Ext(file)) + ".png"
}

func main() {
	app := cli.NewApp()

	app.Name = "vgaconv"
	app.Usage = "Convert text art and images to raw VGA blobs"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			EnvVars: []string{"VGACONV_CONFIG"},
			Usage:   "path to TOML configuration file",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "text",
			Usage:       "Convert text art to VGA text mode cells",
			Description: "Reads BASE.txt and writes BASE.vga",
			ArgsUsage:   "BASE",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				if err := newConverter(c).ConvertText(c.Args().First()); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "image",
			Usage:       "Convert a 320x200 image to a VGA mode 13h frame",
			Description: "Unhandled colors are reported on stderr",
			ArgsUsage:   "FILE",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Value:   vgaconv.DefaultOutput,
					Usage:   "path to output file",
				},
				&cli.StringFlag{
					Name:  "policy",
					Value: frame.Reject.String(),
					Usage: "what to do with an image that isn't 320x200; reject, clip or resize",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				cfg, err := loadConfig(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				policy, err := frame.ParsePolicy(cfg.Policy)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				if err := newConverter(c).ConvertImage(c.Args().First(), cfg.Output, policy); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:  "preview",
			Usage: "Render a VGA blob as a PNG",
			Subcommands: []*cli.Command{
				{
					Name:      "text",
					Usage:     "Render text mode cells",
					ArgsUsage: "FILE",
					Flags: []cli.Flag{
						&cli.IntFlag{
							Name:  "columns",
							Value: text.Columns,
							Usage: "cells per row",
						},
					},
					Action: func(c *cli.Context) error {
						if c.NArg() < 1 {
							cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
						}

						cfg, err := loadConfig(c)
						if err != nil {
							return cli.NewExitError(err, 1)
						}

						file := c.Args().First()
						if err := newConverter(c).PreviewText(file, previewName(file), cfg.Columns); err != nil {
							return cli.NewExitError(err, 1)
						}

						return nil
					},
				},
				{
					Name:      "frame",
					Usage:     "Render a mode 13h frame",
					ArgsUsage: "FILE",
					Action: func(c *cli.Context) error {
						if c.NArg() < 1 {
							cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
						}

						file := c.Args().First()
						if err := newConverter(c).PreviewFrame(file, previewName(file)); err != nil {
							return cli.NewExitError(err, 1)
						}

						return nil
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
