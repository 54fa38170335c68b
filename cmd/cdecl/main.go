package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/declgo/cdecl"
)

var version = "dev"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, colorErr("error: ")+err.Error())
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "cdecl",
		Usage:   "compose and decipher C and C++ declarations",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "lang",
				Aliases: []string{"x"},
				Usage:   "language dialect (c89..c23, c++98..c++23)",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "configuration file",
				Value: defaultConfigPath(),
			},
			&cli.BoolFlag{
				Name:  "east-const",
				Usage: "place const/volatile after the type",
			},
			&cli.BoolFlag{
				Name:  "alt-tokens",
				Usage: "use C++ alternative tokens in output",
			},
			&cli.BoolFlag{
				Name:    "digraphs",
				Aliases: []string{"2"},
				Usage:   "use digraphs in output",
			},
			&cli.BoolFlag{
				Name:    "trigraphs",
				Aliases: []string{"3"},
				Usage:   "use trigraphs in output",
			},
			&cli.BoolFlag{
				Name:  "no-semicolon",
				Usage: "omit the trailing semicolon",
			},
			&cli.BoolFlag{
				Name:  "explicit-int",
				Usage: "print implicit int explicitly",
			},
			&cli.StringFlag{
				Name:  "color",
				Usage: "colorize diagnostics: auto, always, never",
				Value: "auto",
			},
		},
		Action: run,
	}
}

func run(c *cli.Context) error {
	setColorMode(c.String("color"))

	opts, err := buildOptions(c)
	if err != nil {
		return err
	}
	session := cdecl.NewSession(opts)

	// With arguments, run one command and exit; without, read commands
	// from stdin.
	if c.Args().Present() {
		out, err := session.Execute(strings.Join(c.Args().Slice(), " "))
		if err != nil {
			return err
		}
		if out != "" {
			fmt.Println(out)
		}
		return nil
	}
	return repl(session)
}

// buildOptions layers the configuration file under the command-line flags.
func buildOptions(c *cli.Context) (*cdecl.Options, error) {
	opts := &cdecl.Options{}
	if err := loadConfig(c.String("config"), opts); err != nil {
		return nil, err
	}

	if name := c.String("lang"); name != "" {
		lang := cdecl.FindLang(name)
		if lang == cdecl.LangNone {
			return nil, fmt.Errorf("unknown language %q", name)
		}
		opts.Lang = lang
	}
	if c.Bool("east-const") {
		opts.EastConst = true
	}
	if c.Bool("alt-tokens") {
		opts.AltTokens = true
	}
	if c.Bool("digraphs") {
		opts.Graph = cdecl.GraphDi
	}
	if c.Bool("trigraphs") {
		opts.Graph = cdecl.GraphTri
	}
	if c.Bool("no-semicolon") {
		opts.NoSemicolon = true
	}
	if c.Bool("explicit-int") {
		opts.ExplicitInt = true
	}
	return opts, nil
}

// repl reads command lines from stdin until EOF or an exit command.
func repl(session *cdecl.Session) error {
	in := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(prompt("cdecl> "))
		if !in.Scan() {
			fmt.Println()
			return in.Err()
		}
		line := strings.TrimSpace(in.Text())
		switch line {
		case "":
			continue
		case "quit", "exit", "q":
			return nil
		}

		out, err := session.Execute(line)
		if err != nil {
			fmt.Fprintln(os.Stderr, colorErr("error: ")+err.Error())
			continue
		}
		if out != "" {
			fmt.Println(colorWarnings(out))
		}
	}
}

// defaultConfigPath returns ~/.cdeclrc, or "" when the home directory is
// unknown.
func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".cdeclrc")
}
