package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/alecthomas/repr"
	"github.com/coreos/pkg/capnslog"
	"github.com/pontaoski/haumea/ast"
	"github.com/pontaoski/haumea/codegen"
	"github.com/pontaoski/haumea/lexer"
	"github.com/pontaoski/haumea/parser"
	"github.com/urfave/cli/v2"
	"github.com/ztrue/tracerr"
)

var plog = capnslog.NewPackageLogger("github.com/pontaoski/haumea", "main")

// parseFiles parses every file into one program, in the order given.
func parseFiles(files ...string) (ast.Program, error) {
	arena := ast.NewArena()
	prog := ast.Program{Arena: arena}

	for _, name := range files {
		handle, err := os.Open(name)
		if err != nil {
			return ast.Program{}, tracerr.Wrap(err)
		}

		p := parser.NewParser(lexer.NewLexer(handle, name), arena)
		err = p.Parse()
		handle.Close()
		if err != nil {
			return ast.Program{}, err
		}

		prog.Functions = append(prog.Functions, p.Functions()...)
	}

	return prog, nil
}

func parseDirectory(pattern string) (ast.Program, error) {
	files, err := filepath.Glob(pattern)
	if err != nil {
		return ast.Program{}, tracerr.Wrap(err)
	}
	if len(files) == 0 {
		return ast.Program{}, tracerr.Errorf("no source files match %s", pattern)
	}
	sort.Strings(files)

	plog.Debugf("sources: %s", strings.Join(files, ", "))
	return parseFiles(files...)
}

func compileFile(name string) (string, error) {
	prog, err := parseFiles(name)
	if err != nil {
		return "", err
	}
	return codegen.Generate(prog)
}

func main() {
	app := &cli.App{
		Name:  "haumea",
		Usage: "haumea to C compiler",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "env-file",
				Value: ".env",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "capnslog level, overrides HAUMEA_LOG_LEVEL",
			},
		},
		Before: func(c *cli.Context) error {
			loaded, err := loadEnvironment(c.String("env-file"))
			if err != nil {
				return err
			}
			if lvl := c.String("log-level"); lvl != "" {
				loaded.LogLevel, err = capnslog.ParseLevel(strings.ToUpper(lvl))
				if err != nil {
					return tracerr.Wrap(err)
				}
			}

			env = loaded
			setupLogging(env.LogLevel)
			return nil
		},
		ExitErrHandler: func(context *cli.Context, err error) {
			if err == nil {
				return
			}
			tracerr.PrintSourceColor(err)
			os.Exit(1)
		},
		Commands: []*cli.Command{
			{
				Name:      "init",
				Usage:     "init a directory",
				ArgsUsage: "<package>",
				Action: func(c *cli.Context) error {
					name := c.Args().First()
					if name == "" {
						return tracerr.New("no package name provided")
					}

					return writeManifest(manifestName, haumeaModule{Package: name})
				},
			},
			{
				Name:      "ast",
				Usage:     "dump the syntax tree of a file",
				ArgsUsage: "<file>",
				Action: func(c *cli.Context) error {
					prog, err := parseFiles(c.Args().First())
					if err != nil {
						return err
					}

					repr.Println(prog.Functions)
					repr.Println(prog.Arena.Statements())
					repr.Println(prog.Arena.Expressions())
					return nil
				},
			},
			{
				Name:      "compile",
				Usage:     "translate a single file to C",
				ArgsUsage: "<file>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
					},
				},
				Action: func(c *cli.Context) error {
					source, err := compileFile(c.Args().First())
					if err != nil {
						return err
					}

					if out := c.String("output"); out != "" {
						return tracerr.Wrap(ioutil.WriteFile(out, []byte(source), 0644))
					}
					fmt.Print(source)
					return nil
				},
			},
			{
				Name:  "build",
				Usage: "build the package in the current directory",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name: "output",
					},
					&cli.BoolFlag{
						Name:  "dump",
						Value: false,
					},
					&cli.StringFlag{
						Name:  "cc",
						Usage: "C compiler, overrides HAUMEA_CC",
					},
				},
				Action: func(c *cli.Context) error {
					doc, err := readManifest(manifestName)
					if err != nil {
						return err
					}

					out := c.String("output")
					if out == "" {
						out = doc.Output
					}

					prog, err := parseDirectory(doc.Sources)
					if err != nil {
						return err
					}

					source, err := codegen.Generate(prog)
					if err != nil {
						return err
					}

					if c.Bool("dump") {
						fmt.Print(source)
						return nil
					}

					fi, err := ioutil.TempFile("", "*.c")
					if err != nil {
						return tracerr.Wrap(err)
					}
					defer os.Remove(fi.Name())
					defer fi.Close()

					if _, err = fi.WriteString(source); err != nil {
						return tracerr.Wrap(err)
					}

					cc := c.String("cc")
					if cc == "" {
						cc = env.CC
					}

					cmd := exec.Command(cc, "-o", out, fi.Name())
					cmd.Stdout = os.Stdout
					cmd.Stderr = os.Stderr

					plog.Infof("building %s with %s", out, cc)
					return tracerr.Wrap(cmd.Run())
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		tracerr.PrintSourceColor(err)
		os.Exit(1)
	}
}
