// Command pebbles evaluates fixed-width integer expressions.
//
// With arguments, each argument is evaluated as one expression and any
// failure exits nonzero. With no arguments, expressions are read a line at
// a time from stdin; errors are reported and the loop continues.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/sanity-io/litter"
	"github.com/urfave/cli/v2"

	"github.com/ElliotLockerman/pebbles"
)

func main() {
	app := &cli.App{
		Name:      "pebbles",
		Usage:     "fixed-width integer expression calculator",
		ArgsUsage: "[expression ...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "kind",
				Aliases: []string{"k"},
				Value:   "u32",
				Usage:   "integer width and signedness to evaluate at (u8, u16, u32, u64, u128, i8, i16, i32, i64, i128)",
			},
			&cli.StringFlag{
				Name:    "radix",
				Aliases: []string{"r"},
				Value:   "hex",
				Usage:   "alternate output radix, hex or oct",
			},
			&cli.BoolFlag{
				Name:  "ast",
				Usage: "dump parse trees before evaluating",
			},
		},
		HideHelpCommand: true,
		Action:          run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	kind, ok := pebbles.KindNamed(c.String("kind"))
	if !ok {
		return cli.Exit(fmt.Sprintf("unknown kind %q", c.String("kind")), 2)
	}
	radix, ok := pebbles.RadixNamed(c.String("radix"))
	if !ok {
		return cli.Exit(fmt.Sprintf("unknown radix %q", c.String("radix")), 2)
	}
	ev := evaluator{
		ctx:   pebbles.NewContext(kind),
		radix: radix,
		ast:   c.Bool("ast"),
	}

	if c.NArg() > 0 {
		for _, arg := range c.Args().Slice() {
			if err := ev.line(arg); err != nil {
				return cli.Exit(err.Error(), 1)
			}
		}
		return nil
	}
	return ev.repl(os.Stdin)
}

type evaluator struct {
	ctx   *pebbles.Context
	radix pebbles.Radix
	ast   bool
}

// line parses, evaluates, and prints one expression.
func (ev *evaluator) line(src string) error {
	a, err := pebbles.ParseString(src)
	if err != nil {
		return err
	}
	if ev.ast {
		litter.Options{HidePrivateFields: false}.Dump(a)
	}
	v := ev.ctx.Eval(a)
	if v == nil {
		return ev.ctx.Err()
	}
	return pebbles.Fprint(os.Stdout, ev.ctx.Kind(), v, ev.radix)
}

// repl reads expressions from in a line at a time, skipping blank lines and
// reporting errors without stopping.
func (ev *evaluator) repl(in *os.File) error {
	prompt := isatty.IsTerminal(in.Fd()) || isatty.IsCygwinTerminal(in.Fd())
	scan := bufio.NewScanner(in)
	for {
		if prompt {
			fmt.Print("> ")
		}
		if !scan.Scan() {
			break
		}
		line := scan.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := ev.line(line); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
	return scan.Err()
}
