package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/urfave/cli/v2"

	"github.com/predoehl/splaytree/splay"
	"github.com/predoehl/splaytree/splaydot"
)

const replHelp = `Key:  N represents a decimal integer
      S represents a nonempty string not containing whitespace

in N S  Insert record (N,S) into tree (as multiset).
up N S  Update record with key N, now associating it with S.
er N    Erase one record with key N from tree (if any).
fi N    Find key N once, print its associated string.
min     Find and print the minimum key in the tree.
max     Find and print the maximum key in the tree.
prn     Print tree contents, in freeform human-readable format.
dot     Write tree contents to file in DOT format -- see graphviz(1).
check   Run the structural health check and report the outcome.
x       Exit
help    Show this list of commands
`

var replCmd = &cli.Command{
	Name:  "repl",
	Usage: "interactive line-command interpreter over a single tree",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "dot-prefix",
			Usage: "filename prefix for files written by the dot command",
			Value: "tree",
		},
	},
	Action: func(cctx *cli.Context) error {
		rl, err := readline.NewEx(&readline.Config{
			Prompt: "splay> ",
			AutoComplete: readline.NewPrefixCompleter(
				readline.PcItem("in"),
				readline.PcItem("up"),
				readline.PcItem("er"),
				readline.PcItem("fi"),
				readline.PcItem("min"),
				readline.PcItem("max"),
				readline.PcItem("prn"),
				readline.PcItem("dot"),
				readline.PcItem("check"),
				readline.PcItem("help"),
				readline.PcItem("x"),
			),
		})
		if err != nil {
			return err
		}
		defer rl.Close()

		r := &repl{
			tree:      splay.New[int, string](),
			out:       os.Stdout,
			dotPrefix: cctx.String("dot-prefix"),
			dotSeq:    1000,
		}
		fmt.Fprintln(r.out, "Enter 'help' for a list of commands.")

		for {
			line, err := rl.Readline()
			if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				return err
			}
			quit, err := r.execute(strings.Fields(line))
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
			// The interpreter doubles as a consistency oracle for the
			// container: verify the tree after every command.
			if err := r.tree.HealthCheck(); err != nil {
				return fmt.Errorf("health check failed after command: %w", err)
			}
		}
	},
}

// repl holds the interpreter state. The dot output counter lives here,
// threaded through the session rather than sitting in package scope.
type repl struct {
	tree      *splay.Tree[int, string]
	out       io.Writer
	dotPrefix string
	dotSeq    int
}

// execute runs one whitespace-split command line. Malformed input is
// reported and the session continues; the returned bool signals an exit
// request, and a non-nil error aborts the session.
func (r *repl) execute(args []string) (bool, error) {
	if len(args) == 0 {
		return false, nil
	}
	cmd, args := args[0], args[1:]

	switch cmd {
	case "in":
		k, s, err := keyAndString(args)
		if err != nil {
			fmt.Fprintf(r.out, "Error: %v for command %s\n", err, cmd)
			return false, nil
		}
		r.tree.Insert(k, s)

	case "up":
		k, s, err := keyAndString(args)
		if err != nil {
			fmt.Fprintf(r.out, "Error: %v for command %s\n", err, cmd)
			return false, nil
		}
		if !r.tree.Update(k, s) {
			fmt.Fprintln(r.out, "Warning: update failed")
		}

	case "er":
		k, err := keyOnly(args)
		if err != nil {
			fmt.Fprintf(r.out, "Error: %v for command %s\n", err, cmd)
			return false, nil
		}
		if _, ok := r.tree.Erase(k); !ok {
			fmt.Fprintln(r.out, "Warning: erase failed")
		}

	case "fi":
		k, err := keyOnly(args)
		if err != nil {
			fmt.Fprintf(r.out, "Error: %v for command %s\n", err, cmd)
			return false, nil
		}
		r.printResult(r.tree.Find(k))

	case "min":
		r.printResult(r.tree.Min())

	case "max":
		r.printResult(r.tree.Max())

	case "prn":
		r.tree.Dump(r.out)

	case "dot":
		return false, r.writeDot()

	case "check":
		if err := r.tree.HealthCheck(); err != nil {
			fmt.Fprintf(r.out, "unhealthy: %v\n", err)
		} else {
			fmt.Fprintln(r.out, "healthy")
		}

	case "help":
		fmt.Fprint(r.out, replHelp)

	case "x":
		return true, nil

	default:
		fmt.Fprintln(r.out, "Warning: unrecognized command (enter 'help' for a list)")
	}
	return false, nil
}

func (r *repl) printResult(res splay.Result[int, string]) {
	if res.Found {
		fmt.Fprintf(r.out, "present\nkey = %d, value = %s\n", res.Key, res.Value)
	} else {
		fmt.Fprintln(r.out, "absent")
	}
}

func (r *repl) writeDot() error {
	r.dotSeq++
	name := fmt.Sprintf("%s%d.dot", r.dotPrefix, r.dotSeq)
	fmt.Fprintf(r.out, "Writing to file %s\n", name)
	return writeDotFile(name, r.tree)
}

func writeDotFile(name string, t *splay.Tree[int, string]) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := splaydot.Write(f, t); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func keyOnly(args []string) (int, error) {
	if len(args) != 1 {
		return 0, errors.New("cannot scan integer argument")
	}
	return strconv.Atoi(args[0])
}

func keyAndString(args []string) (int, string, error) {
	if len(args) != 2 || args[1] == "" {
		return 0, "", errors.New("cannot scan integer and string arguments")
	}
	k, err := strconv.Atoi(args[0])
	return k, args[1], err
}
