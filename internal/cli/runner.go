package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/store"
	"github.com/idilsaglam/todolist/internal/store/jsonseed"
	"github.com/idilsaglam/todolist/internal/ui"
)

// Options tune output behavior from root flags.
type Options struct {
	Group bool // list grouped by pending/done
	JSON  bool // ls prints the snapshot as JSON
}

// Runner dispatches subcommands against one in-process store.
type Runner struct {
	Store  *store.TodoStore
	Logger *zap.Logger

	In       io.Reader
	Out, Err io.Writer

	// Interactive runs the full-screen list; injected so tests can stub it.
	Interactive func(*store.TodoStore, *zap.Logger) error

	Options Options
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
// No arguments opens the interactive list.
func (r *Runner) Run(args []string) int {
	if r.Logger == nil {
		r.Logger = zap.NewNop()
	}
	if len(args) == 0 {
		return r.doInteractive()
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(r.Out)
		return 0

	case "tui":
		return r.doInteractive()

	case "ls":
		if len(a) != 0 {
			ui.Fail(r.Err, "usage: todo ls")
			return 2
		}
		if err := r.list(); err != nil {
			ui.Fail(r.Err, "ls: "+err.Error())
			return 1
		}
		return 0

	case "run":
		if len(a) != 0 {
			ui.Fail(r.Err, "usage: todo run < commands.txt")
			return 2
		}
		return r.doScript()
	}

	ui.Fail(r.Err, "unknown subcommand: "+cmd)
	fmt.Fprintln(r.Err)
	PrintHelp(r.Err)
	return 2
}

func PrintHelp(w io.Writer) {
	fmt.Fprint(w, `todo - a tiny todo list

Usage:
  todo [flags] [subcommand]

Subcommands:
  tui        Interactive list (default)
  ls         Print the list once
  run        Read commands from stdin and apply them in order:
               add <task...> | toggle <id> | rm <id> | ls | status

Flags:
  -group            group ls output by pending/done
  -json             ls prints JSON
  -theme <name>     classic, neon or mono
  -seed <file>      start from a JSON seed instead of the built-in items
  -color/-no-color  force or disable colour

Examples:
  todo
  todo -group ls
  printf 'add Buy milk\ntoggle 2\nstatus\n' | todo run
`)
}

// -------------- subcommand impls ----------------

func (r *Runner) doInteractive() int {
	if r.Interactive == nil {
		ui.Fail(r.Err, "interactive mode unavailable")
		return 1
	}
	if err := r.Interactive(r.Store, r.Logger); err != nil {
		r.Logger.Error("interactive list failed", zap.Error(err))
		ui.Fail(r.Err, "tui: "+err.Error())
		return 1
	}
	return 0
}

func (r *Runner) list() error {
	items := r.Store.Snapshot()
	if r.Options.JSON {
		return jsonseed.Encode(r.Out, items)
	}

	t := ui.Current()
	d, total := r.Store.CompletionCount()
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		ui.C(t.Title, "Todo List"),
		ui.C(t.Success, "✔"), d,
		ui.C(t.Pending, "•"), total-d,
		ui.C(t.Accent, "Total"), total,
	)

	var lines []string
	lines = append(lines, header)
	lines = append(lines, ui.C(t.Muted, ui.ProgressBar(d, total, 28)))
	lines = append(lines, "")

	if r.Options.Group {
		lines = append(lines, groupLines(items)...)
	} else {
		lines = append(lines, flatLines(items)...)
	}
	lines = append(lines, "")
	lines = append(lines, ui.StatusLine(d, total))
	return ui.Panel(r.Out, lines)
}

// doScript applies one command per line. Bad lines are reported and
// skipped. The exit code is 1 if any line failed to write its output,
// else 2 if any line was rejected.
func (r *Runner) doScript() int {
	code := 0
	br := bufio.NewReader(r.In)
	for n := 1; ; n++ {
		raw, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			ui.Fail(r.Err, "read: "+err.Error())
			return 1
		}

		if line := strings.TrimSpace(raw); line != "" && !strings.HasPrefix(line, "#") {
			if xerr := r.exec(line); xerr != nil {
				ui.Fail(r.Err, fmt.Sprintf("line %d: %v", n, xerr))
				switch {
				case errors.Is(xerr, errOutput):
					code = 1
				case code == 0:
					code = 2
				}
			}
		}

		if err != nil { // io.EOF
			return code
		}
	}
}

var (
	errUsage  = errors.New("usage")
	errOutput = errors.New("output failed")
)

func (r *Runner) exec(line string) error {
	cmd, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch cmd {
	case "add":
		it, err := r.Store.Add(rest)
		if err != nil {
			return fmt.Errorf("add: %w", err)
		}
		ui.OK(r.Out, fmt.Sprintf("added #%d %s", it.ID, it.Task))

	case "toggle", "done":
		id, err := parseID(cmd, rest)
		if err != nil {
			return err
		}
		if _, ok := r.Store.Get(id); !ok {
			r.noSuchItem(id)
			return nil
		}
		r.Store.Toggle(id)
		ui.OK(r.Out, fmt.Sprintf("toggled #%d", id))

	case "rm", "delete":
		id, err := parseID(cmd, rest)
		if err != nil {
			return err
		}
		if _, ok := r.Store.Get(id); !ok {
			r.noSuchItem(id)
			return nil
		}
		r.Store.Delete(id)
		ui.OK(r.Out, fmt.Sprintf("removed #%d", id))

	case "ls":
		if err := r.list(); err != nil {
			return fmt.Errorf("ls: %w: %w", errOutput, err)
		}

	case "status":
		d, total := r.Store.CompletionCount()
		fmt.Fprintln(r.Out, ui.StatusLine(d, total))

	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

// Unknown ids leave the list unchanged; this is a hint, not an error.
func (r *Runner) noSuchItem(id int) {
	fmt.Fprintln(r.Out, ui.C(ui.Current().Muted, fmt.Sprintf("no item #%d (unchanged)", id)))
}

func parseID(cmd, s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: %s <id>", errUsage, cmd)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s: not a number: %s", cmd, s)
	}
	return n, nil
}

// -------------- rendering helpers --------------

func flatLines(items []model.Item) []string {
	if len(items) == 0 {
		return []string{ui.C(ui.Current().Muted, "no items")}
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, ui.ItemLine(it))
	}
	return out
}

func groupLines(items []model.Item) []string {
	var pend, done []model.Item
	for _, it := range items {
		if it.Done {
			done = append(done, it)
		} else {
			pend = append(pend, it)
		}
	}
	var lines []string
	lines = append(lines, ui.C(ui.Current().Accent, "Pending"))
	if len(pend) == 0 {
		lines = append(lines, ui.C(ui.Current().Muted, "(none)"))
	} else {
		lines = append(lines, flatLines(pend)...)
	}
	lines = append(lines, "")
	lines = append(lines, ui.C(ui.Current().Accent, "Done"))
	if len(done) == 0 {
		lines = append(lines, ui.C(ui.Current().Muted, "(none)"))
	} else {
		lines = append(lines, flatLines(done)...)
	}
	return lines
}
