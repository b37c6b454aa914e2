package console

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/jaminalder/noughts/internal/app"
	"github.com/jaminalder/noughts/internal/domain"
)

const helpText = `commands:
  move <A1..C3>    play a move for the side to move
  go               let the computer move now
  new              start a new game (auto-play off)
  auto <O|X|off>   computer plays that side
  undo             take back the last move (and the reply in auto-play)
  test             apply and undo every legal move, showing each board
  help             show this text
  quit             leave`

// Config controls presentation only.
type Config struct {
	Color  bool
	Prompt bool
}

// Console drives a Session from line-based commands.
type Console struct {
	sess   *app.Session
	out    io.Writer
	render *Renderer
	cfg    Config
	log    *slog.Logger
}

// New returns a console writing to out.
func New(sess *app.Session, out io.Writer, cfg Config, logger *slog.Logger) *Console {
	if logger == nil {
		logger = slog.Default()
	}
	return &Console{
		sess:   sess,
		out:    out,
		render: NewRenderer(out, cfg.Color),
		cfg:    cfg,
		log:    logger,
	}
}

// Run reads commands until EOF or quit. Bad commands are reported and the
// loop continues.
func (c *Console) Run(in io.Reader) error {
	sc := bufio.NewScanner(in)
	for {
		c.showBoard(c.sess.State().Position)
		fmt.Fprintln(c.out)
		if c.cfg.Prompt {
			fmt.Fprint(c.out, "> ")
		}
		if !sc.Scan() {
			return sc.Err()
		}
		if quit := c.Exec(sc.Text()); quit {
			return nil
		}
	}
}

// Exec runs a single command line. It reports whether the user asked to quit.
func (c *Console) Exec(line string) bool {
	args := strings.Fields(line)
	if len(args) == 0 {
		return false
	}
	c.log.Debug("command", "line", line)
	cmd, args := strings.ToLower(args[0]), args[1:]
	switch {
	case cmd == "move" && len(args) == 1:
		if _, err := c.sess.Play(args[0]); err != nil {
			c.fail(err)
			return false
		}
		c.afterMove()
	case cmd == "go" && len(args) == 0:
		c.computerMove()
	case cmd == "new" && len(args) == 0:
		fmt.Fprintln(c.out, "Initialising new game.")
		fmt.Fprintln(c.out)
		c.sess.NewGame()
	case cmd == "auto" && len(args) == 1:
		side, err := domain.ParseSide(args[0])
		if err != nil {
			c.fail(err)
			return false
		}
		c.sess.SetAuto(side)
		if c.sess.ComputerToMove() {
			c.computerMove()
		}
	case cmd == "undo" && len(args) == 0:
		c.undo()
	case cmd == "test" && len(args) == 0:
		c.test()
	case cmd == "help" && len(args) == 0:
		fmt.Fprintln(c.out, helpText)
	case (cmd == "quit" || cmd == "exit") && len(args) == 0:
		return true
	default:
		c.fail(fmt.Errorf("unrecognised command %q (try help)", line))
	}
	return false
}

func (c *Console) afterMove() {
	if c.reportEnd() {
		return
	}
	if c.sess.ComputerToMove() {
		c.computerMove()
	}
}

func (c *Console) computerMove() {
	if c.sess.Outcome().Over() {
		c.fail(app.ErrGameOver)
		return
	}
	fmt.Fprintln(c.out, "Thinking... ")
	m, err := c.sess.Think()
	if err != nil {
		c.fail(err)
		return
	}
	fmt.Fprintf(c.out, "I move %s\n", m)
	c.afterMove()
}

// undo takes back moves until the human's side is on move again. With
// nothing left to take back and the computer on move, it replies instead.
func (c *Console) undo() {
	m, err := c.sess.Undo()
	if err != nil {
		c.fail(err)
		return
	}
	fmt.Fprintf(c.out, "Took back %s\n", m)
	if !c.sess.ComputerToMove() {
		return
	}
	if m, err = c.sess.Undo(); err == nil {
		fmt.Fprintf(c.out, "Took back %s\n", m)
		return
	}
	c.computerMove()
}

func (c *Console) reportEnd() bool {
	o := c.sess.Outcome()
	if !o.Over() {
		return false
	}
	fmt.Fprintf(c.out, "Game over: %s\n", o)
	return true
}

// test applies and undoes each legal move on a copy of the current position.
func (c *Console) test() {
	p := c.sess.State().Position
	for _, m := range domain.ListMoves(p.Available()) {
		fmt.Fprintln(c.out, strings.Repeat("-", 40))
		c.showBoard(p)
		fmt.Fprintf(c.out, "test move %s\n", m)
		p.Apply(m)
		c.showBoard(p)
		fmt.Fprintln(c.out, "unmake move")
		p.Undo(m)
		c.showBoard(p)
	}
}

func (c *Console) showBoard(p domain.Position) {
	fmt.Fprintln(c.out, c.render.Board(p))
}

func (c *Console) fail(err error) {
	c.log.Debug("command rejected", "err", err)
	fmt.Fprintf(c.out, "error: %v\n", err)
}
