// Package shell implements the interactive contact menu. It reads choices
// and field values line by line, drives a types.Store, and reports every
// outcome to the user. Store code never prints; all output happens here.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/contacts/pkg/types"
)

// State is a state of the menu loop.
type State int

// Menu loop states. StateExit is terminal.
const (
	StateMenu State = iota
	StateAdd
	StateEdit
	StateDelete
	StateList
	StateExit
)

var stateNames = map[State]string{
	StateMenu:   "menu",
	StateAdd:    "add",
	StateEdit:   "edit",
	StateDelete: "delete",
	StateList:   "list",
	StateExit:   "exit",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// menuChoices maps menu numbers to the state they select.
var menuChoices = map[int]State{
	1: StateAdd,
	2: StateEdit,
	3: StateDelete,
	4: StateList,
	5: StateExit,
}

// Shell runs the menu loop against a store.
type Shell struct {
	store     types.Store
	in        *bufio.Reader
	out       io.Writer
	separator string
	log       *zap.SugaredLogger
}

// Option configures a Shell.
type Option func(*Shell)

// WithSeparator sets the line printed after every outcome.
func WithSeparator(sep string) Option {
	return func(s *Shell) {
		s.separator = sep
	}
}

// WithLogger sets the logger used for state transitions and backend errors.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(s *Shell) {
		if log != nil {
			s.log = log
		}
	}
}

// New creates a shell reading from in and writing to out.
func New(store types.Store, in io.Reader, out io.Writer, opts ...Option) *Shell {
	s := &Shell{
		store:     store,
		in:        bufio.NewReader(in),
		out:       out,
		separator: types.DefaultSeparator,
		log:       zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run loops until the user selects Exit or input ends, both of which return
// nil. It returns ctx.Err() if ctx is done before the next menu is shown.
func (s *Shell) Run(ctx context.Context) error {
	state := StateMenu
	for state != StateExit {
		if err := ctx.Err(); err != nil {
			return err
		}

		next, err := s.step(state)
		if errors.Is(err, io.EOF) {
			s.log.Debugw("input closed", "state", state.String())
			return nil
		}
		if err != nil {
			return err
		}
		if next != state {
			s.log.Debugw("transition", "from", state.String(), "to", next.String())
		}
		state = next
	}
	return nil
}

// step executes one state and returns the next.
func (s *Shell) step(state State) (State, error) {
	switch state {
	case StateMenu:
		return s.menu()
	case StateAdd:
		return StateMenu, s.add()
	case StateEdit:
		return StateMenu, s.edit()
	case StateDelete:
		return StateMenu, s.delete()
	case StateList:
		return StateMenu, s.list()
	default:
		return StateExit, nil
	}
}

func (s *Shell) menu() (State, error) {
	fmt.Fprint(s.out, menuText)
	line, err := s.prompt(promptChoice)
	if err != nil {
		return StateMenu, err
	}
	n, ok := parseInt(line)
	next, known := menuChoices[n]
	if !ok || !known {
		s.report(msgInvalidMenu)
		return StateMenu, nil
	}
	return next, nil
}

func (s *Shell) add() error {
	fmt.Fprintln(s.out, msgEnterDetails)
	in, err := s.readComponent()
	if err != nil {
		return err
	}
	if err := s.store.Add(in.Build()); err != nil {
		s.fail("add", err)
		return nil
	}
	s.report(msgAdded)
	return nil
}

func (s *Shell) edit() error {
	index, ok, err := s.readIndex(promptEditIndex)
	if err != nil || !ok {
		return err
	}
	in, err := s.readComponent()
	if err != nil {
		return err
	}
	if err := s.store.EditByIndex(index-1, in.Build()); err != nil {
		s.fail("edit", err)
		return nil
	}
	s.report(msgEdited)
	return nil
}

func (s *Shell) delete() error {
	index, ok, err := s.readIndex(promptDeleteIndex)
	if err != nil || !ok {
		return err
	}
	if err := s.store.DeleteByIndex(index - 1); err != nil {
		s.fail("delete", err)
		return nil
	}
	s.report(msgDeleted)
	return nil
}

func (s *Shell) list() error {
	entries, err := s.store.ShowAll()
	if err != nil {
		s.fail("list", err)
		return nil
	}
	fmt.Fprintln(s.out, msgListHeader)
	for _, e := range entries {
		s.report("Component " + e.String())
	}
	return nil
}

// readIndex prompts for a 1-based index. A non-integer answer is reported
// and returns ok=false.
func (s *Shell) readIndex(prompt string) (index int, ok bool, err error) {
	line, err := s.prompt(prompt)
	if err != nil {
		return 0, false, err
	}
	index, ok = parseInt(line)
	if !ok {
		s.report(msgInvalidIndexText)
		return 0, false, nil
	}
	return index, true, nil
}

// readComponent asks for a component type and its fields. It only gathers
// values; ComponentInput.Build constructs the component.
func (s *Shell) readComponent() (ComponentInput, error) {
	fmt.Fprint(s.out, typeMenuText)
	line, err := s.prompt(promptChoice)
	if err != nil {
		return ComponentInput{}, err
	}
	kind, ok := parseKind(line)
	if !ok {
		fmt.Fprintln(s.out, msgDefaultUser)
	}

	in := ComponentInput{Kind: kind}
	if kind == types.KindUser {
		if in.FirstName, err = s.prompt(promptFirstName); err != nil {
			return ComponentInput{}, err
		}
		if in.LastName, err = s.prompt(promptLastName); err != nil {
			return ComponentInput{}, err
		}
	}
	if in.PhoneNumber, err = s.prompt(promptPhoneNumber); err != nil {
		return ComponentInput{}, err
	}
	return in, nil
}

// prompt writes text and reads one line, without its line terminator.
// A final line lacking a newline is returned normally; io.EOF is returned
// only when no input remains.
func (s *Shell) prompt(text string) (string, error) {
	fmt.Fprint(s.out, text)
	line, err := s.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(s.out)
			return "", io.EOF
		}
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// report prints msg followed by the separator line.
func (s *Shell) report(msg string) {
	fmt.Fprintln(s.out, msg)
	fmt.Fprintln(s.out, s.separator)
}

// fail reports a store error. An out-of-range index is expected user input;
// anything else is a backend failure and is logged.
func (s *Shell) fail(op string, err error) {
	if errors.Is(err, types.ErrInvalidIndex) {
		s.report(msgIndexNotFound)
		return
	}
	s.log.Warnw("store operation failed", "op", op, "error", err)
	s.report("Error: " + err.Error())
}
