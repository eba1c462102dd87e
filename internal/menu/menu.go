package menu

import (
	"errors"
	"io"
	"strconv"
	"strings"

	logrus "github.com/sirupsen/logrus"

	"airline_reservation/internal/console"
)

// ErrExit is returned by the Exit item on the main menu. It is the only
// way the dispatch loop terminates normally.
var ErrExit = errors.New("exit requested")

// Item is one selectable menu entry. The set of items per menu is closed
// at wiring time; there is no string-keyed action lookup.
type Item struct {
	Label string
	Run   func() error
}

type Menu struct {
	Title string
	Items []Item
}

// Run renders the menu, reads selections until one is a valid 1-based
// index, executes exactly that item and returns its result. Control then
// goes back to the session loop, which re-evaluates which menu applies.
func (m *Menu) Run(term *console.Console) error {
	term.Printf("\n%s\n%s\n", m.Title, strings.Repeat("-", len(m.Title)))
	for i, item := range m.Items {
		term.Printf("%d. %s\n", i+1, item.Label)
	}

	for {
		choice, err := term.ReadLine("\nEnter your choice: ")
		if err != nil {
			return err
		}
		index, convErr := strconv.Atoi(choice)
		if convErr != nil || index < 1 || index > len(m.Items) {
			term.Println("Invalid choice. Please enter a valid option.")
			continue
		}
		return m.Items[index-1].Run()
	}
}

// System drives the outer dispatch loop: one menu per iteration, picked
// from the current session state.
type System struct {
	Main      *Menu
	Admin     *Menu
	Passenger *Menu

	Session *Session
	Term    *console.Console
}

// Run loops until the Exit item fires or input runs out. Action errors
// other than those two are reported and the loop continues.
func (s *System) Run() {
	for {
		current := s.Main
		switch s.Session.Role {
		case RoleAdmin:
			current = s.Admin
		case RolePassenger:
			current = s.Passenger
		}

		err := current.Run(s.Term)
		switch {
		case err == nil:
		case errors.Is(err, ErrExit):
			return
		case errors.Is(err, io.EOF):
			return
		default:
			logrus.WithError(err).WithField("menu", current.Title).Warn("menu action failed")
			s.Term.Printf("Error: %v\n", err)
		}
	}
}
