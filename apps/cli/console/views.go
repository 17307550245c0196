package console

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/trezcool/gradebook/core/grade"
	"github.com/trezcool/gradebook/core/user"
)

var ErrNoView = errors.New("no view for account")

// View is the interactive menu of a logged in account.
// Interact blocks until the user picks 0 (logout).
type View interface {
	Interact(ctx context.Context, term *Terminal) error
}

func NewView(acc user.Account) (View, error) {
	switch acc := acc.(type) {
	case *user.Student:
		return &studentView{student: acc}, nil
	case *user.Teacher:
		return &teacherView{teacher: acc}, nil
	case *user.Parent:
		return &parentView{parent: acc}, nil
	default:
		return nil, errors.Wrapf(ErrNoView, "%s (%s)", acc.Login(), acc.Role())
	}
}

type (
	action struct {
		key   int
		label string
		run   func(ctx context.Context, term *Terminal) error
	}

	menu struct {
		title   string
		actions []action
	}
)

func (m menu) options() string {
	opts := make([]string, 0, len(m.actions)+1)
	for _, a := range m.actions {
		opts = append(opts, fmt.Sprintf("%d) %s", a.key, a.label))
	}
	opts = append(opts, "0) Logout")
	return strings.Join(opts, "  ")
}

// loop shows the menu until 0 is picked. Non numeric and unknown choices show the menu again.
func (m menu) loop(ctx context.Context, term *Terminal) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		choice, ok, err := term.ReadInt(fmt.Sprintf("\n--- %s ---\n%s\n> ", m.title, m.options()))
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		if choice == 0 {
			return nil
		}
		for _, a := range m.actions {
			if a.key == choice {
				if err := a.run(ctx, term); err != nil {
					return err
				}
				break
			}
		}
	}
}

func formatGrades(vals []int) string {
	var sb strings.Builder
	for _, v := range vals {
		sb.WriteString(strconv.Itoa(v))
		sb.WriteByte(' ')
	}
	return sb.String()
}

func showGrades(s *user.Student, term *Terminal) error {
	term.Printf("Grades: %s\n", formatGrades(s.Grades.Values()))
	return term.Pause()
}

func showStats(s *user.Student, term *Terminal) error {
	term.Println(s.Grades.Stats())
	return term.Pause()
}

type studentView struct {
	student *user.Student
}

func (v *studentView) Interact(ctx context.Context, term *Terminal) error {
	return menu{
		title: "Student (" + v.student.Login() + ")",
		actions: []action{
			{key: 1, label: "Grades", run: func(_ context.Context, term *Terminal) error {
				return showGrades(v.student, term)
			}},
			{key: 2, label: "Stats", run: func(_ context.Context, term *Terminal) error {
				return showStats(v.student, term)
			}},
			{key: 3, label: "Add grade", run: v.addGrade},
		},
	}.loop(ctx, term)
}

// addGrade silently ignores non numeric and out of range grades.
func (v *studentView) addGrade(_ context.Context, term *Terminal) error {
	g, ok, err := term.ReadInt(fmt.Sprintf("Grade (%d-%d): ", grade.Min, grade.Max))
	if err != nil {
		return err
	}
	if ok {
		v.student.AddGrade(g)
	}
	return nil
}

type teacherView struct {
	teacher *user.Teacher
}

func (v *teacherView) Interact(ctx context.Context, term *Terminal) error {
	return menu{
		title: "Teacher (" + v.teacher.Login() + ")",
		actions: []action{
			{key: 1, label: "Per-student", run: v.perStudent},
			{key: 2, label: "Class avg", run: v.classAverage},
		},
	}.loop(ctx, term)
}

// perStudent prints nothing for an unknown pick.
func (v *teacherView) perStudent(_ context.Context, term *Terminal) error {
	for i, s := range v.teacher.Students() {
		term.Printf("%d) %s\n", i+1, s.Login())
	}
	idx, ok, err := term.ReadInt("Pick:")
	if err != nil {
		return err
	}
	if ok {
		if s, found := v.teacher.Student(idx); found {
			term.Println(s.Grades.Stats())
		}
	}
	return term.Pause()
}

func (v *teacherView) classAverage(_ context.Context, term *Terminal) error {
	term.Printf("Class average:%s\n", grade.FormatFloat(v.teacher.ClassAverage()))
	return term.Pause()
}

type parentView struct {
	parent *user.Parent
}

func (v *parentView) Interact(ctx context.Context, term *Terminal) error {
	return menu{
		title: "Parent (" + v.parent.Login() + ")",
		actions: []action{
			{key: 1, label: "Child grades", run: func(_ context.Context, term *Terminal) error {
				return showGrades(v.parent.Child(), term)
			}},
			{key: 2, label: "Child stats", run: func(_ context.Context, term *Terminal) error {
				return showStats(v.parent.Child(), term)
			}},
		},
	}.loop(ctx, term)
}
