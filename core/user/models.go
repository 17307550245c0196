package user

import (
	"github.com/pkg/errors"

	"github.com/trezcool/gradebook/core/grade"
)

type Role string

// Roles
const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleParent  Role = "parent"
)

var (
	AllRoles = []Role{RoleStudent, RoleTeacher, RoleParent}

	ErrInvalidRole = errors.New("invalid role")
)

func ParseRole(s string) (Role, error) {
	for _, r := range AllRoles {
		if string(r) == s {
			return r, nil
		}
	}
	return "", errors.Wrapf(ErrInvalidRole, "%q", s)
}

func (r Role) String() string { return string(r) }

// Account is any registered user of the Directory.
type Account interface {
	Login() string
	Role() Role
	Authenticate(login, password string) bool
}

// Identity is an immutable login/password/role triple.
type Identity struct {
	login    string
	password string
	role     Role
}

func NewIdentity(login, password string, role Role) Identity {
	return Identity{login: login, password: password, role: role}
}

func (id Identity) Login() string { return id.login }
func (id Identity) Role() Role    { return id.role }

// Authenticate reports whether both login and password match exactly.
func (id Identity) Authenticate(login, password string) bool {
	return login == id.login && password == id.password
}

type Student struct {
	Identity
	Grades *grade.Set
}

func NewStudent(login, password string, grades ...int) *Student {
	return &Student{
		Identity: NewIdentity(login, password, RoleStudent),
		Grades:   grade.New(grades...),
	}
}

// AddGrade appends v to the student's grades; out of range values are ignored.
func (s *Student) AddGrade(v int) {
	s.Grades.Add(v)
}

// Teacher sees the grades of the students it was given.
// The students are shared with the Directory and are never modified through a Teacher.
type Teacher struct {
	Identity
	students []*Student
}

func NewTeacher(login, password string, students ...*Student) *Teacher {
	return &Teacher{
		Identity: NewIdentity(login, password, RoleTeacher),
		students: append([]*Student(nil), students...),
	}
}

func (t *Teacher) Students() []*Student {
	return append([]*Student(nil), t.students...)
}

// Student returns the student at the 1-based position idx.
func (t *Teacher) Student(idx int) (*Student, bool) {
	if idx < 1 || idx > len(t.students) {
		return nil, false
	}
	return t.students[idx-1], true
}

// ClassAverage is the mean of the students' averages, 0 without students.
func (t *Teacher) ClassAverage() float64 {
	if len(t.students) == 0 {
		return 0
	}
	var sum float64
	for _, s := range t.students {
		sum += s.Grades.Average()
	}
	return sum / float64(len(t.students))
}

type Parent struct {
	Identity
	child *Student
}

func NewParent(login, password string, child *Student) *Parent {
	return &Parent{
		Identity: NewIdentity(login, password, RoleParent),
		child:    child,
	}
}

func (p *Parent) Child() *Student { return p.child }

var (
	_ Account = (*Student)(nil) // interface compliance checks
	_ Account = (*Teacher)(nil)
	_ Account = (*Parent)(nil)
)
