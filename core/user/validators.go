package user

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/gradebook/core"
)

var (
	knownStudentTag  = "knownstudent"
	knownStudentText = "must be the login of a student in the roster"
)

func init() {
	core.Validate.RegisterStructValidation(rosterStructValidation, RosterConfig{})
	core.RegisterCustomTranslation(knownStudentTag, knownStudentText)
}

// rosterStructValidation checks that teachers and parents only reference students of the roster.
func rosterStructValidation(sl validator.StructLevel) {
	rc, ok := sl.Current().Interface().(RosterConfig)
	if !ok {
		return
	}

	known := make(map[string]bool, len(rc.Students))
	for _, s := range rc.Students {
		known[s.Login] = true
	}

	for i, t := range rc.Teachers {
		for j, login := range t.Students {
			if login != "" && !known[login] {
				name := fmt.Sprintf("teachers[%d].students[%d]", i, j)
				sl.ReportError(login, name, name, knownStudentTag, "")
			}
		}
	}
	for i, p := range rc.Parents {
		if p.Child != "" && !known[p.Child] {
			name := fmt.Sprintf("parents[%d].child", i)
			sl.ReportError(p.Child, name, name, knownStudentTag, "")
		}
	}
}
