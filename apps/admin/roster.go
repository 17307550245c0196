package main

import (
	"context"
	"fmt"

	"github.com/trezcool/gradebook/core"
	"github.com/trezcool/gradebook/core/grade"
	"github.com/trezcool/gradebook/core/user"
	"github.com/trezcool/gradebook/storage/database/inmem"
)

// loadRoster seeds a fresh in-memory Directory with the roster at path (built-in one if empty).
func (cli *commandLine) loadRoster(ctx context.Context, path string) (user.RosterConfig, *user.Service, error) {
	roster := user.DefaultRoster()
	if path != "" {
		var err error
		if roster, err = user.LoadRoster(path); err != nil {
			return roster, nil, err
		}
	}

	db, err := inmemdb.Open()
	if err != nil {
		return roster, nil, err
	}
	svc := user.NewService(inmemdb.NewAccountRepository(db), &core.Config{Console: core.ConsoleConfig{MatchAll: true}}, cli.log)
	if err := svc.Seed(ctx, roster); err != nil {
		return roster, nil, err
	}
	return roster, svc, nil
}

func (cli *commandLine) checkRoster(path string) error {
	ctx := context.Background()
	roster, svc, err := cli.loadRoster(ctx, path)
	if err != nil {
		if vErr, ok := err.(*core.ValidationError); ok {
			for _, f := range vErr.Fields {
				fmt.Fprintf(cli.out, "%s: %s\n", f.Field, f.Error)
			}
		}
		return err
	}

	counts, err := svc.RoleCounts(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "ok: %d students, %d teachers, %d parents\n",
		counts[user.RoleStudent], counts[user.RoleTeacher], counts[user.RoleParent])
	var dropped int
	for _, s := range roster.Students {
		for _, g := range s.Grades {
			if !grade.Valid(g) {
				dropped++
			}
		}
	}
	if dropped > 0 {
		fmt.Fprintf(cli.out, "%d out of range grades dropped\n", dropped)
	}
	return nil
}

func (cli *commandLine) report(path string) error {
	ctx := context.Background()
	_, svc, err := cli.loadRoster(ctx, path)
	if err != nil {
		return err
	}
	accounts, err := svc.QueryAll(ctx)
	if err != nil {
		return err
	}

	for _, acc := range accounts {
		switch acc := acc.(type) {
		case *user.Student:
			fmt.Fprintf(cli.out, "student %s: %s\n", acc.Login(), acc.Grades.Stats())
		case *user.Teacher:
			fmt.Fprintf(cli.out, "teacher %s: %d students, class average %s\n",
				acc.Login(), len(acc.Students()), grade.FormatFloat(acc.ClassAverage()))
		case *user.Parent:
			fmt.Fprintf(cli.out, "parent %s: child %s\n", acc.Login(), acc.Child().Login())
		}
	}
	return nil
}
