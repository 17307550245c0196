package main

import (
	"context"
	"log"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/dig"

	"github.com/trezcool/gradebook/apps/cli/console"
	"github.com/trezcool/gradebook/apps/cli/di/dig"
	"github.com/trezcool/gradebook/core"
	"github.com/trezcool/gradebook/core/user"
)

func main() {
	if err := run(dig_container.New(os.Stdin, os.Stdout)); err != nil {
		log.Fatalf("error: %+v", err)
	}
}

func run(c *dig.Container) error {
	return c.Invoke(func(conf *core.Config, logger core.Logger, svc *user.Service, session *console.Session) error {
		ctx := context.Background()
		if err := seed(ctx, conf, svc); err != nil {
			logger.Error("seeding roster", err)
			return err
		}

		counts, err := svc.RoleCounts(ctx)
		if err != nil {
			return err
		}
		logger.Info(conf.AppName+" started", map[string]interface{}{
			"env":      conf.Env,
			"students": counts[user.RoleStudent],
			"teachers": counts[user.RoleTeacher],
			"parents":  counts[user.RoleParent],
		})

		if err := session.Run(ctx); err != nil {
			return err
		}
		logger.Info(conf.AppName + " exited")
		return nil
	})
}

func seed(ctx context.Context, conf *core.Config, svc *user.Service) error {
	roster := user.DefaultRoster()
	if conf.RosterFile != "" {
		var err error
		if roster, err = user.LoadRoster(conf.RosterFile); err != nil {
			return err
		}
	}
	return errors.Wrap(svc.Seed(ctx, roster), "seeding roster")
}
