package dig_container

import (
	"io"
	"log"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/dig"

	"github.com/trezcool/gradebook/apps/cli/console"
	"github.com/trezcool/gradebook/core"
	"github.com/trezcool/gradebook/core/user"
	logsvc "github.com/trezcool/gradebook/services/logger"
	"github.com/trezcool/gradebook/storage/database/inmem"
)

func newLogger(conf *core.Config) core.Logger {
	return logsvc.New(os.Stderr, conf)
}

// New returns a new dependency injection dig.Container for a console reading in and writing out.
func New(in io.Reader, out io.Writer) *dig.Container {
	c := dig.New()

	must(c.Provide(core.NewConfig))
	must(c.Provide(newLogger))
	must(c.Provide(inmemdb.Open))
	must(c.Provide(inmemdb.NewAccountRepository))
	must(c.Provide(user.NewService))
	must(c.Provide(func(conf *core.Config) *console.Terminal {
		return console.NewTerminal(in, out, conf.Console.MaskPassword)
	}))
	must(c.Provide(console.NewDirectory))
	must(c.Provide(console.NewSession))

	return c
}

// must exits program if err happened
func must(err error) {
	if err != nil {
		log.Fatal(errors.Wrap(err, "failed to provide dependency").Error())
	}
}
