package main

import (
	"log"
	"os"

	"github.com/spf13/afero"

	"github.com/eduflowhq/eduflow/core"
	"github.com/eduflowhq/eduflow/core/session"
	"github.com/eduflowhq/eduflow/core/user"
	"github.com/eduflowhq/eduflow/storage/fixture"
	"github.com/eduflowhq/eduflow/storage/kv"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf := core.NewConfig()

	db, err := fixture.Open()
	errAndDie(err)

	store := session.NewStore(session.Deps{
		KV:     kv.NewFileStore(afero.NewOsFs(), conf.KV.Path),
		Seed:   fixture.NewUserDirectory(db),
		Notifs: fixture.NewNotificationRepository(db),
		Scheme: user.SchemeFromName(conf.PasswordScheme),
	})

	// start CLI
	cli := commandLine{
		store: store,
		seed:  fixture.NewUserDirectory(db),
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
