package main

import (
	"github.com/pkg/errors"

	"github.com/pgkhata/pgkhata/storage/database"
)

var (
	gooseRunFunc = database.Migrate // mockable

	errNoDatabase = errors.New("migrations require the postgres database engine")
)

// migrate runs a goose command against the embedded migrations, e.g: `migrate up-to 3`.
func (cli *commandLine) migrate(args []string) error {
	if cli.db == nil {
		return errNoDatabase
	}
	return gooseRunFunc(cli.db, args[0], args[1:]...)
}
