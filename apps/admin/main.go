package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/pgkhata/pgkhata/core"
	"github.com/pgkhata/pgkhata/core/property"
	"github.com/pgkhata/pgkhata/core/user"
	"github.com/pgkhata/pgkhata/services/email"
	"github.com/pgkhata/pgkhata/services/logger"
	"github.com/pgkhata/pgkhata/storage/database"
	"github.com/pgkhata/pgkhata/storage/database/inmem"
	"github.com/pgkhata/pgkhata/storage/database/sqlboiler"
)

func main() {
	conf := core.NewConfig()
	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(false)

	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	user.InitValidators(validate, translator)
	user.LoadCommonPasswords(logger)

	cli := &commandLine{
		conf:     conf,
		logger:   logger,
		validate: validate,
	}
	mailSvc := emailsvc.NewConsoleService(conf)

	if conf.Database.UsesMemory() {
		db := inmemdb.NewDB()
		cli.usrSvc = user.NewService(inmemdb.NewUserRepository(db), mailSvc, logger, conf)
		cli.propSvc = property.NewService(inmemdb.NewTransactor(db), inmemdb.NewPropertyRepository(db))
	} else {
		db, err := openDB(conf)
		if err != nil {
			logger.Fatal(fmt.Sprintf("opening database: %v", err), err)
		}
		defer func() { _ = db.Close() }()

		cli.db = db
		cli.usrSvc = user.NewService(boiledrepos.NewUserRepository(db), mailSvc, logger, conf)
		cli.propSvc = property.NewService(database.NewTransactor(db), boiledrepos.NewPropertyRepository(db))
	}

	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Error(fmt.Sprintf("error: %v", err), err)
		}
		os.Exit(1)
	}
}

func openDB(conf *core.Config) (*sql.DB, error) {
	db, err := database.Open(conf)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
