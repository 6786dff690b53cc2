package main

import (
	"context"
	"database/sql"
	"expvar"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof" // registers the /debug/pprof handlers
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pgkhata/pgkhata/apps/api/echo"
	"github.com/pgkhata/pgkhata/core"
	"github.com/pgkhata/pgkhata/core/complaint"
	"github.com/pgkhata/pgkhata/core/dashboard"
	"github.com/pgkhata/pgkhata/core/property"
	"github.com/pgkhata/pgkhata/core/rent"
	"github.com/pgkhata/pgkhata/core/tenant"
	"github.com/pgkhata/pgkhata/core/user"
	"github.com/pgkhata/pgkhata/services/email"
	"github.com/pgkhata/pgkhata/services/logger"
	"github.com/pgkhata/pgkhata/storage/database"
	"github.com/pgkhata/pgkhata/storage/database/inmem"
	"github.com/pgkhata/pgkhata/storage/database/sqlboiler"
	"github.com/pgkhata/pgkhata/storage/database/sqlx"
)

type repositories struct {
	tx        core.Transactor
	user      user.Repository
	property  property.Repository
	tenant    tenant.Repository
	rent      rent.Repository
	complaint complaint.Repository
	dashboard dashboard.Repository
}

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	// set up loggers
	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	defer logger.Close()

	dbLogger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "DB : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)

	// set up storage
	var repos repositories
	if conf.Database.UsesMemory() {
		logger.Warn("using the in-memory store: data is lost on shutdown")
		repos = memoryRepositories()
	} else {
		db, err := setUpDB(conf)
		if err != nil {
			dbLogger.Fatal(fmt.Sprintf("setting up database: %v", err), err)
		}
		defer func() {
			if err = db.Close(); err != nil {
				dbLogger.Error(fmt.Sprintf("closing database: %v", err), err)
			}
		}()
		repos = postgresRepositories(db)
	}

	// set up services
	var mailSvc core.EmailService
	if conf.Debug || conf.SendgridApiKey == "" {
		mailSvc = emailsvc.NewConsoleService(conf)
	} else {
		mailSvc = emailsvc.NewSendgridService(conf, logger)
	}
	usrSvc := user.NewService(repos.user, mailSvc, logger, conf)
	propSvc := property.NewService(repos.tx, repos.property)
	tntSvc := tenant.NewService(repos.tx, repos.tenant, repos.property, repos.rent)
	rentSvc := rent.NewService(repos.tx, repos.rent, mailSvc, logger)
	cplSvc := complaint.NewService(repos.complaint, repos.tenant)
	dashSvc := dashboard.NewService(repos.dashboard, propSvc)

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	user.InitValidators(validate, translator)
	tenant.InitValidators(validate, translator)
	rent.InitValidators(validate, translator)
	complaint.InitValidators(validate, translator)

	core.ParseEmailTemplates(logger)

	user.LoadCommonPasswords(logger)

	// =========================================================================
	// Start Debug Service
	//
	// /debug/pprof - Added to the default mux by importing the net/http/pprof package.
	// /debug/vars - Added to the default mux by importing the expvar package.
	// /metrics - Prometheus metrics.

	// Expose important info under /debug/vars.
	expvar.NewString("build").Set(conf.Build)
	expvar.NewString("env").Set(conf.Env)
	http.Handle("/metrics", promhttp.Handler())

	go func() {
		if err := http.ListenAndServe(conf.Server.DebugAddress, http.DefaultServeMux); err != nil {
			logger.Error(fmt.Sprintf("debug server closed: %v", err), err)
		}
	}()

	// =========================================================================
	// Start API Service

	server := echoapi.NewServer(
		echoapi.ServerDeps{
			Conf:         conf,
			Logger:       logger,
			UserSvc:      usrSvc,
			PropertySvc:  propSvc,
			TenantSvc:    tntSvc,
			RentSvc:      rentSvc,
			ComplaintSvc: cplSvc,
			DashboardSvc: dashSvc,
			Validate:     validate,
			Translator:   translator,
			Registerer:   prometheus.DefaultRegisterer,
		},
	)

	go func() {
		server.Start()
	}()

	// =========================================================================
	// Shutdown

	select {
	case err := <-server.Errors():
		logger.Error(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		// asking listener to shutdown and shed load
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Error(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}

func setUpDB(conf *core.Config) (*sql.DB, error) {
	if err := database.CreateIfNotExist(conf); err != nil {
		return nil, err
	}

	db, err := database.Open(conf)
	if err != nil {
		return nil, err
	}

	if err = database.Migrate(db, "up"); err != nil {
		return nil, err
	}
	return db, nil
}

func postgresRepositories(db *sql.DB) repositories {
	return repositories{
		tx:        database.NewTransactor(db),
		user:      boiledrepos.NewUserRepository(db),
		property:  boiledrepos.NewPropertyRepository(db),
		tenant:    boiledrepos.NewTenantRepository(db),
		rent:      boiledrepos.NewRentRepository(db),
		complaint: boiledrepos.NewComplaintRepository(db),
		dashboard: sqlxrepos.NewDashboardRepository(db),
	}
}

func memoryRepositories() repositories {
	db := inmemdb.NewDB()
	return repositories{
		tx:        inmemdb.NewTransactor(db),
		user:      inmemdb.NewUserRepository(db),
		property:  inmemdb.NewPropertyRepository(db),
		tenant:    inmemdb.NewTenantRepository(db),
		rent:      inmemdb.NewRentRepository(db),
		complaint: inmemdb.NewComplaintRepository(db),
		dashboard: inmemdb.NewDashboardRepository(db),
	}
}
