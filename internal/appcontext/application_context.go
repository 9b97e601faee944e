package appcontext

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/RoyceAzure/lab/shopcart/internal/config"
	"github.com/RoyceAzure/lab/shopcart/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/shopcart/internal/service"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

type ApplicationContext struct {
	DbConn          *pgxpool.Pool
	DbDao           db.IStore
	Cf              *config.Config
	Logger          *zerolog.Logger
	ShopcartService service.IShopcartService
}

func NewApplicationContext(cf *config.Config) (*ApplicationContext, error) {
	app := ApplicationContext{
		Cf: cf,
	}

	err := app.Init()
	if err != nil {
		return nil, err
	}

	return &app, nil
}

func (app *ApplicationContext) Init() error {
	app.setUpLogger()

	err := app.setUpdbConn()
	if err != nil {
		return err
	}

	err = app.setUpdbDao()
	if err != nil {
		return err
	}

	err = app.setUpShopcartService()
	if err != nil {
		return err
	}

	err = app.dbInit()
	if err != nil {
		return err
	}

	return nil
}

func (app *ApplicationContext) setUpLogger() {
	log.Printf("Start setup logger")
	logger := zerolog.New(os.Stdout).With().Timestamp().Str("moduler", app.Cf.ModulerName).Logger()
	app.Logger = &logger
	log.Printf("Finish setup logger")
}

func (app *ApplicationContext) setUpdbConn() error {
	log.Printf("Start setup database connection")
	conn, err := pgxpool.New(context.Background(),
		fmt.Sprintf("postgresql://%s:%s@%s:%s/%s", app.Cf.DbUser, app.Cf.DbPas, app.Cf.DbHost, app.Cf.DbPort, app.Cf.DbName))
	if err != nil {
		return err
	}
	app.DbConn = conn
	log.Printf("Finish setup database connection")
	return nil
}

func (app *ApplicationContext) setUpdbDao() error {
	log.Printf("Start setup database DAO")
	app.DbDao = db.NewStore(app.DbConn)
	log.Printf("Finish setup database DAO")
	return nil
}

func (app *ApplicationContext) setUpShopcartService() error {
	log.Printf("Start setup shopcart service")
	app.ShopcartService = service.NewShopcartService(app.DbDao)
	log.Printf("Finish setup shopcart service")
	return nil
}

func runDBMigration(migrationURL string, dbSource string) error {
	migration, err := migrate.New(migrationURL, dbSource)
	if err != nil {
		return err
	}

	return migration.Up()
}

// db migration, 原始服務在啟動時直接建表, 這裡改用版本化的migration
func (app *ApplicationContext) dbInit() error {
	log.Printf("Start setup db init")

	err := runDBMigration(
		"file://internal/infra/repository/db/migrations",
		fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", app.Cf.DbUser, app.Cf.DbPas, app.Cf.DbHost, app.Cf.DbPort, app.Cf.DbName),
	)

	if err != nil && err != migrate.ErrNoChange {
		return err
	}

	log.Printf("Finish setup db init")
	return nil
}

func (app *ApplicationContext) Shutdown(ctx context.Context) error {
	log.Printf("Start application shutdown")

	// buffered, timeout發生時goroutine仍能送出結果後結束
	done := make(chan error, 1)
	go func() {
		defer close(done)

		// 關閉 DB
		if app.DbConn != nil {
			log.Printf("Closing database connection...")
			app.DbConn.Close()
		}

		log.Printf("Application shutdown complete")
		done <- nil
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("shutdown timeout: %v", ctx.Err())
	}
}
