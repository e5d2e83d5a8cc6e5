package models

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"regexp"
	"strings"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DB is the database used by the backend.
var DB *gorm.DB

type ContextKey string

const (
	DBContextURL ContextKey = "startbeyond-url"
)

// Connect opens the database and configures the connection.
//
// When DB_HOST is set, a PostgreSQL connection is used. Otherwise the
// dsn is opened as an SQLite database file.
func Connect(dsn string) error {
	var db *gorm.DB
	var err error

	config := &gorm.Config{
		Logger: &logger{
			Logger: log.Logger,
		},
	}

	if _, ok := os.LookupEnv("DB_HOST"); ok {
		log.Debug().Msg("DB_HOST is set, using PostgreSQL")

		pgDSN := fmt.Sprintf("host=%s user=%s password=%s dbname=%s",
			os.Getenv("DB_HOST"), os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"), os.Getenv("DB_NAME"))
		db, err = gorm.Open(postgres.Open(pgDSN), config)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
	} else {
		log.Debug().Msg("DB_HOST is not set, using SQLite")

		db, err = gorm.Open(sqlite.Open(fmt.Sprintf("%s?_pragma=foreign_keys(1)", dsn)), config)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}

		sqlDB, err := db.DB()
		if err != nil {
			return fmt.Errorf("failed to get database object: %w", err)
		}

		// Get new connections after one hour
		sqlDB.SetConnMaxLifetime(time.Hour)

		// This is done to prevent SQLITE_BUSY errors.
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetMaxOpenConns(1)
	}

	err = migrate(db)
	if err != nil {
		return err
	}

	// Query callbacks
	err = db.Callback().Query().After("*").Register("startbeyond:after_query", queryCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Query().After("*").Register("startbeyond:after_query_general", generalCallback)
	if err != nil {
		return err
	}

	// Create callbacks
	err = db.Callback().Create().After("*").Register("startbeyond:after_create", createUpdateCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Create().After("*").Register("startbeyond:after_create_general", generalCallback)
	if err != nil {
		return err
	}

	// Update callbacks
	err = db.Callback().Update().After("*").Register("startbeyond:after_update", createUpdateCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Update().After("*").Register("startbeyond:after_update_general", generalCallback)
	if err != nil {
		return err
	}

	// Delete callbacks
	err = db.Callback().Delete().After("*").Register("startbeyond:after_delete_general", generalCallback)
	if err != nil {
		return err
	}

	// Set the exported variable
	DB = db

	return nil
}

// queryCallback replaces the generic "no record" error with a more user
// friendly one
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		// Use the table name as information about the type of resource
		// and replace "_" with "[space]"
		name := strings.ReplaceAll(db.Statement.Table, "_", " ")

		// Replace pluralized "ies" with "y"
		match := regexp.MustCompile("ies$")
		name = match.ReplaceAllString(name, "y")

		// Remove plural "s"
		name = strings.TrimRight(name, "s")

		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, name)
	}
}

// createUpdateCallback inspects errors returned by the database for create
// and update calls and replaces them with user friendly ones
func createUpdateCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	// Category codes must be unique per profile
	if strings.Contains(db.Error.Error(), "UNIQUE constraint failed: user_categories.profile_id, user_categories.code") {
		db.Error = ErrCategoryCodeNotUnique
	}

	// One preference per built-in category and profile
	if strings.Contains(db.Error.Error(), "UNIQUE constraint failed: category_preferences.profile_id, category_preferences.code") {
		db.Error = ErrPreferenceCodeNotUnique
	}

	// One note per date and profile
	if strings.Contains(db.Error.Error(), "UNIQUE constraint failed: daily_notes.profile_id, daily_notes.date") {
		db.Error = ErrNoteDateNotUnique
	}

	// Usernames and email addresses are unique across the instance
	if strings.Contains(db.Error.Error(), "UNIQUE constraint failed: profiles.username") {
		db.Error = ErrUsernameNotUnique
	}

	if strings.Contains(db.Error.Error(), "UNIQUE constraint failed: profiles.email") {
		db.Error = ErrEmailNotUnique
	}
}

// generalCallback handles unspecified errors.
//
// For these errors, we cannot provide the user with a helpful message.
// Instead, the error is logged and we return a general message to users.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	// "sql: database is closed" is hard-coded in the sql module, see
	// https://cs.opensource.google/go/go/+/master:src/database/sql/sql.go;l=1298;drc=0d018b49e33b1383dc0ae5cc968e800dffeeaf7d
	if db.Error.Error() == "sql: database is closed" || reflect.TypeOf(db.Error) == reflect.TypeOf(&go_sqlite.Error{}) {
		// A general error where we cannot provide more useful information to the end user
		// We log the error and provide a general error message so that server admins can debug
		log.Error().Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = ErrGeneral

		return
	}
}

// migrate migrates all models to the schema defined in the code.
func migrate(db *gorm.DB) (err error) {
	err = db.AutoMigrate(
		Profile{},
		UserCategory{},
		CategoryPreference{},
		DailyRecord{},
		DailyPlan{},
		WeeklyTask{},
		MonthlyGoal{},
		DailyNote{},
		Memo{},
		Post{},
		PostReply{},
		Message{},
	)
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	return nil
}
