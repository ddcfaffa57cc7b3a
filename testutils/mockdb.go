package testutils

import (
	"database/sql"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/kavia-common/simple-to-do-list-311518-311527/database"
	"github.com/kavia-common/simple-to-do-list-311518-311527/models"
)

// SetupTestDB opens an in-memory SQLite database with migrations applied.
func SetupTestDB() (*database.Database, func()) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic(err)
	}

	if err := database.RunMigrations(db); err != nil {
		panic(err)
	}

	testDB := &database.Database{DB: db}
	return testDB, func() { testDB.Close() }
}

// SetupMockDB sets up a sqlmock-backed connection for store-failure tests.
// The sqlite dialector probes the engine version on open, so that query is
// pre-expected here.
func SetupMockDB() (*database.Database, sqlmock.Sqlmock, func()) {
	var db *sql.DB
	var mock sqlmock.Sqlmock
	var err error

	db, mock, err = sqlmock.New()
	if err != nil {
		panic(err)
	}

	mock.ExpectQuery(`select sqlite_version\(\)`).
		WillReturnRows(sqlmock.NewRows([]string{"sqlite_version()"}).AddRow("3.45.1"))

	dialector := sqlite.Dialector{Conn: db}
	gormDB, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic(err)
	}

	mockDB := &database.Database{
		DB: gormDB,
	}

	close := func() {
		db.Close()
	}

	return mockDB, mock, close
}

// NewTask persists a task directly, bypassing the service layer, for tests
// that need pre-existing rows.
func NewTask(db *database.Database, title string, description *string, completed bool) models.Task {
	now := models.UTCNow()
	task := models.Task{
		Title:       title,
		Description: description,
		Completed:   completed,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := db.DB.Create(&task).Error; err != nil {
		panic(err)
	}
	return task
}
