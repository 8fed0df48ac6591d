package database

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	_ "github.com/lib/pq"
)

var DB *sql.DB

// Pool defaults sized for the request handlers plus the nightly sync job
// hitting the activities table at the same time. DB_MAX_OPEN_CONNS overrides.
const (
	defaultMaxOpenConns    = 25
	defaultConnMaxLifetime = 5 * time.Minute
)

func connString() string {
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	database := os.Getenv("DB_NAME")
	sslMode := os.Getenv("DB_SSL_MODE")
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, database, sslMode)
}

func maxOpenConns() int {
	if env := os.Getenv("DB_MAX_OPEN_CONNS"); env != "" {
		if iv, err := strconv.Atoi(env); err == nil && iv > 0 {
			return iv
		}
	}
	return defaultMaxOpenConns
}

func InitDB() (*sql.DB, error) {
	var err error
	DB, err = sql.Open("postgres", connString())
	if err != nil {
		return nil, fmt.Errorf("error open connecting: %w", err)
	}

	open := maxOpenConns()
	DB.SetMaxOpenConns(open)
	DB.SetMaxIdleConns(open / 2)
	DB.SetConnMaxLifetime(defaultConnMaxLifetime)

	err = DB.Ping()
	if err != nil {
		return nil, fmt.Errorf("error pinging database: %w", err)
	}

	log.Printf("event=database_connected max_open_conns=%d", open)
	return DB, nil
}

func CloseDB() error {
	if DB != nil {
		err := DB.Close()
		if err != nil {
			return fmt.Errorf("error closing database connection: %w", err)
		}
		log.Println("event=database_closed")
	}
	return nil
}
