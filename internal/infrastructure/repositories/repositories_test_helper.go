package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		password_hash TEXT,
		email TEXT,
		eth_address TEXT UNIQUE,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createPaymentRequestTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE payment_requests (
		id TEXT PRIMARY KEY,
		upi_id TEXT NOT NULL,
		amount REAL NOT NULL,
		payee_name TEXT,
		note TEXT,
		contract_request_id TEXT,
		wallet_address TEXT,
		dai_amount REAL,
		eth_fee REAL,
		requester_id TEXT NOT NULL,
		status TEXT NOT NULL,
		created_at DATETIME
	);`)
}

func createUpiIndexTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE upi_index (
		contract_request_id TEXT PRIMARY KEY,
		upi_id TEXT NOT NULL,
		payee_name TEXT,
		note TEXT,
		created_at DATETIME
	);`)
}
