// Package dbtx lets gorm repositories run on a *sql.Tx opened by a service.
package dbtx

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// Bind returns a session of db whose statements execute on tx. A nil tx
// returns db unchanged.
func Bind(db *gorm.DB, tx *sql.Tx) *gorm.DB {
	if tx == nil || db == nil {
		return db
	}
	session := db.Session(&gorm.Session{Context: context.Background(), NewDB: true})
	session.Statement.ConnPool = tx
	return session
}
