// file: services/testdb_test.go
package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"FlagCore/database"
	"FlagCore/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB points database.DB at a fresh in-memory sqlite store.
// The shared cache keeps the database alive across pooled connections.
func setupTestDB(t *testing.T) {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_busy_timeout=5000", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	database.DB = db
	database.MigrateTables()
}

func seedUser(t *testing.T, uid string) {
	t.Helper()
	require.NoError(t, database.DB.Create(&models.User{UID: uid, Password: "test-password"}).Error)
}

func seedTeam(t *testing.T, uid, tid string) {
	t.Helper()
	require.NoError(t, database.DB.Create(&models.Team{UID: uid, TID: tid}).Error)
}

func seedChallenge(t *testing.T, cid string, start, stop time.Time, team bool) {
	t.Helper()
	require.NoError(t, database.DB.Create(&models.Challenge{
		CID:    cid,
		TStart: start,
		TStop:  stop,
		Team:   team,
	}).Error)
}

func seedFlag(t *testing.T, fid, cid string, maxSubmissions int) {
	t.Helper()
	require.NoError(t, database.DB.Create(&models.Flag{
		FID:            fid,
		CID:            cid,
		MaxSubmissions: maxSubmissions,
	}).Error)
}

// activeWindow is a window that contains time.Now.
func activeWindow() (time.Time, time.Time) {
	now := time.Now()
	return now.Add(-time.Hour), now.Add(time.Hour)
}

func lastEvent(t *testing.T) models.Event {
	t.Helper()
	var event models.Event
	require.NoError(t, database.DB.Order("id desc").First(&event).Error)
	return event
}
