package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/giveaway-bot/internal/config"
	"github.com/KirkDiggler/giveaway-bot/internal/models"
)

func TestOpenSQLiteAndMigrate(t *testing.T) {
	db, err := Open(&Config{Driver: config.DriverSQLite, URL: ":memory:"})
	require.NoError(t, err)
	defer Close(db)

	require.NoError(t, Migrate(db))
	require.NoError(t, Ping(context.Background(), db))

	for _, table := range []string{"items", "giveaways", "giveaway_participants", "giveaway_winners"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
	assert.True(t, db.Migrator().HasIndex(&models.Participant{}, "idx_giveaway_user"))
}

func TestOpenRejectsBadConfig(t *testing.T) {
	_, err := Open(nil)
	assert.Error(t, err)

	_, err = Open(&Config{Driver: config.DriverSQLite})
	assert.Error(t, err)

	_, err = Open(&Config{Driver: "mysql", URL: "root@/db"})
	assert.ErrorIs(t, err, ErrUnknownDriver)
}
