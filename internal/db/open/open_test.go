package open_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dseza/portal/internal/config"
	"github.com/dseza/portal/internal/db/models"
	"github.com/dseza/portal/internal/db/open"
)

func TestDialector(t *testing.T) {
	tests := []struct {
		name     string
		cfg      *config.DB
		wantName string
		wantErr  error
	}{
		{name: "nil", cfg: nil, wantErr: open.ErrNilConfig},
		{name: "sqlite", cfg: &config.DB{GormEngine: config.EngineSQLite, Name: "x.db"}, wantName: "sqlite"},
		{name: "default engine", cfg: &config.DB{Name: "x.db"}, wantName: "sqlite"},
		{name: "mysql", cfg: &config.DB{GormEngine: config.EngineMySQL, Host: "h", Port: 3306}, wantName: "mysql"},
		{name: "postgres", cfg: &config.DB{GormEngine: config.EnginePostgres, Host: "h", Port: 5432}, wantName: "postgres"},
		{name: "unknown", cfg: &config.DB{GormEngine: "oracle"}, wantErr: config.ErrUnknownGormEngine},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := open.Dialector(tt.cfg)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantName, d.Name())
		})
	}
}

func TestDB_SQLiteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "portal.db")

	db, err := open.DB(&config.DB{GormEngine: config.EngineSQLite, Name: path}, false)
	require.NoError(t, err)

	assert.True(t, db.Migrator().HasTable(&models.NewsItem{}))
	assert.True(t, db.Migrator().HasTable(&models.ResourceItem{}))
	assert.FileExists(t, path)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())
}
