package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

func TestSQLLoaderLoad(t *testing.T) {
	db, mock := newMockDB(t)

	rows := sqlmock.NewRows([]string{"name", "value"}).
		AddRow("s3.access_key", `"placeholder"`).
		AddRow("s3.use_environment_iam", `true`).
		AddRow("s3.region", `eu-west-1`)
	mock.ExpectQuery(`SELECT \* FROM "variable" WHERE name IN`).
		WithArgs("s3.access_key", "s3.use_environment_iam", "s3.region", "s3.secret_key").
		WillReturnRows(rows)

	got, err := NewSQLLoader(db, "").Load(context.Background(),
		"s3.access_key", "s3.use_environment_iam", "s3.region", "s3.secret_key")
	require.NoError(t, err)

	assert.Equal(t, Map{
		"s3.access_key":          "placeholder",
		"s3.use_environment_iam": true,
		"s3.region":              "eu-west-1",
	}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLLoaderWholeTable(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "storage_settings"`).
		WillReturnRows(sqlmock.NewRows([]string{"name", "value"}).AddRow("s3.use_ssl", `false`))

	got, err := NewSQLLoader(db, "storage_settings").Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Map{"s3.use_ssl": false}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLLoaderQueryError(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "variable"`).WillReturnError(errors.New("connection reset"))

	_, err := NewSQLLoader(db, "").Load(context.Background(), "s3.access_key")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
	assert.Contains(t, err.Error(), "variable")
}

func TestDecodeValue(t *testing.T) {
	assert.Equal(t, "abc", decodeValue(`"abc"`))
	assert.Equal(t, float64(30), decodeValue(`30`))
	assert.Equal(t, []any{"a", "b"}, decodeValue(`["a","b"]`))
	assert.Equal(t, "not json", decodeValue(`not json`))
}
