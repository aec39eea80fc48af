package postgres

import (
	"database/sql"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestPreferenceRepo_GetPreference(t *testing.T) {
	tests := []struct {
		name          string
		key           string
		mockRows      *sqlmock.Rows
		mockError     error
		expectedValue string
		expectedFound bool
		expectedError bool
	}{
		{
			name:          "stored value",
			key:           "buymyprovider-language:123",
			mockRows:      sqlmock.NewRows([]string{"value"}).AddRow("es"),
			expectedValue: "es",
			expectedFound: true,
		},
		{
			name:          "missing key",
			key:           "buymyprovider-language:456",
			mockError:     sql.ErrNoRows,
			expectedFound: false,
		},
		{
			name:          "database error",
			key:           "buymyprovider-language:789",
			mockError:     fmt.Errorf("connection reset"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewPreferenceRepo(db)

			query := "SELECT value FROM preferences WHERE key = \\$1"

			if tt.mockError != nil {
				mock.ExpectQuery(query).WithArgs(tt.key).WillReturnError(tt.mockError)
			} else {
				mock.ExpectQuery(query).WithArgs(tt.key).WillReturnRows(tt.mockRows)
			}

			value, found, err := repo.GetPreference(tt.key)

			if tt.expectedError {
				assert.Error(t, err)
				assert.False(t, found)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedFound, found)
				assert.Equal(t, tt.expectedValue, value)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPreferenceRepo_SetPreference(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewPreferenceRepo(db)

	mock.ExpectExec("INSERT INTO preferences").
		WithArgs("buymyprovider-language:123", "es").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.SetPreference("buymyprovider-language:123", "es")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPreferenceRepo_SetPreference_Error(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewPreferenceRepo(db)

	mock.ExpectExec("INSERT INTO preferences").
		WithArgs("buymyprovider-language", "en").
		WillReturnError(fmt.Errorf("read-only transaction"))

	err = repo.SetPreference("buymyprovider-language", "en")

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPreferenceRepo_CleanStalePreferences(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewPreferenceRepo(db)

	mock.ExpectExec("DELETE FROM preferences").
		WithArgs(365).
		WillReturnResult(sqlmock.NewResult(0, 4))

	err = repo.CleanStalePreferences(365)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
