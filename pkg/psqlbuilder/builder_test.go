package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_UsesDollarPlaceholders(t *testing.T) {
	query, args, err := Select("id", "token").
		From("sessions").
		Where(squirrel.Eq{"id": "abc"}).
		Where(squirrel.Gt{"expires_at": 5}).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "SELECT id, token FROM sessions WHERE id = $1 AND expires_at > $2", query)
	assert.Equal(t, []interface{}{"abc", 5}, args)
}

func TestDelete(t *testing.T) {
	query, args, err := Delete("sessions").Where(squirrel.Eq{"id": "abc"}).ToSql()

	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM sessions WHERE id = $1", query)
	assert.Equal(t, []interface{}{"abc"}, args)
}
