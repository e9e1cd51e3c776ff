package dbmetrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperationOf(t *testing.T) {
	assert.Equal(t, "select", operationOf("SELECT id FROM sessions WHERE id = $1"))
	assert.Equal(t, "insert", operationOf("  INSERT INTO sessions (id) VALUES ($1)"))
	assert.Equal(t, "delete", operationOf("delete from sessions"))
	assert.Equal(t, "unknown", operationOf("   "))
}
