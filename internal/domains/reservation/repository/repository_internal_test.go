package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"latina/infras/otel/mocks"
	"latina/internal/domains/reservation/model"
)

func TestInsertQuery(t *testing.T) {
	query := insertQuery(model.TableName, []string{"id", "name", "guests"})

	assert.Equal(t, "INSERT INTO reservations (id, name, guests) VALUES (:id, :name, :guests)", query)
}

func TestNew_NoDatabase(t *testing.T) {
	assert.Nil(t, New(nil, mocks.NewOtel()))
}
