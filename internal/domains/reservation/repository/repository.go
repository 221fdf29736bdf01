package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"latina/infras/otel"
	"latina/infras/postgres"
	"latina/internal/domains/reservation/model"
	"latina/shared/constant"
)

// Reservation journals accepted bookings.
type Reservation interface {
	Insert(ctx context.Context, reservation model.Reservation) error
}

type repositoryImpl struct {
	db          *postgres.Connection
	otel        otel.Otel
	insertQuery string
}

// New returns nil when there is no database, which the service treats as
// "journal disabled".
func New(db *postgres.Connection, otel otel.Otel) Reservation {
	if db == nil {
		return nil
	}

	return &repositoryImpl{
		db:          db,
		otel:        otel,
		insertQuery: insertQuery(model.TableName, model.Columns()),
	}
}

func insertQuery(table string, columns []string) string {
	placeholders := make([]string, 0, len(columns))
	for _, col := range columns {
		placeholders = append(placeholders, ":"+col)
	}

	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, strings.Join(columns, ", "), strings.Join(placeholders, ", "))
}

func (repo *repositoryImpl) Insert(ctx context.Context, reservation model.Reservation) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".insert")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, repo.insertQuery)

	if _, err = repo.db.Write.NamedExecContext(ctx, repo.insertQuery, reservation); err != nil {
		log.Error().Err(err).Str("id", reservation.ID).Msg("failed to insert reservation")

		return fmt.Errorf("failed to insert %s: %w", model.EntityName, err)
	}

	return nil
}
