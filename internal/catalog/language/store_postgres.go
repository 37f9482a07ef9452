package language

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/scripta/internal/platform/database/schema"
	"github.com/taibuivan/scripta/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) Get(context context.Context, id int64) (*Language, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s
		FROM %s
		WHERE %s = $1;
	`,
		schema.UtilsLanguage.ID,
		schema.UtilsLanguage.Name,
		schema.UtilsLanguage.Slug,
		schema.UtilsLanguage.LanguageTag,
		schema.UtilsLanguage.Table,
		schema.UtilsLanguage.ID,
	)

	l := &Language{}
	err := repository.db.QueryRow(context, query, id).Scan(&l.ID, &l.Name, &l.Slug, &l.LanguageTag)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, dberr.Wrap(err, "get_language")
	}
	return l, nil
}

func (repository *PostgresRepository) List(context context.Context) ([]*Language, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s
		FROM %s
		ORDER BY %s ASC;
	`,
		schema.UtilsLanguage.ID,
		schema.UtilsLanguage.Name,
		schema.UtilsLanguage.Slug,
		schema.UtilsLanguage.LanguageTag,
		schema.UtilsLanguage.Table,
		schema.UtilsLanguage.ID,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_languages")
	}
	defer rows.Close()

	var langs []*Language
	for rows.Next() {
		l := &Language{}
		if err := rows.Scan(&l.ID, &l.Name, &l.Slug, &l.LanguageTag); err != nil {
			return nil, dberr.Wrap(err, "scan_language")
		}
		langs = append(langs, l)
	}

	return langs, rows.Err()
}
