package person

import (
	"context"
	"errors"
	"fmt"
	"strings"

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

// personColumns renders the full column list, optionally alias-qualified,
// in the same order scanPerson reads them.
func personColumns(alias string) string {
	columns := schema.PersonsPerson.Columns()
	qualified := make([]string, len(columns))
	for i, column := range columns {
		qualified[i] = alias + column
	}
	return strings.Join(qualified, ", ")
}

func scanPerson(row pgx.Row) (*Person, error) {
	p := &Person{}
	err := row.Scan(
		&p.ID, &p.FirstName, &p.FirstSurname, &p.SecondSurname, &p.FullName,
		&p.Biography, &p.Title, &p.PersonalWebsite, &p.Email, &p.PhoneNumber,
		&p.IsActive, &p.Slug, &p.BirthDate,
	)
	return p, err
}

func (repository *PostgresRepository) Get(context context.Context, id int64) (*Person, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1;
	`,
		personColumns(""),
		schema.PersonsPerson.Table,
		schema.PersonsPerson.ID,
	)

	p, err := scanPerson(repository.db.QueryRow(context, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, dberr.Wrap(err, "get_person")
	}
	return p, nil
}

// ListByPublication resolves the ordered author list in one round-trip.
// Author order is the upstream insertion position, never alphabetic.
func (repository *PostgresRepository) ListByPublication(context context.Context, publicationID int64) ([]*Person, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s p
		JOIN %s pa ON pa.%s = p.%s
		WHERE pa.%s = $1
		ORDER BY pa.%s ASC;
	`,
		personColumns("p."),
		schema.PersonsPerson.Table,
		schema.PublicationsPublicationAuthor.Table,
		schema.PublicationsPublicationAuthor.AuthorID,
		schema.PersonsPerson.ID,
		schema.PublicationsPublicationAuthor.PublicationID,
		schema.PublicationsPublicationAuthor.Position,
	)

	rows, err := repository.db.Query(context, query, publicationID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_publication_authors")
	}
	defer rows.Close()

	var people []*Person
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_publication_author")
		}
		people = append(people, p)
	}

	return people, rows.Err()
}
