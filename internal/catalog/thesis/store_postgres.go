package thesis

import (
	"context"
	"fmt"
	"strings"

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

func (repository *PostgresRepository) List(context context.Context, filter Filter) ([]*Thesis, error) {
	t := schema.PublicationsThesis

	var queryBuilder strings.Builder
	var args []any
	argID := 1

	queryBuilder.WriteString(fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE 1=1
	`,
		t.ID, t.Title, t.AuthorID, t.Slug, t.AdvisorID, t.RegistrationDate,
		t.Year, t.MainLanguageID, t.PDF, t.NumberOfPages, t.VivaDate,
		t.VivaOutcome, t.SpecialMention,
		t.Table,
	))

	if filter.ID != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s = $%d", t.ID, argID))
		args = append(args, *filter.ID)
		argID++
	}

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY %s ASC", t.ID))

	if filter.Limit >= 0 {
		queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d", argID))
		args = append(args, filter.Limit)
		argID++
	}

	if filter.Offset > 0 {
		queryBuilder.WriteString(fmt.Sprintf(" OFFSET $%d", argID))
		args = append(args, filter.Offset)
	}

	queryBuilder.WriteString(";")

	rows, err := repository.db.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_theses")
	}
	defer rows.Close()

	var theses []*Thesis
	for rows.Next() {
		th := &Thesis{}
		if err := rows.Scan(
			&th.ID, &th.Title, &th.AuthorID, &th.Slug, &th.AdvisorID,
			&th.RegistrationDate, &th.Year, &th.MainLanguageID, &th.PDF,
			&th.NumberOfPages, &th.VivaDate, &th.VivaOutcome, &th.SpecialMention,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_thesis")
		}
		theses = append(theses, th)
	}

	return theses, rows.Err()
}

func (repository *PostgresRepository) Count(context context.Context) (int, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s;`, schema.PublicationsThesis.Table)

	var count int
	if err := repository.db.QueryRow(context, query).Scan(&count); err != nil {
		return 0, dberr.Wrap(err, "count_theses")
	}
	return count, nil
}

func (repository *PostgresRepository) EarliestYear(context context.Context) (*int, error) {
	query := fmt.Sprintf(`SELECT MIN(%s) FROM %s;`,
		schema.PublicationsThesis.Year,
		schema.PublicationsThesis.Table,
	)

	var year *int
	if err := repository.db.QueryRow(context, query).Scan(&year); err != nil {
		return nil, dberr.Wrap(err, "earliest_thesis_year")
	}
	return year, nil
}

// Abstracts returns the thesis's multilingual abstracts in primary key
// order, which is the retrieval order their texts are emitted in metadata.
func (repository *PostgresRepository) Abstracts(context context.Context, thesisID int64) ([]*Abstract, error) {
	a := schema.PublicationsThesisAbstract

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s ASC;
	`,
		a.ID, a.ThesisID, a.LanguageID, a.Abstract,
		a.Table,
		a.ThesisID,
		a.ID,
	)

	rows, err := repository.db.Query(context, query, thesisID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_thesis_abstracts")
	}
	defer rows.Close()

	var abstracts []*Abstract
	for rows.Next() {
		ab := &Abstract{}
		if err := rows.Scan(&ab.ID, &ab.ThesisID, &ab.LanguageID, &ab.Text); err != nil {
			return nil, dberr.Wrap(err, "scan_thesis_abstract")
		}
		abstracts = append(abstracts, ab)
	}

	return abstracts, rows.Err()
}
