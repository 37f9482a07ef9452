/*
Package publication provides the PostgreSQL implementation for the
publication half of the harvestable catalogue.

The upstream CMS models publications with multi-table inheritance: a base
table holding the shared columns plus eight subtype tables keyed by the
same primary key. The repository exposes the base rows and raw subtype
rows; Resolver composes them into the concrete subtype and container chain.
*/
package publication

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

// containerTables and childTables bind each registered subtype to its
// schema descriptor. Keys must stay aligned with the registry in subtype.go.
var containerTables = map[ChildType]schema.ContainerSubtypeTable{
	TypeProceedings: schema.PublicationsProceedings,
	TypeMagazine:    schema.PublicationsMagazine,
	TypeJournal:     schema.PublicationsJournal,
	TypeBook:        schema.PublicationsBook,
}

var childTables = map[ChildType]schema.ChildSubtypeTable{
	TypeConferencePaper: schema.PublicationsConferencePaper,
	TypeMagazineArticle: schema.PublicationsMagazineArticle,
	TypeJournalArticle:  schema.PublicationsJournalArticle,
	TypeBookSection:     schema.PublicationsBookSection,
}

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) List(context context.Context, filter Filter) ([]*Publication, error) {
	p := schema.PublicationsPublication

	var queryBuilder strings.Builder
	var args []any
	argID := 1

	queryBuilder.WriteString(fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE 1=1
	`,
		p.ID, p.Title, p.Slug, p.Abstract, p.DOI, p.PDF, p.LanguageID,
		p.Published, p.Year, p.Bibtex, p.ChildType, p.ZoteroKey,
		p.Table,
	))

	if filter.ID != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s = $%d", p.ID, argID))
		args = append(args, *filter.ID)
		argID++
	}

	if len(filter.ChildTypes) > 0 {
		types := make([]string, len(filter.ChildTypes))
		for i, t := range filter.ChildTypes {
			types[i] = string(t)
		}
		queryBuilder.WriteString(fmt.Sprintf(" AND %s = ANY($%d)", p.ChildType, argID))
		args = append(args, types)
		argID++
	}

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY %s ASC;", p.ID))

	rows, err := repository.db.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_publications")
	}
	defer rows.Close()

	var publications []*Publication
	for rows.Next() {
		pub := &Publication{}
		if err := rows.Scan(
			&pub.ID, &pub.Title, &pub.Slug, &pub.Abstract, &pub.DOI, &pub.PDF,
			&pub.LanguageID, &pub.Published, &pub.Year, &pub.Bibtex,
			&pub.ChildType, &pub.ZoteroKey,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_publication")
		}
		publications = append(publications, pub)
	}

	return publications, rows.Err()
}

func (repository *PostgresRepository) Count(context context.Context) (int, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s;`, schema.PublicationsPublication.Table)

	var count int
	if err := repository.db.QueryRow(context, query).Scan(&count); err != nil {
		return 0, dberr.Wrap(err, "count_publications")
	}
	return count, nil
}

func (repository *PostgresRepository) EarliestYear(context context.Context) (*int, error) {
	query := fmt.Sprintf(`SELECT MIN(%s) FROM %s;`,
		schema.PublicationsPublication.Year,
		schema.PublicationsPublication.Table,
	)

	var year *int
	if err := repository.db.QueryRow(context, query).Scan(&year); err != nil {
		return nil, dberr.Wrap(err, "earliest_publication_year")
	}
	return year, nil
}

func (repository *PostgresRepository) ContainerRow(context context.Context, childType ChildType, id int64) (*Container, error) {
	table, ok := containerTables[childType]
	if !ok {
		return nil, ErrUnregisteredType(childType)
	}

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s
		FROM %s
		WHERE %s = $1;
	`,
		table.PublicationPtrID, table.Publisher, table.Place, table.Volume,
		table.Table,
		table.PublicationPtrID,
	)

	row := &Container{Type: childType}
	err := repository.db.QueryRow(context, query, id).
		Scan(&row.PublicationID, &row.Publisher, &row.Place, &row.Volume)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, dberr.Wrap(err, "get_container_subtype")
	}
	return row, nil
}

func (repository *PostgresRepository) ChildRow(context context.Context, childType ChildType, id int64) (*Child, error) {
	table, ok := childTables[childType]
	if !ok {
		return nil, ErrUnregisteredType(childType)
	}

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s
		FROM %s
		WHERE %s = $1;
	`,
		table.PublicationPtrID, table.Pages, table.ShortTitle, table.ParentID,
		table.Table,
		table.PublicationPtrID,
	)

	row := &Child{Type: childType}
	err := repository.db.QueryRow(context, query, id).
		Scan(&row.PublicationID, &row.Pages, &row.ShortTitle, &row.ParentID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, dberr.Wrap(err, "get_child_subtype")
	}
	return row, nil
}
