package tag

import (
	"context"
	"fmt"

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

func (repository *PostgresRepository) List(context context.Context) ([]*Tag, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s
		FROM %s
		ORDER BY %s ASC;
	`,
		schema.UtilsTag.ID,
		schema.UtilsTag.Name,
		schema.UtilsTag.Slug,
		schema.UtilsTag.Table,
		schema.UtilsTag.ID,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_tags")
	}
	defer rows.Close()

	var tags []*Tag
	for rows.Next() {
		t := &Tag{}
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug); err != nil {
			return nil, dberr.Wrap(err, "scan_tag")
		}
		tags = append(tags, t)
	}

	return tags, rows.Err()
}

// ListByPublication joins the publication-tag link table against utils_tag.
// An inner join drops links whose tag row no longer exists, matching the
// harvester's "missing dependency narrows the output" rule.
func (repository *PostgresRepository) ListByPublication(context context.Context, publicationID int64) ([]*Tag, error) {
	query := fmt.Sprintf(`
		SELECT t.%s, t.%s, t.%s
		FROM %s t
		JOIN %s pt ON pt.%s = t.%s
		WHERE pt.%s = $1;
	`,
		schema.UtilsTag.ID,
		schema.UtilsTag.Name,
		schema.UtilsTag.Slug,
		schema.UtilsTag.Table,
		schema.PublicationsPublicationTag.Table,
		schema.PublicationsPublicationTag.TagID,
		schema.UtilsTag.ID,
		schema.PublicationsPublicationTag.PublicationID,
	)

	rows, err := repository.db.Query(context, query, publicationID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_publication_tags")
	}
	defer rows.Close()

	var tags []*Tag
	for rows.Next() {
		t := &Tag{}
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug); err != nil {
			return nil, dberr.Wrap(err, "scan_publication_tag")
		}
		tags = append(tags, t)
	}

	return tags, rows.Err()
}
