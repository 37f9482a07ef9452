package audit

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

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

func (repository *PostgresRepository) ContentType(context context.Context, appLabel, model string) (*ContentType, error) {
	ct := schema.DjangoContentType

	query := fmt.Sprintf(`
		SELECT %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s = $2;
	`,
		ct.ID, ct.AppLabel, ct.Model,
		ct.Table,
		ct.AppLabel, ct.Model,
	)

	result := &ContentType{}
	err := repository.db.QueryRow(context, query, appLabel, model).
		Scan(&result.ID, &result.AppLabel, &result.Model)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, dberr.Wrap(err, "get_content_type")
	}
	return result, nil
}

// LatestAction evaluates the disjunction of (content type, object id) pairs
// in one query, ordered by action time descending, and returns the newest
// action time. A nil result means no entry matched any ref.
func (repository *PostgresRepository) LatestAction(context context.Context, refs []Ref) (*time.Time, error) {
	if len(refs) == 0 {
		return nil, nil
	}

	log := schema.DjangoAdminLog

	var clauses []string
	var args []any
	argID := 1
	for _, ref := range refs {
		clauses = append(clauses, fmt.Sprintf("(%s = $%d AND %s = $%d)",
			log.ContentTypeID, argID, log.ObjectID, argID+1))
		args = append(args, ref.ContentTypeID, ref.ObjectID)
		argID += 2
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s
		ORDER BY %s DESC
		LIMIT 1;
	`,
		log.ActionTime,
		log.Table,
		strings.Join(clauses, " OR "),
		log.ActionTime,
	)

	var latest time.Time
	err := repository.db.QueryRow(context, query, args...).Scan(&latest)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, dberr.Wrap(err, "latest_audit_action")
	}
	return &latest, nil
}

// EntriesFor returns the newest entries for a single (content type, object)
// pair, newest first.
func (repository *PostgresRepository) EntriesFor(context context.Context, ref Ref, limit int) ([]*Entry, error) {
	log := schema.DjangoAdminLog

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s = $2
		ORDER BY %s DESC
		LIMIT $3;
	`,
		log.ID, log.ActionTime, log.UserID, log.ContentTypeID,
		log.ObjectID, log.ObjectRepr, log.ActionFlag, log.ChangeMessage,
		log.Table,
		log.ContentTypeID, log.ObjectID,
		log.ActionTime,
	)

	rows, err := repository.db.Query(context, query, ref.ContentTypeID, ref.ObjectID, limit)
	if err != nil {
		return nil, dberr.Wrap(err, "list_audit_entries")
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		entry := &Entry{}
		if err := rows.Scan(
			&entry.ID, &entry.ActionTime, &entry.UserID, &entry.ContentTypeID,
			&entry.ObjectID, &entry.ObjectRepr, &entry.ActionFlag, &entry.ChangeMessage,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_audit_entry")
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
