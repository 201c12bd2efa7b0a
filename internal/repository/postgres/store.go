package postgres

import (
	"context"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bradleyplater/HockeyTrackerV2/internal/repository"
)

// Store реализует repository.Store поверх PostgreSQL: одна таблица на коллекцию, тело документа в JSONB
type Store struct {
	db *pgxpool.Pool
}

// NewStore создает новый экземпляр Store
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// table возвращает экранированное имя таблицы коллекции
func table(coll repository.Collection) (string, error) {
	if !coll.Valid() {
		return "", errors.Wrapf(repository.ErrUnknownCollection, "collection %q", coll)
	}
	return pgx.Identifier{string(coll)}.Sanitize(), nil
}

// FindByID получает документ по ID
func (s *Store) FindByID(ctx context.Context, coll repository.Collection, id string) ([]byte, error) {
	tbl, err := table(coll)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT doc FROM %s WHERE id = $1`, tbl)

	var doc []byte
	if err := s.db.QueryRow(ctx, query, id).Scan(&doc); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNoDocument
		}
		return nil, errors.Wrapf(err, "find %s/%s", coll, id)
	}

	return doc, nil
}

// FindAll возвращает все документы коллекции
func (s *Store) FindAll(ctx context.Context, coll repository.Collection) ([][]byte, error) {
	tbl, err := table(coll)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT doc FROM %s ORDER BY created_at, id`, tbl)

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, errors.Wrapf(err, "list %s", coll)
	}
	defer rows.Close()

	docs := make([][]byte, 0)
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, errors.Wrapf(err, "scan %s", coll)
		}
		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "list %s", coll)
	}

	return docs, nil
}

// Insert сохраняет новый документ
func (s *Store) Insert(ctx context.Context, coll repository.Collection, id string, doc []byte) (string, error) {
	tbl, err := table(coll)
	if err != nil {
		return "", err
	}

	query := fmt.Sprintf(`INSERT INTO %s (id, doc) VALUES ($1, $2::jsonb)`, tbl)

	if _, err := s.db.Exec(ctx, query, id, string(doc)); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return "", repository.ErrDuplicateID
		}
		return "", errors.Wrapf(err, "insert %s/%s", coll, id)
	}

	return id, nil
}

// SetFields перезаписывает поля верхнего уровня документа
func (s *Store) SetFields(ctx context.Context, coll repository.Collection, id string, fields map[string]any) (repository.UpdateResult, error) {
	tbl, err := table(coll)
	if err != nil {
		return repository.UpdateResult{}, err
	}

	patch, err := sonic.Marshal(fields)
	if err != nil {
		return repository.UpdateResult{}, errors.Wrap(err, "encode fields")
	}

	// Документ считается измененным, только если патч еще не содержится в нем
	query := fmt.Sprintf(`
		WITH target AS (
			SELECT id FROM %[1]s WHERE id = $1
		), updated AS (
			UPDATE %[1]s
			SET doc = doc || $2::jsonb, updated_at = NOW()
			WHERE id = $1 AND NOT (doc @> $2::jsonb)
			RETURNING id
		)
		SELECT (SELECT COUNT(*) FROM target), (SELECT COUNT(*) FROM updated)
	`, tbl)

	return s.update(ctx, query, coll, id, id, string(patch))
}

// PushElement добавляет элемент в конец массива
func (s *Store) PushElement(ctx context.Context, coll repository.Collection, id, arrayField string, element any) (repository.UpdateResult, error) {
	tbl, err := table(coll)
	if err != nil {
		return repository.UpdateResult{}, err
	}

	elem, err := sonic.Marshal(element)
	if err != nil {
		return repository.UpdateResult{}, errors.Wrap(err, "encode element")
	}

	query := fmt.Sprintf(`
		WITH target AS (
			SELECT id FROM %[1]s WHERE id = $1
		), updated AS (
			UPDATE %[1]s
			SET doc = jsonb_set(
					doc,
					ARRAY[$2::text],
					COALESCE(doc->($2::text), '[]'::jsonb) || jsonb_build_array($3::jsonb)
				),
				updated_at = NOW()
			WHERE id = $1
			RETURNING id
		)
		SELECT (SELECT COUNT(*) FROM target), (SELECT COUNT(*) FROM updated)
	`, tbl)

	return s.update(ctx, query, coll, id, id, arrayField, string(elem))
}

// PullElement удаляет из массива элементы, у которых поле match.Key равно match.Value
func (s *Store) PullElement(ctx context.Context, coll repository.Collection, id, arrayField string, match repository.Match) (repository.UpdateResult, error) {
	tbl, err := table(coll)
	if err != nil {
		return repository.UpdateResult{}, err
	}

	// Как и $pull, документ без подходящих элементов не считается измененным
	query := fmt.Sprintf(`
		WITH target AS (
			SELECT id FROM %[1]s WHERE id = $1
		), updated AS (
			UPDATE %[1]s t
			SET doc = jsonb_set(
					t.doc,
					ARRAY[$2::text],
					COALESCE((
						SELECT jsonb_agg(e.value ORDER BY e.idx)
						FROM jsonb_array_elements(t.doc->($2::text)) WITH ORDINALITY AS e(value, idx)
						WHERE e.value->>($3::text) IS DISTINCT FROM $4::text
					), '[]'::jsonb)
				),
				updated_at = NOW()
			WHERE t.id = $1
			  AND EXISTS (
				SELECT 1
				FROM jsonb_array_elements(t.doc->($2::text)) AS e(value)
				WHERE e.value->>($3::text) = $4::text
			  )
			RETURNING t.id
		)
		SELECT (SELECT COUNT(*) FROM target), (SELECT COUNT(*) FROM updated)
	`, tbl)

	return s.update(ctx, query, coll, id, id, arrayField, match.Key, match.Value)
}

// Delete удаляет документ целиком
func (s *Store) Delete(ctx context.Context, coll repository.Collection, id string) (repository.UpdateResult, error) {
	tbl, err := table(coll)
	if err != nil {
		return repository.UpdateResult{}, err
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, tbl)

	result, err := s.db.Exec(ctx, query, id)
	if err != nil {
		return repository.UpdateResult{}, errors.Wrapf(err, "delete %s/%s", coll, id)
	}

	return repository.UpdateResult{
		Matched:  result.RowsAffected(),
		Modified: result.RowsAffected(),
	}, nil
}

// update выполняет запрос, возвращающий пару (matched, modified)
func (s *Store) update(ctx context.Context, query string, coll repository.Collection, id string, args ...any) (repository.UpdateResult, error) {
	var result repository.UpdateResult
	if err := s.db.QueryRow(ctx, query, args...).Scan(&result.Matched, &result.Modified); err != nil {
		return repository.UpdateResult{}, errors.Wrapf(err, "update %s/%s", coll, id)
	}
	return result, nil
}
