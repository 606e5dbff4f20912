package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/brequin/brequin/plan/curriculum"
)

// Correlatives carry no foreign key on prerequisite_name so that references
// to subjects outside the catalog survive a round trip.
const createSubjects = `CREATE TABLE IF NOT EXISTS subjects (name text PRIMARY KEY, year integer NOT NULL, type text NOT NULL, position integer NOT NULL)`
const createCorrelatives = `CREATE TABLE IF NOT EXISTS correlatives (subject_name text NOT NULL REFERENCES subjects (name) ON DELETE CASCADE, prerequisite_name text NOT NULL, position integer NOT NULL, PRIMARY KEY (subject_name, prerequisite_name))`

const listSubjects = `SELECT name, year, type, position FROM subjects ORDER BY position, name`
const insertSubject = `INSERT INTO subjects (name, year, type, position) VALUES ($1, $2, $3, $4) ON CONFLICT DO NOTHING`

const listCorrelatives = `SELECT subject_name, prerequisite_name, position FROM correlatives ORDER BY subject_name, position`
const insertCorrelative = `INSERT INTO correlatives (subject_name, prerequisite_name, position) VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`

const deleteCorrelatives = `DELETE FROM correlatives`
const deleteSubjects = `DELETE FROM subjects`

type batchSender interface {
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

func insertCallback(ct pgconn.CommandTag) error {
	return nil
}

func (d *Database) EnsureSchema(ctx context.Context) error {
	if _, err := d.Pool.Exec(ctx, createSubjects); err != nil {
		return err
	}
	if _, err := d.Pool.Exec(ctx, createCorrelatives); err != nil {
		return err
	}
	return nil
}

func (d *Database) ListSubjects(ctx context.Context) ([]Subject, error) {
	rows, err := d.Pool.Query(ctx, listSubjects)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subjects []Subject
	for rows.Next() {
		var subject Subject
		if err := rows.Scan(&subject.Name, &subject.Year, &subject.Type, &subject.Position); err != nil {
			return nil, err
		}
		subjects = append(subjects, subject)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return subjects, nil
}

func (d *Database) InsertSubjects(ctx context.Context, subjects []Subject) error {
	return insertSubjects(ctx, d.Pool, subjects)
}

func insertSubjects(ctx context.Context, sender batchSender, subjects []Subject) error {
	if len(subjects) == 0 {
		return nil
	}

	batch := pgx.Batch{}
	var queuedQueries []*pgx.QueuedQuery

	for _, subject := range subjects {
		queuedQueries = append(queuedQueries, batch.Queue(insertSubject, subject.Name, subject.Year, subject.Type, subject.Position))
	}

	for _, queuedQuery := range queuedQueries {
		queuedQuery.Exec(insertCallback)
	}

	if err := sender.SendBatch(ctx, &batch).Close(); err != nil {
		return err
	}

	return nil
}

func (d *Database) ListCorrelatives(ctx context.Context) ([]Correlative, error) {
	rows, err := d.Pool.Query(ctx, listCorrelatives)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var correlatives []Correlative
	for rows.Next() {
		var correlative Correlative
		if err := rows.Scan(&correlative.SubjectName, &correlative.PrerequisiteName, &correlative.Position); err != nil {
			return nil, err
		}
		correlatives = append(correlatives, correlative)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return correlatives, nil
}

func (d *Database) InsertCorrelatives(ctx context.Context, correlatives []Correlative) error {
	return insertCorrelatives(ctx, d.Pool, correlatives)
}

func insertCorrelatives(ctx context.Context, sender batchSender, correlatives []Correlative) error {
	if len(correlatives) == 0 {
		return nil
	}

	batch := pgx.Batch{}
	var queuedQueries []*pgx.QueuedQuery

	for _, correlative := range correlatives {
		queuedQueries = append(queuedQueries, batch.Queue(insertCorrelative, correlative.SubjectName, correlative.PrerequisiteName, correlative.Position))
	}

	for _, queuedQuery := range queuedQueries {
		queuedQuery.Exec(insertCallback)
	}

	if err := sender.SendBatch(ctx, &batch).Close(); err != nil {
		return err
	}

	return nil
}

// StoreCatalog replaces the stored catalog with catalog in one transaction.
func (d *Database) StoreCatalog(ctx context.Context, catalog []curriculum.Subject) error {
	subjects, correlatives := FromCatalog(catalog)

	return pgx.BeginFunc(ctx, d.Pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, deleteCorrelatives); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, deleteSubjects); err != nil {
			return err
		}
		if err := insertSubjects(ctx, tx, subjects); err != nil {
			return err
		}
		return insertCorrelatives(ctx, tx, correlatives)
	})
}

// LoadCatalog reads the stored catalog back in its original order.
func (d *Database) LoadCatalog(ctx context.Context) ([]curriculum.Subject, error) {
	subjects, err := d.ListSubjects(ctx)
	if err != nil {
		return nil, err
	}

	correlatives, err := d.ListCorrelatives(ctx)
	if err != nil {
		return nil, err
	}

	return ToCatalog(subjects, correlatives)
}
