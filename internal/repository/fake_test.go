package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	notesrepo "github.com/evgeniy-krivenko/notes-api/internal/repository/notes/gen"
	"github.com/evgeniy-krivenko/notes-api/pkg/database"
)

type call struct {
	sql  string
	args []any
}

type fakeConn struct {
	calls []call

	row     *notesrepo.Note
	rows    []notesrepo.Note
	tag     string
	failErr error
}

type fakeAcquirer struct {
	conn       *fakeConn
	acquireErr error

	acquired int
	released int
}

func (a *fakeAcquirer) Acquire(context.Context) (database.Tx, func(), error) {
	if a.acquireErr != nil {
		return nil, nil, a.acquireErr
	}

	a.acquired++
	return a.conn, func() { a.released++ }, nil
}

func (c *fakeConn) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	c.calls = append(c.calls, call{sql: sql, args: args})
	if c.failErr != nil {
		return pgconn.CommandTag{}, c.failErr
	}

	return pgconn.NewCommandTag(c.tag), nil
}

func (c *fakeConn) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	c.calls = append(c.calls, call{sql: sql, args: args})
	if c.failErr != nil {
		return nil, c.failErr
	}

	return &fakeRows{rows: c.rows, idx: -1}, nil
}

func (c *fakeConn) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	c.calls = append(c.calls, call{sql: sql, args: args})
	if c.failErr != nil {
		return fakeRow{err: c.failErr}
	}
	if c.row == nil {
		return fakeRow{err: pgx.ErrNoRows}
	}

	return fakeRow{note: *c.row}
}

func (c *fakeConn) CopyFrom(context.Context, pgx.Identifier, []string, pgx.CopyFromSource) (int64, error) {
	return 0, errors.New("not supported")
}

type fakeRow struct {
	note notesrepo.Note
	err  error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}

	return scanNote(r.note, dest)
}

func scanNote(n notesrepo.Note, dest []any) error {
	if len(dest) != 6 {
		return errors.New("unexpected column count")
	}

	*dest[0].(*int64) = n.ID
	*dest[1].(*int64) = n.UserID
	*dest[2].(*string) = n.Title
	*dest[3].(*pgtype.Text) = n.Content
	*dest[4].(*pgtype.Timestamptz) = n.CreatedAt
	*dest[5].(*pgtype.Timestamptz) = n.UpdatedAt

	return nil
}

type fakeRows struct {
	rows []notesrepo.Note
	idx  int
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return nil }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.NewCommandTag("SELECT") }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Values() ([]any, error)                       { return nil, nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	r.idx++
	return r.idx < len(r.rows)
}

func (r *fakeRows) Scan(dest ...any) error {
	return scanNote(r.rows[r.idx], dest)
}
