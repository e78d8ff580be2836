package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"restaurant-reviews/internal/database"
	"restaurant-reviews/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

/* ---------- 假實作 ---------- */

// fakeUserRow 實作 pgx.Row，用於模擬單筆掃描行為。
type fakeUserRow struct {
	scanErr error
	user    *model.User
}

func (r *fakeUserRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	u := r.user
	switch len(dest) {
	case 7:
		// GetUserByID / GetUserByUsername: id, username, email, password_hash, role, created_at, updated_at
		*dest[0].(*int) = u.ID
		*dest[1].(*string) = u.Username
		*dest[2].(*string) = u.Email
		*dest[3].(*string) = u.PasswordHash
		*dest[4].(*model.Role) = u.Role
		*dest[5].(*time.Time) = u.CreatedAt
		*dest[6].(*time.Time) = u.UpdatedAt
	case 3:
		// CreateUser: id, created_at, updated_at
		*dest[0].(*int) = u.ID
		*dest[1].(*time.Time) = u.CreatedAt
		*dest[2].(*time.Time) = u.UpdatedAt
	case 1:
		// UpdateUser: updated_at
		*dest[0].(*time.Time) = u.UpdatedAt
	default:
		panic("fakeUserRow.Scan: unexpected number of dest")
	}
	return nil
}

// fakeUserRows 實作 pgx.Rows，用於模擬多筆掃描行為。
type fakeUserRows struct {
	data    []model.User
	idx     int
	scanErr error
	err     error
}

func (r *fakeUserRows) Close()                                       {}
func (r *fakeUserRows) Err() error                                   { return r.err }
func (r *fakeUserRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeUserRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeUserRows) Next() bool                                   { return r.idx < len(r.data) }
func (r *fakeUserRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	u := r.data[r.idx]
	r.idx++
	*dest[0].(*int) = u.ID
	*dest[1].(*string) = u.Username
	*dest[2].(*string) = u.Email
	*dest[3].(*string) = u.PasswordHash
	*dest[4].(*model.Role) = u.Role
	*dest[5].(*time.Time) = u.CreatedAt
	*dest[6].(*time.Time) = u.UpdatedAt
	return nil
}
func (r *fakeUserRows) Values() ([]any, error) { return nil, nil }
func (r *fakeUserRows) RawValues() [][]byte    { return nil }
func (r *fakeUserRows) Conn() *pgx.Conn        { return nil }

/* ---------- 完整測試 ---------- */

func TestUserStore(t *testing.T) {
	now := time.Now().UTC()
	sample := model.User{
		ID:           1,
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$hash",
		Role:         model.RoleRespondent,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	/* GetUserByID */
	t.Run("GetByID ok", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeUserRow{user: &sample}
			},
		}
		got, err := GetUserByID(context.Background(), p, 1)
		require.NoError(t, err)
		require.Equal(t, sample.Username, got.Username)
		require.Equal(t, sample.Role, got.Role)
	})

	t.Run("GetByID no rows", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeUserRow{scanErr: pgx.ErrNoRows}
			},
		}
		_, err := GetUserByID(context.Background(), p, 99)
		require.ErrorIs(t, err, ErrNotFound)
	})

	/* GetUserByUsername */
	t.Run("GetByUsername ok", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				require.Equal(t, []any{"alice"}, args)
				return &fakeUserRow{user: &sample}
			},
		}
		got, err := GetUserByUsername(context.Background(), p, "alice")
		require.NoError(t, err)
		require.Equal(t, sample.ID, got.ID)
	})

	/* CreateUser */
	t.Run("Create ok", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeUserRow{user: &sample}
			},
		}
		u := sample
		got, err := CreateUser(context.Background(), p, &u)
		require.NoError(t, err)
		require.Equal(t, sample.ID, got.ID)
	})

	t.Run("Create duplicate", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeUserRow{scanErr: &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"}}
			},
		}
		u := sample
		_, err := CreateUser(context.Background(), p, &u)
		require.ErrorIs(t, err, ErrDuplicate)
	})

	/* UpdateUser */
	t.Run("Update ok", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeUserRow{user: &sample}
			},
		}
		u := sample
		require.NoError(t, UpdateUser(context.Background(), p, &u))
	})

	t.Run("Update missing", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeUserRow{scanErr: pgx.ErrNoRows}
			},
		}
		u := sample
		require.ErrorIs(t, UpdateUser(context.Background(), p, &u), ErrNotFound)
	})

	t.Run("Update duplicate email", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeUserRow{scanErr: &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}}
			},
		}
		u := sample
		require.ErrorIs(t, UpdateUser(context.Background(), p, &u), ErrDuplicate)
	})

	/* DeleteUser */
	t.Run("Delete ok", func(t *testing.T) {
		p := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("DELETE 1"), nil
			},
		}
		require.NoError(t, DeleteUser(context.Background(), p, 1))
	})

	t.Run("Delete missing", func(t *testing.T) {
		p := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("DELETE 0"), nil
			},
		}
		require.ErrorIs(t, DeleteUser(context.Background(), p, 99), ErrNotFound)
	})

	t.Run("Delete exec err", func(t *testing.T) {
		p := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.CommandTag{}, errors.New("fail delete")
			},
		}
		require.Error(t, DeleteUser(context.Background(), p, 1))
	})

	/* ListUsers */
	t.Run("List ok", func(t *testing.T) {
		rows := &fakeUserRows{data: []model.User{sample, sample}}
		p := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return rows, nil
			},
		}
		list, err := ListUsers(context.Background(), p)
		require.NoError(t, err)
		require.Len(t, list, 2)
	})

	t.Run("List query err", func(t *testing.T) {
		p := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return nil, errors.New("database fail")
			},
		}
		_, err := ListUsers(context.Background(), p)
		require.Error(t, err)
	})

	t.Run("List scan err", func(t *testing.T) {
		rows := &fakeUserRows{data: []model.User{sample}, scanErr: errors.New("scan fail")}
		p := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return rows, nil
			},
		}
		_, err := ListUsers(context.Background(), p)
		require.Error(t, err)
	})
}
