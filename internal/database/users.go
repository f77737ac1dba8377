package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Renal37/laundry-service/internal/models"
)

var (
	ErrDuplicateUser = errors.New("user already exists")
)

const (
	InsertUserQuery = `
		INSERT INTO
			users (login, hash, role, name, phone)
		VALUES ($1, $2, $3, $4, $5)
	`
	selectUserColumns = `
		SELECT
			id, login, hash, role, name, phone,
			street, city, state, zip_code, pg_name, room_number
		FROM
			users
	`
	SelectUserQuery = selectUserColumns + `
		WHERE
			login = $1
	`
	SelectUserByIDQuery = selectUserColumns + `
		WHERE
			id = $1
	`
	SelectUsersQuery = selectUserColumns + `
		ORDER BY
			created_at DESC
	`
	CountUsersQuery = `
		SELECT
			COUNT(*)
		FROM
			users
	`
	UpdateProfileQuery = `
		UPDATE
			users
		SET
			name = $2, phone = $3,
			street = $4, city = $5, state = $6, zip_code = $7, pg_name = $8, room_number = $9
		WHERE
			id = $1
		RETURNING
			id, login, hash, role, name, phone,
			street, city, state, zip_code, pg_name, room_number
	`
	UpsertAdminQuery = `
		INSERT INTO
			users (login, hash, role, name, phone, pg_name)
		VALUES ($1, $2, 'admin', $3, $4, $5)
		ON CONFLICT (login) DO UPDATE
		SET
			hash = EXCLUDED.hash,
			role = 'admin'
		RETURNING
			(xmax = 0)
	`
)

type UserDB struct {
	models.User
}

// CreateUser inserts a new user.
func (d *Database) CreateUser(ctx context.Context, user UserDB) error {
	role := user.Role
	if role == "" {
		role = models.RoleCustomer
	}

	if _, err := d.db.Exec(ctx, InsertUserQuery, user.Login, user.Hash, string(role), user.Name, user.Phone); err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			return ErrDuplicateUser
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindUser looks a user up by login. It returns nil without an error when
// there is no such user.
func (d *Database) FindUser(ctx context.Context, login string) (*UserDB, error) {
	return d.findOneUser(ctx, SelectUserQuery, login)
}

// FindUserByID behaves like FindUser but looks the user up by id.
func (d *Database) FindUserByID(ctx context.Context, userID string) (*UserDB, error) {
	return d.findOneUser(ctx, SelectUserByIDQuery, userID)
}

func (d *Database) findOneUser(ctx context.Context, query, arg string) (*UserDB, error) {
	user, err := scanUser(d.db.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// FindUsers returns every user, newest first.
func (d *Database) FindUsers(ctx context.Context) ([]UserDB, error) {
	rows, err := d.db.Query(ctx, SelectUsersQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	result := []UserDB{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		result = append(result, *user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate user rows: %w", err)
	}

	return result, nil
}

func (d *Database) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	if err := d.db.QueryRow(ctx, CountUsersQuery).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

// UpdateProfile overwrites the contact details of a user. It returns nil
// without an error when the user does not exist.
func (d *Database) UpdateProfile(ctx context.Context, userID string, profile models.Profile) (*UserDB, error) {
	addr := profile.Address
	user, err := scanUser(d.db.QueryRow(ctx, UpdateProfileQuery, userID,
		profile.Name, profile.Phone,
		addr.Street, addr.City, addr.State, addr.ZipCode, addr.FacilityName, addr.RoomNumber,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return user, nil
}

// UpsertAdmin creates an admin account or, when the login is taken, resets
// its password and promotes it. It reports whether a new row was created.
func (d *Database) UpsertAdmin(ctx context.Context, user UserDB) (bool, error) {
	var created bool
	err := d.db.QueryRow(ctx, UpsertAdminQuery,
		user.Login, user.Hash, user.Name, user.Phone, user.Address.FacilityName,
	).Scan(&created)
	if err != nil {
		return false, fmt.Errorf("failed to upsert admin: %w", err)
	}
	return created, nil
}

func scanUser(row pgx.Row) (*UserDB, error) {
	var (
		user UserDB
		role string
	)

	addr := &user.Address
	err := row.Scan(
		&user.ID, &user.Login, &user.Hash, &role, &user.Name, &user.Phone,
		&addr.Street, &addr.City, &addr.State, &addr.ZipCode, &addr.FacilityName, &addr.RoomNumber,
	)
	if err != nil {
		return nil, err
	}

	user.Role = models.Role(role)
	return &user, nil
}
