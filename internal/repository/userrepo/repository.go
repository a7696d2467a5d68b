package userrepo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gescon/internal/domain"
	apperror "gescon/internal/errors"
	"gescon/internal/pkg/database"
	"gescon/internal/pkg/logger"
)

// UserRepository implementa a interface domain.UserRepository sobre
// PostgreSQL. O hash da senha chega pronto da camada de serviço e é
// persistido como está.
type UserRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewUserRepository cria uma nova instância do UserRepository, injetando o DB.
func NewUserRepository(db *sql.DB, dbTimeout time.Duration, log logger.Logger) *UserRepository {
	return &UserRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    log,
	}
}

// Save insere um novo usuário (ID == 0) ou atualiza um existente.
func (r *UserRepository) Save(ctx context.Context, user domain.User) (domain.User, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var err error
	if user.ID == 0 {
		const insertSQL = `INSERT INTO users (email, password_hash, role)
		                   VALUES ($1, $2, $3) RETURNING id`
		err = r.DB.QueryRowContext(ctxTimeout, insertSQL,
			user.Email,
			user.PasswordHash,
			user.Role,
		).Scan(&user.ID)
	} else {
		const updateSQL = `UPDATE users SET email = $1, password_hash = $2, role = $3 WHERE id = $4`
		_, err = r.DB.ExecContext(ctxTimeout, updateSQL,
			user.Email,
			user.PasswordHash,
			user.Role,
			user.ID,
		)
	}

	if err != nil {
		if database.IsUniqueViolation(err) {
			return domain.User{}, apperror.NewConflictError("User with this email already exists.")
		}
		r.logger.Error("Falha ao salvar usuário no DB.", err)
		return domain.User{}, apperror.NewDBError("failed to save user", err)
	}

	return user, nil
}

// FindByID busca um usuário pelo ID.
func (r *UserRepository) FindByID(ctx context.Context, id int64) (domain.User, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const query = `SELECT id, email, password_hash, role FROM users WHERE id = $1`
	var user domain.User
	err := r.DB.QueryRowContext(ctxTimeout, query, id).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, apperror.NewNotFoundError("User not found")
		}
		r.logger.Error("Falha ao buscar usuário por ID no DB.", err)
		return domain.User{}, apperror.NewDBError("failed to find user by id", err)
	}
	return user, nil
}

// FindByEmail busca um usuário pelo endereço de e-mail.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const query = `SELECT id, email, password_hash, role FROM users WHERE email = $1`
	var user domain.User
	err := r.DB.QueryRowContext(ctxTimeout, query, email).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, apperror.NewNotFoundError("User not found")
		}
		r.logger.Error("Falha ao buscar usuário por email no DB.", err)
		return domain.User{}, apperror.NewDBError("failed to find user by email", err)
	}
	return user, nil
}

// ListAll devolve todos os usuários cadastrados.
func (r *UserRepository) ListAll(ctx context.Context) ([]domain.User, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const query = `SELECT id, email, password_hash, role FROM users ORDER BY id`
	rows, err := r.DB.QueryContext(ctxTimeout, query)
	if err != nil {
		r.logger.Error("Falha ao listar usuários no DB.", err)
		return nil, apperror.NewDBError("failed to list users", err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Role); err != nil {
			return nil, apperror.NewDBError("failed to scan user row", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDBError("failed to iterate user rows", err)
	}
	return users, nil
}

// Delete remove um usuário pelo ID.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const query = `DELETE FROM users WHERE id = $1`
	if _, err := r.DB.ExecContext(ctxTimeout, query, id); err != nil {
		r.logger.Error("Falha ao deletar usuário no DB.", err)
		return apperror.NewDBError("failed to delete user", err)
	}
	return nil
}
