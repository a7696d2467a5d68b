package servicerepo

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

// ServiceRepository implementa a interface domain.ServiceRepository sobre
// PostgreSQL.
type ServiceRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewServiceRepository cria uma nova instância do ServiceRepository.
func NewServiceRepository(db *sql.DB, dbTimeout time.Duration, log logger.Logger) *ServiceRepository {
	return &ServiceRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    log,
	}
}

// Save insere um novo serviço (ID == 0) ou atualiza um existente.
func (r *ServiceRepository) Save(ctx context.Context, service domain.Service) (domain.Service, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var err error
	if service.ID == 0 {
		const insertSQL = `INSERT INTO services (name, code, default_price)
		                   VALUES ($1, $2, $3) RETURNING id`
		err = r.DB.QueryRowContext(ctxTimeout, insertSQL,
			service.Name,
			service.Code,
			nullableFloat(service.DefaultPrice),
		).Scan(&service.ID)
	} else {
		const updateSQL = `UPDATE services SET name = $1, code = $2, default_price = $3 WHERE id = $4`
		_, err = r.DB.ExecContext(ctxTimeout, updateSQL,
			service.Name,
			service.Code,
			nullableFloat(service.DefaultPrice),
			service.ID,
		)
	}

	if err != nil {
		if database.IsUniqueViolation(err) {
			return domain.Service{}, apperror.NewConflictError("Service with this code already exists.")
		}
		r.logger.Error("Falha ao salvar serviço no DB.", err)
		return domain.Service{}, apperror.NewDBError("failed to save service", err)
	}

	return service, nil
}

// FindByID busca um serviço pelo ID.
func (r *ServiceRepository) FindByID(ctx context.Context, id int64) (domain.Service, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const query = `SELECT id, name, code, default_price FROM services WHERE id = $1`
	service, err := scanService(r.DB.QueryRowContext(ctxTimeout, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Service{}, apperror.NewNotFoundError("Service not found")
		}
		r.logger.Error("Falha ao buscar serviço por ID no DB.", err)
		return domain.Service{}, apperror.NewDBError("failed to find service by id", err)
	}
	return service, nil
}

// FindByCode busca um serviço pela chave natural (código alfanumérico).
func (r *ServiceRepository) FindByCode(ctx context.Context, code string) (domain.Service, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const query = `SELECT id, name, code, default_price FROM services WHERE code = $1`
	service, err := scanService(r.DB.QueryRowContext(ctxTimeout, query, code))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Service{}, apperror.NewNotFoundError("Service not found")
		}
		r.logger.Error("Falha ao buscar serviço por código no DB.", err)
		return domain.Service{}, apperror.NewDBError("failed to find service by code", err)
	}
	return service, nil
}

// ListAll devolve todos os serviços cadastrados.
func (r *ServiceRepository) ListAll(ctx context.Context) ([]domain.Service, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const query = `SELECT id, name, code, default_price FROM services ORDER BY id`
	rows, err := r.DB.QueryContext(ctxTimeout, query)
	if err != nil {
		r.logger.Error("Falha ao listar serviços no DB.", err)
		return nil, apperror.NewDBError("failed to list services", err)
	}
	defer rows.Close()

	services := []domain.Service{}
	for rows.Next() {
		service, err := scanService(rows)
		if err != nil {
			return nil, apperror.NewDBError("failed to scan service row", err)
		}
		services = append(services, service)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDBError("failed to iterate service rows", err)
	}
	return services, nil
}

// Delete remove um serviço pelo ID.
func (r *ServiceRepository) Delete(ctx context.Context, id int64) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const query = `DELETE FROM services WHERE id = $1`
	if _, err := r.DB.ExecContext(ctxTimeout, query, id); err != nil {
		r.logger.Error("Falha ao deletar serviço no DB.", err)
		return apperror.NewDBError("failed to delete service", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

// scanService mapeia uma linha da tabela services para a entidade.
func scanService(row scanner) (domain.Service, error) {
	var service domain.Service
	var price sql.NullFloat64

	if err := row.Scan(&service.ID, &service.Name, &service.Code, &price); err != nil {
		return domain.Service{}, err
	}
	if price.Valid {
		service.DefaultPrice = &price.Float64
	}
	return service, nil
}

// nullableFloat converte o ponteiro opcional para o valor aceito pelo driver.
func nullableFloat(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
