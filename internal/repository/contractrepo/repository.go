package contractrepo

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

// ContractRepository implementa a interface domain.ContractRepository sobre
// PostgreSQL.
type ContractRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewContractRepository cria uma nova instância do ContractRepository.
func NewContractRepository(db *sql.DB, dbTimeout time.Duration, log logger.Logger) *ContractRepository {
	return &ContractRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    log,
	}
}

const contractColumns = `id, contract_code, client_id, service_id, quantity, unit_price, start_date, end_date, status, observation`

// Save insere um novo contrato (ID == 0) ou atualiza um existente.
func (r *ContractRepository) Save(ctx context.Context, contract domain.Contract) (domain.Contract, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var err error
	if contract.ID == 0 {
		const insertSQL = `
			INSERT INTO contracts
			(contract_code, client_id, service_id, quantity, unit_price, start_date, end_date, status, observation)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
		err = r.DB.QueryRowContext(ctxTimeout, insertSQL,
			contract.ContractCode,
			contract.ClientID,
			contract.ServiceID,
			contract.Quantity,
			contract.UnitPrice,
			contract.StartDate,
			nullableTime(contract.EndDate),
			contract.Status,
			nullableString(contract.Observation),
		).Scan(&contract.ID)
	} else {
		const updateSQL = `
			UPDATE contracts
			SET contract_code = $1, client_id = $2, service_id = $3, quantity = $4, unit_price = $5,
			    start_date = $6, end_date = $7, status = $8, observation = $9
			WHERE id = $10`
		_, err = r.DB.ExecContext(ctxTimeout, updateSQL,
			contract.ContractCode,
			contract.ClientID,
			contract.ServiceID,
			contract.Quantity,
			contract.UnitPrice,
			contract.StartDate,
			nullableTime(contract.EndDate),
			contract.Status,
			nullableString(contract.Observation),
			contract.ID,
		)
	}

	if err != nil {
		if database.IsUniqueViolation(err) {
			return domain.Contract{}, apperror.NewConflictError("Contract with this code already exists.")
		}
		r.logger.Error("Falha ao salvar contrato no DB.", err)
		return domain.Contract{}, apperror.NewDBError("failed to save contract", err)
	}

	return contract, nil
}

// FindByID busca um contrato pelo ID.
func (r *ContractRepository) FindByID(ctx context.Context, id int64) (domain.Contract, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const query = `SELECT ` + contractColumns + ` FROM contracts WHERE id = $1`
	contract, err := scanContract(r.DB.QueryRowContext(ctxTimeout, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Contract{}, apperror.NewNotFoundError("Contract not found")
		}
		r.logger.Error("Falha ao buscar contrato por ID no DB.", err)
		return domain.Contract{}, apperror.NewDBError("failed to find contract by id", err)
	}
	return contract, nil
}

// FindByCode busca um contrato pela chave natural (código de contrato).
func (r *ContractRepository) FindByCode(ctx context.Context, code string) (domain.Contract, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const query = `SELECT ` + contractColumns + ` FROM contracts WHERE contract_code = $1`
	contract, err := scanContract(r.DB.QueryRowContext(ctxTimeout, query, code))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Contract{}, apperror.NewNotFoundError("Contract not found")
		}
		r.logger.Error("Falha ao buscar contrato por código no DB.", err)
		return domain.Contract{}, apperror.NewDBError("failed to find contract by code", err)
	}
	return contract, nil
}

// FindByClientID lista os contratos de um cliente.
func (r *ContractRepository) FindByClientID(ctx context.Context, clientID int64) ([]domain.Contract, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const query = `SELECT ` + contractColumns + ` FROM contracts WHERE client_id = $1 ORDER BY id`
	return r.queryContracts(ctxTimeout, query, clientID)
}

// ListAll devolve todos os contratos cadastrados.
func (r *ContractRepository) ListAll(ctx context.Context) ([]domain.Contract, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const query = `SELECT ` + contractColumns + ` FROM contracts ORDER BY id`
	return r.queryContracts(ctxTimeout, query)
}

// Delete remove um contrato pelo ID.
func (r *ContractRepository) Delete(ctx context.Context, id int64) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const query = `DELETE FROM contracts WHERE id = $1`
	if _, err := r.DB.ExecContext(ctxTimeout, query, id); err != nil {
		r.logger.Error("Falha ao deletar contrato no DB.", err)
		return apperror.NewDBError("failed to delete contract", err)
	}
	return nil
}

// queryContracts executa uma consulta de múltiplas linhas e mapeia o resultado.
func (r *ContractRepository) queryContracts(ctx context.Context, query string, args ...interface{}) ([]domain.Contract, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Falha ao consultar contratos no DB.", err)
		return nil, apperror.NewDBError("failed to query contracts", err)
	}
	defer rows.Close()

	contracts := []domain.Contract{}
	for rows.Next() {
		contract, err := scanContract(rows)
		if err != nil {
			return nil, apperror.NewDBError("failed to scan contract row", err)
		}
		contracts = append(contracts, contract)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDBError("failed to iterate contract rows", err)
	}
	return contracts, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

// scanContract mapeia uma linha da tabela contracts para a entidade.
func scanContract(row scanner) (domain.Contract, error) {
	var contract domain.Contract
	var endDate sql.NullTime
	var observation sql.NullString

	err := row.Scan(
		&contract.ID,
		&contract.ContractCode,
		&contract.ClientID,
		&contract.ServiceID,
		&contract.Quantity,
		&contract.UnitPrice,
		&contract.StartDate,
		&endDate,
		&contract.Status,
		&observation,
	)
	if err != nil {
		return domain.Contract{}, err
	}

	if endDate.Valid {
		contract.EndDate = &endDate.Time
	}
	if observation.Valid {
		contract.Observation = &observation.String
	}
	return contract, nil
}

func nullableTime(v *time.Time) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func nullableString(v *string) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
