package clientrepo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gescon/internal/domain"
	apperror "gescon/internal/errors"
	"gescon/internal/pkg/cache"
	"gescon/internal/pkg/database"
	"gescon/internal/pkg/logger"
)

// Chave de cache para clientes (estratégia Cache-Aside em FindByID).
const clientCacheKey = "client:%d"

// ClientRepository implementa a interface domain.ClientRepository sobre
// PostgreSQL, com cache Redis nas leituras por ID.
type ClientRepository struct {
	DB        *sql.DB
	Cache     cache.Client
	DBTimeout time.Duration
	CacheTTL  time.Duration
	logger    logger.Logger
}

// NewClientRepository cria uma nova instância do ClientRepository, injetando
// as conexões de infraestrutura.
func NewClientRepository(db *sql.DB, cacheClient cache.Client, dbTimeout, cacheTTL time.Duration, log logger.Logger) *ClientRepository {
	return &ClientRepository{
		DB:        db,
		Cache:     cacheClient,
		DBTimeout: dbTimeout,
		CacheTTL:  cacheTTL,
		logger:    log,
	}
}

// Save insere um novo cliente (ID == 0) ou atualiza um existente,
// devolvendo a entidade com a identidade atribuída pelo banco.
func (r *ClientRepository) Save(ctx context.Context, client domain.Client) (domain.Client, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var err error
	if client.ID == 0 {
		const insertSQL = `INSERT INTO clients (code, nickname, company_name, cnpj)
		                   VALUES ($1, $2, $3, $4) RETURNING id`
		err = r.DB.QueryRowContext(ctxTimeout, insertSQL,
			nullableInt(client.Code),
			client.Nickname,
			client.CompanyName,
			client.CNPJ,
		).Scan(&client.ID)
	} else {
		const updateSQL = `UPDATE clients SET code = $1, nickname = $2, company_name = $3, cnpj = $4
		                   WHERE id = $5`
		_, err = r.DB.ExecContext(ctxTimeout, updateSQL,
			nullableInt(client.Code),
			client.Nickname,
			client.CompanyName,
			client.CNPJ,
			client.ID,
		)
	}

	if err != nil {
		// Segunda linha de defesa da unicidade: a constraint do banco fecha
		// a janela de corrida entre a checagem do serviço e o write.
		if database.IsUniqueViolation(err) {
			return domain.Client{}, apperror.NewConflictError(uniqueMessage(err))
		}
		r.logger.Error("Falha ao salvar cliente no DB.", err)
		return domain.Client{}, apperror.NewDBError("failed to save client", err)
	}

	r.invalidate(ctxTimeout, client.ID)
	return client, nil
}

// FindByID busca um cliente pelo ID, utilizando a estratégia Cache-Aside.
func (r *ClientRepository) FindByID(ctx context.Context, id int64) (domain.Client, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	key := fmt.Sprintf(clientCacheKey, id)
	var client domain.Client

	// 1. Tentar obter do Cache (Redis)
	cachedData, err := r.Cache.Get(ctxTimeout, key)
	if err == nil {
		if json.Unmarshal([]byte(cachedData), &client) == nil {
			return client, nil
		}
		// Desserialização falhou: segue para o banco.
	}

	// 2. Busca no Banco de Dados (PostgreSQL)
	const query = `SELECT id, code, nickname, company_name, cnpj FROM clients WHERE id = $1`
	row := r.DB.QueryRowContext(ctxTimeout, query, id)

	client, err = scanClient(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Client{}, apperror.NewNotFoundError("Client not found")
		}
		r.logger.Error("Falha ao buscar cliente por ID no DB.", err)
		return domain.Client{}, apperror.NewDBError("failed to find client by id", err)
	}

	// 3. Popula o cache para futuras requisições.
	if clientJSON, marshalErr := json.Marshal(client); marshalErr == nil {
		r.Cache.Set(ctxTimeout, key, clientJSON, r.CacheTTL)
	}

	return client, nil
}

// FindByCnpj busca um cliente pela chave natural CNPJ.
func (r *ClientRepository) FindByCnpj(ctx context.Context, cnpj string) (domain.Client, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const query = `SELECT id, code, nickname, company_name, cnpj FROM clients WHERE cnpj = $1`
	client, err := scanClient(r.DB.QueryRowContext(ctxTimeout, query, cnpj))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Client{}, apperror.NewNotFoundError("Client not found")
		}
		r.logger.Error("Falha ao buscar cliente por CNPJ no DB.", err)
		return domain.Client{}, apperror.NewDBError("failed to find client by cnpj", err)
	}
	return client, nil
}

// FindByCode busca um cliente pelo código numérico opcional.
func (r *ClientRepository) FindByCode(ctx context.Context, code int64) (domain.Client, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const query = `SELECT id, code, nickname, company_name, cnpj FROM clients WHERE code = $1`
	client, err := scanClient(r.DB.QueryRowContext(ctxTimeout, query, code))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Client{}, apperror.NewNotFoundError("Client not found")
		}
		r.logger.Error("Falha ao buscar cliente por código no DB.", err)
		return domain.Client{}, apperror.NewDBError("failed to find client by code", err)
	}
	return client, nil
}

// ListAll devolve todos os clientes cadastrados.
func (r *ClientRepository) ListAll(ctx context.Context) ([]domain.Client, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const query = `SELECT id, code, nickname, company_name, cnpj FROM clients ORDER BY id`
	rows, err := r.DB.QueryContext(ctxTimeout, query)
	if err != nil {
		r.logger.Error("Falha ao listar clientes no DB.", err)
		return nil, apperror.NewDBError("failed to list clients", err)
	}
	defer rows.Close()

	clients := []domain.Client{}
	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			return nil, apperror.NewDBError("failed to scan client row", err)
		}
		clients = append(clients, client)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDBError("failed to iterate client rows", err)
	}
	return clients, nil
}

// Delete remove um cliente pelo ID.
func (r *ClientRepository) Delete(ctx context.Context, id int64) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const query = `DELETE FROM clients WHERE id = $1`
	if _, err := r.DB.ExecContext(ctxTimeout, query, id); err != nil {
		r.logger.Error("Falha ao deletar cliente no DB.", err)
		return apperror.NewDBError("failed to delete client", err)
	}

	r.invalidate(ctxTimeout, id)
	return nil
}

// invalidate remove a entrada de cache do cliente após um write.
func (r *ClientRepository) invalidate(ctx context.Context, id int64) {
	if id != 0 {
		r.Cache.Delete(ctx, fmt.Sprintf(clientCacheKey, id))
	}
}

// scanner cobre *sql.Row e *sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

// scanClient mapeia uma linha da tabela clients para a entidade.
func scanClient(row scanner) (domain.Client, error) {
	var client domain.Client
	var code sql.NullInt64

	if err := row.Scan(&client.ID, &code, &client.Nickname, &client.CompanyName, &client.CNPJ); err != nil {
		return domain.Client{}, err
	}
	if code.Valid {
		client.Code = &code.Int64
	}
	return client, nil
}

// nullableInt converte o ponteiro opcional para o valor aceito pelo driver.
func nullableInt(v *int64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

// uniqueMessage escolhe a mensagem de duplicidade conforme a constraint violada.
func uniqueMessage(err error) string {
	switch database.ConstraintName(err) {
	case "clients_code_key":
		return "Client with this Code already exists."
	default:
		return "Client with this CNPJ already exists."
	}
}
