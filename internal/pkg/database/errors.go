package database

import (
	"errors"

	"github.com/lib/pq"
)

// uniqueViolation é o código SQLSTATE do PostgreSQL para violação de
// restrição UNIQUE.
const uniqueViolation = "23505"

// IsUniqueViolation informa se o erro do driver é uma violação de chave
// única. Os repositórios usam isto para traduzir a segunda linha de defesa
// (constraint no banco) no mesmo erro de duplicidade da regra de negócio.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolation
	}
	return false
}

// ConstraintName devolve o nome da constraint violada, quando o erro vem do
// driver pq, ou string vazia. Permite ao repositório escolher a mensagem de
// duplicidade correta (CNPJ vs código, por exemplo).
func ConstraintName(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Constraint
	}
	return ""
}
