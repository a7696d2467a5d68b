package domain

import (
	"fmt"
	"strings"
	"time"
)

// dateLayout é o formato canônico de data do contrato da API.
const dateLayout = "2006-01-02"

// Date é um valor de data (sem hora) que aceita, no JSON de entrada, tanto
// "2006-01-02" quanto timestamps RFC3339. A coerção acontece na borda HTTP:
// as camadas internas só enxergam o time.Time resultante.
type Date struct {
	time.Time
}

// NewDate cria um Date a partir de um time.Time.
func NewDate(t time.Time) Date {
	return Date{Time: t}
}

// UnmarshalJSON decodifica a string de data do payload. String vazia é
// rejeitada: o chamador enviou o campo, mas sem um valor de data.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" {
		return nil
	}
	if s == "" {
		return fmt.Errorf("data inválida: vazia (esperado %s ou RFC3339)", dateLayout)
	}

	for _, layout := range []string{dateLayout, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("data inválida: %q (esperado %s ou RFC3339)", s, dateLayout)
}

// MarshalJSON serializa a data no formato canônico.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Time.Format(dateLayout) + `"`), nil
}
