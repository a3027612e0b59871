// Package erros define os tipos de erro que a camada de serviço devolve
// aos handlers: registro não encontrado, validação de entrada e falha de
// persistência. Os handlers decidem o status HTTP com errors.Is/errors.As.
package erros

import (
	"errors"
	"fmt"
)

// ErrNaoEncontrado indica que a entidade referenciada não existe no banco.
var ErrNaoEncontrado = errors.New("registro não encontrado")

// ErroValidacao indica entrada inválida do chamador. Nenhuma operação de
// banco deve ter sido executada quando ele é devolvido.
type ErroValidacao struct {
	Campo  string
	Motivo string
}

func (e *ErroValidacao) Error() string {
	if e.Campo == "" {
		return e.Motivo
	}
	return fmt.Sprintf("campo '%s': %s", e.Campo, e.Motivo)
}

// NovaValidacao cria um ErroValidacao para o campo informado.
func NovaValidacao(campo, motivo string) error {
	return &ErroValidacao{Campo: campo, Motivo: motivo}
}

// EhValidacao informa se err é (ou embrulha) um erro de validação.
func EhValidacao(err error) bool {
	var ev *ErroValidacao
	return errors.As(err, &ev)
}
