package pet

import (
	"strings"

	"github.com/ClubePet/api-clube-pet/internal/erros"
)

// Tokens canônicos de porte.
const (
	TamanhoPequeno = "PEQUENO"
	TamanhoMedio   = "MEDIO"
	TamanhoGrande  = "GRANDE"
	TamanhoGigante = "GIGANTE"
)

// Tokens canônicos de temperamento.
const (
	TemperamentoCalmo     = "CALMO"
	TemperamentoDocil     = "DOCIL"
	TemperamentoAgitado   = "AGITADO"
	TemperamentoTimido    = "TIMIDO"
	TemperamentoAgressivo = "AGRESSIVO"
)

// Grafias aceitas na entrada (já em maiúsculas) mapeadas para o token
// canônico armazenado. Variantes acentuadas são aceitas.
var tamanhosValidos = map[string]string{
	"PEQUENO": TamanhoPequeno,
	"MEDIO":   TamanhoMedio,
	"MÉDIO":   TamanhoMedio,
	"GRANDE":  TamanhoGrande,
	"GIGANTE": TamanhoGigante,
}

var temperamentosValidos = map[string]string{
	"CALMO":     TemperamentoCalmo,
	"DOCIL":     TemperamentoDocil,
	"DÓCIL":     TemperamentoDocil,
	"AGITADO":   TemperamentoAgitado,
	"TIMIDO":    TemperamentoTimido,
	"TÍMIDO":    TemperamentoTimido,
	"AGRESSIVO": TemperamentoAgressivo,
}

// NormalizarTamanho valida e converte o porte informado para o token
// canônico em maiúsculas. Vazio ou fora da enumeração é rejeitado antes de
// qualquer normalização.
func NormalizarTamanho(valor string) (string, error) {
	return normalizar("tamanho", valor, tamanhosValidos)
}

// NormalizarTemperamento valida e converte o temperamento informado para o
// token canônico em maiúsculas.
func NormalizarTemperamento(valor string) (string, error) {
	return normalizar("temperamento", valor, temperamentosValidos)
}

func normalizar(campo, valor string, validos map[string]string) (string, error) {
	limpo := strings.TrimSpace(valor)
	if limpo == "" {
		return "", erros.NovaValidacao(campo, "é obrigatório")
	}
	token, ok := validos[strings.ToUpper(limpo)]
	if !ok {
		return "", erros.NovaValidacao(campo, "valor '"+valor+"' não é aceito")
	}
	return token, nil
}
