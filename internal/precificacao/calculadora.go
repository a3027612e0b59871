// Package precificacao concentra o cálculo de valores de hospedagens e
// creches: normalização do percentual de desconto e total com arredondamento
// em duas casas (centavos).
package precificacao

import "math"

// NormalizarDesconto devolve o percentual de desconto utilizável: valores
// negativos, NaN ou infinitos viram 0.
func NormalizarDesconto(percent float64) float64 {
	if math.IsNaN(percent) || math.IsInf(percent, 0) || percent < 0 {
		return 0
	}
	return percent
}

// CalcularTotal aplica o desconto percentual sobre o subtotal e arredonda
// para duas casas decimais. Com desconto 0 o total é exatamente o subtotal.
// O resultado nunca é negativo.
func CalcularTotal(subtotal, descontoPercent float64) float64 {
	desconto := NormalizarDesconto(descontoPercent)
	if desconto == 0 {
		return subtotal
	}
	total := Arredondar2(subtotal * (1 - desconto/100))
	if total < 0 {
		return 0
	}
	return total
}

// Arredondar2 arredonda para duas casas decimais.
func Arredondar2(valor float64) float64 {
	return math.Round(valor*100) / 100
}
