package configuracao

import (
	"time"

	"gorm.io/gorm"
)

// ChavePadrao é a chave fixa que garante uma única linha lógica por tabela
// de configuração: o índice único sobre ela faz chamadas concorrentes de
// primeira criação convergirem para o mesmo registro.
const ChavePadrao = "default"

// Configuracao é a tabela de preços do clube (registro único).
type Configuracao struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Chave     string    `gorm:"size:50;not null;default:'default';uniqueIndex" json:"-"`
	UpdatedAt time.Time `json:"updatedAt"`

	DiariaPequeno float64 `gorm:"not null;default:80" json:"diariaPequeno"`
	DiariaMedio   float64 `gorm:"not null;default:100" json:"diariaMedio"`
	DiariaGrande  float64 `gorm:"not null;default:120" json:"diariaGrande"`

	CrecheMeioPeriodo float64 `gorm:"not null;default:50" json:"crecheMeioPeriodo"`
	CrecheIntegral    float64 `gorm:"not null;default:70" json:"crecheIntegral"`
}

// ConfiguracaoComunicacao guarda credenciais de provedores e os modelos de
// mensagem (registro único). Os tokens {cliente}, {pet}, {data} e {servico}
// são interpolados por um colaborador externo; aqui só ficam armazenados.
type ConfiguracaoComunicacao struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Chave     string    `gorm:"size:50;not null;default:'default';uniqueIndex" json:"-"`
	UpdatedAt time.Time `json:"updatedAt"`

	WhatsappToken  string `json:"whatsappToken"`
	WhatsappNumero string `gorm:"size:50" json:"whatsappNumero"`
	SmsApiKey      string `json:"smsApiKey"`

	MsgCheckin    string `json:"msgCheckin"`
	MsgCheckout   string `json:"msgCheckout"`
	MsgLembrete   string `json:"msgLembrete"`
	MsgSatisfacao string `json:"msgSatisfacao"`
}

// Modelos de mensagem criados na primeira consulta.
const (
	MsgCheckinPadrao    = "Olá {cliente}! ✅ Confirmamos o check-in do {pet} para {data}. Estamos ansiosos para receber seu peludo! 🐾"
	MsgCheckoutPadrao   = "Olá {cliente}! 🏠 O {pet} está pronto para o check-out. Pode vir buscar seu peludo! Ele se comportou muito bem! 😊"
	MsgLembretePadrao   = "🔔 Lembrete: {pet} tem {servico} amanhã ({data}). Não esqueça dos pré-requisitos: cartão de vacinas, coleira antipulgas, caminha e ração!"
	MsgSatisfacaoPadrao = "Olá {cliente}! Como foi a experiência do {pet} conosco? Por favor, avalie de 1 a 5: ⭐⭐⭐⭐⭐ Sua opinião é muito importante!"
)

// PrecosPadrao devolve a configuração de preços com os valores iniciais.
func PrecosPadrao() *Configuracao {
	return &Configuracao{
		Chave:             ChavePadrao,
		DiariaPequeno:     80,
		DiariaMedio:       100,
		DiariaGrande:      120,
		CrecheMeioPeriodo: 50,
		CrecheIntegral:    70,
	}
}

// ComunicacaoPadrao devolve a configuração de comunicação com os modelos de
// mensagem iniciais.
func ComunicacaoPadrao() *ConfiguracaoComunicacao {
	return &ConfiguracaoComunicacao{
		Chave:         ChavePadrao,
		MsgCheckin:    MsgCheckinPadrao,
		MsgCheckout:   MsgCheckoutPadrao,
		MsgLembrete:   MsgLembretePadrao,
		MsgSatisfacao: MsgSatisfacaoPadrao,
	}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Configuracao{}, &ConfiguracaoComunicacao{})
}
