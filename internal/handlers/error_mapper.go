package handlers

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/BelezaStudio/salon-agenda-api/internal/httperr"
)

// Mensagens em pt-BR: o agente de mensagens repassa como frase para o cliente.
var errorMessages = map[string]string{
	"missing_tenant":           "Identificador do salão ausente ou inválido.",
	"invalid_request":          "Dados inválidos.",
	"invalid_date":             "Data inválida.",
	"invalid_datetime":         "Data ou hora inválida.",
	"invalid_status":           "Status inválido.",
	"invalid_transition":       "Transição de status não permitida.",
	"missing_or_invalid_phone": "Telefone ausente ou inválido.",
	"missing_or_invalid_name":  "Nome ausente ou inválido.",
	"invalid_email":            "E-mail inválido.",
	"salon_not_found":          "Salão não encontrado.",
	"service_not_found":        "Serviço não encontrado.",
	"professional_not_found":   "Profissional não encontrado.",
	"appointment_not_found":    "Agendamento não encontrado.",
	"client_not_found":         "Cliente não encontrado.",
	"slot_conflict":            "Horário já ocupado para este profissional.",
}

// mapBusinessError traduz erros de negócio para o envelope HTTP.
// Qualquer outra coisa vira 500 genérico; o detalhe fica só no log.
func mapBusinessError(c *gin.Context, err error) {
	code := httperr.BusinessCode(err)
	msg, known := errorMessages[code]
	if !known {
		log.Println("internal error:", err)
		httperr.Internal(c, "internal_error", "Erro interno. Tente novamente.")
		return
	}

	switch code {
	case "salon_not_found", "service_not_found", "professional_not_found",
		"appointment_not_found", "client_not_found":
		httperr.NotFound(c, code, msg)
	case "slot_conflict":
		httperr.Conflict(c, code, msg)
	default:
		httperr.BadRequest(c, code, msg)
	}
}
