package booking

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPendente   Status = "pendente"
	StatusConfirmado Status = "confirmado"
	StatusCancelado  Status = "cancelado"
	StatusConcluido  Status = "concluido"
)

func IsValidStatus(s string) bool {
	switch Status(s) {
	case StatusPendente, StatusConfirmado, StatusCancelado, StatusConcluido:
		return true
	}
	return false
}

// Tabela de transição explícita. Hoje todas as arestas são permitidas:
// a recepção precisa poder corrigir qualquer status administrativamente
// (inclusive reabrir um cancelado). Apertar a política é mexer aqui.
var transitions = map[Status]map[Status]bool{
	StatusPendente:   {StatusPendente: true, StatusConfirmado: true, StatusCancelado: true, StatusConcluido: true},
	StatusConfirmado: {StatusPendente: true, StatusConfirmado: true, StatusCancelado: true, StatusConcluido: true},
	StatusCancelado:  {StatusPendente: true, StatusConfirmado: true, StatusCancelado: true, StatusConcluido: true},
	StatusConcluido:  {StatusPendente: true, StatusConfirmado: true, StatusCancelado: true, StatusConcluido: true},
}

func CanTransition(from, to Status) bool {
	allowed, ok := transitions[from]
	if !ok {
		return false
	}
	return allowed[to]
}

// InitialStatus é o status de criação nesta API: o agente só agenda
// horário já confirmado, sem etapa de aprovação.
func InitialStatus() Status {
	return StatusConfirmado
}
