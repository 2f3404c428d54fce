package booking

import (
	"strconv"
	"time"

	"github.com/BelezaStudio/salon-agenda-api/internal/models"
)

// Janela comercial fixa: slots de uma hora, 08:00 inclusive a 18:00 exclusive.
// A granularidade ignora a duração do serviço de propósito; o guard de
// conflito é quem olha duração real na hora de gravar.
const (
	OpeningHour = 8
	ClosingHour = 18
)

const DataHoraLayout = "2006-01-02T15:04:05"

// NominalHour lê os dígitos de hora direto do texto gravado em data_hora.
// "2025-06-10T10:00:00" -> 10, "2025-06-10T10:00:00-03:00" -> 10.
// Um eventual offset no fim do texto é ignorado: o valor gravado já é
// wall clock do salão. Não trocar por conversão de calendário sem alinhar
// com o agente de mensagens, que depende das horas como estão no banco.
func NominalHour(dataHora string) int {
	if len(dataHora) < 13 {
		return -1
	}
	if sep := dataHora[10]; sep != 'T' && sep != ' ' {
		return -1
	}

	h, err := strconv.Atoi(dataHora[11:13])
	if err != nil || h < 0 || h > 23 {
		return -1
	}
	return h
}

// NominalDate devolve o prefixo YYYY-MM-DD do texto gravado.
func NominalDate(dataHora string) string {
	if len(dataHora) < 10 {
		return ""
	}
	return dataHora[:10]
}

// ParseDataHora interpreta o texto gravado como wall clock, sem fuso.
// Aceita o layout canônico e a variante sem segundos enviada pelo agente.
func ParseDataHora(s string) (time.Time, error) {
	if len(s) > 19 {
		s = s[:19]
	}
	if t, err := time.Parse(DataHoraLayout, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04", s)
}

// FormatDataHora normaliza para o layout canônico gravado no banco.
func FormatDataHora(t time.Time) string {
	return t.Format(DataHoraLayout)
}

func blockedHourRange(b models.BlockedSlot) (int, int) {
	// linhas malformadas (a tabela também é escrita pelo painel admin)
	// são ignoradas, nunca derrubam a grade
	if len(b.StartTime) < 2 || len(b.EndTime) < 2 {
		return -1, -1
	}
	start, err1 := strconv.Atoi(b.StartTime[:2])
	end, err2 := strconv.Atoi(b.EndTime[:2])
	if err1 != nil || err2 != nil {
		return -1, -1
	}
	return start, end
}

// BuildSlots monta a grade do dia para um profissional. Um slot fecha se
// qualquer agendamento pendente/confirmado do dia tiver hora nominal igual
// à do slot, ou se um bloqueio [start, end) cobrir a hora.
func BuildSlots(
	pro *models.Professional,
	appointments []models.Appointment,
	blocked []models.BlockedSlot,
) []TimeSlot {

	taken := make(map[int]bool, len(appointments))
	for _, ap := range appointments {
		if h := NominalHour(ap.DataHora); h >= 0 {
			taken[h] = true
		}
	}

	slots := make([]TimeSlot, 0, ClosingHour-OpeningHour)

	for h := OpeningHour; h < ClosingHour; h++ {
		available := !taken[h]

		for _, b := range blocked {
			bs, be := blockedHourRange(b)
			if bs < 0 {
				continue
			}
			if h >= bs && h < be {
				available = false
				break
			}
		}

		slots = append(slots, TimeSlot{
			Time:             formatHour(h),
			Available:        available,
			ProfessionalID:   pro.ID,
			ProfessionalName: pro.Name,
		})
	}

	return slots
}

func formatHour(h int) string {
	return time.Date(2000, 1, 1, h, 0, 0, 0, time.UTC).Format("15:04")
}
