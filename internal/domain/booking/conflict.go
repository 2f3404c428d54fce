package booking

import (
	"fmt"
	"time"

	"github.com/BelezaStudio/salon-agenda-api/internal/models"
)

// Duração assumida quando o serviço do agendamento existente não tem
// duração cadastrada.
const defaultDurationMin = 60

// HasConflict verifica sobreposição real [start, start+duration) contra os
// agendamentos confirmados informados. Mais restrito que a grade de
// disponibilidade (que trabalha por hora nominal): só roda na escrita.
// excludeID pula o próprio agendamento durante um reagendamento.
func HasConflict(
	start time.Time,
	durationMin int,
	confirmed []models.Appointment,
	excludeID uint,
) bool {

	if durationMin <= 0 {
		durationMin = defaultDurationMin
	}
	end := start.Add(time.Duration(durationMin) * time.Minute)

	for _, ap := range confirmed {
		if excludeID != 0 && ap.ID == excludeID {
			continue
		}

		otherStart, err := ParseDataHora(ap.DataHora)
		if err != nil {
			continue
		}

		otherDur := ap.Service.DurationMin
		if otherDur <= 0 {
			otherDur = defaultDurationMin
		}
		otherEnd := otherStart.Add(time.Duration(otherDur) * time.Minute)

		if start.Before(otherEnd) && end.After(otherStart) {
			return true
		}
	}

	return false
}

// SlotLockKey identifica um bucket (salão, profissional, dia+hora) da
// seção crítica de criação/reagendamento.
func SlotLockKey(salonID, professionalID uint, dataHora string) string {
	bucket := dataHora
	if len(bucket) > 13 {
		bucket = bucket[:13]
	}
	return fmt.Sprintf("lock:slot:%d:%d:%s", salonID, professionalID, bucket)
}

// SlotLockKeys devolve todos os buckets de hora que [start, start+duration)
// toca, em ordem crescente. Um início fora da hora cheia trava também o
// bucket seguinte; adquirir sempre nesta ordem evita deadlock entre
// escritas concorrentes.
func SlotLockKeys(salonID, professionalID uint, start time.Time, durationMin int) []string {
	if durationMin <= 0 {
		durationMin = defaultDurationMin
	}
	end := start.Add(time.Duration(durationMin) * time.Minute)

	keys := make([]string, 0, 2)
	for t := start.Truncate(time.Hour); t.Before(end); t = t.Add(time.Hour) {
		keys = append(keys, SlotLockKey(salonID, professionalID, FormatDataHora(t)))
	}
	return keys
}
