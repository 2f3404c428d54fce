package timezone

import "time"

const DefaultTimezone = "America/Sao_Paulo"

func Location(tz string) *time.Location {
	if tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// Today devolve a data corrente do salão no formato usado pela agenda.
func Today(tz string) string {
	return NowIn(tz).Format("2006-01-02")
}
