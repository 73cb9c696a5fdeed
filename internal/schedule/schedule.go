package schedule

import (
	"regexp"
	"strings"
	"time"
)

// Duração fixa da discovery call.
const AppointmentMinutes = 45

// Horário padrão quando o caller não deu (ou deu errado) data/hora: 14:00
// do dia seguinte.
const (
	fallbackHour = 14
	dateLayout   = "2006-01-02"
)

type Window struct {
	Start time.Time
	End   time.Time
}

var (
	twelveHourRe     = regexp.MustCompile(`(?i)(\d{1,2}):?(\d{2})?\s*(am|pm)`)
	twentyFourHourRe = regexp.MustCompile(`(\d{1,2}):?(\d{2})?`)
)

// Resolve converte a data/hora preferida (texto livre vindo do agente de
// voz) numa janela concreta de 45 minutos. Nunca falha: qualquer entrada
// que não der pra interpretar cai no padrão de 14:00 do dia seguinte.
func Resolve(dateStr, timeStr string, now time.Time) Window {
	start := fallbackStart(now)

	if dateStr != "" && timeStr != "" {
		if day, err := time.ParseInLocation(dateLayout, dateStr, now.Location()); err == nil {
			if hour, minute, ok := parseClock(timeStr); ok {
				start = time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, now.Location())
			}
		}
	}

	return Window{
		Start: start,
		End:   start.Add(AppointmentMinutes * time.Minute),
	}
}

// parseClock aceita "2pm", "2:30 PM" e "14:00". No formato de 12 horas,
// 12pm continua 12 e 12am vira 0.
func parseClock(timeStr string) (hour, minute int, ok bool) {
	if m := twelveHourRe.FindStringSubmatch(timeStr); m != nil {
		hour = atoiSafe(m[1])
		minute = atoiSafe(m[2])
		isPM := strings.EqualFold(m[3], "pm")

		if hour < 1 || hour > 12 || minute > 59 {
			return 0, 0, false
		}
		if isPM && hour != 12 {
			hour += 12
		}
		if !isPM && hour == 12 {
			hour = 0
		}
		return hour, minute, true
	}

	if m := twentyFourHourRe.FindStringSubmatch(timeStr); m != nil {
		hour = atoiSafe(m[1])
		minute = atoiSafe(m[2])
		if hour > 23 || minute > 59 {
			return 0, 0, false
		}
		return hour, minute, true
	}

	return 0, 0, false
}

func fallbackStart(now time.Time) time.Time {
	tomorrow := now.AddDate(0, 0, 1)
	return time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), fallbackHour, 0, 0, 0, now.Location())
}

func atoiSafe(s string) int {
	n := 0
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			return 0
		}
		n = n*10 + int(ch-'0')
	}
	return n
}
