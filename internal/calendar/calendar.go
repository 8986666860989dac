package calendar

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// Layout ISO usato su tutta l'API: YYYY-MM-DD.
const ISOLayout = "2006-01-02"

// Date è una data di calendario senza orario né fuso: la data mostrata è la
// data salvata. Internamente è sempre normalizzata a mezzanotte UTC, così la
// differenza fra due Date è sempre un numero intero di giorni.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf scarta l'orario di t e restituisce la sola data di calendario.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(ISOLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("data non valida: %q", s)
	}
	return DateOf(t), nil
}

func (d Date) ISO() string {
	return d.Format(ISOLayout)
}

// AddDays somma n giorni di calendario (n può essere negativo).
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time.AddDate(0, 0, n))
}

// WeekdayIndex numera i giorni Lun=0 .. Dom=6, la convenzione usata da tutta
// la griglia settimanale.
func (d Date) WeekdayIndex() int {
	return (int(d.Weekday()) + 6) % 7
}

// MondayOf restituisce il lunedì della settimana che contiene d.
func MondayOf(d Date) Date {
	return d.AddDays(-d.WeekdayIndex())
}

// DaysBetween restituisce i giorni interi da b ad a (a - b).
func DaysBetween(a, b Date) int {
	return int(a.Time.Sub(b.Time) / (24 * time.Hour))
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.ISO() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		return fmt.Errorf("data non valida: %q", s)
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*d = DateOf(v)
		return nil
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("impossibile convertire %T in Date", src)
	}
}
