package entity

import "time"

// CalendarDay es una fila del calendario fiscal/ISO de una empresa.
// Se reemplaza en bloque con cada import (nunca se edita fila a fila).
type CalendarDay struct {
	CompanyID     string
	DateID        time.Time // solo fecha, sin hora
	FiscalYear    int
	FiscalQuarter int
	FiscalMonth   int
	FiscalWeek    int
	FiscalYrWk    int
	FiscalDow     int
	FiscalDom     int
	ISOYear       int
	ISOQuarter    int
	ISOWeek       int
	ISOMonth      int
	ISODow        int
	ISODom        int
	DayName       *string
}
