package entity

import "time"

// SheetKeyCalendar clave reservada: la hoja calendario de la empresa.
// Crearla o modificarla exige rol SYSADMIN o COMPANY_ADMIN.
const SheetKeyCalendar = "calendar"

// Sheet es un artefacto estructurado con alcance de empresa. SheetKey es único
// por empresa; ModelJSON es un blob opaco que el core no valida.
type Sheet struct {
	ID          string
	CompanyID   string
	SheetKey    string
	SheetName   string
	Description *string
	ModelJSON   map[string]any
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsCalendar informa si la hoja es la hoja calendario (por clave).
func (s *Sheet) IsCalendar() bool {
	return s.SheetKey == SheetKeyCalendar
}
