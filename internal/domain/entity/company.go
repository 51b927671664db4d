package entity

import "time"

// Company representa una organización/tenant del sistema. Toda entidad con
// alcance (usuarios, dimensiones, hojas, calendario) pertenece exactamente a
// una Company y las consultas siempre filtran por ella.
type Company struct {
	ID          string
	CompanyCode string // inmutable después de crear
	CompanyName string
	Address1    string
	Address2    string
	City        string
	State       string
	Zip         string
	Domain      string // único; se usa para derivar emails de usuarios
	Industry    string
	IsActive    bool
	// CalendarSheetID apunta a la hoja "calendar" de la empresa. Puerta de
	// activación: IsActive solo puede pasar a true si no es nil.
	CalendarSheetID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
