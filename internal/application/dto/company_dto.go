package dto

// CreateCompanyRequest alta de empresa (solo SYSADMIN global). La empresa nace
// inactiva: la activa el import de calendario o un PATCH posterior.
type CreateCompanyRequest struct {
	CompanyCode string `json:"companyCode"`
	CompanyName string `json:"companyName"`
	Address1    string `json:"address1"`
	Address2    string `json:"address2"`
	City        string `json:"city"`
	State       string `json:"state"`
	Zip         string `json:"zip"`
	Domain      string `json:"domain"`
	Industry    string `json:"industry"`
}

// UpdateCompanyRequest actualización parcial. companyCode es inmutable y no
// aparece aquí. calendarSheetId e isActive pueden venir en la misma petición:
// la puerta de activación se evalúa sobre el estado resultante.
type UpdateCompanyRequest struct {
	CompanyName     *string `json:"companyName"`
	Address1        *string `json:"address1"`
	Address2        *string `json:"address2"`
	City            *string `json:"city"`
	State           *string `json:"state"`
	Zip             *string `json:"zip"`
	Domain          *string `json:"domain"`
	Industry        *string `json:"industry"`
	CalendarSheetID *string `json:"calendarSheetId"`
	IsActive        *bool   `json:"isActive"`
}

// AttachCalendarSheetRequest marca una hoja existente como calendario de la empresa.
type AttachCalendarSheetRequest struct {
	SheetID string `json:"sheetId"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	CompanyID       string  `json:"companyId"`
	CompanyCode     string  `json:"companyCode"`
	CompanyName     string  `json:"companyName"`
	Address1        string  `json:"address1"`
	Address2        string  `json:"address2"`
	City            string  `json:"city"`
	State           string  `json:"state"`
	Zip             string  `json:"zip"`
	Domain          string  `json:"domain"`
	Industry        string  `json:"industry"`
	IsActive        bool    `json:"isActive"`
	CalendarSheetID *string `json:"calendarSheetId"`
}
