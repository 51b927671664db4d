package dto

// CreateSheetRequest alta de hoja. La clave se normaliza (trim, minúsculas,
// espacios a guion bajo); la clave "calendar" exige rol privilegiado.
type CreateSheetRequest struct {
	SheetKey    string         `json:"sheetKey"`
	SheetName   string         `json:"sheetName"`
	Description *string        `json:"description"`
	ModelJSON   map[string]any `json:"modelJson"`
}

// UpdateSheetRequest actualización parcial de una hoja.
type UpdateSheetRequest struct {
	SheetName   *string        `json:"sheetName"`
	Description *string        `json:"description"`
	ModelJSON   map[string]any `json:"modelJson"`
	IsActive    *bool          `json:"isActive"`
}

// SheetResponse salida de una hoja.
type SheetResponse struct {
	SheetID     string         `json:"sheetId"`
	CompanyID   string         `json:"companyId"`
	SheetKey    string         `json:"sheetKey"`
	SheetName   string         `json:"sheetName"`
	Description *string        `json:"description"`
	ModelJSON   map[string]any `json:"modelJson"`
	IsActive    bool           `json:"isActive"`
}
