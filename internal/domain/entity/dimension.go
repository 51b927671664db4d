package entity

import "time"

// Tipos de dato admitidos para Dimension. Fijo al crear, nunca se actualiza.
const (
	DataTypeText   = "TEXT"
	DataTypeNumber = "NUMBER"
	DataTypeDate   = "DATE"
)

// IsValidDataType informa si dt pertenece al conjunto admitido.
func IsValidDataType(dt string) bool {
	return dt == DataTypeText || dt == DataTypeNumber || dt == DataTypeDate
}

// Dimension es una entrada de taxonomía con alcance de empresa.
// DimensionKey es único por empresa.
type Dimension struct {
	ID            string
	CompanyID     string
	DimensionKey  string
	DimensionName string
	Description   *string
	DataType      string // TEXT | NUMBER | DATE, inmutable
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// DimensionValue pertenece a exactamente una Dimension. ParentValueID forma un
// árbol opcional; si está presente debe referenciar un valor existente de la
// misma empresa y la misma dimensión.
type DimensionValue struct {
	ID            string
	CompanyID     string
	DimensionID   string
	ValueKey      string // único por (empresa, dimensión)
	ValueName     string
	ParentValueID *string
	SortOrder     *int
	Attributes    map[string]any // bolsa opaca, sin esquema en el core
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
