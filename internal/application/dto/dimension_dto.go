package dto

// CreateDimensionRequest alta de dimensión. dataType queda fijo al crear.
type CreateDimensionRequest struct {
	DimensionKey  string  `json:"dimensionKey"`
	DimensionName string  `json:"dimensionName"`
	Description   *string `json:"description"`
	DataType      string  `json:"dataType"` // TEXT (defecto) | NUMBER | DATE
}

// UpdateDimensionRequest actualización parcial. Si el cliente envía dataType
// se ignora en silencio: es inmutable después de crear.
type UpdateDimensionRequest struct {
	DimensionName *string `json:"dimensionName"`
	Description   *string `json:"description"`
	DataType      *string `json:"dataType"`
	IsActive      *bool   `json:"isActive"`
}

// DimensionResponse salida de una dimensión.
type DimensionResponse struct {
	DimensionID   string  `json:"dimensionId"`
	CompanyID     string  `json:"companyId"`
	DimensionKey  string  `json:"dimensionKey"`
	DimensionName string  `json:"dimensionName"`
	Description   *string `json:"description"`
	DataType      string  `json:"dataType"`
	IsActive      bool    `json:"isActive"`
}

// CreateDimensionValueRequest alta de valor de dimensión.
type CreateDimensionValueRequest struct {
	ValueKey      string         `json:"valueKey"`
	ValueName     string         `json:"valueName"`
	ParentValueID *string        `json:"parentValueId"`
	SortOrder     *int           `json:"sortOrder"`
	Attributes    map[string]any `json:"attributesJson"`
}

// UpdateDimensionValueRequest actualización parcial de un valor.
type UpdateDimensionValueRequest struct {
	ValueName     *string        `json:"valueName"`
	ParentValueID *string        `json:"parentValueId"`
	SortOrder     *int           `json:"sortOrder"`
	Attributes    map[string]any `json:"attributesJson"`
	IsActive      *bool          `json:"isActive"`
}

// DimensionValueResponse salida de un valor de dimensión.
type DimensionValueResponse struct {
	ValueID       string         `json:"dimensionValueId"`
	CompanyID     string         `json:"companyId"`
	DimensionID   string         `json:"dimensionId"`
	ValueKey      string         `json:"valueKey"`
	ValueName     string         `json:"valueName"`
	ParentValueID *string        `json:"parentValueId"`
	SortOrder     *int           `json:"sortOrder"`
	Attributes    map[string]any `json:"attributesJson"`
	IsActive      bool           `json:"isActive"`
}
