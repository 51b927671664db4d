package dto

// Los endpoints de import consumen filas ya normalizadas por el productor
// externo (el parser de workbooks queda fuera del core). Los campos llegan
// como `any` porque la coerción de tipos (fechas YYYYMMDD/ISO, enteros con
// forma de float) es responsabilidad del importador.

// CalendarRow una fila normalizada del calendario fiscal/ISO.
type CalendarRow struct {
	DateID        any `json:"dateId"`
	FiscalYear    any `json:"fiscalYear"`
	FiscalQuarter any `json:"fiscalQuarter"`
	FiscalMonth   any `json:"fiscalMonth"`
	FiscalWeek    any `json:"fiscalWeek"`
	FiscalYrWk    any `json:"fiscalYrWk"`
	FiscalDow     any `json:"fiscalDayOfWeek"`
	FiscalDom     any `json:"fiscalDayOfMonth"`
	ISOYear       any `json:"isoYear"`
	ISOQuarter    any `json:"isoQuarter"`
	ISOWeek       any `json:"isoWeek"`
	ISOMonth      any `json:"isoMonth"`
	ISODow        any `json:"isoDayOfWeek"`
	ISODom        any `json:"isoDayOfMonth"`
	DayName       any `json:"dayName"`
}

// CalendarImportRequest cuerpo del import de calendario (todo-o-nada).
type CalendarImportRequest struct {
	Rows []CalendarRow `json:"rows"`
}

// CalendarImportResponse resultado del import de calendario.
type CalendarImportResponse struct {
	OK              bool   `json:"ok"`
	CalendarSheetID string `json:"calendarSheetId"`
	Inserted        int    `json:"inserted"`
}

// DimensionImportRow fila normalizada de la sección Dimensions.
type DimensionImportRow struct {
	DimensionKey  string `json:"dimensionKey"`
	DimensionName string `json:"dimensionName"`
	Description   any    `json:"description"`
	DataType      any    `json:"dataType"`
	IsActive      any    `json:"isActive"`
}

// DimensionValueImportRow fila normalizada de la sección Values.
type DimensionValueImportRow struct {
	DimensionKey string `json:"dimensionKey"`
	ValueKey     string `json:"valueKey"`
	ValueName    string `json:"valueName"`
	SortOrder    any    `json:"sortOrder"`
	Attributes   any    `json:"attributesJson"`
	IsActive     any    `json:"isActive"`
}

// DimensionImportRequest cuerpo del import de dimensiones (mejor-esfuerzo).
type DimensionImportRequest struct {
	Dimensions []DimensionImportRow      `json:"dimensions"`
	Values     []DimensionValueImportRow `json:"values"`
}

// ImportRowError error estructurado de una fila concreta.
type ImportRowError struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

// ImportSectionSummary contadores y errores por sección del import.
type ImportSectionSummary struct {
	Created int              `json:"created"`
	Updated int              `json:"updated"`
	Skipped int              `json:"skipped"`
	Errors  []ImportRowError `json:"errors"`
}

// DimensionImportResponse resumen agregado del import de dimensiones.
type DimensionImportResponse struct {
	OK         bool                 `json:"ok"`
	Dimensions ImportSectionSummary `json:"dimensions"`
	Values     ImportSectionSummary `json:"values"`
}
