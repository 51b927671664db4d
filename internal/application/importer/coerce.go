package importer

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Coerción de celdas normalizadas. El productor externo entrega los valores
// tal como salieron del workbook: los enteros pueden llegar como float
// ("20260101.0"), las fechas como YYYYMMDD o ISO, los booleanos como texto.

func asString(v any) string {
	if v == nil {
		return ""
	}
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	case float64:
		// sin decimales: número entero proveniente de una celda
		if s == float64(int64(s)) {
			return strconv.FormatInt(int64(s), 10)
		}
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

// asInt coerciona a entero. Acepta float64 del decoder JSON y strings con
// forma de float ("3.0").
func asInt(v any, field string, row int) (int, error) {
	s := asString(v)
	if s == "" {
		return 0, fmt.Errorf("%s falta en la fila %d", field, row)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%s debe ser entero en la fila %d: %q", field, row, s)
	}
	return int(f), nil
}

// asDate coerciona a fecha. Acepta YYYYMMDD (número o string) e ISO YYYY-MM-DD.
func asDate(v any, row int) (time.Time, error) {
	s := asString(v)
	if s == "" {
		return time.Time{}, fmt.Errorf("dateId falta en la fila %d", row)
	}
	if len(s) == 8 && isDigits(s) {
		t, err := time.Parse("20060102", s)
		if err != nil {
			return time.Time{}, fmt.Errorf("dateId inválido en la fila %d: %q", row, s)
		}
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("dateId inválido en la fila %d: %q", row, s)
}

// asBool coerciona a booleano con valor por defecto para celdas vacías.
func asBool(v any, def bool) bool {
	s := strings.ToLower(asString(v))
	switch s {
	case "":
		return def
	case "true", "t", "1", "yes", "y":
		return true
	case "false", "f", "0", "no", "n":
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return def
}

// asIntOpt coerciona un entero opcional: celda vacía devuelve nil.
func asIntOpt(v any) (*int, error) {
	s := asString(v)
	if s == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("valor entero inválido: %q", s)
	}
	n := int(f)
	return &n, nil
}

// asAttrs coerciona la bolsa de atributos: mapa directo, string JSON o vacío.
func asAttrs(v any) (map[string]any, error) {
	switch a := v.(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		return a, nil
	case string:
		s := strings.TrimSpace(a)
		if s == "" {
			return map[string]any{}, nil
		}
		var m map[string]any
		if err := json.Unmarshal([]byte(s), &m); err != nil {
			return nil, fmt.Errorf("attributesJson inválido: %v", err)
		}
		return m, nil
	default:
		return nil, fmt.Errorf("attributesJson debe ser un objeto JSON")
	}
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// normalizeKey normaliza claves de import: trim, minúsculas, espacios a "_",
// asteriscos de cabeceras obligatorias fuera.
func normalizeKey(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, "*", "")
	return strings.ReplaceAll(s, " ", "_")
}
