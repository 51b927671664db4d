package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// El subject es el email del usuario. Role y CompanyID se embeben al emitir el
// token por conveniencia del cliente, pero la autorización nunca los usa: en
// cada petición se resuelve el usuario fresco desde almacenamiento.
type Claims struct {
	jwt.RegisteredClaims
	Role      string `json:"role"`
	CompanyID string `json:"company_id,omitempty"` // vacío = SYSADMIN global
}

// Generate genera un token HS256 firmado con sub (email), role y company_id.
func Generate(secret, email, role, companyID, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		Role:      role,
		CompanyID: companyID,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida firma y expiración y devuelve los claims. Un token expirado,
// malformado o con firma incorrecta produce el mismo error genérico: el
// llamador no distingue "expirado" de "manipulado".
func Parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("jwt: token inválido")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, fmt.Errorf("jwt: claims inválidos")
	}
	return claims, nil
}
