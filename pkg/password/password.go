// Package password envuelve el hash de contraseñas para que el resto del
// código no dependa del algoritmo concreto. El digest bcrypt es
// autodescriptivo (algoritmo y costo en el prefijo), así que un cambio de
// costo o de algoritmo no rompe los hashes ya persistidos.
package password

import "golang.org/x/crypto/bcrypt"

// MinLength longitud mínima aceptada para contraseñas nuevas.
const MinLength = 8

// Hash genera el digest bcrypt (salted, irreversible) del texto plano.
func Hash(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Verify compara texto plano contra un digest. La comparación en tiempo
// constante la aporta bcrypt.
func Verify(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
