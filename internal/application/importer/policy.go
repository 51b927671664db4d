// Package importer implementa los bulk imports del sistema. Cada punto de
// entrada declara su política de forma explícita: el calendario es
// todo-o-nada (una fila mala revierte el import completo) y las dimensiones
// son mejor-esfuerzo (la fila mala se registra y se salta, el resto confirma).
package importer

// Policy política de fallo de un import.
type Policy string

const (
	// PolicyAtomic revierte la transacción completa al primer error.
	PolicyAtomic Policy = "atomic"
	// PolicyBestEffort registra el error por fila y continúa con las demás.
	PolicyBestEffort Policy = "best_effort"
)
