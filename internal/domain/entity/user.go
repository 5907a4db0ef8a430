package entity

import "time"

// User representa un operador del sistema. Todos los datos (productos, clientes,
// movimientos) quedan ligados a su ID.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
