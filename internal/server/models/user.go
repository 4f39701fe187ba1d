// Серверные модели, которые не уходят в API
package models

// NewUser — пользователь перед вставкой в БД.
// PasswordHash уже посчитан (argon2id), сырой пароль сюда не попадает.
type NewUser struct {
	Name         string
	PasswordHash string
	Bio          *string
	X            *string
	PhotoURL     *string
}
