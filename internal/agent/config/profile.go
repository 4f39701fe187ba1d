// Package config содержит функции для работы с локальной конфигурацией CLI-клиента.
//
// Профиль хранит адрес сервера, таймаут и текущего пользователя и размещается
// в домашней директории пользователя в файле:
//
//	~/.aquamate/profile.json
//
// Переменные окружения AQUAMATE_SERVER, AQUAMATE_TIMEOUT и AQUAMATE_USER_ID
// перекрывают значения из файла.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v10"
)

// DefaultServer — адрес сервера по умолчанию.
const DefaultServer = "http://127.0.0.1:5000"

// Profile — настройки CLI-клиента.
//
// UserID == 0 означает, что пользователь не выбран (см. команду use).
type Profile struct {
	Server  string        `json:"server" env:"AQUAMATE_SERVER"`
	Timeout time.Duration `json:"timeout,omitempty" env:"AQUAMATE_TIMEOUT"`
	UserID  int64         `json:"user_id,omitempty" env:"AQUAMATE_USER_ID"`
}

// DefaultPath возвращает путь к профилю в домашней директории пользователя.
//
// Формат пути:
//
//	<home>/.aquamate/profile.json
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".aquamate", "profile.json"), nil
}

// Load загружает профиль из файла и применяет переменные окружения.
//
// Если файл не существует, берётся профиль по умолчанию без ошибки.
// Если файл существует, но содержит некорректный JSON, возвращает ошибку.
func Load(path string) (*Profile, error) {
	p := &Profile{}

	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(b, p); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// дефолтный профиль, если файла нет
	default:
		return nil, err
	}

	// env перекрывает файл; незаданные переменные поля не трогают
	if err := env.Parse(p); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if p.Server == "" {
		p.Server = DefaultServer
	}
	return p, nil
}

// Save сохраняет профиль в указанный файл в JSON формате.
//
// При необходимости создаёт директорию назначения с правами 0700.
// Файл записывается с правами 0600.
func Save(path string, p *Profile) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}
	b, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o600)
}
