// Package crypto хэширует пароли пользователей (argon2id).
//
// Входа по паролю у приложения нет, хэш только сохраняется в users.password_hash
// при создании пользователя и при заполнении тестовыми данными.
package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"

	"github.com/IvanChernomyrdin/go-aquamate/internal/server/config"
)

const hashPrefix = "argon2id"

var (
	ErrEmptyPassword     = errors.New("empty password")
	ErrInvalidHashFormat = errors.New("invalid hash format")
)

// Argon2Params — параметры argon2id.
type Argon2Params struct {
	Time      uint32
	MemoryKiB uint32
	Threads   uint8
	KeyLen    uint32
	SaltLen   uint32
}

// ParamsFromConfig переводит секцию password.argon2 конфига в параметры хэширования.
func ParamsFromConfig(c config.Argon2Config) Argon2Params {
	return Argon2Params{
		Time:      c.Time,
		MemoryKiB: c.MemoryKiB,
		Threads:   c.Threads,
		KeyLen:    c.KeyLen,
		SaltLen:   c.SaltLen,
	}
}

// Hasher хранит параметры и реализует service.PasswordHasher.
type Hasher struct {
	Params Argon2Params
}

func NewHasher(p Argon2Params) *Hasher {
	return &Hasher{Params: p}
}

func (h *Hasher) Hash(password string) (string, error) {
	return HashPassword(password, h.Params)
}

// HashPassword возвращает строку формата:
// argon2id$v=19$m=65536,t=3,p=2$<salt_b64>$<hash_b64>
func HashPassword(password string, p Argon2Params) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", ErrEmptyPassword
	}

	salt := make([]byte, p.SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("read salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, p.Time, p.MemoryKiB, p.Threads, p.KeyLen)

	return fmt.Sprintf(
		"%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		hashPrefix, argon2.Version,
		p.MemoryKiB, p.Time, p.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// VerifyPassword сверяет пароль с закодированным хэшем за постоянное время.
func VerifyPassword(password, encoded string) (bool, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 5 || parts[0] != hashPrefix {
		return false, ErrInvalidHashFormat
	}

	var memory, iterations uint32
	var threads uint8
	if _, err := fmt.Sscanf(parts[2], "m=%d,t=%d,p=%d", &memory, &iterations, &threads); err != nil {
		return false, fmt.Errorf("%w: params", ErrInvalidHashFormat)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[3])
	if err != nil {
		return false, fmt.Errorf("%w: salt", ErrInvalidHashFormat)
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, fmt.Errorf("%w: hash", ErrInvalidHashFormat)
	}

	got := argon2.IDKey([]byte(password), salt, iterations, memory, threads, uint32(len(want)))
	return subtle.ConstantTimeCompare(got, want) == 1, nil
}
