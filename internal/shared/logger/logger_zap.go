// Package logger содержит общий логгер для server, seed и agent.
//
// Пакет предоставляет Zap-логгер, настроенный на запись в файл с ротацией
// (lumberjack) и удобный метод для логирования HTTP-запросов.
package logger

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// HTTPLogger представляет обёртку над zap.Logger для логирования HTTP-событий.
//
// Встраивание *zap.Logger позволяет использовать все методы zap напрямую.
type HTTPLogger struct {
	*zap.Logger
}

// Options описывает куда и в каком виде писать логи.
//
// Пустые поля заменяются значениями по умолчанию:
// runtime/logs/http.log, уровень info, консольный формат.
type Options struct {
	Dir    string
	File   string
	Level  string // debug|info|warn|error
	Format string // console|json
}

// NewHTTPLogger создаёт файловый zap-логгер для HTTP-логов с настройками по умолчанию.
//
// Логи записываются в файл runtime/logs/http.log.
func NewHTTPLogger() *HTTPLogger {
	return New(Options{})
}

// New создаёт файловый zap-логгер.
//
// Для файлов включена ротация (MaxSize/MaxBackups/MaxAge) и сжатие архивов.
// Формат времени: "HH:MM:SS DD.MM.YYYY".
func New(opts Options) *HTTPLogger {
	if opts.Dir == "" {
		opts.Dir = filepath.Join("runtime", "logs")
	}
	if opts.File == "" {
		opts.File = "http.log"
	}
	_ = os.MkdirAll(opts.Dir, 0755)

	// lumberjack отвечает за ротацию файлов
	writer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   filepath.Join(opts.Dir, opts.File),
		MaxSize:    100, // MB ≈ ~300 000 строк
		MaxBackups: 10,  // сколько старых файлов хранить
		MaxAge:     30,  // дней
		Compress:   true,
	})

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = customTimeEncoder

	// по умолчанию обычный текст, json включается конфигом
	encoder := zapcore.NewConsoleEncoder(encoderCfg)
	if strings.EqualFold(opts.Format, "json") {
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	}

	core := zapcore.NewCore(encoder, writer, parseLevel(opts.Level))

	logger := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))

	return &HTTPLogger{Logger: logger}
}

// NewNop возвращает логгер, который ничего не пишет. Нужен в тестах.
func NewNop() *HTTPLogger {
	return &HTTPLogger{Logger: zap.NewNop()}
}

// LogRequest записывает структурированный лог об HTTP-запросе.
//
// method и uri — параметры запроса,
// status — HTTP-статус ответа,
// responseSize — размер ответа в байтах,
// duration — длительность обработки запроса в миллисекундах,
// requestID — идентификатор запроса (может быть пустым).
func (logger *HTTPLogger) LogRequest(method, uri string, status, responseSize int, duration float64, requestID string) {
	logger.Info("HTTP request",
		zap.String("method", method),
		zap.String("uri", uri),
		zap.Int("status", status),
		zap.Int("response_size", responseSize),
		zap.Float64("duration_ms", duration),
		zap.String("request_id", requestID),
	)
}

func parseLevel(s string) zapcore.Level {
	lvl, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return zap.InfoLevel
	}
	return lvl
}

// customTimeEncoder форматирует время для логов в виде "HH:MM:SS DD.MM.YYYY".
func customTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("15:04:05 02.01.2006"))
}
