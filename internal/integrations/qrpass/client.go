package qrpass

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	qrcode "github.com/skip2/go-qrcode"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client выпускает коды доступа к ячейкам и рендерит их в QR-изображения.
// Изображение — временный артефакт: транспорт отправляет файл пользователю
// и удаляет его через Remove.
type Client struct {
	dir string
	log Logger
}

// NewClient создает новый клиент выпуска кодов доступа
func NewClient(dir string, log Logger) *Client {
	return &Client{
		dir: dir,
		log: log,
	}
}

// AccessCode детерминированно выводит код доступа из паспорта клиента
// и метки времени выдачи
func AccessCode(passport string, issuedAt time.Time) string {
	return fmt.Sprintf("%s%d", passport, issuedAt.Unix())
}

// Render генерирует PNG с QR-кодом для кода доступа и возвращает путь к файлу
func (c *Client) Render(code string, issuedAt time.Time) (string, error) {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: create qrcodes directory: %v", ErrRender, err)
	}

	path := filepath.Join(c.dir, fmt.Sprintf("qr%d.png", issuedAt.Unix()))
	if err := qrcode.WriteFile(code, qrcode.Medium, 256, path); err != nil {
		return "", fmt.Errorf("%w: write image: %v", ErrRender, err)
	}

	c.log.Info("Rendered QR code image %s", path)
	return path, nil
}

// Remove удаляет отправленный артефакт QR-кода
func (c *Client) Remove(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		c.log.Error("Failed to remove QR code image %s: %v", path, err)
	}
}
