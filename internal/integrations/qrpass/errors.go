package qrpass

import "errors"

var (
	// ErrRender возвращается при ошибке генерации изображения QR-кода
	ErrRender = errors.New("qrpass client: failed to render qr code")
)
