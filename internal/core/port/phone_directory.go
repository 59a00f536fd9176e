package port

import "context"

// PhoneDirectoryPort — справочник региона/оператора по номеру телефона.
// Best-effort: при любой ошибке вызывающая сторона подставляет пустую строку.
type PhoneDirectoryPort interface {
	Locate(ctx context.Context, phone string) (string, error)
}
