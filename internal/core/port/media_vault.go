package port

import "context"

// MediaVaultPort — файловый коллаборатор для медиафайлов записей.
// Используется только путём удаления: файл переносится в корзину,
// ошибки по каждому файлу логируются и не прерывают удаление записи.
type MediaVaultPort interface {
	MoveToTrash(ctx context.Context, fileName string) error
}
