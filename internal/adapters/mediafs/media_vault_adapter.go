// Package mediafs — работа с медиафайлами записей на локальной файловой
// системе. Удаление всегда мягкое: файл переезжает в подкаталог .trash
// внутри медиакаталога.
package mediafs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const trashDirName = ".trash"

// MediaVaultAdapter реализует MediaVaultPort.
type MediaVaultAdapter struct {
	root string
}

func NewMediaVaultAdapter(root string) (*MediaVaultAdapter, error) {
	if root == "" {
		return nil, fmt.Errorf("media root directory is required")
	}
	if err := os.MkdirAll(filepath.Join(root, trashDirName), 0o755); err != nil {
		return nil, fmt.Errorf("failed to prepare trash directory: %w", err)
	}
	return &MediaVaultAdapter{root: root}, nil
}

// MoveToTrash переносит файл из корня медиакаталога в корзину. Отсутствие
// файла — no-op. Имя с разделителем пути отклоняется: удалению подлежат
// только верхнеуровневые файлы.
func (a *MediaVaultAdapter) MoveToTrash(_ context.Context, fileName string) error {
	if fileName == "" || strings.ContainsAny(fileName, "/\\") {
		return fmt.Errorf("invalid media file name %q", fileName)
	}

	src := filepath.Join(a.root, fileName)
	if _, err := os.Stat(src); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to stat %s: %w", fileName, err)
	}

	// Суффикс времени спасает от коллизии имен внутри корзины.
	dst := filepath.Join(a.root, trashDirName, fileName)
	if _, err := os.Stat(dst); err == nil {
		dst = filepath.Join(a.root, trashDirName,
			fmt.Sprintf("%d_%s", time.Now().UnixMilli(), fileName))
	}

	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("failed to move %s to trash: %w", fileName, err)
	}
	return nil
}
