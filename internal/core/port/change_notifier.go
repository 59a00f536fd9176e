package port

import "context"

// ChangeAction — тип изменения коллекции.
type ChangeAction string

const (
	ChangeCreated ChangeAction = "created"
	ChangeUpdated ChangeAction = "updated"
	ChangeDeleted ChangeAction = "deleted"
	ChangeMerged  ChangeAction = "merged"
	ChangeCleared ChangeAction = "cleared"
)

// ChangeNotifierPort — явный сигнал "коллекция изменилась" для внешних
// потребителей. Публикация best-effort: сбой логируется и не влияет
// на результат мутации.
type ChangeNotifierPort interface {
	RecordChanged(ctx context.Context, action ChangeAction, landlordID string) error
}
