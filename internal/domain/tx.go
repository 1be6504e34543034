package domain

import "context"

// TxManager runs fn in one storage transaction. Repositories called with the
// ctx passed to fn join that transaction; a returned error rolls it back.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
