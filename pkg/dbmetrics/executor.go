package dbmetrics

import (
	"context"
	"database/sql"
)

// DBExecutor общий интерфейс *sql.DB, *sql.Tx и их обёрток
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// TxExecutor транзакция, через которую выполняются запросы
type TxExecutor interface {
	DBExecutor
	Commit() error
	Rollback() error
}

type txKey struct{}

// WithTx кладёт транзакцию в контекст
func WithTx(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// GetTx достаёт транзакцию из контекста
func GetTx(ctx context.Context) (TxExecutor, bool) {
	tx, ok := ctx.Value(txKey{}).(TxExecutor)
	return tx, ok && tx != nil
}

// GetExecutor возвращает транзакцию из контекста, если она есть, иначе db
func GetExecutor(ctx context.Context, db DBExecutor) DBExecutor {
	if tx, ok := GetTx(ctx); ok {
		return tx
	}
	return db
}

// SqlTxWrapper адаптирует *sql.Tx к TxExecutor
type SqlTxWrapper struct {
	*sql.Tx
}
