package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PetCareBooking/pkg/dbmetrics"
)

var (
	// ErrBeginTx возвращается, когда транзакцию не удалось начать
	ErrBeginTx = errors.New("txmanager: failed to begin transaction")

	// ErrCommit возвращается, когда транзакцию не удалось зафиксировать
	ErrCommit = errors.New("txmanager: failed to commit transaction")
)

// TxBeginner источник транзакций (*dbmetrics.DB)
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)
}

// sqlBeginner адаптирует *sql.DB к TxBeginner
type sqlBeginner struct {
	db *sql.DB
}

func (b sqlBeginner) BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	tx, err := b.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &dbmetrics.SqlTxWrapper{Tx: tx}, nil
}

// Manager выполняет функции внутри транзакции, передавая её через контекст
type Manager struct {
	db TxBeginner
}

// New создает менеджер транзакций
func New(db TxBeginner) *Manager {
	return &Manager{db: db}
}

// NewFromSQL создает менеджер поверх обычного *sql.DB
func NewFromSQL(db *sql.DB) *Manager {
	return &Manager{db: sqlBeginner{db: db}}
}

// Do выполняет fn в транзакции с уровнем изоляции по умолчанию
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.do(ctx, nil, fn)
}

// DoSerializable выполняет fn в сериализуемой транзакции
func (m *Manager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.do(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable}, fn)
}

func (m *Manager) do(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) (err error) {
	// Вложенный вызов переиспользует уже открытую транзакцию
	if _, ok := dbmetrics.GetTx(ctx); ok {
		return fn(ctx)
	}

	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBeginTx, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(dbmetrics.WithTx(ctx, tx)); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %v", ErrCommit, err)
	}
	return nil
}
