package dbmetrics

import (
	"context"
	"database/sql"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector метрики запросов к БД
type Collector struct {
	duration *prometheus.HistogramVec
	errors   *prometheus.CounterVec
}

// NewCollector создает и регистрирует метрики запросов
func NewCollector(serviceName string, reg prometheus.Registerer) *Collector {
	constLabels := prometheus.Labels{"service": serviceName}

	c := &Collector{
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"operation"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_query_errors_total",
			Help:        "Failed database queries",
			ConstLabels: constLabels,
		}, []string{"operation"}),
	}

	reg.MustRegister(c.duration, c.errors)
	return c
}

func (c *Collector) observe(operation string, start time.Time, err error) {
	if c == nil {
		return
	}
	c.duration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	if err != nil && err != sql.ErrNoRows {
		c.errors.WithLabelValues(operation).Inc()
	}
}

// DB обёртка над *sql.DB, снимающая метрики с каждого запроса
// collector может быть nil, тогда метрики не пишутся
type DB struct {
	db        *sql.DB
	collector *Collector
}

// Wrap оборачивает соединение
func Wrap(db *sql.DB, collector *Collector) *DB {
	return &DB{db: db, collector: collector}
}

func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.collector.observe("exec", start, err)
	return res, err
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.collector.observe("query", start, err)
	return rows, err
}

func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.collector.observe("query_row", start, row.Err())
	return row
}

// BeginTx начинает транзакцию с теми же метриками
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	start := time.Now()
	tx, err := d.db.BeginTx(ctx, opts)
	d.collector.observe("begin", start, err)
	if err != nil {
		return nil, err
	}
	return &Tx{tx: tx, collector: d.collector}, nil
}

// PingContext проверяет соединение
func (d *DB) PingContext(ctx context.Context) error {
	return d.db.PingContext(ctx)
}

// Close закрывает соединение
func (d *DB) Close() error {
	return d.db.Close()
}

// Tx транзакция с метриками
type Tx struct {
	tx        *sql.Tx
	collector *Collector
}

func (t *Tx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := t.tx.ExecContext(ctx, query, args...)
	t.collector.observe("exec", start, err)
	return res, err
}

func (t *Tx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := t.tx.QueryContext(ctx, query, args...)
	t.collector.observe("query", start, err)
	return rows, err
}

func (t *Tx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := t.tx.QueryRowContext(ctx, query, args...)
	t.collector.observe("query_row", start, row.Err())
	return row
}

func (t *Tx) Commit() error {
	start := time.Now()
	err := t.tx.Commit()
	t.collector.observe("commit", start, err)
	return err
}

func (t *Tx) Rollback() error {
	return t.tx.Rollback()
}
