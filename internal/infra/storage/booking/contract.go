package booking

import "github.com/m04kA/SMC-PetCareBooking/pkg/dbmetrics"

// DBExecutor *sql.DB, *dbmetrics.DB или транзакция из контекста
type DBExecutor = dbmetrics.DBExecutor
