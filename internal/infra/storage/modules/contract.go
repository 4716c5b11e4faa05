package modules

import "github.com/m04kA/SMC-PetCareBooking/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
