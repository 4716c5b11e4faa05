package modules

import "errors"

var (
	// ErrModuleNotFound возвращается, когда настройка модуля не найдена
	ErrModuleNotFound = errors.New("modules.repository: module setting not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("modules.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("modules.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("modules.repository: failed to scan row")
)
