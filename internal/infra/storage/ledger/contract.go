package ledger

import "github.com/m04kA/SMC-StorageService/pkg/txmanager"

// DBExecutor интерфейс для работы с БД: *sql.DB или транзакция из контекста
type DBExecutor = txmanager.Executor
