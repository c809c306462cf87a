package get_health

// StorageStatus состояние подключения к хранилищу
type StorageStatus interface {
	Connected() bool
}

// SessionCounter число живых сессий
type SessionCounter interface {
	Count() int
}
