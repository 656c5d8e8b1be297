package service

import "sync"

// recordLocks сериализует изменяющие операции по id записи:
// конкурентные update/delete одной команды выполняются по очереди,
// разные id друг друга не блокируют.
type recordLocks struct {
	mu    sync.Mutex
	locks map[int]*sync.Mutex
}

func newRecordLocks() *recordLocks {
	return &recordLocks{locks: make(map[int]*sync.Mutex)}
}

// Мьютексы не освобождаются: ключей не больше, чем живых команд
func (l *recordLocks) Lock(id int) {
	l.mu.Lock()
	m, ok := l.locks[id]
	if !ok {
		m = &sync.Mutex{}
		l.locks[id] = m
	}
	l.mu.Unlock()

	m.Lock()
}

func (l *recordLocks) Unlock(id int) {
	l.mu.Lock()
	m := l.locks[id]
	l.mu.Unlock()

	m.Unlock()
}
