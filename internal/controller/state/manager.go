package state

import (
	"context"
	"sync"
)

// BuildFunc создаёт workspace чата
type BuildFunc func(chatID int64, onUnauthorized func(ctx context.Context)) *Workspace

// Manager управляет рабочими пространствами и состояниями диалогов чатов
type Manager struct {
	mu         sync.RWMutex
	states     map[int64]*UserData  // chatID -> диалог
	workspaces map[int64]*Workspace // chatID -> сессия и сервисы
	build      BuildFunc
	onExpired  func(ctx context.Context, chatID int64)
}

func NewManager(build BuildFunc) *Manager {
	return &Manager{
		states:     make(map[int64]*UserData),
		workspaces: make(map[int64]*Workspace),
		build:      build,
	}
}

// NewDefaultManager собирает workspace из общих зависимостей
func NewDefaultManager(deps Deps) *Manager {
	return NewManager(func(chatID int64, onUnauthorized func(ctx context.Context)) *Workspace {
		return NewWorkspace(chatID, deps, onUnauthorized)
	})
}

// OnExpired хук для сессии, отклонённой сервером с 401
func (sm *Manager) OnExpired(fn func(ctx context.Context, chatID int64)) {
	sm.mu.Lock()
	sm.onExpired = fn
	sm.mu.Unlock()
}

// Workspace возвращает пространство чата, создавая его при первом обращении.
// Новый workspace восстанавливает сессию вне блокировки.
func (sm *Manager) Workspace(ctx context.Context, chatID int64) *Workspace {
	sm.mu.RLock()
	ws, ok := sm.workspaces[chatID]
	sm.mu.RUnlock()

	if !ok {
		sm.mu.Lock()
		ws, ok = sm.workspaces[chatID]
		if !ok {
			ws = sm.build(chatID, func(ctx context.Context) { sm.expire(ctx, chatID) })
			sm.workspaces[chatID] = ws
		}
		sm.mu.Unlock()
	}

	_ = ws.Restore(ctx)
	return ws
}

// Reset сбрасывает workspace и диалог чата, следующее обращение начинается с нуля
func (sm *Manager) Reset(chatID int64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	delete(sm.workspaces, chatID)
	delete(sm.states, chatID)
}

// expire вызывается на любой 401, токен gateway уже удалил
func (sm *Manager) expire(ctx context.Context, chatID int64) {
	sm.mu.RLock()
	ws := sm.workspaces[chatID]
	onExpired := sm.onExpired
	sm.mu.RUnlock()

	wasLoggedIn := ws != nil && ws.Auth.HasUser()

	sm.Reset(chatID)

	if wasLoggedIn && onExpired != nil {
		onExpired(ctx, chatID)
	}
}

// GetState получает текущее состояние диалога
func (sm *Manager) GetState(chatID int64) UserState {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if userData, exists := sm.states[chatID]; exists {
		return userData.State
	}
	return StateNone
}

// SetState устанавливает состояние диалога
func (sm *Manager) SetState(chatID int64, state UserState) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if state == StateNone {
		delete(sm.states, chatID)
		return
	}

	if _, exists := sm.states[chatID]; !exists {
		sm.states[chatID] = &UserData{
			State: state,
			Data:  make(map[string]string),
		}
	} else {
		sm.states[chatID].State = state
	}
}

func (sm *Manager) GetData(chatID int64, key string) (string, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if userData, exists := sm.states[chatID]; exists {
		value, ok := userData.Data[key]
		return value, ok
	}
	return "", false
}

func (sm *Manager) SetData(chatID int64, key, value string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if _, exists := sm.states[chatID]; !exists {
		sm.states[chatID] = &UserData{
			State: StateNone,
			Data:  make(map[string]string),
		}
	}
	sm.states[chatID].Data[key] = value
}

// ClearState очищает только диалог, сессия остаётся
func (sm *Manager) ClearState(chatID int64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	delete(sm.states, chatID)
}
