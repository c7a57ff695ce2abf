package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Freeeeeet/padel_booking_bot/internal/gateway"
	"github.com/Freeeeeet/padel_booking_bot/internal/model"
	"go.uber.org/zap"
)

var ErrUnknownPlayer = errors.New("unknown player")

type UserGateway interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	GetUser(ctx context.Context, userID string) (*model.User, error)
}

// UserService держит список игроков клуба для выбора участников
type UserService struct {
	gateway UserGateway
	users   *Collection[model.User]
	logger  *zap.Logger
}

func NewUserService(gateway UserGateway, logger *zap.Logger) *UserService {
	return &UserService{
		gateway: gateway,
		users:   NewCollection(func(u model.User) string { return u.ID }),
		logger:  logger,
	}
}

func (s *UserService) Fetch(ctx context.Context) ([]model.User, error) {
	if err := s.users.begin(); err != nil {
		return nil, err
	}

	users, err := s.gateway.ListUsers(ctx)
	if err != nil {
		s.users.fail(err)
		s.logger.Warn("Failed to fetch users", zap.Error(err))
		return nil, fmt.Errorf("fetch users: %w", err)
	}

	s.users.replace(users)
	return s.users.Items(), nil
}

func (s *UserService) Users() []model.User {
	return s.users.Items()
}

func (s *UserService) Status() Status {
	return s.users.Status()
}

// Search ищет по имени или email без учёта регистра. Пустой запрос возвращает всех.
func (s *UserService) Search(term string) []model.User {
	term = strings.ToLower(strings.TrimSpace(term))
	users := s.users.Items()
	if term == "" {
		return users
	}

	var found []model.User
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.Name), term) || strings.Contains(strings.ToLower(u.Email), term) {
			found = append(found, u)
		}
	}
	return found
}

// Resolve переводит каждую ссылку (email или id) в id пользователя с сохранением порядка.
// Id, которых нет в загруженном списке, запрашиваются у сервера: список мог устареть.
// Первая ссылка без совпадения проваливает весь вызов.
func (s *UserService) Resolve(ctx context.Context, refs []string) ([]string, error) {
	users := s.users.Items()
	ids := make([]string, 0, len(refs))

	for _, ref := range refs {
		ref = strings.TrimSpace(ref)
		if ref == "" {
			continue
		}

		if id, ok := lookup(users, ref); ok {
			ids = append(ids, id)
			continue
		}

		// по email сервер не ищет
		if strings.Contains(ref, "@") {
			return nil, fmt.Errorf("%w: %s", ErrUnknownPlayer, ref)
		}

		user, err := s.gateway.GetUser(ctx, ref)
		if err != nil {
			if errors.Is(err, gateway.ErrServerRejected) {
				return nil, fmt.Errorf("%w: %s", ErrUnknownPlayer, ref)
			}
			return nil, fmt.Errorf("get user: %w", err)
		}

		s.users.add(*user)
		users = append(users, *user)
		s.logger.Debug("Player loaded by id", zap.String("user_id", user.ID))
		ids = append(ids, user.ID)
	}

	return ids, nil
}

func lookup(users []model.User, ref string) (string, bool) {
	for _, u := range users {
		if u.ID == ref || strings.EqualFold(u.Email, ref) {
			return u.ID, true
		}
	}
	return "", false
}
