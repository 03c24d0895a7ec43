package service

import (
	"context"
	"errors"

	"github.com/aryanrathore-thriftyx/Alluraiah-testing/internal/domain"
	"github.com/aryanrathore-thriftyx/Alluraiah-testing/internal/repository"
)

// DefaultOTP код, выдаваемый при регистрации без явного OTP. Локальная симуляция.
const DefaultOTP = "1234"

// AuthService локальная симуляция регистрации и входа по телефону и OTP.
// OTP сравнивается открытым текстом — настоящих учётных данных здесь нет.
type AuthService struct {
	users repository.UserRepository
}

func NewAuthService(users repository.UserRepository) *AuthService {
	return &AuthService{users: users}
}

var (
	ErrPhoneTaken         = errors.New("phone already registered")
	ErrInvalidCredentials = errors.New("invalid phone or otp")
)

// Register создаёт покупателя. Повторная регистрация того же телефона отклоняется.
func (s *AuthService) Register(ctx context.Context, name, phone, otp string) (*domain.User, error) {
	if name == "" || phone == "" {
		return nil, ErrInvalidInput
	}
	if otp == "" {
		otp = DefaultOTP
	}

	if _, err := s.users.GetByPhone(ctx, phone); err == nil {
		return nil, ErrPhoneTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	u := domain.User{Name: name, Phone: phone, OTP: otp}
	if err := s.users.Create(ctx, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Login ищет покупателя по телефону и сверяет OTP
func (s *AuthService) Login(ctx context.Context, phone, otp string) (*domain.User, error) {
	if phone == "" || otp == "" {
		return nil, ErrInvalidInput
	}
	u, err := s.users.GetByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if u.OTP != otp {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}
