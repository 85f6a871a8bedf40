package services

import (
	"errors"
	"strings"

	"github.com/choihyeonji00/project-kiosk/entity"
	"github.com/choihyeonji00/project-kiosk/repository"
)

var (
	ErrPhoneRequired    = errors.New("phone is required")
	ErrPhoneAlreadyUsed = errors.New("phone already registered")
)

type MemberService struct {
	Repo *repository.MemberRepository
}

func NewMemberService(repo *repository.MemberRepository) *MemberService {
	return &MemberService{Repo: repo}
}

func (s *MemberService) GetByPhone(phone string) (*entity.Member, error) {
	return s.Repo.FindByPhone(strings.TrimSpace(phone))
}

func (s *MemberService) Create(member *entity.Member) error {
	member.Phone = strings.TrimSpace(member.Phone)
	if member.Phone == "" {
		return ErrPhoneRequired
	}
	count, err := s.Repo.CountByPhone(member.Phone)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrPhoneAlreadyUsed
	}
	return s.Repo.Create(member)
}

func (s *MemberService) Update(id uint, updates map[string]any) (*entity.Member, error) {
	if err := s.Repo.Update(id, updates); err != nil {
		return nil, err
	}
	return s.Repo.FindByID(id)
}
