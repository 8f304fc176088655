package service

import (
	"errors"
	"strings"

	"quizcraft_backend/internal/model"
	"quizcraft_backend/internal/repository"
	"quizcraft_backend/internal/util"

	"gorm.io/gorm"
)

type ParticipantService struct {
	Tests        *repository.TestRepository
	Participants *repository.ParticipantRepository
}

func NewParticipantService(tests *repository.TestRepository, participants *repository.ParticipantRepository) *ParticipantService {
	return &ParticipantService{Tests: tests, Participants: participants}
}

type InviteReq struct {
	Email    string `json:"email" binding:"required,email"`
	FullName string `json:"fullName"`
}

// Invite adds one registered participant to a private test. Re-inviting an
// existing email returns the existing row untouched.
func (s *ParticipantService) Invite(creatorID uint, testID string, req InviteReq) (*model.Participant, error) {
	test, err := s.Tests.FindByIDAndCreator(testID, creatorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrTestNotFound
		}
		return nil, err
	}
	if test.AuthMode != model.ExclusiveParticipants {
		return nil, util.ErrTestNotPrivate
	}

	return s.Participants.Invite(testID, strings.ToLower(req.Email), req.FullName)
}

// BatchInvite adds several registered participants at once; duplicates are
// skipped like in Invite.
func (s *ParticipantService) BatchInvite(creatorID uint, testID string, reqs []InviteReq) ([]model.Participant, error) {
	test, err := s.Tests.FindByIDAndCreator(testID, creatorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrTestNotFound
		}
		return nil, err
	}
	if test.AuthMode != model.ExclusiveParticipants {
		return nil, util.ErrTestNotPrivate
	}

	created := make([]model.Participant, 0, len(reqs))
	for _, req := range reqs {
		p, err := s.Participants.Invite(testID, strings.ToLower(req.Email), req.FullName)
		if err != nil {
			return nil, err
		}
		created = append(created, *p)
	}
	return created, nil
}

// JoinPublic registers an anonymous attempt for an open test. Joining twice
// with the same email returns the existing participant id, so a page reload
// does not spawn a second attempt.
func (s *ParticipantService) JoinPublic(testID, email string) (*model.Participant, error) {
	test, err := s.Tests.FindByID(testID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrTestNotFound
		}
		return nil, err
	}
	if test.AuthMode == model.ExclusiveParticipants {
		return nil, util.ErrTestNotAccessible
	}

	email = strings.ToLower(email)
	if existing, err := s.Participants.FindByEmail(testID, email); err == nil {
		return existing, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	p := &model.Participant{
		TestID:     testID,
		Email:      email,
		Registered: false,
	}
	if err := s.Participants.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

// CheckByEmail resolves a participant id for a (test, email) pair, used by
// private tests to verify an invitation exists before entry.
func (s *ParticipantService) CheckByEmail(testID, email string) (*model.Participant, error) {
	p, err := s.Participants.FindByEmail(testID, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrParticipantNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *ParticipantService) ListParticipants(creatorID uint, testID string) ([]model.Participant, error) {
	if _, err := s.Tests.FindByIDAndCreator(testID, creatorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrTestNotFound
		}
		return nil, err
	}
	return s.Participants.ListByTest(testID)
}
