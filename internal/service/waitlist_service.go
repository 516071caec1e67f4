package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"vaultlist/internal/entity"
	"vaultlist/internal/repository"
	"vaultlist/internal/utils"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
)

type WaitlistService struct {
	signups repository.SignupRepository
	events  repository.SignupEventRepository

	emailSender EmailSender
	clock       Clock
	logger      *logrus.Logger
	config      WaitlistConfig
}

func NewWaitlistService(
	signups repository.SignupRepository,
	events repository.SignupEventRepository,
	emailSender EmailSender,
	clock Clock,
	logger *logrus.Logger,
	config WaitlistConfig,
) *WaitlistService {
	return &WaitlistService{
		signups:     signups,
		events:      events,
		emailSender: emailSender,
		clock:       clock,
		logger:      logger,
		config:      config,
	}
}

type JoinInput struct {
	Email     string
	UserAgent *string
}

type JoinResult struct {
	Email string
}

type VerifyResult struct {
	Email           string
	AlreadyVerified bool
}

// Join validates the email, creates a pending signup with a fresh
// verification token and sends the verification link. The store's uniqueness
// constraint on email is the final arbiter when two requests race past the
// duplicate check.
func (s *WaitlistService) Join(ctx context.Context, input JoinInput) (*JoinResult, error) {
	trimmed := strings.TrimSpace(input.Email)
	if trimmed == "" || !strings.Contains(trimmed, "@") || len(trimmed) > 255 {
		return nil, ErrInvalidEmail
	}

	email := utils.NormalizeEmail(input.Email)
	existing, err := s.signups.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, s.rejectDuplicate(ctx, existing)
	}

	token, err := utils.GenerateRandomToken(s.tokenBytes())
	if err != nil {
		return nil, err
	}

	signup := &entity.EmailSignup{
		Email:              email,
		VerificationToken:  token,
		VerificationSentAt: s.now(),
		UserAgent:          input.UserAgent,
	}
	if err := s.signups.Create(ctx, signup); err != nil {
		if isUniqueViolation(err) {
			return nil, s.resolveInsertRace(ctx, email)
		}
		return nil, err
	}

	s.logEvent(ctx, &signup.ID, entity.SignupCreated, map[string]any{"email": email})

	if err := s.emailSender.SendVerificationEmail(ctx, email, token); err != nil {
		// The pending record stays; a later resend path can pick it up.
		s.logger.WithError(err).WithField("email", email).Error("verification email failed")
		s.logEvent(ctx, &signup.ID, entity.EmailFailed, map[string]any{"email": email})
		return nil, ErrEmailDeliveryFailed
	}

	s.logEvent(ctx, &signup.ID, entity.EmailSent, map[string]any{"email": email})
	return &JoinResult{Email: email}, nil
}

// Verify consumes a verification token. The transition is a conditional
// update keyed on the token value; a caller that loses the race re-reads the
// record and reports the idempotent already-verified outcome.
func (s *WaitlistService) Verify(ctx context.Context, token string) (*VerifyResult, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrMissingToken
	}

	signup, err := s.signups.FindByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if signup == nil {
		return nil, ErrTokenInvalid
	}

	if signup.IsVerified {
		return &VerifyResult{Email: signup.Email, AlreadyVerified: true}, nil
	}

	if signup.IsExpired(s.now(), s.verificationTTL()) {
		return nil, ErrTokenExpired
	}

	won, err := s.signups.MarkVerified(ctx, token, s.now())
	if err != nil {
		return nil, err
	}
	if !won {
		return s.confirmVerified(ctx, signup.Email)
	}

	s.logEvent(ctx, &signup.ID, entity.EmailVerified, map[string]any{"email": signup.Email})
	return &VerifyResult{Email: signup.Email}, nil
}

func (s *WaitlistService) Count(ctx context.Context) (int64, error) {
	return s.signups.Count(ctx)
}

func (s *WaitlistService) rejectDuplicate(ctx context.Context, existing *entity.EmailSignup) error {
	s.logEvent(ctx, &existing.ID, entity.DuplicateRejected, map[string]any{"verified": existing.IsVerified})
	if existing.IsVerified {
		return ErrAlreadyVerified
	}
	return ErrVerificationPending
}

// resolveInsertRace maps a uniqueness rejection back onto the duplicate
// branches: the other request won, so report the record it created.
func (s *WaitlistService) resolveInsertRace(ctx context.Context, email string) error {
	existing, err := s.signups.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrVerificationPending
	}
	return s.rejectDuplicate(ctx, existing)
}

func (s *WaitlistService) confirmVerified(ctx context.Context, email string) (*VerifyResult, error) {
	signup, err := s.signups.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if signup == nil || !signup.IsVerified {
		return nil, ErrTokenInvalid
	}
	return &VerifyResult{Email: signup.Email, AlreadyVerified: true}, nil
}

func (s *WaitlistService) logEvent(
	ctx context.Context,
	signupID *uuid.UUID,
	action entity.SignupAction,
	metadata map[string]any,
) {
	if s.events == nil {
		return
	}
	var payload datatypes.JSON
	if metadata != nil {
		bytes, err := json.Marshal(metadata)
		if err != nil {
			return
		}
		payload = datatypes.JSON(bytes)
	}

	event := &entity.SignupEvent{
		SignupID: signupID,
		Action:   action,
		Metadata: payload,
	}
	if err := s.events.Log(ctx, event); err != nil {
		s.logger.WithError(err).Warn("signup event not recorded")
	}
}

func (s *WaitlistService) now() time.Time {
	if s.clock == nil {
		return time.Now()
	}
	return s.clock.Now()
}

func (s *WaitlistService) verificationTTL() time.Duration {
	if s.config.VerificationTTL > 0 {
		return s.config.VerificationTTL
	}
	return 24 * time.Hour
}

func (s *WaitlistService) tokenBytes() int {
	if s.config.TokenBytes > 0 {
		return s.config.TokenBytes
	}
	return 32
}
