package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"regexp"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/fx"

	"guardian/config"
	"guardian/internal/domain/entity"
	domainerrors "guardian/internal/domain/errors"
	"guardian/internal/domain/repository"
	"guardian/internal/domain/service"
	"guardian/internal/errors"
	"guardian/internal/usecase"
)

var pinPattern = regexp.MustCompile(`^\d{4,6}$`)

// ParentalAuthServiceParams holds dependencies for ParentalAuthService, injected by Fx
type ParentalAuthServiceParams struct {
	fx.In

	Config       *config.Config
	Logger       *slog.Logger
	Clock        clockwork.Clock
	Hasher       service.PinHasher
	AttemptRepo  repository.AuthAttemptRepository
	PinRepo      repository.PinCredentialRepository
	SettingsRepo repository.SettingsRepository
}

type parentalAuthService struct {
	cfg          *config.AuthConfig
	logger       *slog.Logger
	clock        clockwork.Clock
	hasher       service.PinHasher
	attemptRepo  repository.AuthAttemptRepository
	pinRepo      repository.PinCredentialRepository
	settingsRepo repository.SettingsRepository

	// attemptMu serializes read-modify-write of the attempt record.
	attemptMu sync.Mutex

	mu         sync.Mutex
	parentMode bool
	expiresAt  time.Time
	timer      clockwork.Timer
	generation uint64
}

// NewParentalAuthService creates the parent PIN and session service
func NewParentalAuthService(params ParentalAuthServiceParams) usecase.ParentalAuthUsecase {
	cfg := config.DefaultAuthConfig()
	if params.Config != nil && params.Config.Auth != nil {
		cfg = params.Config.Auth
	}

	return &parentalAuthService{
		cfg:          cfg,
		logger:       params.Logger,
		clock:        params.Clock,
		hasher:       params.Hasher,
		attemptRepo:  params.AttemptRepo,
		pinRepo:      params.PinRepo,
		settingsRepo: params.SettingsRepo,
	}
}

func (s *parentalAuthService) SetParentPin(ctx context.Context, pin string) error {
	if !pinPattern.MatchString(pin) {
		return domainerrors.ErrInvalidPinFormat
	}

	salt, err := s.hasher.NewSalt()
	if err != nil {
		return errors.Wrap(err, "failed to generate PIN salt")
	}
	hash, err := s.hasher.Hash(pin, salt)
	if err != nil {
		return errors.Wrap(err, "failed to hash PIN")
	}

	if err := s.pinRepo.Save(ctx, &entity.PinCredential{Hash: hash, Salt: salt}); err != nil {
		return errors.Wrap(err, "failed to store PIN")
	}

	if err := s.stripLegacyPin(ctx); err != nil {
		return err
	}

	s.attemptMu.Lock()
	defer s.attemptMu.Unlock()

	if err := s.attemptRepo.Delete(ctx); err != nil {
		return errors.Wrap(err, "failed to clear auth attempts")
	}

	s.logger.Info("[Security] Parent PIN updated")

	return nil
}

func (s *parentalAuthService) HasPin(ctx context.Context) (bool, error) {
	credential, err := s.pinRepo.Get(ctx)
	if err != nil {
		return false, errors.Wrap(err, "failed to load PIN")
	}

	return credential != nil, nil
}

func (s *parentalAuthService) AuthenticateParentMode(ctx context.Context, pin string) (*entity.ParentSession, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load parental settings")
	}
	if !settings.RequirePinForParentMode {
		return s.openSession(false), nil
	}

	s.attemptMu.Lock()
	defer s.attemptMu.Unlock()

	now := s.clock.Now()

	record, err := s.loadAttempts(ctx)
	if err != nil {
		return nil, err
	}

	if record.IsLocked(now) {
		minutes := int(math.Ceil(record.LockedUntil.Sub(now).Minutes()))
		s.logger.Warn("[Security] Parent mode attempt while locked out", slog.Int("remainingMinutes", minutes))

		return nil, domainerrors.ErrLockedOut.WithMessage(
			fmt.Sprintf("Too many failed attempts. Please try again in %d minute(s).", minutes))
	}
	if record.LockExpired(now) {
		record = &entity.AuthAttemptRecord{}
	}

	credential, err := s.pinRepo.Get(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load PIN")
	}
	if credential == nil {
		s.logger.Info("[Security] No parent PIN set, first time setup")

		return s.openSession(true), nil
	}

	if s.hasher.Check(pin, credential.Salt, credential.Hash) {
		if err := s.attemptRepo.Delete(ctx); err != nil {
			return nil, errors.Wrap(err, "failed to clear auth attempts")
		}

		s.logger.Info("[Security] Parent mode authenticated successfully")

		return s.openSession(false), nil
	}

	record.Count++
	if record.Count >= s.cfg.MaxAttempts {
		lockedUntil := now.Add(s.cfg.LockoutDuration)
		record.LockedUntil = &lockedUntil
	}
	if err := s.attemptRepo.Save(ctx, record); err != nil {
		return nil, errors.Wrap(err, "failed to record auth attempt")
	}

	if record.LockedUntil != nil {
		s.logger.Warn("[Security] Parent mode locked after failed attempts",
			slog.Int("attempts", record.Count),
			slog.Time("lockedUntil", *record.LockedUntil),
		)

		return nil, domainerrors.ErrLockoutTriggered.WithMessage(
			fmt.Sprintf("Too many failed attempts. Account locked for %s.", minutesText(s.cfg.LockoutDuration)))
	}

	s.logger.Warn("[Security] Parent mode authentication failed", slog.Int("attempts", record.Count))

	return nil, domainerrors.ErrAuthenticationFailed
}

func (s *parentalAuthService) ExitParentMode() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.parentMode {
		s.logger.Info("[Security] Parent mode exited")
	}
	s.closeSessionLocked()
}

func (s *parentalAuthService) IsParentMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.parentMode
}

func (s *parentalAuthService) RefreshSession() (*entity.ParentSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.parentMode {
		return nil, domainerrors.ErrParentModeRequired
	}
	s.armTimerLocked()

	return &entity.ParentSession{Active: true, ExpiresAt: s.expiresAt}, nil
}

// loadAttempts returns the attempt record, or an empty one when none is stored.
// A record that cannot be decoded is dropped.
func (s *parentalAuthService) loadAttempts(ctx context.Context) (*entity.AuthAttemptRecord, error) {
	record, err := s.attemptRepo.Get(ctx)
	if errors.Is(err, repository.ErrCorruptRecord) {
		s.logger.Error("[Security] Corrupted auth attempt record, resetting", slog.Any("error", err))
		if err := s.attemptRepo.Delete(ctx); err != nil {
			return nil, errors.Wrap(err, "failed to clear corrupted auth attempts")
		}

		return &entity.AuthAttemptRecord{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load auth attempts")
	}
	if record == nil {
		return &entity.AuthAttemptRecord{}, nil
	}

	return record, nil
}

func (s *parentalAuthService) stripLegacyPin(ctx context.Context) error {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load parental settings")
	}
	if settings.LegacyParentPin == "" {
		return nil
	}

	if _, err := s.settingsRepo.Update(ctx, func(settings *entity.ParentalSettings) error {
		settings.LegacyParentPin = ""
		return nil
	}); err != nil {
		return errors.Wrap(err, "failed to remove legacy PIN")
	}

	s.logger.Info("[Security] Removed legacy plaintext PIN from settings")

	return nil
}

func (s *parentalAuthService) openSession(firstTimeSetup bool) *entity.ParentSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.parentMode = true
	s.armTimerLocked()

	return &entity.ParentSession{
		Active:         true,
		FirstTimeSetup: firstTimeSetup,
		ExpiresAt:      s.expiresAt,
	}
}

// armTimerLocked cancels any pending auto-logout before scheduling a new one.
func (s *parentalAuthService) armTimerLocked() {
	if s.timer != nil {
		s.timer.Stop()
	}

	s.generation++
	generation := s.generation
	s.expiresAt = s.clock.Now().Add(s.cfg.SessionTimeout)
	s.timer = s.clock.AfterFunc(s.cfg.SessionTimeout, func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		if generation != s.generation {
			return
		}
		s.logger.Info("[Security] Parent mode session timed out")
		s.closeSessionLocked()
	})
}

func (s *parentalAuthService) closeSessionLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.generation++
	s.parentMode = false
	s.expiresAt = time.Time{}
}

func minutesText(d time.Duration) string {
	minutes := int(math.Ceil(d.Minutes()))
	if minutes == 1 {
		return "1 minute"
	}

	return fmt.Sprintf("%d minutes", minutes)
}
