package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"restaurant/entity"
	"restaurant/repository"
	"restaurant/utils"
)

type ReservationService struct {
	Repo *repository.ReservationRepository
	now  func() time.Time
}

func NewReservationService(repo *repository.ReservationRepository) *ReservationService {
	return &ReservationService{Repo: repo, now: time.Now}
}

type CreateReservationInput struct {
	Name      string
	Email     string
	Phone     string
	Date      string
	Time      string
	PartySize int
	Notes     string
}

func (in *CreateReservationInput) validate() error {
	for _, v := range []string{in.Name, in.Email, in.Phone, in.Date, in.Time} {
		if strings.TrimSpace(v) == "" {
			return invalid("reservation", "missing required fields")
		}
	}
	if in.PartySize < 1 {
		return invalid("partySize", "party size must be at least 1")
	}
	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return invalid("date", "date must be YYYY-MM-DD")
	}
	if _, err := time.Parse("15:04", in.Time); err != nil {
		return invalid("time", "time must be HH:mm")
	}
	return nil
}

func (s *ReservationService) Create(ctx context.Context, in *CreateReservationInput) (*entity.Reservation, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	res := entity.Reservation{
		ID:        utils.NewID(),
		Name:      strings.TrimSpace(in.Name),
		Email:     strings.TrimSpace(in.Email),
		Phone:     strings.TrimSpace(in.Phone),
		Date:      in.Date,
		Time:      in.Time,
		PartySize: in.PartySize,
		Notes:     strings.TrimSpace(in.Notes),
		Status:    entity.ReservationRequested,
		CreatedAt: s.now().UTC(),
	}
	for attempt := 0; ; attempt++ {
		tok, err := utils.NewToken()
		if err != nil {
			return nil, err
		}
		res.Token = tok
		err = s.Repo.Create(ctx, &res)
		if err == nil {
			break
		}
		if !errors.Is(err, repository.ErrDuplicate) || attempt == 2 {
			return nil, err
		}
	}

	log.Info().Str("token", res.Token).Str("date", res.Date).Str("time", res.Time).
		Int("party", res.PartySize).Msg("reservation created")
	return &res, nil
}

func (s *ReservationService) Get(ctx context.Context, token string) (*entity.Reservation, error) {
	return s.Repo.FindByToken(ctx, token)
}

func (s *ReservationService) List(ctx context.Context) ([]entity.Reservation, error) {
	return s.Repo.List(ctx)
}
