package raffle

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/KirkDiggler/lootwheel/internal/common/clock"
	"github.com/KirkDiggler/lootwheel/internal/common/uuid"
	"github.com/KirkDiggler/lootwheel/internal/models"
	raffleRepo "github.com/KirkDiggler/lootwheel/internal/repositories/raffle"
	"github.com/KirkDiggler/lootwheel/internal/rng"
	"github.com/KirkDiggler/lootwheel/internal/snapshot"
	"github.com/KirkDiggler/lootwheel/internal/wheel"
	"github.com/google/logger"
)

// service implements the Service interface
type service struct {
	historyLimit  int
	repo          raffleRepo.Repository
	renderer      Renderer
	animator      *wheel.Animator
	random        rng.Source
	clock         clock.Clock
	uuidGenerator uuid.UUID

	// mu guards the maps below
	mu       sync.Mutex
	locks    map[string]*sync.Mutex
	spinning map[string]bool
	wheels   map[string]*wheel.Wheel
}

// New creates a new raffle service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Repository == nil {
		return nil, ErrNilRepository
	}

	if cfg.Random == nil {
		return nil, ErrNilRandom
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	historyLimit := cfg.HistoryLimit
	if historyLimit <= 0 {
		historyLimit = DefaultHistoryLimit
	}

	renderer := cfg.Renderer
	if renderer == nil {
		renderer = NopRenderer{}
	}

	animator := cfg.Animator
	if animator == nil {
		animator = wheel.NewAnimator(nil)
	}

	return &service{
		historyLimit:  historyLimit,
		repo:          cfg.Repository,
		renderer:      renderer,
		animator:      animator,
		random:        cfg.Random,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		locks:         make(map[string]*sync.Mutex),
		spinning:      make(map[string]bool),
		wheels:        make(map[string]*wheel.Wheel),
	}, nil
}

// lockFor returns the mutex serializing load-modify-save sequences of a raffle
func (s *service) lockFor(raffleID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.locks[raffleID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[raffleID] = l
	}
	return l
}

func (s *service) isSpinning(raffleID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.spinning[raffleID]
}

func (s *service) setSpinning(raffleID string, spinning bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if spinning {
		s.spinning[raffleID] = true
	} else {
		delete(s.spinning, raffleID)
	}
}

func (s *service) wheelFor(raffleID string) *wheel.Wheel {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.wheels[raffleID]
	if !ok {
		w = &wheel.Wheel{}
		s.wheels[raffleID] = w
	}
	return w
}

// load returns the stored state, or a fresh one when nothing usable is stored
func (s *service) load(ctx context.Context, raffleID string) (*models.RaffleState, error) {
	state, err := s.repo.GetState(ctx, &raffleRepo.GetStateInput{
		RaffleID: raffleID,
	})
	switch {
	case err == nil:
		return state, nil
	case errors.Is(err, raffleRepo.ErrRaffleNotFound):
		return models.NewRaffleState(), nil
	case errors.Is(err, snapshot.ErrMalformedSnapshot):
		logger.Warningf("Stored state of raffle %s is unreadable, starting empty: %v", raffleID, err)
		return models.NewRaffleState(), nil
	default:
		return nil, fmt.Errorf("failed to load raffle %s: %w", raffleID, err)
	}
}

// save writes the state through and renders it
func (s *service) save(ctx context.Context, raffleID string, state *models.RaffleState) error {
	err := s.repo.SaveState(ctx, &raffleRepo.SaveStateInput{
		RaffleID: raffleID,
		State:    state,
	})
	if err != nil {
		logger.Errorf("Failed to save raffle %s: %v", raffleID, err)
		return fmt.Errorf("failed to save raffle %s: %w", raffleID, err)
	}

	s.renderer.RenderState(raffleID, state)
	return nil
}

// mutate applies fn to the current state and persists the result. Nothing
// is saved when fn fails. Mutations are refused while the raffle spins.
func (s *service) mutate(ctx context.Context, raffleID string, fn func(state *models.RaffleState) error) (*models.RaffleState, error) {
	if raffleID == "" {
		return nil, ErrInvalidRaffleID
	}

	lock := s.lockFor(raffleID)
	lock.Lock()
	defer lock.Unlock()

	if s.isSpinning(raffleID) {
		return nil, ErrSpinInProgress
	}

	state, err := s.load(ctx, raffleID)
	if err != nil {
		return nil, err
	}

	if err := fn(state); err != nil {
		return nil, err
	}

	if err := s.save(ctx, raffleID, state); err != nil {
		return nil, err
	}

	return state, nil
}

// GetState returns the current state of a raffle
func (s *service) GetState(ctx context.Context, input *GetStateInput) (*GetStateOutput, error) {
	if input == nil || input.RaffleID == "" {
		return nil, ErrInvalidRaffleID
	}

	state, err := s.load(ctx, input.RaffleID)
	if err != nil {
		return nil, err
	}

	return &GetStateOutput{
		State:      state,
		Spinning:   s.isSpinning(input.RaffleID),
		WheelAngle: s.wheelFor(input.RaffleID).Angle(),
	}, nil
}

// ListRaffles returns the IDs of every stored raffle
func (s *service) ListRaffles(ctx context.Context, input *ListRafflesInput) (*ListRafflesOutput, error) {
	output, err := s.repo.ListRaffles(ctx, &raffleRepo.ListRafflesInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to list raffles: %w", err)
	}

	return &ListRafflesOutput{
		RaffleIDs: output.RaffleIDs,
	}, nil
}

// AddPrize adds stock to a prize, creating it if no prize has that name
func (s *service) AddPrize(ctx context.Context, input *AddPrizeInput) (*AddPrizeOutput, error) {
	if input == nil {
		return nil, ErrInvalidPrize
	}

	name := strings.TrimSpace(input.Name)
	if name == "" || input.Qty <= 0 {
		return nil, ErrInvalidPrize
	}

	output := &AddPrizeOutput{}
	_, err := s.mutate(ctx, input.RaffleID, func(state *models.RaffleState) error {
		if existing := state.FindPrizeByName(name); existing != nil {
			existing.Qty += input.Qty
			existing.Remaining += input.Qty
			output.Prize = existing
			output.Merged = true
			return nil
		}

		prize := &models.Prize{
			ID:        s.uuidGenerator.NewUUID(),
			Name:      name,
			Qty:       input.Qty,
			Remaining: input.Qty,
		}
		state.Prizes = append(state.Prizes, prize)
		output.Prize = prize
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Infof("Raffle %s: added prize %q x%d", input.RaffleID, name, input.Qty)
	return output, nil
}

// updatePrize runs fn against one prize of the raffle
func (s *service) updatePrize(ctx context.Context, input *PrizeInput, fn func(state *models.RaffleState, prize *models.Prize)) (*PrizeOutput, error) {
	if input == nil {
		return nil, ErrInvalidRaffleID
	}

	output := &PrizeOutput{}
	_, err := s.mutate(ctx, input.RaffleID, func(state *models.RaffleState) error {
		prize := state.FindPrize(input.PrizeID)
		if prize == nil {
			return ErrPrizeNotFound
		}
		fn(state, prize)
		output.Prize = prize
		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// IncrementPrize grants one more unit of a prize
func (s *service) IncrementPrize(ctx context.Context, input *PrizeInput) (*PrizeOutput, error) {
	return s.updatePrize(ctx, input, func(_ *models.RaffleState, prize *models.Prize) {
		prize.Qty++
		prize.Remaining++
	})
}

// DecrementPrize removes one unit of remaining stock, never going below zero
func (s *service) DecrementPrize(ctx context.Context, input *PrizeInput) (*PrizeOutput, error) {
	return s.updatePrize(ctx, input, func(_ *models.RaffleState, prize *models.Prize) {
		if prize.Remaining > 0 {
			prize.Remaining--
		}
	})
}

// RemovePrize deletes a prize
func (s *service) RemovePrize(ctx context.Context, input *PrizeInput) (*PrizeOutput, error) {
	return s.updatePrize(ctx, input, func(state *models.RaffleState, prize *models.Prize) {
		state.RemovePrize(prize.ID)
	})
}

// addParticipant appends a participant unless the name is taken
func (s *service) addParticipant(state *models.RaffleState, name string) (*models.Participant, error) {
	if state.FindParticipantByName(name) != nil {
		return nil, ErrDuplicateParticipant
	}

	participant := &models.Participant{
		ID:     s.uuidGenerator.NewUUID(),
		Name:   name,
		Active: true,
		Wins:   models.Wins{},
	}
	state.Participants = append(state.Participants, participant)
	return participant, nil
}

// AddParticipant adds an active participant
func (s *service) AddParticipant(ctx context.Context, input *AddParticipantInput) (*AddParticipantOutput, error) {
	if input == nil {
		return nil, ErrInvalidParticipant
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrInvalidParticipant
	}

	output := &AddParticipantOutput{}
	_, err := s.mutate(ctx, input.RaffleID, func(state *models.RaffleState) error {
		participant, err := s.addParticipant(state, name)
		if err != nil {
			return err
		}
		output.Participant = participant
		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// AddParticipantsBulk adds one participant per non-blank line
func (s *service) AddParticipantsBulk(ctx context.Context, input *AddParticipantsBulkInput) (*AddParticipantsBulkOutput, error) {
	if input == nil {
		return nil, ErrInvalidRaffleID
	}

	output := &AddParticipantsBulkOutput{
		Added:   []*models.Participant{},
		Skipped: []string{},
	}
	_, err := s.mutate(ctx, input.RaffleID, func(state *models.RaffleState) error {
		for _, line := range strings.Split(input.Text, "\n") {
			name := strings.TrimSpace(line)
			if name == "" {
				continue
			}

			participant, err := s.addParticipant(state, name)
			if err != nil {
				output.Skipped = append(output.Skipped, name)
				continue
			}
			output.Added = append(output.Added, participant)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Infof("Raffle %s: bulk added %d participants, skipped %d", input.RaffleID, len(output.Added), len(output.Skipped))
	return output, nil
}

// updateParticipant runs fn against one participant of the raffle
func (s *service) updateParticipant(ctx context.Context, input *ParticipantInput, fn func(state *models.RaffleState, participant *models.Participant)) (*ParticipantOutput, error) {
	if input == nil {
		return nil, ErrInvalidRaffleID
	}

	output := &ParticipantOutput{}
	_, err := s.mutate(ctx, input.RaffleID, func(state *models.RaffleState) error {
		participant := state.FindParticipant(input.ParticipantID)
		if participant == nil {
			return ErrParticipantNotFound
		}
		fn(state, participant)
		output.Participant = participant
		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// ToggleParticipant flips whether a participant is active
func (s *service) ToggleParticipant(ctx context.Context, input *ParticipantInput) (*ParticipantOutput, error) {
	return s.updateParticipant(ctx, input, func(_ *models.RaffleState, participant *models.Participant) {
		participant.Active = !participant.Active
	})
}

// RemoveParticipant deletes a participant
func (s *service) RemoveParticipant(ctx context.Context, input *ParticipantInput) (*ParticipantOutput, error) {
	return s.updateParticipant(ctx, input, func(state *models.RaffleState, participant *models.Participant) {
		state.RemoveParticipant(participant.ID)
	})
}

// NextParticipant returns the active participant following AfterID,
// wrapping around. The first active participant is returned when AfterID
// is empty or no longer active.
func (s *service) NextParticipant(ctx context.Context, input *NextParticipantInput) (*NextParticipantOutput, error) {
	if input == nil || input.RaffleID == "" {
		return nil, ErrInvalidRaffleID
	}

	state, err := s.load(ctx, input.RaffleID)
	if err != nil {
		return nil, err
	}

	actives := state.ActiveParticipants()
	if len(actives) == 0 {
		return nil, ErrNoActiveParticipant
	}

	next := actives[0]
	for i, p := range actives {
		if p.ID == input.AfterID {
			next = actives[(i+1)%len(actives)]
			break
		}
	}

	return &NextParticipantOutput{
		Participant: next,
	}, nil
}

// SetOptions updates any of the spin options
func (s *service) SetOptions(ctx context.Context, input *SetOptionsInput) (*SetOptionsOutput, error) {
	if input == nil {
		return nil, ErrInvalidRaffleID
	}

	state, err := s.mutate(ctx, input.RaffleID, func(state *models.RaffleState) error {
		if input.UniqueWinner != nil {
			state.Options.UniqueWinner = *input.UniqueWinner
		}
		if input.NoRepeatPrize != nil {
			state.Options.NoRepeatPrize = *input.NoRepeatPrize
		}
		if input.WeightedByStock != nil {
			state.Options.WeightedByStock = *input.WeightedByStock
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &SetOptionsOutput{
		Options: state.Options,
	}, nil
}

// GetHistory returns the most recent awarded prizes
func (s *service) GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error) {
	if input == nil || input.RaffleID == "" {
		return nil, ErrInvalidRaffleID
	}

	state, err := s.load(ctx, input.RaffleID)
	if err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = s.historyLimit
	}

	return &GetHistoryOutput{
		Entries: state.RecentHistory(limit),
		Total:   len(state.History),
	}, nil
}

// ClearHistory empties the history, reactivates every participant and
// clears their wins. Prizes are left as they are.
func (s *service) ClearHistory(ctx context.Context, input *ClearHistoryInput) (*ClearHistoryOutput, error) {
	if input == nil {
		return nil, ErrInvalidRaffleID
	}

	state, err := s.mutate(ctx, input.RaffleID, func(state *models.RaffleState) error {
		state.History = []*models.HistoryEntry{}
		for _, p := range state.Participants {
			p.Active = true
			p.Wins = models.Wins{}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Infof("Raffle %s: history cleared", input.RaffleID)
	return &ClearHistoryOutput{
		State: state,
	}, nil
}

// Reset removes everything stored for a raffle
func (s *service) Reset(ctx context.Context, input *ResetInput) (*ResetOutput, error) {
	if input == nil || input.RaffleID == "" {
		return nil, ErrInvalidRaffleID
	}

	lock := s.lockFor(input.RaffleID)
	lock.Lock()
	defer lock.Unlock()

	if s.isSpinning(input.RaffleID) {
		return nil, ErrSpinInProgress
	}

	err := s.repo.DeleteState(ctx, &raffleRepo.DeleteStateInput{
		RaffleID: input.RaffleID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reset raffle %s: %w", input.RaffleID, err)
	}

	s.mu.Lock()
	delete(s.wheels, input.RaffleID)
	s.mu.Unlock()

	s.renderer.RenderState(input.RaffleID, models.NewRaffleState())
	logger.Infof("Raffle %s: reset", input.RaffleID)
	return &ResetOutput{}, nil
}

// Export renders the raffle as a snapshot document
func (s *service) Export(ctx context.Context, input *ExportInput) (*ExportOutput, error) {
	if input == nil || input.RaffleID == "" {
		return nil, ErrInvalidRaffleID
	}

	state, err := s.load(ctx, input.RaffleID)
	if err != nil {
		return nil, err
	}

	data, err := snapshot.Encode(state)
	if err != nil {
		return nil, err
	}

	return &ExportOutput{
		Data:     data,
		FileName: snapshot.ExportFileName,
	}, nil
}

// Import replaces the raffle with a snapshot document. A document that
// cannot be decoded leaves the raffle untouched.
func (s *service) Import(ctx context.Context, input *ImportInput) (*ImportOutput, error) {
	if input == nil {
		return nil, ErrInvalidRaffleID
	}

	imported, err := snapshot.Decode(input.Data)
	if err != nil {
		logger.Warningf("Raffle %s: rejected import: %v", input.RaffleID, err)
		return nil, fmt.Errorf("%w: %w", ErrMalformedImport, err)
	}

	state, err := s.mutate(ctx, input.RaffleID, func(state *models.RaffleState) error {
		*state = *imported
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Infof("Raffle %s: imported %d prizes, %d participants, %d history entries",
		input.RaffleID, len(state.Prizes), len(state.Participants), len(state.History))
	return &ImportOutput{
		State: state,
	}, nil
}
