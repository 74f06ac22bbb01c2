package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/blogfolio-api/internal/models"
	"github.com/blogfolio-api/internal/repository"
	"github.com/blogfolio-api/internal/validation"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// portfolioService is the concrete implementation of PortfolioService
type portfolioService struct {
	portfolios   repository.PortfolioRepository
	users        repository.UserRepository
	validate     *validation.Validator
	queryTimeout time.Duration
	log          zerolog.Logger
}

func newPortfolioService(portfolios repository.PortfolioRepository, users repository.UserRepository, validate *validation.Validator, queryTimeout time.Duration, log zerolog.Logger) PortfolioService {
	return &portfolioService{
		portfolios:   portfolios,
		users:        users,
		validate:     validate,
		queryTimeout: queryTimeout,
		log:          log.With().Str("service", "portfolio").Logger(),
	}
}

// ListConsolidated returns one consolidated profile per user, enriched with
// account details where the account still exists
func (s *portfolioService) ListConsolidated(ctx context.Context, category string) ([]*models.ConsolidatedProfile, error) {
	qctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	facts, err := s.portfolios.Find(qctx, category)
	if err != nil {
		return nil, storeErr("query portfolios", err)
	}

	profiles := consolidate(facts)
	s.enrich(qctx, profiles)
	return profiles, nil
}

// ListByUser returns a user's raw portfolio facts, each carrying the
// owner's account details
func (s *portfolioService) ListByUser(ctx context.Context, userID string) ([]models.PortfolioFact, error) {
	qctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	facts, err := s.portfolios.FindByUser(qctx, userID)
	if err != nil {
		return nil, storeErr("query user portfolios", err)
	}
	if len(facts) == 0 {
		return nil, fmt.Errorf("no portfolio for user %s: %w", userID, ErrNotFound)
	}

	// One lookup for the single owner; every row carries the same identity.
	// A lookup failure leaves UserInfo nil rather than failing the request.
	infos, err := s.users.GetInfoByIDs(qctx, []string{userID})
	if err != nil {
		enrichmentFailures.Inc()
		s.log.Warn().Err(err).Str("user_id", userID).Msg("User enrichment failed, returning portfolio facts without account details")
		return facts, nil
	}
	for _, info := range infos {
		if info.ID != userID {
			continue
		}
		for i := range facts {
			info := info
			facts[i].UserInfo = &info
		}
		break
	}
	return facts, nil
}

// Get retrieves a single portfolio fact row
func (s *portfolioService) Get(ctx context.Context, id string) (*models.PortfolioFact, error) {
	qctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	fact, err := s.portfolios.GetByID(qctx, id)
	if err != nil {
		return nil, storeErr("get portfolio", err)
	}
	if fact == nil {
		return nil, fmt.Errorf("portfolio %s: %w", id, ErrNotFound)
	}
	return fact, nil
}

// Create stores a new portfolio fact. Owner identity comes from the token.
func (s *portfolioService) Create(ctx context.Context, actor *models.AuthUser, in *models.PortfolioInput) (*models.PortfolioFact, error) {
	if err := validationErr(s.validate.ValidatePortfolio(in)); err != nil {
		return nil, err
	}

	fact := &models.PortfolioFact{
		ID:          uuid.New().String(),
		UserID:      actor.ID,
		Username:    actor.Username,
		Categories:  in.Categories,
		Title:       in.Title,
		Description: in.Description,
		Picture:     in.Picture,
		TechStack:   in.TechStack,
		Skills:      in.Skills,
		LiveLink:    in.LiveLink,
		GithubLink:  in.GithubLink,
		LinkedIn:    in.LinkedIn,
		PhoneNumber: in.PhoneNumber,
		Email:       in.Email,
		Contact:     in.Contact,
		MediaType:   in.MediaType,
		CreateDate:  time.Now(),
	}

	qctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	if err := s.portfolios.Create(qctx, fact); err != nil {
		return nil, storeErr("create portfolio", err)
	}

	s.log.Info().Str("id", fact.ID).Str("user_id", actor.ID).Str("category", fact.Categories).Msg("Portfolio fact created")
	return fact, nil
}

// Update rewrites a portfolio fact. Only the owner or an admin may update.
func (s *portfolioService) Update(ctx context.Context, actor *models.AuthUser, id string, in *models.PortfolioInput) (*models.PortfolioFact, error) {
	if err := validationErr(s.validate.ValidatePortfolio(in)); err != nil {
		return nil, err
	}

	qctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	fact, err := s.portfolios.GetByID(qctx, id)
	if err != nil {
		return nil, storeErr("get portfolio", err)
	}
	if fact == nil {
		return nil, fmt.Errorf("portfolio %s: %w", id, ErrNotFound)
	}
	if fact.UserID != actor.ID && !actor.IsAdmin() {
		return nil, fmt.Errorf("user %s does not own portfolio %s: %w", actor.ID, id, ErrForbidden)
	}

	fact.Categories = in.Categories
	fact.Title = in.Title
	fact.Description = in.Description
	fact.Picture = in.Picture
	fact.TechStack = in.TechStack
	fact.Skills = in.Skills
	fact.LiveLink = in.LiveLink
	fact.GithubLink = in.GithubLink
	fact.LinkedIn = in.LinkedIn
	fact.PhoneNumber = in.PhoneNumber
	fact.Email = in.Email
	fact.Contact = in.Contact
	fact.MediaType = in.MediaType

	if err := s.portfolios.Update(qctx, fact); err != nil {
		return nil, storeErr("update portfolio", err)
	}

	s.log.Info().Str("id", id).Msg("Portfolio fact updated")
	return fact, nil
}

// Delete removes a portfolio fact. Only the owner or an admin may delete.
func (s *portfolioService) Delete(ctx context.Context, actor *models.AuthUser, id string) error {
	qctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	fact, err := s.portfolios.GetByID(qctx, id)
	if err != nil {
		return storeErr("get portfolio", err)
	}
	if fact == nil {
		return fmt.Errorf("portfolio %s: %w", id, ErrNotFound)
	}
	if fact.UserID != actor.ID && !actor.IsAdmin() {
		return fmt.Errorf("user %s does not own portfolio %s: %w", actor.ID, id, ErrForbidden)
	}

	if err := s.portfolios.Delete(qctx, id); err != nil {
		return storeErr("delete portfolio", err)
	}

	s.log.Info().Str("id", id).Msg("Portfolio fact deleted")
	return nil
}

// consolidate folds portfolio fact rows into one profile per user.
//
// Rows are processed in input order. The first row for a user seeds that
// user's profile; later rows merge into it. Skills and tech stack are
// accumulating lists, so non-empty incoming values are comma-appended;
// descriptions accumulate as sections under the contributing row's title,
// skipping text the profile already contains. Links, contact details,
// picture and title are fill-once: later rows only fill fields the profile
// does not have yet. Output order is first-encounter order, so the caller's
// sort of the input (newest row first) decides which user comes first and
// which value seeds each field.
func consolidate(facts []models.PortfolioFact) []*models.ConsolidatedProfile {
	byUser := make(map[string]*models.ConsolidatedProfile)
	order := make([]*models.ConsolidatedProfile, 0, len(facts))

	for i := range facts {
		fact := facts[i]
		if fact.UserID == "" {
			// Rows without an owner cannot be grouped; skip them
			continue
		}

		profile, ok := byUser[fact.UserID]
		if !ok {
			clone := fact
			byUser[fact.UserID] = &clone
			order = append(order, &clone)
			continue
		}

		if strings.TrimSpace(fact.Skills) != "" {
			profile.Skills = appendList(profile.Skills, fact.Skills)
		}
		if strings.TrimSpace(fact.TechStack) != "" {
			profile.TechStack = appendList(profile.TechStack, fact.TechStack)
		}
		if strings.TrimSpace(fact.Description) != "" && !strings.Contains(profile.Description, fact.Description) {
			profile.Description += fmt.Sprintf("\n\n--- %s ---\n%s", fact.Title, fact.Description)
		}

		if profile.LiveLink == "" {
			profile.LiveLink = fact.LiveLink
		}
		if profile.GithubLink == "" {
			profile.GithubLink = fact.GithubLink
		}
		if profile.LinkedIn == "" {
			profile.LinkedIn = fact.LinkedIn
		}
		if profile.PhoneNumber == "" {
			profile.PhoneNumber = fact.PhoneNumber
		}
		if profile.Email == "" {
			profile.Email = fact.Email
		}
		if profile.Contact == "" {
			profile.Contact = fact.Contact
		}
		if profile.Picture == "" {
			profile.Picture = fact.Picture
		}
		if strings.TrimSpace(profile.Title) == "" && strings.TrimSpace(fact.Title) != "" {
			profile.Title = fact.Title
		}
	}

	return order
}

// appendList comma-joins accumulating list fields (skills, tech stack)
func appendList(existing, incoming string) string {
	if existing == "" {
		return incoming
	}
	return existing + ", " + incoming
}

// enrich attaches account details to each profile in a single batched user
// lookup. A lookup failure leaves every profile's UserInfo nil rather than
// failing the request.
func (s *portfolioService) enrich(ctx context.Context, profiles []*models.ConsolidatedProfile) {
	if len(profiles) == 0 {
		return
	}

	ids := make([]string, 0, len(profiles))
	for _, p := range profiles {
		ids = append(ids, p.UserID)
	}

	infos, err := s.users.GetInfoByIDs(ctx, ids)
	if err != nil {
		enrichmentFailures.Inc()
		s.log.Warn().Err(err).Int("profiles", len(profiles)).Msg("User enrichment failed, returning profiles without account details")
		return
	}

	byID := make(map[string]models.UserInfo, len(infos))
	for _, info := range infos {
		byID[info.ID] = info
	}
	for _, p := range profiles {
		if info, ok := byID[p.UserID]; ok {
			info := info // each profile gets its own copy
			p.UserInfo = &info
		}
	}
}
