// Package catalog holds the services the shop sells by the hour or by the job.
package catalog

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/pkg/errs"
	"workshop/internal/pkg/guard"
)

const minNameLength = 3

var ErrServiceIsNotConstructed = errors.New("Service must be created via NewService constructor")

// Service is a priced unit of labor that service orders reference by ID.
// estimatedDuration is expressed in minutes.
type Service struct {
	id                kernel.UUID
	name              string
	description       string
	estimatedDuration int
	price             kernel.Money
	category          Category
	active            bool
	createdAt         time.Time
	updatedAt         time.Time

	guard guard.ConstructorGuard
}

func NewService(
	name, description string,
	estimatedDuration int,
	price kernel.Money,
	category Category,
) (*Service, error) {
	now := time.Now().UTC()
	s := &Service{
		id:          kernel.NewUUID(),
		description: strings.TrimSpace(description),
		active:      true,
		createdAt:   now,
		updatedAt:   now,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setName(name),
		s.setEstimatedDuration(estimatedDuration),
		s.setPrice(price),
		s.setCategory(category),
	); err != nil {
		return nil, err
	}

	return s, nil
}

func RestoreService(
	id kernel.UUID,
	name, description string,
	estimatedDuration int,
	price kernel.Money,
	category Category,
	active bool,
	createdAt, updatedAt time.Time,
) (*Service, error) {
	s := &Service{
		id:          id,
		description: description,
		active:      active,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		id.Validate(),
		s.setName(name),
		s.setEstimatedDuration(estimatedDuration),
		s.setPrice(price),
		s.setCategory(category),
	); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Service) Validate() error {
	if s == nil {
		return ErrServiceIsNotConstructed
	}
	return s.guard.Validate(ErrServiceIsNotConstructed)
}

func (s *Service) ID() kernel.UUID        { return s.id }
func (s *Service) Name() string           { return s.name }
func (s *Service) Description() string    { return s.description }
func (s *Service) EstimatedDuration() int { return s.estimatedDuration }
func (s *Service) Price() kernel.Money    { return s.price }
func (s *Service) Category() Category     { return s.category }
func (s *Service) IsActive() bool         { return s.active }
func (s *Service) CreatedAt() time.Time   { return s.createdAt }
func (s *Service) UpdatedAt() time.Time   { return s.updatedAt }

func (s *Service) UpdatePrice(price kernel.Money) error {
	if err := s.setPrice(price); err != nil {
		return err
	}
	s.updatedAt = time.Now().UTC()
	return nil
}

func (s *Service) Deactivate() {
	s.active = false
	s.updatedAt = time.Now().UTC()
}

func (s *Service) Activate() {
	s.active = true
	s.updatedAt = time.Now().UTC()
}

// Snapshot is the flat, serializable view of a Service.
type Snapshot struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Description       string    `json:"description,omitempty"`
	EstimatedDuration int       `json:"estimatedDuration"`
	Price             string    `json:"price"`
	Category          string    `json:"category"`
	Active            bool      `json:"active"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func (s *Service) Snapshot() Snapshot {
	return Snapshot{
		ID:                s.id.String(),
		Name:              s.name,
		Description:       s.description,
		EstimatedDuration: s.estimatedDuration,
		Price:             s.price.String(),
		Category:          s.category.String(),
		Active:            s.active,
		CreatedAt:         s.createdAt,
		UpdatedAt:         s.updatedAt,
	}
}

func (s *Service) setName(name string) error {
	name = strings.TrimSpace(name)
	if len([]rune(name)) < minNameLength {
		return errs.NewValueIsInvalidErrorWithCause("name", fmt.Errorf("must have at least %d characters", minNameLength))
	}
	s.name = name
	return nil
}

func (s *Service) setEstimatedDuration(minutes int) error {
	if minutes <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("estimatedDuration", fmt.Errorf("%d is not greater than 0", minutes))
	}
	s.estimatedDuration = minutes
	return nil
}

func (s *Service) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	s.price = price
	return nil
}

func (s *Service) setCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	s.category = category
	return nil
}
