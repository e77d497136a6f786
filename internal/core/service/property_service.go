package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/lightbnb/lightbnb-api/internal/core/domain"
	"github.com/lightbnb/lightbnb-api/internal/core/ports"
)

// PropertyService lists properties from reader and stores new ones through
// writer. The two may be different stores, in which case new properties do
// not show up in listings.
type PropertyService struct {
	reader ports.PropertyReader
	writer ports.PropertyWriter
	logger zerolog.Logger
}

func NewPropertyService(reader ports.PropertyReader, writer ports.PropertyWriter, logger zerolog.Logger) *PropertyService {
	return &PropertyService{reader: reader, writer: writer, logger: logger}
}

func (s *PropertyService) List(ctx context.Context, filter domain.PropertyFilter, limit int) ([]domain.Property, error) {
	limit = domain.NormalizeLimit(limit)
	properties, err := s.reader.List(ctx, filter, limit)
	if err != nil {
		s.logger.Error().Err(err).Int("limit", limit).Msg("list properties failed")
		return nil, err
	}
	return properties, nil
}

func (s *PropertyService) Add(ctx context.Context, property *domain.Property) (*domain.Property, error) {
	property.Title = strings.TrimSpace(property.Title)
	if property.Title == "" {
		return nil, domain.ErrInvalidInput
	}

	created, err := s.writer.Create(ctx, property)
	if err != nil {
		s.logger.Error().Err(err).Int64("owner_id", property.OwnerID).Msg("add property failed")
		return nil, err
	}

	s.logger.Info().Int64("property_id", created.ID).Int64("owner_id", created.OwnerID).Msg("property added")
	return created, nil
}
