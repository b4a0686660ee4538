package converter

import (
	"dental-care-api/internal/delivery/dto"
	"dental-care-api/internal/domain/entity"
)

// StatCountsToResponses converts group-by buckets to statistic DTOs
func StatCountsToResponses(stats []entity.StatCount) []dto.StatisticResponse {
	responses := make([]dto.StatisticResponse, len(stats))
	for i, stat := range stats {
		responses[i] = dto.StatisticResponse{
			Name:  stat.Name,
			Value: stat.Value,
		}
	}
	return responses
}
