package service

import (
	"strings"

	"github.com/noah-isme/noosflare/internal/models"
)

// FilterMaterials returns the materials matching every criterion, in input order.
// The result is never nil so callers can tell "no matches" from "not queried".
func FilterMaterials(materials []models.Material, filter models.MaterialFilter) []models.Material {
	filter = filter.Normalize()
	needle := strings.ToLower(filter.Search)

	result := make([]models.Material, 0, len(materials))
	for _, material := range materials {
		matchesSearch := strings.Contains(strings.ToLower(material.Title), needle)
		matchesTopic := filter.Topic == models.FilterAll || material.Topic == filter.Topic
		matchesSource := filter.Source == models.FilterAll || material.Source == filter.Source
		matchesKind := filter.Kind == models.KindAll || material.Kind == filter.Kind
		if matchesSearch && matchesTopic && matchesSource && matchesKind {
			result = append(result, material)
		}
	}
	return result
}
