package repository

import (
	"github.com/noah-isme/noosflare/internal/models"
)

// UnknownSubjectName is shown when a subject id is not in the catalog.
const UnknownSubjectName = "Предмет"

// CatalogRepository serves the static subjects and materials. It is read-only
// after construction and safe for concurrent use.
type CatalogRepository struct {
	subjects     []models.Subject
	subjectIndex map[string]int
	materials    []models.Material
	uploadTopics map[string][]string
}

// NewCatalogRepository builds a catalog over the given data, keeping its order.
func NewCatalogRepository(subjects []models.Subject, materials []models.Material, uploadTopics map[string][]string) *CatalogRepository {
	repo := &CatalogRepository{
		subjects:     append([]models.Subject(nil), subjects...),
		subjectIndex: make(map[string]int, len(subjects)),
		materials:    append([]models.Material(nil), materials...),
		uploadTopics: make(map[string][]string, len(uploadTopics)),
	}
	for i, subject := range repo.subjects {
		if _, dup := repo.subjectIndex[subject.ID]; !dup {
			repo.subjectIndex[subject.ID] = i
		}
	}
	for id, topics := range uploadTopics {
		repo.uploadTopics[id] = append([]string(nil), topics...)
	}
	return repo
}

// NewSeededCatalogRepository returns the catalog shipped with the application.
func NewSeededCatalogRepository() *CatalogRepository {
	return NewCatalogRepository(seedSubjects, seedMaterials, seedUploadTopics)
}

// Subjects returns every subject in declaration order.
func (r *CatalogRepository) Subjects() []models.Subject {
	return append([]models.Subject(nil), r.subjects...)
}

// FindSubject looks a subject up by id.
func (r *CatalogRepository) FindSubject(id string) (models.Subject, bool) {
	i, ok := r.subjectIndex[id]
	if !ok {
		return models.Subject{}, false
	}
	return r.subjects[i], true
}

// SubjectDisplayName returns the subject's name or UnknownSubjectName.
func (r *CatalogRepository) SubjectDisplayName(id string) string {
	if subject, ok := r.FindSubject(id); ok {
		return subject.Name
	}
	return UnknownSubjectName
}

// MaterialsForSubject returns the subject's materials in catalog order.
func (r *CatalogRepository) MaterialsForSubject(subjectID string) []models.Material {
	result := make([]models.Material, 0)
	for _, material := range r.materials {
		if material.SubjectID == subjectID {
			result = append(result, material)
		}
	}
	return result
}

// LiveCount returns how many loaded materials belong to the subject.
func (r *CatalogRepository) LiveCount(subjectID string) int {
	count := 0
	for _, material := range r.materials {
		if material.SubjectID == subjectID {
			count++
		}
	}
	return count
}

// TopicsForSubject returns the distinct topics of the subject in first-seen order.
func (r *CatalogRepository) TopicsForSubject(subjectID string) []string {
	return r.distinct(subjectID, func(m models.Material) string { return m.Topic })
}

// SourcesForSubject returns the distinct sources of the subject in first-seen order.
func (r *CatalogRepository) SourcesForSubject(subjectID string) []string {
	return r.distinct(subjectID, func(m models.Material) string { return m.Source })
}

// UploadTopics returns the topic menu offered by the upload form for a subject.
func (r *CatalogRepository) UploadTopics(subjectID string) []string {
	return append([]string(nil), r.uploadTopics[subjectID]...)
}

func (r *CatalogRepository) distinct(subjectID string, key func(models.Material) string) []string {
	seen := make(map[string]struct{})
	result := make([]string, 0)
	for _, material := range r.materials {
		if material.SubjectID != subjectID {
			continue
		}
		value := key(material)
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		result = append(result, value)
	}
	return result
}
