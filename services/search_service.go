package services

import (
	"context"
	"sort"
	"strings"

	"github.com/NabeelAltarteer/GetEmpStatusBE/dto"
	"github.com/NabeelAltarteer/GetEmpStatusBE/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"gorm.io/gorm"
)

const searchCandidates = 20

// SearchService is the fuzzy directory lookup over employee usernames and
// national keys. Read-only, never cached.
type SearchService struct {
	db *gorm.DB
}

func NewSearchService(db *gorm.DB) *SearchService {
	return &SearchService{db: db}
}

// normalizeInput strips accents and case so matching is alphabet-agnostic
func normalizeInput(input string) string {
	return strings.ToLower(unidecode.Unidecode(strings.TrimSpace(input)))
}

func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// calculateSimilarity scores two strings in [0,1] by edit distance
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(distance)/maxLen
}

// SearchEmployees ranks employees against the query and returns the best
// matches, highest score first.
func (s *SearchService) SearchEmployees(ctx context.Context, query string, limit int) ([]dto.EmployeeSearchResult, error) {
	if limit <= 0 {
		limit = 10
	}
	var employees []models.Employee
	if err := s.db.WithContext(ctx).Find(&employees).Error; err != nil {
		return nil, err
	}

	return rankEmployees(normalizeInput(query), employees, limit), nil
}

// rankEmployees scores the candidate set against an already-normalized
// query. Usernames that normalize to the same string all stay in the
// running, so namesakes never shadow each other.
func rankEmployees(normalized string, employees []models.Employee, limit int) []dto.EmployeeSearchResult {
	byName := make(map[string][]models.Employee, len(employees))
	keywords := make([]string, 0, len(employees))
	for _, emp := range employees {
		name := normalizeInput(emp.Username)
		if _, ok := byName[name]; !ok {
			keywords = append(keywords, name)
		}
		byName[name] = append(byName[name], emp)
	}

	matcher := createMatcher(keywords)
	candidates := matcher.ClosestN(normalized, searchCandidates)

	results := make([]dto.EmployeeSearchResult, 0, len(candidates))
	seen := make(map[uint]bool)
	for _, name := range candidates {
		for _, emp := range byName[name] {
			if seen[emp.ID] {
				continue
			}
			seen[emp.ID] = true

			score := calculateSimilarity(normalized, name)
			if keyScore := calculateSimilarity(normalized, strings.ToLower(emp.NationalKey)); keyScore > score {
				score = keyScore
			}
			results = append(results, dto.EmployeeSearchResult{
				ID:          emp.ID,
				Username:    emp.Username,
				NationalKey: emp.NationalKey,
				Email:       emp.Email,
				Score:       score,
			})
		}
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > limit {
		results = results[:limit]
	}
	return results
}
