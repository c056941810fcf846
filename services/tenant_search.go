package services

import (
	"sort"
	"strings"
	"sync"

	"casaboard/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// Hàm chuẩn hóa chuỗi
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// Tạo đối tượng closestmatch cho danh sách từ khóa
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// Tính độ tương đồng giữa hai chuỗi
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

type scoredTenant struct {
	tenant models.AggregatedTenant
	score  int
}

// Tính điểm phù hợp của một tenant với chuỗi truy vấn
func scoreTenant(query string, tenant models.AggregatedTenant, cmNames, cmProperties *closestmatch.ClosestMatch) int {
	score := 0

	name := normalizeInput(tenant.FullName())
	if strings.Contains(name, query) {
		score += 20
	} else if calculateSimilarity(query, name) > 0.7 {
		score += 12
	}
	if cmNames.Closest(query) == name {
		score += 13
	}

	email := normalizeInput(tenant.Email)
	if strings.Contains(email, query) {
		score += 15
	}

	propertyName := normalizeInput(tenant.PropertyName)
	if strings.Contains(propertyName, query) {
		score += 8
	} else if cmProperties.Closest(query) == propertyName {
		score += 5
	}

	if normalizeInput(tenant.RoomNumber) == query {
		score += 6
	}

	return score
}

// SearchTenants chấm điểm danh sách tenant tổng hợp theo chuỗi truy vấn
// tự do (tên, email, property, số phòng) và trả về kết quả xếp theo điểm.
// Truy vấn rỗng là identity.
func SearchTenants(query string, tenants []models.AggregatedTenant) []models.AggregatedTenant {
	normalizedQuery := normalizeInput(query)
	if normalizedQuery == "" {
		return tenants
	}

	names := make([]string, 0, len(tenants))
	properties := make([]string, 0, len(tenants))
	for _, t := range tenants {
		names = append(names, normalizeInput(t.FullName()))
		properties = append(properties, normalizeInput(t.PropertyName))
	}
	cmNames := createMatcher(names)
	cmProperties := createMatcher(properties)

	scoreCh := make(chan scoredTenant, len(tenants))
	var wg sync.WaitGroup

	for _, tenant := range tenants {
		wg.Add(1)
		go func(t models.AggregatedTenant) {
			defer wg.Done()
			score := scoreTenant(normalizedQuery, t, cmNames, cmProperties)
			if score > 0 {
				scoreCh <- scoredTenant{tenant: t, score: score}
			}
		}(tenant)
	}

	go func() {
		wg.Wait()
		close(scoreCh)
	}()

	var scored []scoredTenant
	for s := range scoreCh {
		scored = append(scored, s)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	results := make([]models.AggregatedTenant, 0, len(scored))
	for _, s := range scored {
		results = append(results, s.tenant)
	}
	return results
}
