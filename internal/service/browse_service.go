package service

import (
	"context"
	"hash/fnv"
	"strings"
	"time"

	"foodshare/internal/lifecycle"
	"foodshare/internal/models"
	"foodshare/internal/repository"
)

// KindAll - значение фильтра "все типы постов"
const KindAll models.PostKind = "All"

// Distancer - внешний коллаборатор геолокации. Движок фильтрации
// не считает расстояния сам, для него это просто число.
type Distancer interface {
	Distance(post *models.Post) float64
}

// BrowsePost - пост с производными полями для витрины
type BrowsePost struct {
	models.Post
	DistanceMiles float64               `json:"distanceMiles"`
	ExpiryState   lifecycle.ExpiryState `json:"expiryState"`
}

type BrowseService interface {
	Browse(ctx context.Context, term string, kind models.PostKind, maxDistance float64) ([]BrowsePost, error)
}

type browseService struct {
	postRepo repository.PostRepository
	dist     Distancer
}

func NewBrowseService(postRepo repository.PostRepository, dist Distancer) BrowseService {
	return &browseService{
		postRepo: postRepo,
		dist:     dist,
	}
}

// FilterPosts - чистый конъюнктивный фильтр витрины. Порядок входа
// сохраняется (посты приходят уже отсортированными по свежести).
// Пустой term и kind = All пропускают все, maxDistance < 0 снимает
// ограничение по расстоянию.
func FilterPosts(posts []models.Post, term string, kind models.PostKind, maxDistance float64, dist Distancer) []models.Post {
	term = strings.ToLower(strings.TrimSpace(term))

	var matched []models.Post
	for i := range posts {
		post := posts[i]

		if term != "" {
			matchesTerm := strings.Contains(strings.ToLower(post.Title), term) ||
				strings.Contains(strings.ToLower(post.Description), term) ||
				strings.Contains(strings.ToLower(post.Location), term)
			if !matchesTerm {
				continue
			}
		}

		if kind != "" && kind != KindAll && post.Kind != kind {
			continue
		}

		if maxDistance >= 0 && dist.Distance(&post) > maxDistance {
			continue
		}

		matched = append(matched, post)
	}

	return matched
}

func (s *browseService) Browse(ctx context.Context, term string, kind models.PostKind, maxDistance float64) ([]BrowsePost, error) {
	posts, err := s.postRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered := FilterPosts(posts, term, kind, maxDistance, s.dist)

	now := time.Now()
	result := make([]BrowsePost, 0, len(filtered))
	for i := range filtered {
		result = append(result, BrowsePost{
			Post:          filtered[i],
			DistanceMiles: s.dist.Distance(&filtered[i]),
			ExpiryState:   lifecycle.Classify(filtered[i].ExpiresAt, now),
		})
	}

	return result, nil
}

// mockDistancer выдает стабильное псевдослучайное расстояние до 5 миль
// по ID поста - как заглушка геолокации в исходном приложении
type mockDistancer struct{}

func NewMockDistancer() Distancer {
	return mockDistancer{}
}

func (mockDistancer) Distance(post *models.Post) float64 {
	h := fnv.New32a()
	h.Write([]byte(post.PostID))
	return float64(h.Sum32()%50) / 10.0
}
