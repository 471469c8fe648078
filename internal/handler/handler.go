package handlers

import (
	"foodshare/internal/config"
	"foodshare/internal/repository"
	"foodshare/internal/service"

	"github.com/go-playground/validator/v10"
)

type Handlers struct {
	PostService   service.PostService
	ClaimService  service.ClaimService
	BrowseService service.BrowseService
	TablesService service.TablesService
	PostRepo      repository.PostRepository
	ClaimRepo     repository.ClaimRepository
	TablesRepo    repository.TablesRepository
	Cfg           *config.Config
	Validate      *validator.Validate
}

func NewHandlers(repo *repository.Repository, service *service.Service, config *config.Config) *Handlers {
	return &Handlers{
		PostService:   service.Post,
		ClaimService:  service.Claim,
		BrowseService: service.Browse,
		TablesService: service.Tables,
		PostRepo:      repo.Post,
		ClaimRepo:     repo.Claim,
		TablesRepo:    repo.Tables,
		Cfg:           config,
		Validate:      validator.New(),
	}
}
