package service

import (
	"foodshare/internal/config"
	"foodshare/internal/repository"
	"foodshare/internal/storage"
)

type Service struct {
	Post   PostService
	Claim  ClaimService
	Browse BrowseService
	Tables TablesService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	return &Service{
		Post:   NewPostService(rep.Post, rep.Photo, storage, cfg),
		Claim:  NewClaimService(rep.Post, rep.Claim),
		Browse: NewBrowseService(rep.Post, NewMockDistancer()),
		Tables: NewTablesService(rep.Tables),
	}
}
