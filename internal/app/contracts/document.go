package contracts

import (
	"benefits-portal-service/internal/app/models"
	"benefits-portal-service/internal/pkg/dto/requests"
	"context"
)

type DocumentRepository interface {
	Create(ctx context.Context, document *models.Document) error
	FindByID(ctx context.Context, documentID string) (*models.Document, error)
	FindByMemberID(ctx context.Context, memberID string) ([]models.Document, error)
}

type DocumentUsecase interface {
	UploadDocument(ctx context.Context, request *requests.UploadDocumentRequest) (*models.Document, error)
	ListDocuments(ctx context.Context, memberID string) ([]models.Document, error)
	GetDocumentURL(ctx context.Context, documentID string) (*models.DocumentURL, error)
}
