package documents

import (
	"benefits-portal-service/internal/app/contracts"
	"benefits-portal-service/internal/app/models"
	"benefits-portal-service/internal/pkg/exceptions"
	"benefits-portal-service/internal/pkg/queries"
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var errDocumentNotFound = errors.New("document does not exist")

type documentPostgresRepository struct {
	DB  *pgxpool.Pool
	Log *zap.Logger
}

func NewDocumentPostgresRepository(db *pgxpool.Pool, logger *zap.Logger) contracts.DocumentRepository {
	return &documentPostgresRepository{
		DB:  db,
		Log: logger,
	}
}

func (r *documentPostgresRepository) Create(ctx context.Context, document *models.Document) error {
	err := r.DB.QueryRow(ctx, queries.InsertDocument,
		document.ID,
		document.MemberID,
		document.Category,
		document.FileName,
		document.ObjectName,
		document.ContentType,
		document.SizeBytes,
	).Scan(&document.CreatedAt)
	if err != nil {
		return exceptions.ErrPostgresDBInsertData(err)
	}
	return nil
}

func (r *documentPostgresRepository) FindByID(ctx context.Context, documentID string) (*models.Document, error) {
	var document models.Document
	err := r.DB.QueryRow(ctx, queries.GetDocumentByID, documentID).Scan(
		&document.ID,
		&document.MemberID,
		&document.Category,
		&document.FileName,
		&document.ObjectName,
		&document.ContentType,
		&document.SizeBytes,
		&document.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, exceptions.ErrNotFound(errDocumentNotFound, "document")
	}
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return &document, nil
}

func (r *documentPostgresRepository) FindByMemberID(ctx context.Context, memberID string) ([]models.Document, error) {
	rows, err := r.DB.Query(ctx, queries.GetDocumentsByMemberID, memberID)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	documents := make([]models.Document, 0)
	for rows.Next() {
		var document models.Document
		err := rows.Scan(
			&document.ID,
			&document.MemberID,
			&document.Category,
			&document.FileName,
			&document.ObjectName,
			&document.ContentType,
			&document.SizeBytes,
			&document.CreatedAt,
		)
		if err != nil {
			return nil, exceptions.ErrPostgresDBIterateDataset(err)
		}
		documents = append(documents, document)
	}

	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}
	return documents, nil
}
