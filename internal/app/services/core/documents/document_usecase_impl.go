package documents

import (
	"benefits-portal-service/internal/app/config"
	"benefits-portal-service/internal/app/contracts"
	"benefits-portal-service/internal/app/models"
	"benefits-portal-service/internal/pkg/constvars"
	"benefits-portal-service/internal/pkg/dto/requests"
	"benefits-portal-service/internal/pkg/exceptions"
	"benefits-portal-service/internal/pkg/utils"
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type documentUsecase struct {
	DocumentRepository contracts.DocumentRepository
	Storage            contracts.Storage
	InternalConfig     *config.InternalConfig
	Log                *zap.Logger
	now                func() time.Time
}

func NewDocumentUsecase(
	documentRepository contracts.DocumentRepository,
	storage contracts.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.DocumentUsecase {
	return &documentUsecase{
		DocumentRepository: documentRepository,
		Storage:            storage,
		InternalConfig:     internalConfig,
		Log:                logger,
		now:                time.Now,
	}
}

// UploadDocument stores the object first; a metadata row is only written for objects
// that made it into the bucket.
func (uc *documentUsecase) UploadDocument(ctx context.Context, request *requests.UploadDocumentRequest) (*models.Document, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("documentUsecase.UploadDocument called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMemberIDKey, request.MemberID),
	)

	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	maxBytes := uc.InternalConfig.Documents.MaxUploadSizeInMegabyte << 20
	if maxBytes > 0 && request.SizeBytes > maxBytes {
		return nil, exceptions.ErrFileTooLarge(nil, maxBytes)
	}

	documentID := uuid.NewString()
	document := &models.Document{
		ID:          documentID,
		MemberID:    request.MemberID,
		Category:    request.Category,
		FileName:    request.FileName,
		ObjectName:  utils.GenerateDocumentObjectName(request.MemberID, documentID, request.FileName),
		ContentType: request.ContentType,
		SizeBytes:   request.SizeBytes,
	}

	err = uc.Storage.UploadFile(ctx, uc.InternalConfig.Documents.BucketName, document.ObjectName, request.File, request.SizeBytes, request.ContentType)
	if err != nil {
		uc.Log.Error("documentUsecase.UploadDocument error uploading object",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBucketNameKey, uc.InternalConfig.Documents.BucketName),
			zap.String(constvars.LoggingObjectNameKey, document.ObjectName),
			zap.Error(err),
		)
		return nil, err
	}

	err = uc.DocumentRepository.Create(ctx, document)
	if err != nil {
		uc.Log.Error("documentUsecase.UploadDocument error saving metadata",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDocumentIDKey, documentID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("documentUsecase.UploadDocument succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDocumentIDKey, documentID),
	)
	return document, nil
}

func (uc *documentUsecase) ListDocuments(ctx context.Context, memberID string) ([]models.Document, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("documentUsecase.ListDocuments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMemberIDKey, memberID),
	)

	err := utils.ValidateStruct(&requests.ListDocumentsQuery{MemberID: memberID})
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	documents, err := uc.DocumentRepository.FindByMemberID(ctx, memberID)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("documentUsecase.ListDocuments succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(documents)),
	)
	return documents, nil
}

func (uc *documentUsecase) GetDocumentURL(ctx context.Context, documentID string) (*models.DocumentURL, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("documentUsecase.GetDocumentURL called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDocumentIDKey, documentID),
	)

	document, err := uc.DocumentRepository.FindByID(ctx, documentID)
	if err != nil {
		return nil, err
	}

	expiry := time.Duration(uc.InternalConfig.Documents.PresignedURLExpiryInHours) * time.Hour
	if expiry <= 0 {
		expiry = constvars.DefaultPresignedURLExpiry
	}

	presignedURL, err := uc.Storage.GetObjectUrlWithExpiryTime(ctx, uc.InternalConfig.Documents.BucketName, document.ObjectName, expiry)
	if err != nil {
		return nil, err
	}

	return &models.DocumentURL{
		URL:       presignedURL,
		ExpiresAt: uc.now().UTC().Add(expiry),
	}, nil
}
