package controllers

import (
	"benefits-portal-service/internal/app/contracts"
	"benefits-portal-service/internal/pkg/constvars"
	"benefits-portal-service/internal/pkg/dto/requests"
	"benefits-portal-service/internal/pkg/exceptions"
	"benefits-portal-service/internal/pkg/utils"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type DocumentController struct {
	Log             *zap.Logger
	DocumentUsecase contracts.DocumentUsecase
}

func NewDocumentController(logger *zap.Logger, documentUsecase contracts.DocumentUsecase) *DocumentController {
	return &DocumentController{
		Log:             logger,
		DocumentUsecase: documentUsecase,
	}
}

func (ctrl *DocumentController) UploadDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("DocumentController.UploadDocument called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	err := r.ParseMultipartForm(constvars.MultipartFormMemoryLimit)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrFileTooLarge(err, maxBytesErr.Limit))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, fileHeader, err := r.FormFile(constvars.FormFieldFile)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get(constvars.HeaderContentType)
	if contentType == "" {
		contentType = constvars.MIMEOctetStream
	}

	request := &requests.UploadDocumentRequest{
		MemberID:    strings.TrimSpace(r.FormValue(constvars.FormFieldMemberID)),
		Category:    strings.TrimSpace(r.FormValue(constvars.FormFieldCategory)),
		FileName:    fileHeader.Filename,
		ContentType: contentType,
		SizeBytes:   fileHeader.Size,
		File:        file,
	}

	document, err := ctrl.DocumentUsecase.UploadDocument(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.UploadDocumentSuccessMessage, document)
}

func (ctrl *DocumentController) ListDocuments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("DocumentController.ListDocuments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	documents, err := ctrl.DocumentUsecase.ListDocuments(ctx, utils.GetQueryString(r, constvars.URLQueryParamMemberID))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDocumentsSuccessMessage, documents)
}

func (ctrl *DocumentController) GetDocumentURL(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	documentID := chi.URLParam(r, constvars.URLParamDocumentID)
	ctrl.Log.Info("DocumentController.GetDocumentURL called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDocumentIDKey, documentID),
	)

	documentURL, err := ctrl.DocumentUsecase.GetDocumentURL(ctx, documentID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDocumentURLSuccessMessage, documentURL)
}
