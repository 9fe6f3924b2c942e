package routers

import (
	"benefits-portal-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachDocumentRoutes(router chi.Router, documentController *controllers.DocumentController) {
	router.Post("/", documentController.UploadDocument)
	router.Get("/", documentController.ListDocuments)
	router.Get("/{document_id}/url", documentController.GetDocumentURL)
}
