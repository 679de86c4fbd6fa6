package process_message

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StorageService/internal/api/handlers"
	processMessage "github.com/m04kA/SMC-StorageService/internal/usecase/process_message"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidUserID      = "некорректный идентификатор пользователя"
)

type Handler struct {
	useCase ProcessMessageUseCase
	logger  Logger
}

func NewHandler(useCase ProcessMessageUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/messages
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req MessageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /messages - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, processMessage.ErrInvalidInput):
			h.logger.Warn("POST /messages - Invalid input: user_id=%d, error=%v", req.UserID, err)
			handlers.RespondBadRequest(w, msgInvalidUserID)

		default:
			h.logger.Error("POST /messages - Failed to process message: user_id=%d, error=%v", req.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /messages - Message processed: user_id=%d, state=%s", req.UserID, result.State)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
