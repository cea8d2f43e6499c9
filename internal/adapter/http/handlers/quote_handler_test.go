package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"condado_dog/internal/adapter/http/handlers/mocks"
	"condado_dog/internal/domain/entities"
	"condado_dog/internal/domain/pricing"
	"condado_dog/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

const validQuoteBody = `{
	"owner_name": "Maria Silva",
	"pet_names": ["Thor"],
	"dog_count": 1,
	"check_in": "2026-03-02T08:00:00Z",
	"check_out": "2026-03-04T10:00:00Z",
	"client_type": "mensal",
	"plan_weekdays": [0, 2]
}`

func TestQuoteHandler_CreateQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase returns mapped error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		uc.EXPECT().CreateQuote(gomock.Any(), gomock.Any()).Return(entities.Quote{}, pricing.ErrInvalidPeriod)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(validQuoteBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		uc.EXPECT().CreateQuote(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, cmd usecase.CreateQuoteCommand) (entities.Quote, error) {
				if cmd.OwnerName != "Maria Silva" || cmd.ClientType != entities.ClientTypeMensal {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				return entities.Quote{
					ID:            "q-1",
					OwnerName:     cmd.OwnerName,
					PetNames:      cmd.PetNames,
					DogCount:      1,
					ClientType:    cmd.ClientType,
					BillableUnits: decimal.New(225, -2),
					UnitPrice:     decimal.NewFromInt(100),
					GrossTotal:    decimal.New(225, 0),
					FinalTotal:    decimal.New(225, 0),
					CreatedAt:     time.Now().UTC(),
				}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(validQuoteBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "q-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
		if body["billable_units_display"] != "2¹⁄₄" {
			t.Fatalf("unexpected display units: %s", w.Body.String())
		}
	})
}

func TestQuoteHandler_PreviewQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success returns 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/preview", h.PreviewQuote)

		uc.EXPECT().PreviewQuote(gomock.Any(), gomock.Any()).Return(entities.Quote{ID: "preview"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/preview", bytes.NewBufferString(validQuoteBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("rate table unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/preview", h.PreviewQuote)

		uc.EXPECT().PreviewQuote(gomock.Any(), gomock.Any()).Return(entities.Quote{}, pricing.ErrEmptyRateTable)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/preview", bytes.NewBufferString(validQuoteBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_GetQuoteByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/v1/quotes/:id", h.GetQuoteByID)

		uc.EXPECT().GetQuoteByID(gomock.Any(), "q-404").Return(entities.Quote{}, usecase.ErrQuoteNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/q-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/v1/quotes/:id", h.GetQuoteByID)

		uc.EXPECT().GetQuoteByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/q-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_DownloadProposal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success streams pdf", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/v1/quotes/:id/proposal", h.DownloadProposal)

		uc.EXPECT().RenderProposal(gomock.Any(), "q-1").Return([]byte("%PDF-1.4"), nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/q-1/proposal", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
			t.Fatalf("unexpected content type %q", ct)
		}
		if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
			t.Fatalf("body is not a pdf: %q", w.Body.String())
		}
	})

	t.Run("renderer failure maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/v1/quotes/:id/proposal", h.DownloadProposal)

		uc.EXPECT().RenderProposal(gomock.Any(), "q-1").Return(nil, errors.New("chrome crashed"))

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/q-1/proposal", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestMapQuoteError(t *testing.T) {
	if got := mapQuoteError(usecase.ErrEmptyOwnerName); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapQuoteError(usecase.ErrInvalidPlanWeekday); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapQuoteError(pricing.ErrInvalidDogCount); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapQuoteError(usecase.ErrQuoteNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapQuoteError(pricing.ErrEmptyRateTable); got.HTTPStatus != http.StatusServiceUnavailable {
		t.Fatalf("expected 503")
	}
	if got := mapQuoteError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
