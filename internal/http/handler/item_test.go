package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"itemapi/internal/model"
	"itemapi/internal/service"
	serviceMocks "itemapi/internal/service/mocks"
	"itemapi/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/gofiber/fiber/v2"
)

const testID = "d2719540-7fd6-4a2a-9cd5-6f9b6a1a7e11"

func f64Ptr(f float64) *float64 { return &f }

// testEnvelope mirrors the response envelope with raw data for per-test decoding.
type testEnvelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, resp *http.Response) testEnvelope {
	t.Helper()
	var env testEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("failed to decode envelope: %v", err)
	}
	return env
}

func jsonRequest(method, target string, body any) *http.Request {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(method, target, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestCreateItem(t *testing.T) {
	v := validation.New()

	t.Run("created with assigned id", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockItemService)
		app := fiber.New()
		app.Post("/items", CreateItem(mockSvc, v))

		mockSvc.On("Create", mock.Anything, mock.MatchedBy(func(it *model.Item) bool {
			return it.Name == "Widget" && it.Price != nil && *it.Price == 9.99 && it.ID == ""
		})).Return(&model.Item{ID: testID, Name: "Widget", Price: f64Ptr(9.99)}, nil)

		req := jsonRequest(http.MethodPost, "/items", map[string]any{"name": "Widget", "price": 9.99})
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		env := decodeEnvelope(t, resp)
		assert.Equal(t, "success", env.Status)

		var item map[string]any
		json.Unmarshal(env.Data, &item)
		assert.Equal(t, "Widget", item["name"])
		assert.NotEmpty(t, item["_id"])
		mockSvc.AssertExpectations(t)
	})

	t.Run("missing name is a schema violation", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockItemService)
		app := fiber.New()
		app.Post("/items", CreateItem(mockSvc, v))

		req := jsonRequest(http.MethodPost, "/items", map[string]any{"price": 9.99})
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

		env := decodeEnvelope(t, resp)
		assert.Equal(t, "error", env.Status)

		var fields map[string]string
		json.Unmarshal(env.Data, &fields)
		assert.Contains(t, fields, "name")
		mockSvc.AssertExpectations(t)
	})

	t.Run("negative price never reaches the store", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockItemService)
		app := fiber.New()
		app.Post("/items", CreateItem(mockSvc, v))

		req := jsonRequest(http.MethodPost, "/items", map[string]any{"name": "Widget", "price": -1})
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		mockSvc.AssertExpectations(t) // no Create call expected or made
	})
}

func TestListItems(t *testing.T) {
	mockSvc := new(serviceMocks.MockItemService)
	app := fiber.New()
	app.Get("/items", ListItems(mockSvc))

	mockSvc.On("List", mock.Anything).
		Return([]model.Item{{ID: "1", Name: "Widget"}, {ID: "2", Name: "Gadget"}}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/items", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	assert.Equal(t, "success", env.Status)

	var items []map[string]any
	json.Unmarshal(env.Data, &items)
	assert.Len(t, items, 2)
	mockSvc.AssertExpectations(t)
}

func TestGetItem(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockItemService)
		app := fiber.New()
		app.Get("/items/:id", GetItem(mockSvc))

		mockSvc.On("Get", mock.Anything, testID).
			Return(&model.Item{ID: testID, Name: "Widget"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/items/"+testID, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid id format", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockItemService)
		app := fiber.New()
		app.Get("/items/:id", GetItem(mockSvc))

		mockSvc.On("Get", mock.Anything, "not-hex").Return(nil, service.ErrInvalidID)

		req := httptest.NewRequest(http.MethodGet, "/items/not-hex", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		env := decodeEnvelope(t, resp)
		assert.Equal(t, "error", env.Status)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockItemService)
		app := fiber.New()
		app.Get("/items/:id", GetItem(mockSvc))

		mockSvc.On("Get", mock.Anything, testID).Return(nil, service.ErrNotFound)

		req := httptest.NewRequest(http.MethodGet, "/items/"+testID, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("service failure", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockItemService)
		app := fiber.New()
		app.Get("/items/:id", GetItem(mockSvc))

		mockSvc.On("Get", mock.Anything, testID).Return(nil, errors.New("db down"))

		req := httptest.NewRequest(http.MethodGet, "/items/"+testID, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})
}

func TestUpdateItem(t *testing.T) {
	v := validation.New()

	t.Run("partial patch leaves other fields untouched", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockItemService)
		app := fiber.New()
		app.Put("/items/:id", UpdateItem(mockSvc, v))

		mockSvc.On("Update", mock.Anything, testID, mock.MatchedBy(func(p model.ItemPatch) bool {
			return p.Name == nil && p.Description == nil && p.Price != nil && *p.Price == 19.99
		})).Return(&model.Item{ID: testID, Name: "Widget", Price: f64Ptr(19.99)}, nil)

		req := jsonRequest(http.MethodPut, "/items/"+testID, map[string]any{"price": 19.99})
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		env := decodeEnvelope(t, resp)
		var item map[string]any
		json.Unmarshal(env.Data, &item)
		assert.Equal(t, "Widget", item["name"])
		assert.Equal(t, 19.99, item["price"])
		mockSvc.AssertExpectations(t)
	})

	t.Run("negative price rejected before the service", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockItemService)
		app := fiber.New()
		app.Put("/items/:id", UpdateItem(mockSvc, v))

		req := jsonRequest(http.MethodPut, "/items/"+testID, map[string]any{"price": -1})
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockItemService)
		app := fiber.New()
		app.Put("/items/:id", UpdateItem(mockSvc, v))

		mockSvc.On("Update", mock.Anything, testID, mock.Anything).Return(nil, service.ErrNotFound)

		req := jsonRequest(http.MethodPut, "/items/"+testID, map[string]any{"name": "Gadget"})
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestDeleteItem(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockItemService)
		app := fiber.New()
		app.Delete("/items/:id", DeleteItem(mockSvc))

		mockSvc.On("Delete", mock.Anything, testID).Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/items/"+testID, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		env := decodeEnvelope(t, resp)
		assert.Equal(t, "success", env.Status)
		assert.Equal(t, "item deleted", env.Message)
		mockSvc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockItemService)
		app := fiber.New()
		app.Delete("/items/:id", DeleteItem(mockSvc))

		mockSvc.On("Delete", mock.Anything, testID).Return(service.ErrNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/items/"+testID, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("invalid id", func(t *testing.T) {
		mockSvc := new(serviceMocks.MockItemService)
		app := fiber.New()
		app.Delete("/items/:id", DeleteItem(mockSvc))

		mockSvc.On("Delete", mock.Anything, "abc").Return(service.ErrInvalidID)

		req := httptest.NewRequest(http.MethodDelete, "/items/abc", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestRoot(t *testing.T) {
	app := fiber.New()
	app.Get("/", Root())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	assert.Equal(t, "success", env.Status)
	assert.NotEmpty(t, env.Message)
}
