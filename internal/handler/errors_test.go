package handler

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"spareparts-backend/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", service.ErrItemNotFound, 404},
		{"supplier not found", service.ErrSupplierNotFound, 404},
		{"unauthorized", service.ErrInvalidCredentials, 401},
		{"conflict", service.ErrSizeExists, 400},
		{"validation", service.ErrInvalidAmount, 400},
		{"below zero", service.ErrQuantityBelowZero, 400},
		{"internal", errors.New("pq: connection refused"), 500},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return respondError(c, tc.err)
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			require.NoError(t, err)
			assert.Equal(t, tc.want, resp.StatusCode)

			var body map[string]string
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			if tc.want == 500 {
				// Storage details never reach the caller.
				assert.Equal(t, "Internal server error", body["message"])
			} else {
				assert.Equal(t, tc.err.Error(), body["message"])
			}
		})
	}
}
