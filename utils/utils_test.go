package utils

import (
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// paginationResult runs ParsePagination against a request with the given
// query string and returns what the handler observed.
func paginationResult(t *testing.T, query string, defaultLimit int) (page, limit, offset int) {
	t.Helper()

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		p, l, o := ParsePagination(c, defaultLimit)
		return c.SendString(fmt.Sprintf("%d %d %d", p, l, o))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/?"+query, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_, err = fmt.Sscanf(string(body), "%d %d %d", &page, &limit, &offset)
	require.NoError(t, err)
	return page, limit, offset
}

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name                     string
		query                    string
		wantPage, wantLimit, wantOffset int
	}{
		{"defaults", "", 1, 10, 0},
		{"explicit", "page=3&limit=20", 3, 20, 40},
		{"page below one clamps", "page=0&limit=10", 1, 10, 0},
		{"negative page clamps", "page=-2", 1, 10, 0},
		{"limit below one clamps", "limit=0", 1, 1, 0},
		{"limit above cap clamps", "limit=500", 1, 50, 0},
		{"garbage falls back", "page=abc&limit=xyz", 1, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit, offset := paginationResult(t, tt.query, 10)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}

func TestJoinAddress(t *testing.T) {
	line1 := "221B Baker Street"
	line2 := "  Flat 4  "
	city := "Bengaluru"
	state := "Karnataka"
	pincode := "560102"
	blank := "   "

	assert.Equal(t,
		"221B Baker Street, Flat 4, Bengaluru, Karnataka, 560102",
		JoinAddress(&line1, &line2, &city, &state, &pincode))

	// Nil and blank parts are skipped, not rendered as empty segments.
	assert.Equal(t, "Bengaluru, 560102", JoinAddress(nil, &blank, &city, nil, &pincode))
	assert.Equal(t, "", JoinAddress(nil, nil))
	assert.Equal(t, "", JoinAddress())
}

func TestSanitizeRequestBodyMultipart(t *testing.T) {
	app := fiber.New()
	var got string
	app.Post("/", func(c *fiber.Ctx) error {
		got = sanitizeRequestBody(c)
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("POST", "/", nil)
	req.Header.Set("Content-Type", "multipart/form-data; boundary=x")
	_, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "[MULTIPART_FORM_DATA]", got)
}
