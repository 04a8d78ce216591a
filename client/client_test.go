package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"barberly/models"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return New(srv.URL, zap.NewNop()), srv
}

func TestLookupBarber(t *testing.T) {
	t.Run("returns the first element of the collection", func(t *testing.T) {
		c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/get_barber", r.URL.Path)
			assert.Equal(t, "b1", r.URL.Query().Get("id"))
			json.NewEncoder(w).Encode([]models.Barber{{ID: "b1", Name: "Sam"}})
		})
		defer srv.Close()

		barber, err := c.LookupBarber(context.Background(), "b1")
		assert.NoError(t, err)
		assert.Equal(t, "Sam", barber.Name)
	})

	t.Run("empty collection means not found", func(t *testing.T) {
		c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode([]models.Barber{})
		})
		defer srv.Close()

		_, err := c.LookupBarber(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrBarberNotFound)
	})
}

func TestSearchBarbersQueryParams(t *testing.T) {
	t.Run("default filter sends no criteria", func(t *testing.T) {
		var query string
		c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			query = r.URL.RawQuery
			json.NewEncoder(w).Encode([]models.Barber{})
		})
		defer srv.Close()

		_, err := c.SearchBarbers(context.Background(), models.DefaultBarberFilter())
		assert.NoError(t, err)
		assert.Empty(t, query)
	})

	t.Run("non-default criteria appear as query params", func(t *testing.T) {
		var params map[string][]string
		c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			params = r.URL.Query()
			json.NewEncoder(w).Encode([]models.Barber{})
		})
		defer srv.Close()

		travel := true
		filter := models.BarberFilter{
			Name:         "sam",
			MinRating:    4,
			MaxCost:      30,
			Gender:       "female",
			Hairstyle:    "fade",
			Neighborhood: "North",
			WillTravel:   &travel,
		}
		_, err := c.SearchBarbers(context.Background(), filter)
		assert.NoError(t, err)

		assert.Equal(t, "sam", params["name"][0])
		assert.Equal(t, "4", params["rating"][0])
		assert.Equal(t, "30", params["cost"][0])
		assert.Equal(t, "female", params["gender"][0])
		assert.Equal(t, "fade", params["hairstyles"][0])
		assert.Equal(t, "North", params["location"][0])
		assert.Equal(t, "true", params["will_travel"][0])
	})

	t.Run("cost ceiling above the default is still sent", func(t *testing.T) {
		var params map[string][]string
		c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			params = r.URL.Query()
			json.NewEncoder(w).Encode([]models.Barber{})
		})
		defer srv.Close()

		filter := models.DefaultBarberFilter()
		filter.MaxCost = 150
		_, err := c.SearchBarbers(context.Background(), filter)
		assert.NoError(t, err)
		assert.Equal(t, "150", params["cost"][0])
	})

	t.Run("zero-valued filter sends no spurious criteria", func(t *testing.T) {
		var query string
		c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			query = r.URL.RawQuery
			json.NewEncoder(w).Encode([]models.Barber{})
		})
		defer srv.Close()

		_, err := c.SearchBarbers(context.Background(), models.BarberFilter{})
		assert.NoError(t, err)
		assert.Empty(t, query)
	})

	t.Run("each default criterion is omitted independently", func(t *testing.T) {
		var params map[string][]string
		c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			params = r.URL.Query()
			json.NewEncoder(w).Encode([]models.Barber{})
		})
		defer srv.Close()

		filter := models.DefaultBarberFilter()
		filter.MinRating = 3
		_, err := c.SearchBarbers(context.Background(), filter)
		assert.NoError(t, err)

		assert.Contains(t, params, "rating")
		assert.NotContains(t, params, "name")
		assert.NotContains(t, params, "cost")
		assert.NotContains(t, params, "gender")
	})
}

func TestCreateSession(t *testing.T) {
	t.Run("posts the request with the bearer token and decodes the acknowledgment", func(t *testing.T) {
		var received models.SessionRequest
		c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/create_session", r.URL.Path)
			assert.Equal(t, "Bearer tok123", r.Header.Get("Authorization"))
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			json.NewEncoder(w).Encode(models.SessionResponse{
				SessionID: "s1",
				Message:   "Session created successfully",
			})
		})
		defer srv.Close()
		c.SetToken("tok123")

		req := &models.SessionRequest{
			BarberID:        "b1",
			UserID:          "u1",
			Time:            1717243200,
			Duration:        30,
			AmountPaid:      25,
			MeetingLocation: "Wilson",
		}
		resp, err := c.CreateSession(context.Background(), req)
		assert.NoError(t, err)
		assert.Equal(t, "s1", resp.SessionID)
		assert.Equal(t, *req, received)
	})

	t.Run("non-2xx becomes an APIError", func(t *testing.T) {
		c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "Barber not found", http.StatusNotFound)
		})
		defer srv.Close()

		_, err := c.CreateSession(context.Background(), &models.SessionRequest{BarberID: "missing"})
		var apiErr *APIError
		assert.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.Status)
		assert.Contains(t, apiErr.Message, "Barber not found")
	})
}

func TestSessionListings(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/get_user_sessions":
			assert.Equal(t, "u1", r.URL.Query().Get("user_id"))
			json.NewEncoder(w).Encode(models.SessionList{
				UserID:       "u1",
				SessionCount: 1,
				Sessions:     []models.Session{{ID: "s1", UserID: "u1"}},
			})
		case "/get_barber_sessions":
			assert.Equal(t, "b1", r.URL.Query().Get("barber_id"))
			json.NewEncoder(w).Encode(models.SessionList{
				BarberID:     "b1",
				SessionCount: 2,
				Sessions:     []models.Session{{ID: "s1"}, {ID: "s2"}},
			})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})
	defer srv.Close()

	userList, err := c.UserSessions(context.Background(), "u1")
	assert.NoError(t, err)
	assert.Equal(t, 1, userList.SessionCount)

	barberList, err := c.BarberSessions(context.Background(), "b1")
	assert.NoError(t, err)
	assert.Len(t, barberList.Sessions, 2)
}

func TestImageSearch(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/image_search", r.URL.Path)

		file, header, err := r.FormFile("file")
		assert.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "cut.jpg", header.Filename)

		json.NewEncoder(w).Encode(ImageSearchResult{
			Matches: []models.Barber{{ID: "b1", Name: "Sam"}},
		})
	})
	defer srv.Close()

	result, err := c.ImageSearch(context.Background(), "cut.jpg", strings.NewReader("fake image bytes"))
	assert.NoError(t, err)
	assert.Len(t, result.Matches, 1)
	assert.Equal(t, "Sam", result.Matches[0].Name)
}

func TestMe(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users/me", r.URL.Path)
		assert.Equal(t, "Bearer tok123", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(models.User{ID: "u1", UserName: "jordan", Dorm: "Brody"})
	})
	defer srv.Close()
	c.SetToken("tok123")

	user, err := c.Me(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "Brody", user.Dorm)
}
